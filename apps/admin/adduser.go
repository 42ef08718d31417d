package main

import "github.com/ivamusic/academia/core/directory"

// addUser registers a new directory.User.
func (cli *commandLine) addUser(name, uname string, role directory.Role, email, instrument, pwd string) error {
	nu := directory.NewUser{
		Name:       name,
		Username:   uname,
		Role:       role,
		Email:      email,
		Instrument: instrument,
		Password:   pwd,
	}
	if err := nu.Validate(cli.dirSvc); err != nil {
		return err
	}
	usr, err := cli.dirSvc.CreateUser(nu)
	if err != nil {
		return err
	}
	logger.Printf("created %s %q (%s)", usr.Role, usr.Name, usr.ID)
	return nil
}
