package main

import (
	"github.com/volatiletech/null/v8"

	"github.com/ivamusic/academia/core/directory"
)

func (cli *commandLine) resetPassword(uname string, role directory.Role, pwd string) error {
	usr, err := cli.dirSvc.GetByUsername(uname, role)
	if err != nil {
		return err
	}
	_, err = cli.dirSvc.UpdateUser(directory.UserPatch{
		ID:       usr.ID,
		Password: null.StringFrom(pwd),
	})
	return err
}
