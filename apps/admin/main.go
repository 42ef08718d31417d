package main

import (
	"log"
	"os"

	"github.com/ivamusic/academia/core/directory"
	emailsvc "github.com/ivamusic/academia/services/email"
	logsvc "github.com/ivamusic/academia/services/logger"
	inmemdb "github.com/ivamusic/academia/storage/database/inmem"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up the entity store with the fixed seed set
	db, err := inmemdb.Open()
	errAndDie(err)
	db.LoadFixtures()

	// start CLI
	cli := commandLine{
		dirSvc: directory.NewService(
			inmemdb.Repositories(db),
			emailsvc.NewConsoleService(),
			logsvc.NewConsoleLogger(logger),
		),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
