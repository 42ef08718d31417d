package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/ivamusic/academia/apps/api/echo"
	"github.com/ivamusic/academia/core"
	"github.com/ivamusic/academia/core/directory"
	emailsvc "github.com/ivamusic/academia/services/email"
	logsvc "github.com/ivamusic/academia/services/logger"
	inmemdb "github.com/ivamusic/academia/storage/database/inmem"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lshortfile)

	// set up the entity store; state is memory-resident and reinitializes
	// to the fixed seed set on every process start
	db, err := inmemdb.Open()
	if err != nil {
		std.Fatalf("opening store: %v", err)
	}
	db.LoadFixtures()

	// set up services
	var logger core.Logger
	if core.Conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	}

	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	dirSvc := directory.NewService(inmemdb.Repositories(db), mailSvc, logger)

	// start API server
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(
		core.Conf.ServerAddress(),
		shutdown,
		&echoapi.Deps{
			Logger: logger,
			DirSvc: dirSvc,
		},
	)
	go app.Start()

	<-shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		std.Fatalf("stopping server: %v", err)
	}
}
