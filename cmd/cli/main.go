package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/acmchapter/chapterdesk/internal/client/cli"
	"github.com/acmchapter/chapterdesk/internal/client/config"
	"github.com/acmchapter/chapterdesk/internal/flagx"
	"github.com/acmchapter/chapterdesk/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	_, args := flagx.SplitArgs(os.Args[1:], config.OwnedFlags())

	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx, args); err != nil {
		stop()
		os.Exit(1)
	}

}
