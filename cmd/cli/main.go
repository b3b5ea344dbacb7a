package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/logdash/internal/buildinfo"
	"github.com/dmitrijs2005/logdash/internal/client/cli"
	"github.com/dmitrijs2005/logdash/internal/client/config"
	"github.com/dmitrijs2005/logdash/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if s, ok := logger.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
