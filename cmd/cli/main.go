package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/oryn/internal/cli"
	"github.com/dmitrijs2005/oryn/internal/config"
	"github.com/dmitrijs2005/oryn/internal/logging"
	"github.com/dmitrijs2005/oryn/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	db, err := store.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		logger.Error(ctx, "failed to open store", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	st := store.New(store.NewSQLite(db), logger)
	cli.NewApp(cfg, st, logger).Run(ctx)
}
