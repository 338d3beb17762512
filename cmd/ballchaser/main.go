package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/ballchaser/internal/core/observability/log"
	"github.com/zeusync/ballchaser/internal/host"
	"github.com/zeusync/ballchaser/internal/injector"
)

const statusInterval = 30 * time.Second

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	flag.Parse()

	app, err := injector.InitializeApp(injector.ConfigPath(*configPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	logger := app.Logger
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Server.Run(gctx)
	})
	g.Go(func() error {
		reportStatus(gctx, app.Server, logger)
		return nil
	})

	logger.Info("ballchaser started",
		log.String("name", app.Config.Bot.Name),
		log.String("profile", app.Config.Bot.Profile),
	)

	if err = g.Wait(); err != nil {
		logger.Error("server stopped", log.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("ballchaser stopped")
}

func reportStatus(ctx context.Context, srv *host.Server, logger log.Log) {
	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logger.Debug("status", log.Int("sessions", srv.Sessions()))
		}
	}
}
