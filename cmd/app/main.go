package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os/signal"
	"syscall"
	_ "tiendita/docs"
	"tiendita/internal/components"
	"tiendita/internal/config"

	"golang.org/x/sync/errgroup"
)

// @title Tiendita Checkout Api
// @version 1.0
// @description Checkout service: cart resolution, card form validation and transaction processing.

// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Println(err.Error())
		return
	}

	logger := components.SetupLogger(*cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	comps, err := components.InitComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("bad configuration", slog.String("error", err.Error()))
		return
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := comps.HttpServer.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("failed to run HttpServer", slog.String("error", err.Error()))
			return err
		}
		return nil
	})

	eg.Go(func() error {
		return comps.Reconciler.Run(ctx)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("component failed", slog.String("error", err.Error()))
	}

	if err := comps.Shutdown(); err != nil {
		logger.Error("error while shutting down the components", slog.String("error", err.Error()))
	}

	logger.Info("the program has exited")
}
