package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/soumadipchangder/Trading-Bot/internal/binance"
	"github.com/soumadipchangder/Trading-Bot/internal/cli"
	"github.com/soumadipchangder/Trading-Bot/internal/config"
	"github.com/soumadipchangder/Trading-Bot/internal/logging"
	"github.com/soumadipchangder/Trading-Bot/internal/metrics"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if cfg.Metrics.Addr != "" {
		_ = metrics.Serve(cfg.Metrics.Addr)
		log.Info().Str("addr", cfg.Metrics.Addr).Msg("metrics up")
	}

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := binance.New(cfg.Exchange.APIKey, cfg.Exchange.APISecret, cfg.Exchange.BaseURL, log)
	log.Info().Str("base_url", client.BaseURL()).Str("asset", cfg.Exchange.Asset).Msg("trading bot started")

	menu := cli.New(client, cfg.Exchange.Asset, os.Stdin, os.Stdout)
	err = menu.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, io.EOF):
		// Interrupted or stdin closed; shut down quietly.
	default:
		log.Fatal().Err(err).Msg("menu stopped")
	}
	log.Info().Msg("shutting down")
}
