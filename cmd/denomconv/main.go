package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/SscSPs/wallet_denominations/internal/cli"
	"github.com/SscSPs/wallet_denominations/internal/fiat"
	"github.com/SscSPs/wallet_denominations/internal/platform/config"
	"github.com/SscSPs/wallet_denominations/internal/platform/logging"
)

func main() {
	v, args, err := cli.GlobalFlags(os.Args[1:])
	if err != nil {
		slog.Error("Failed to parse flags", slog.String("error", err.Error()))
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(v)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logFormat := cfg.LogFormat
	if cfg.IsProduction {
		logFormat = "json"
	}
	// Initialize structured logger; results go to stdout so logs use stderr
	logger, runID := logging.WithRunID(logging.NewLogger(os.Stderr, cfg.LogLevel, logFormat))
	slog.SetDefault(logger)

	table := fiat.DefaultTable()
	if cfg.FiatSymbolsFile != "" {
		table, err = fiat.LoadSymbolTable(cfg.FiatSymbolsFile)
		if err != nil {
			logger.Error("Failed to load fiat symbol table", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Debug("Loaded fiat symbol table", slog.String("path", cfg.FiatSymbolsFile), slog.Int("currencies", len(table)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := cli.New(fiat.NewNormalizer(table), logger, os.Stdout)
	if err := app.Run(ctx, args); err != nil {
		stop()
		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
	logger.Debug("Run finished", slog.String("run_id", runID))
}
