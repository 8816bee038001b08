// Package main - Entry point for the expense-split API server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"expense-split/internal/config"
	"expense-split/internal/logging"
	"expense-split/internal/server"
)

const version = "0.1.0"

func main() {
	cfgFile := flag.String("config", "", "Config file")
	addr := flag.String("addr", "", "Server address (overrides server.addr)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing logging:", err)
		os.Exit(1)
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, version, logging.With()); err != nil {
		logging.Error("server exited", zap.Error(err))
		stop()
		logging.Sync()
		os.Exit(1)
	}
}
