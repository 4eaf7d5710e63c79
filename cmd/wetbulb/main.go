package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"wetbulb/internal/cli"
	"wetbulb/internal/config"
	"wetbulb/internal/logging"
)

// Default version is "dev" if not set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(os.Stderr, cfg, version, cli.AppName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewCommand(cli.Options{
		Version: version,
		Config:  cfg,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})
	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		slog.Error("run failed", "err", err)
		stop()
		os.Exit(cli.ExitCode(err))
	}
}
