package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/anchal00/gamesave/internal/config"
	"github.com/anchal00/gamesave/internal/logger"
	"github.com/anchal00/gamesave/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, err := newRootCommand()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() (*cobra.Command, error) {
	// A .env file is optional; the environment alone is enough.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	cmd := &cobra.Command{
		Use:           "gamesave",
		Short:         "Per-user game save storage over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}
	config.LoadFromFlags(cmd.Flags(), cfg)
	return cmd, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	log, err := logger.New("gamesave", cfg.LoggerConfig())
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		return err
	}
	gs, err := server.NewGameSaveServer(cfg, log)
	if err != nil {
		log.Error("Failed to set up server", err)
		return err
	}
	return gs.Run(ctx)
}
