package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/jinmai-creation/internal/catalog"
	"github.com/jonathan/jinmai-creation/internal/server"
)

func newServeCmd(global *globalOptions) *cobra.Command {
	var (
		port    int
		noDelay bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server exposing the health, model, brand and creation endpoints under /api.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadSettings(global)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if noDelay {
				cfg.NoDelay = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			cat, err := catalog.Default()
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}
			logger.Info("catalog loaded",
				zap.Int("brands", len(cat.Brands())),
				zap.Int("models", len(cat.Models())),
			)

			srv, err := server.New(server.Config{
				Port:    cfg.Port,
				Catalog: cat,
				Creator: newCreator(cat, cfg, nil),
				Logger:  logger,
			})
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (defaults to PORT or the config file)")
	cmd.Flags().BoolVar(&noDelay, "no-delay", false, "Skip the simulated processing delay")
	return cmd
}
