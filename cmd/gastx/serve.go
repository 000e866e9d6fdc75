package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/gastx/internal/api"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the classification API over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	cmd.Flags().String("addr", "", "listen address (overrides server.address)")
	_ = viper.BindPFlag("server.address", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	engine, err := newEngine(appConfig)
	if err != nil {
		return err
	}

	server := api.NewServer(engine, appConfig.Server, version)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	case <-cmd.Context().Done():
		slog.Info("Received interrupt signal, shutting down gracefully...")
	}

	if err := server.Shutdown(context.WithoutCancel(cmd.Context())); err != nil {
		return err
	}
	return <-errCh
}
