package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/quillon/quillon/internal/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the Quillon engine in server mode, exposing the catalogue,
questionnaire and generation operations as a JSON API, plus sessions,
Swagger UI and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cmd)
		sessions, err := buildSessions(cmd, logger)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = envDefault("QUILLON_ADDR", ":8080")
		}

		srv := &http.Server{
			Addr:    addr,
			Handler: httpAdapter.NewHandler(engine, sessions, httpAdapter.WithLogger(logger)),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", addr, "templates", len(engine.ListDocuments()))
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutdown started", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("killing server: %w", err)
				}
			}
			logger.Info("server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (default $QUILLON_ADDR or :8080)")
	serveCmd.Flags().String("store", "memory", "Session backend: memory, file or redis")
	serveCmd.Flags().String("sessions-dir", "", "Directory for file-backed sessions")
	serveCmd.Flags().String("redis-addr", "", "Redis address for the redis backend")
}
