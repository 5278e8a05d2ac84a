package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillon/quillon"
	"github.com/quillon/quillon/internal/logging"
	"github.com/quillon/quillon/internal/templates"
	fileStore "github.com/quillon/quillon/pkg/adapters/file"
	memoryStore "github.com/quillon/quillon/pkg/adapters/memory"
	redisStore "github.com/quillon/quillon/pkg/adapters/redis"
	"github.com/quillon/quillon/pkg/ports"
	"github.com/quillon/quillon/pkg/session"
)

var rootCmd = &cobra.Command{
	Use:   "quillon",
	Short: "Quillon generates French legal documents from guided questionnaires",
	Long: `Quillon ships a catalogue of French legal document templates (bail,
procuration, NDA...) and fills them through step-by-step questionnaires,
in the terminal or over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("templates", envDefault("QUILLON_TEMPLATES_DIR", ""),
		"Directory of additional .md template files")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// buildEngine assembles an engine from the built-in catalogue plus any
// template directory given via --templates / QUILLON_TEMPLATES_DIR.
func buildEngine(cmd *cobra.Command) (*quillon.Engine, error) {
	opts := []quillon.Option{quillon.WithLogger(newLogger(cmd))}

	if dir, _ := cmd.Flags().GetString("templates"); dir != "" {
		extra, err := templates.LoadDir(dir)
		if err != nil {
			return nil, err
		}
		opts = append(opts, quillon.WithTemplates(extra...))
	}

	return quillon.New(opts...)
}

// buildSessions selects the session backend: memory (default), file, or
// redis with distributed locking.
func buildSessions(cmd *cobra.Command, logger *slog.Logger) (*session.Manager, error) {
	backend, _ := cmd.Flags().GetString("store")

	switch backend {
	case "", "memory":
		return session.NewManager(memoryStore.NewStore(), session.WithLogger(logger)), nil

	case "file":
		dir, _ := cmd.Flags().GetString("sessions-dir")
		return session.NewManager(fileStore.New(dir), session.WithLogger(logger)), nil

	case "redis":
		addr, _ := cmd.Flags().GetString("redis-addr")
		if addr == "" {
			addr = envDefault("QUILLON_REDIS_ADDR", "localhost:6379")
		}
		store := redisStore.New(addr, os.Getenv("QUILLON_REDIS_PASSWORD"), 0)
		var locker ports.DistributedLocker = redisStore.NewLocker(store.Client(), "quillon:session:")
		return session.NewManager(store,
			session.WithLogger(logger),
			session.WithLocker(locker),
		), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q (expected memory, file or redis)", backend)
	}
}
