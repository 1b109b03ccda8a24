// Command migrate manages the database schema with the embedded migrations.
//
// Usage: migrate [up|down|status|version]   (default: up)
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plantcare-backend/internal/app"
	"github.com/heartmarshall/plantcare-backend/internal/config"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one migrate command and returns the process exit code.
// Deferred cleanup runs before main exits.
func run(args []string, stdout, stderr io.Writer) int {
	command, ok := parseCommand(args)
	if !ok {
		fmt.Fprintln(stderr, "usage: migrate [up|down|status|version]")
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return exitError
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return exitError
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool)
	if err != nil {
		logger.Error("create migrator", slog.String("error", err.Error()))
		return exitError
	}
	defer m.Close() //nolint:errcheck

	if err := execute(ctx, m, command, stdout, logger); err != nil {
		logger.Error("migrate failed",
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		return exitError
	}
	return exitOK
}

// parseCommand returns the requested command, defaulting to up.
func parseCommand(args []string) (string, bool) {
	if len(args) == 0 {
		return "up", true
	}
	if len(args) > 1 {
		return "", false
	}
	switch args[0] {
	case "up", "down", "status", "version":
		return args[0], true
	default:
		return "", false
	}
}

func execute(ctx context.Context, m *postgres.Migrator, command string, out io.Writer, logger *slog.Logger) error {
	switch command {
	case "up":
		return m.Up(ctx, logger)
	case "down":
		return m.Down(ctx, logger)
	case "status":
		statuses, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Fprintf(out, "%-8d %-8s %s\n", s.Version, state, s.File)
		}
		return nil
	default:
		v, err := m.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v)
		return nil
	}
}
