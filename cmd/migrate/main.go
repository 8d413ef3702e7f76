// Command migrate manages the PostgreSQL schema used by the postgres
// storage engine.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/osse101/Minefut_Go/internal/bootstrap"
	"github.com/osse101/Minefut_Go/internal/config"
	"github.com/osse101/Minefut_Go/internal/database"
)

const usage = "usage: migrate up|down|status"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	if err := run(context.Background(), os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, subcmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	logFile, err := bootstrap.SetupLogger(cfg, "migrate")
	if err != nil {
		return err
	}
	defer logFile.Close()

	pool, err := bootstrap.ConnectPostgres(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch subcmd {
	case "up":
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
	case "down":
		if err := database.Rollback(ctx, pool); err != nil {
			return err
		}
	case "status":
	default:
		return fmt.Errorf("unknown subcommand %q, %s", subcmd, usage)
	}

	version, err := database.MigrationStatus(ctx, pool)
	if err != nil {
		return err
	}
	fmt.Printf("schema version %d\n", version)
	return nil
}
