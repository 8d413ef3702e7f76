// Command reset deletes every progress document of the configured store.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/osse101/Minefut_Go/internal/bootstrap"
	"github.com/osse101/Minefut_Go/internal/config"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Progress reset complete")
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if err := config.ValidateEnv(); err != nil {
		return err
	}
	logFile, err := bootstrap.SetupLogger(cfg, "reset")
	if err != nil {
		return err
	}
	defer logFile.Close()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer bootstrap.GracefulShutdown(bootstrap.ShutdownComponents{Store: store})

	app, err := bootstrap.BuildApp(cfg, store, bootstrap.AppOptions{})
	if err != nil {
		return err
	}

	report, err := app.Engine.Reset(ctx)
	for _, r := range report {
		if r.Err != nil {
			fmt.Printf("  %-22s failed: %v\n", r.Key, r.Err)
			continue
		}
		fmt.Printf("  %-22s cleared\n", r.Key)
	}
	return err
}
