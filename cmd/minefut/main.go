// Command minefut drives the progression engine from the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/osse101/Minefut_Go/internal/bootstrap"
	"github.com/osse101/Minefut_Go/internal/config"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	registry := newRegistry()
	if len(args) == 0 {
		registry.PrintHelp()
		return 1
	}
	cmd, ok := registry.Get(args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		registry.PrintHelp()
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration: %v\n", err)
		return 1
	}
	logFile, err := bootstrap.SetupLogger(cfg, version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer logFile.Close()

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer bootstrap.GracefulShutdown(bootstrap.ShutdownComponents{Store: store, MetricsFile: cfg.MetricsFile})

	app, err := bootstrap.BuildApp(cfg, store, bootstrap.AppOptions{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := cmd.Run(ctx, app.Engine, args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
