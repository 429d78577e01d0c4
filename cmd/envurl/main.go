package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/platinummonkey/envurl/pkg/cli"
	"github.com/platinummonkey/envurl/pkg/config"
	"github.com/platinummonkey/envurl/pkg/env"
)

func main() {
	cfg, err := config.LoadConfig(env.OS(), "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg, env.OS(), cfg.NewLogger(os.Stderr), os.Stdout)
	app.Context = ctx

	// Execute command
	if err := cli.NewRootCommand(app).Execute(os.Args[1:]); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
