package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/judix-app/judix-cli/internal/cli"
	"github.com/judix-app/judix-cli/internal/logging"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive Judix shell",
	RunE:  runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logging.NewDefault(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, cleanup, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	app.Run(ctx)
	return nil
}
