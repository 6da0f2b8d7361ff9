package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/judix-app/judix-cli/internal/session"
	"github.com/spf13/cobra"

	_ "modernc.org/sqlite"
)

// logoutCmd wipes the persisted session without entering the shell. Handy
// when a token should be discarded from a script or a shared machine.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token and cached profile",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := session.OpenDatabase(ctx, cfg.StatePath)
	if err != nil {
		return err
	}
	defer db.Close()

	sess := session.New(session.NewSQLiteStore(db))
	if err := sess.Clear(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
