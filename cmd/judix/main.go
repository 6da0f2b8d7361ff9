package main

import (
	"fmt"
	"os"
	"time"

	"github.com/judix-app/judix-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile        string
	apiBaseURL     string
	statePath      string
	timeoutSeconds int
)

var rootCmd = &cobra.Command{
	Use:   "judix",
	Short: "Judix — case management for legal practices",
	Long:  "Judix is a terminal client for the Judix case-management API: log in, then create, view, edit, filter, and archive case records tied to client contact information.",
	// bare `judix` starts the interactive shell
	RunE: runShell,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (JSON)")
	rootCmd.PersistentFlags().StringVarP(&apiBaseURL, "api-url", "a", "", "base URL of the backend API")
	rootCmd.PersistentFlags().StringVarP(&statePath, "state", "s", "", "path of the local state file")
	rootCmd.PersistentFlags().IntVarP(&timeoutSeconds, "timeout", "t", 0, "request timeout in seconds")
}

// loadConfig layers defaults, the JSON config file, environment variables,
// and finally any command-line flags the user set.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if apiBaseURL != "" {
		cfg.APIBaseURL = apiBaseURL
	}
	if statePath != "" {
		cfg.StatePath = statePath
	}
	if timeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(timeoutSeconds) * time.Second
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
