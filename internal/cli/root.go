package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

var errNoSession = errors.New("no session: run 'feast session new' or pass --session")

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "feast",
		Short: "CLI tool for the feast tile-placement game API",
		Long: `feast is a CLI tool for playing the single-player feast game over its JSON API.

It supports every API operation: sessions, actions and hunts, board placement,
the feast phase, scoring, and real-time SSE event streaming.

The id of the last created session is remembered in a file so that later
commands can omit --session.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load session from file if not provided via flag
			if err := cfg.LoadSession(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: FEAST_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Session, "session", cfg.Session, "Session id (default: last created)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Session file path (env: FEAST_SESSION_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newActionCmd())
	rootCmd.AddCommand(newRiskCmd())
	rootCmd.AddCommand(newBoardCmd())
	rootCmd.AddCommand(newTileCmd())
	rootCmd.AddCommand(newFeastCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newEventsCmd())

	return rootCmd
}

// sessionPath returns the API path of the current session plus suffix
func sessionPath(suffix string) (string, error) {
	if cfg.Session == "" {
		return "", errNoSession
	}
	return "/api/v1/sessions/" + cfg.Session + suffix, nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
