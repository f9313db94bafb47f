package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/feastgame/internal/api/response"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session commands",
	}

	cmd.AddCommand(newSessionNewCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

func newSessionNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new game and make it the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Session

			if err := client.Post("/api/v1/sessions", nil, &result); err != nil {
				return err
			}

			if err := cfg.SaveSession(result.ID); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("")
			if err != nil {
				return err
			}

			var result response.Session
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List session ids on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.SessionList
			if err := client.Get("/api/v1/sessions", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("")
			if err != nil {
				return err
			}

			if err := client.Delete(path, nil); err != nil {
				return err
			}
			if err := cfg.ClearSession(); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Session deleted")
			return nil
		},
	}
}
