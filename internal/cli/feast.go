package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/feastgame/internal/api/request"
	"github.com/mcoot/feastgame/internal/api/response"
	"github.com/mcoot/feastgame/internal/model"
)

func newFeastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feast",
		Short: "Feast phase commands",
	}

	cmd.AddCommand(newFeastStartCmd())
	cmd.AddCommand(newFeastAddCmd())
	cmd.AddCommand(newFeastUndoCmd())
	cmd.AddCommand(newFeastHarvestCmd())
	cmd.AddCommand(newFeastFinishCmd())

	return cmd
}

func newFeastStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "End the work phase and lay the feast table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/feast")
			if err != nil {
				return err
			}

			var result response.Session
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newFeastAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <tile-id>",
		Short: "Serve a food tile at the end of the table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/feast/table")
			if err != nil {
				return err
			}

			var result response.FeastEntryResponse
			if err := client.Post(path, request.ServeRequest{TileID: args[0]}, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newFeastUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Take the last tile back off the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/feast/table")
			if err != nil {
				return err
			}

			var result response.FeastEntryResponse
			if err := client.Delete(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newFeastHarvestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "harvest <tile-id> <milk|meat>",
		Short: "Milk a cow or slaughter an animal for meat",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/feast/harvest")
			if err != nil {
				return err
			}

			req := request.HarvestRequest{TileID: args[0], Kind: args[1]}
			var result response.HarvestResponse
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newFeastFinishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "Eat, collect income and bonuses, and start the next round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/feast/finish")
			if err != nil {
				return err
			}

			var result response.FeastFinishedResponse
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show the score breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/score")
			if err != nil {
				return err
			}

			var result model.ScoreCard
			if err := client.Get(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
