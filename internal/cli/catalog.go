package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/feastgame/internal/api/response"
	"github.com/mcoot/feastgame/internal/model"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Fixed game data",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "tiles",
		Short: "List every tile shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []model.Shape
			if err := client.Get("/api/v1/catalog/tiles", &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "actions",
		Short: "List every action space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []model.Action
			if err := client.Get("/api/v1/catalog/actions", &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "islands",
		Short: "List the explorable islands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.Island
			if err := client.Get("/api/v1/catalog/islands", &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	return cmd
}
