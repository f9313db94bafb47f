package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/feastgame/internal/api/request"
	"github.com/mcoot/feastgame/internal/api/response"
)

func newActionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "action",
		Short: "Work phase actions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "take <action-id>",
		Short: "Send vikings to an action space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/actions")
			if err != nil {
				return err
			}

			var result response.ActionResponse
			if err := client.Post(path, request.TakeActionRequest{ActionID: args[0]}, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	return cmd
}

func newRiskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Hunts and raids",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "roll",
		Short: "Roll the die for the pending hunt or raid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/risk/roll")
			if err != nil {
				return err
			}

			var result response.RiskRolledResponse
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	var weapon, modifier int
	resolve := &cobra.Command{
		Use:   "resolve",
		Short: "Spend weapons and modifiers against the roll",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/risk/resolve")
			if err != nil {
				return err
			}

			req := request.ResolveRiskRequest{WeaponUsed: weapon, ModifierUsed: modifier}
			var result response.RiskResolvedResponse
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
	resolve.Flags().IntVar(&weapon, "weapon", 0, "Weapons to spend")
	resolve.Flags().IntVar(&modifier, "modifier", 0, "Modifier resources to spend (wood for hunts, stone for raids)")
	cmd.AddCommand(resolve)

	cmd.AddCommand(&cobra.Command{
		Use:   "cancel",
		Short: "Abandon the pending hunt or raid before rolling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/risk")
			if err != nil {
				return err
			}

			var result response.Session
			if err := client.Delete(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Risk cancelled")
			return nil
		},
	})

	return cmd
}

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Home board and islands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "select <surface>",
		Short: "Choose the board new tiles go on (home or an explored island)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/surface")
			if err != nil {
				return err
			}

			var result response.Session
			if err := client.Post(path, request.SelectSurfaceRequest{Surface: args[0]}, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Active board: " + result.ActiveSurface)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show [surface]",
		Short: "Draw a board (default: every board)",
		Args:  cobra.MaximumNArgs(1),
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
			for _, surface := range result.Surfaces {
				if len(args) == 0 || surface.ID == args[0] {
					out.Print(surface)
				}
			}
			return nil
		},
	})

	return cmd
}

func newTileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tile",
		Short: "Place tiles from the inventory",
	}

	var surface string
	var rotation int

	parse := func(args []string) (request.PlacementRequest, error) {
		x, err := strconv.Atoi(args[1])
		if err != nil {
			return request.PlacementRequest{}, fmt.Errorf("invalid x: %w", err)
		}
		y, err := strconv.Atoi(args[2])
		if err != nil {
			return request.PlacementRequest{}, fmt.Errorf("invalid y: %w", err)
		}
		return request.PlacementRequest{
			TileID:   args[0],
			Surface:  surface,
			Rotation: rotation,
			X:        x,
			Y:        y,
		}, nil
	}

	check := &cobra.Command{
		Use:   "check <tile-id> <x> <y>",
		Short: "Check whether a tile fits without placing it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/placements/check")
			if err != nil {
				return err
			}
			req, err := parse(args)
			if err != nil {
				return err
			}

			var result response.PlacementCheckResponse
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	place := &cobra.Command{
		Use:   "place <tile-id> <x> <y>",
		Short: "Place a tile with its top-left corner at (x, y)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/placements")
			if err != nil {
				return err
			}
			req, err := parse(args)
			if err != nil {
				return err
			}

			var result response.PlacementResponse
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	for _, c := range []*cobra.Command{check, place} {
		c.Flags().StringVar(&surface, "surface", "", "Board to place on (default: active board)")
		c.Flags().IntVarP(&rotation, "rotation", "r", 0, "Clockwise rotation: 0, 90, 180 or 270")
		cmd.AddCommand(c)
	}

	var strategy string
	suggest := &cobra.Command{
		Use:   "suggest <tile-id>",
		Short: "Ask the server where a tile could go",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/placements/suggest")
			if err != nil {
				return err
			}

			req := request.SuggestRequest{TileID: args[0], Surface: surface, Strategy: strategy}
			var result response.Suggestion
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
	suggest.Flags().StringVar(&surface, "surface", "", "Board to search (default: active board)")
	suggest.Flags().StringVar(&strategy, "strategy", "", "greedy (most penalty removed) or random")
	cmd.AddCommand(suggest)

	return cmd
}
