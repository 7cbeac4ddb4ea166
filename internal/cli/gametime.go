package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/nhlstats/internal/api/response"
	"github.com/mcoot/nhlstats/internal/model"
)

// newGametimeCmd converts a period clock reading locally, no server needed
func newGametimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gametime <period> <MM:SS|seconds>",
		Short: "Convert a period clock reading into game time",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid period %q", args[0])
			}

			var g *model.Gametime
			if strings.Contains(args[1], ":") {
				g, err = model.ParseGametime(period, args[1])
			} else {
				seconds, convErr := strconv.Atoi(args[1])
				if convErr != nil {
					return fmt.Errorf("invalid clock %q: want MM:SS or seconds", args[1])
				}
				g, err = model.NewGametime(period, seconds)
			}
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(response.GametimeFromModel(g))
			return nil
		},
	}
}
