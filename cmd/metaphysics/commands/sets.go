package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/metaphysics/report"
)

func setsCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "sets",
		Short: "Print the minimum number of domino sets and a cut list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := report.ForGroup(cmd.Context(), catalog, report.Group(group), workers())
			if err != nil {
				return err
			}
			logger.Info("minimum sets",
				zap.String("group", string(g.Group)),
				zap.Int("sets", g.MinSets),
				zap.Int("cuts", len(g.Cuts)))

			w := cmd.OutOrStdout()
			if done, err := emit(w, g); done {
				return err
			}
			renderGroup(w, g)

			return nil
		},
	}
	cmd.Flags().StringVarP(&group, "group", "g", string(report.GroupAll), "region group: dots, white or all")

	return cmd
}
