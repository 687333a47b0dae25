package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/metaphysics/report"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the layout, every region and the set requirements of each group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := report.Build(cmd.Context(), catalog, workers())
			if err != nil {
				return err
			}
			logger.Debug("report built",
				zap.Int("regions", len(s.Regions)),
				zap.Int("groups", len(s.Groups)))

			w := cmd.OutOrStdout()
			if done, err := emit(w, s); done {
				return err
			}
			renderSummary(w, s)

			return nil
		},
	}
}
