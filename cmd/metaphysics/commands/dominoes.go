package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/metaphysics/report"
)

func dominoesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dominoes <region>...",
		Short: "Print the full and half dominoes of catalog regions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			regions := make([]report.Region, 0, len(args))
			for _, name := range args {
				r, err := report.ForRegion(catalog, name)
				if err != nil {
					return err
				}
				logger.Debug("region extracted",
					zap.String("region", r.Name),
					zap.Int("full", len(r.Dominoes.Full)),
					zap.Int("half", len(r.Dominoes.Half)))
				regions = append(regions, r)
			}
			w := cmd.OutOrStdout()
			if done, err := emit(w, regions); done {
				return err
			}
			for _, r := range regions {
				renderRegion(w, r)
			}

			return nil
		},
	}
}
