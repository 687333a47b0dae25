package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/metaphysics/train"
)

func trainCmd() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "train",
		Short: "List squares with their domino, term and face value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			total := catalog.Layout().TotalSquares()
			if to < 0 || to > total {
				to = total
			}
			entries, err := train.Entries(from, to)
			if err != nil {
				return err
			}
			logger.Debug("train listing", zap.Int("from", from), zap.Int("to", to))

			out := struct {
				Entries         []train.Entry         `json:"entries" yaml:"entries"`
				FaceValueCounts [train.FaceValues]int `json:"face_value_counts" yaml:"face_value_counts"`
			}{entries, catalog.Layout().Train().FaceValueCounts()}
			w := cmd.OutOrStdout()
			if done, err := emit(w, out); done {
				return err
			}
			renderEntries(w, entries)
			title(w, "Face values along the train")
			renderValueCounts(w, "squares", out.FaceValueCounts)

			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "first square")
	cmd.Flags().IntVar(&to, "to", -1, "end square, exclusive (default: whole train)")

	return cmd
}
