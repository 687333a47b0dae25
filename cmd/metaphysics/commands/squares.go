package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func squaresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "squares <region>...",
		Short: "Print the global squares of catalog regions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(args))
			out := make(map[string][]int, len(args))
			for _, name := range args {
				r, err := catalog.Lookup(name)
				if err != nil {
					return err
				}
				names = append(names, r.Name)
				out[r.Name] = r.Squares
			}
			w := cmd.OutOrStdout()
			if done, err := emit(w, out); done {
				return err
			}
			for _, name := range names {
				fmt.Fprintf(w, "%s: %v\n", name, out[name])
			}

			return nil
		},
	}
}
