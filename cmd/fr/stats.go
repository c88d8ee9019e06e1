package main

import (
	"os"

	"github.com/Karmanya03/Ferret/internal/stats"
	"github.com/Karmanya03/Ferret/internal/walker"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// statsCmd creates the stats command.
func statsCmd() *cobra.Command {
	var (
		recursive bool
		hidden    bool
	)

	cmd := &cobra.Command{
		Use:   "stats [path]",
		Short: "Get statistics about files in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			w := walker.New(logger, cfg.Exclude)
			summary, err := stats.Collect(w, root, recursive, hidden)
			if err != nil {
				return err
			}

			width := 80
			if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 {
				width = tw
			}

			stats.Render(os.Stdout, summary, cfg.ColorEnabled(), width)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Analyze recursively")
	cmd.Flags().BoolVarP(&hidden, "hidden", "H", false, "Include hidden files")

	return cmd
}
