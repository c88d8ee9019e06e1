package main

import (
	"fmt"
	"os"

	"github.com/Karmanya03/Ferret/internal/organize"
	"github.com/Karmanya03/Ferret/internal/walker"
	"github.com/spf13/cobra"
)

// organizeCmd creates the organize command.
func organizeCmd() *cobra.Command {
	var (
		method    string
		output    string
		dryRun    bool
		copyFiles bool
		recursive bool
		hidden    bool
	)

	cmd := &cobra.Command{
		Use:   "organize [path]",
		Short: "Organize files by type, date, or custom rules",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			m, err := organize.ParseMethod(method)
			if err != nil {
				return err
			}

			rules, err := organize.LoadRules(cfg.OrganizeRules)
			if err != nil {
				return err
			}

			w := walker.New(logger, cfg.Exclude)
			org := organize.New(w, rules, logger, os.Stdout)

			summary, err := org.Run(root, organize.Options{
				Method:    m,
				Output:    output,
				DryRun:    dryRun,
				Copy:      copyFiles,
				Recursive: recursive,
				Hidden:    hidden,
				Verbose:   verbose,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\nMoved: %d  Copied: %d  Skipped: %d  Failed: %d\n",
				summary.Moved, summary.Copied, summary.Skipped, summary.Failed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", "type", "Organization method (type, date, size, extension)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory for organized files")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would be done without moving files")
	cmd.Flags().BoolVarP(&copyFiles, "copy", "c", false, "Copy files instead of moving")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Organize recursively")
	cmd.Flags().BoolVarP(&hidden, "hidden", "H", false, "Include hidden files")

	return cmd
}
