package main

import (
	"os"

	"github.com/Karmanya03/Ferret/internal/action"
	"github.com/spf13/cobra"
)

// dnCmd creates the dn command: run a command with its output piped
// to /dev/null, propagating the exit code.
func dnCmd() *cobra.Command {
	var showErrors bool

	cmd := &cobra.Command{
		Use:   "dn <command> [args...]",
		Short: "Quick command shortcuts (pipe output to /dev/null easily)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := action.RunSilenced(args, showErrors)
			if err != nil {
				return err
			}
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showErrors, "show-errors", "e", false, "Show errors (stderr), hide stdout")
	cmd.Flags().SetInterspersed(false)

	return cmd
}
