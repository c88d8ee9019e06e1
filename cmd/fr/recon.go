package main

import (
	"os"
	"time"

	"github.com/Karmanya03/Ferret/internal/recon"
	"github.com/Karmanya03/Ferret/internal/walker"
	"github.com/spf13/cobra"
)

// reconFlags are the options shared by every fixed-purpose scan.
type reconFlags struct {
	quiet  bool
	output string
}

func (f *reconFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Quiet mode - only show file paths")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output results to file (.json or text)")
}

// runScan wires one scan through the shared traversal engine.
func runScan(scan *recon.Scan, root string, flags *reconFlags) error {
	w := walker.New(logger, cfg.Exclude)
	runner := recon.NewRunner(w, logger, os.Stdout, cfg.ColorEnabled())
	return runner.Run(scan, root, recon.Options{
		Quiet:      flags.quiet,
		Verbose:    verbose,
		OutputFile: flags.output,
	})
}

func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "/"
}

func suidCmd() *cobra.Command {
	flags := &reconFlags{}
	cmd := &cobra.Command{
		Use:   "suid [path]",
		Short: "Find SUID binaries (setuid - run as owner)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(recon.SUID(), rootArg(args), flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func sgidCmd() *cobra.Command {
	flags := &reconFlags{}
	cmd := &cobra.Command{
		Use:   "sgid [path]",
		Short: "Find SGID binaries (setgid - run as group)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(recon.SGID(), rootArg(args), flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func writableCmd() *cobra.Command {
	flags := &reconFlags{}
	var dirsOnly, filesOnly bool
	cmd := &cobra.Command{
		Use:   "writable [path]",
		Short: "Find world-writable files and directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(recon.Writable(dirsOnly, filesOnly), rootArg(args), flags)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&dirsOnly, "dirs-only", "d", false, "Only show directories")
	cmd.Flags().BoolVarP(&filesOnly, "files-only", "f", false, "Only show files")
	return cmd
}

func capsCmd() *cobra.Command {
	flags := &reconFlags{}
	cmd := &cobra.Command{
		Use:   "caps [path]",
		Short: "Find files with capabilities (Linux capabilities)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(recon.Caps(), rootArg(args), flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func configsCmd() *cobra.Command {
	flags := &reconFlags{}
	cmd := &cobra.Command{
		Use:   "configs [path]",
		Short: "Find interesting config files (credentials, keys, etc.)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns, err := recon.LoadConfigPatterns(cfg.ConfigPatterns)
			if err != nil {
				return err
			}
			scan, err := recon.Configs(patterns)
			if err != nil {
				return err
			}
			return runScan(scan, rootArg(args), flags)
		},
	}
	flags.register(cmd)
	return cmd
}

func recentCmd() *cobra.Command {
	flags := &reconFlags{}
	var minutes uint64
	cmd := &cobra.Command{
		Use:   "recent [path]",
		Short: "Find recently modified files (useful for detecting changes)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(recon.Recent(minutes, time.Now()), rootArg(args), flags)
		},
	}
	flags.register(cmd)
	cmd.Flags().Uint64VarP(&minutes, "minutes", "t", 60, "Time window in minutes")
	return cmd
}
