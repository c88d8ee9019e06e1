package main

import (
	"os"
	"time"

	"github.com/Karmanya03/Ferret/internal/action"
	"github.com/Karmanya03/Ferret/internal/filter"
	"github.com/Karmanya03/Ferret/internal/report"
	"github.com/Karmanya03/Ferret/internal/walker"
	"github.com/Karmanya03/Ferret/pkg/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// findCmd creates the find command: the filter-and-traversal engine
// behind everything else.
func findCmd() *cobra.Command {
	var (
		path         string
		ignoreCase   bool
		useRegex     bool
		fileType     string
		minSize      string
		maxSize      string
		modifiedDays uint64
		recursive    bool
		maxDepth     int
		hidden       bool
		output       string
		execCommand  string
		quiet        bool
		followLinks  bool
	)

	cmd := &cobra.Command{
		Use:   "find <pattern>",
		Short: "Find files with advanced filters and pattern matching",
		Long: `Search a directory tree for entries matching a glob or regex pattern,
filtered by type, size, modification age, visibility and depth.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Everything that can fail is compiled before the first
			// filesystem read, so bad input aborts with a clear error.
			spec := filter.NewSpec(args[0])
			spec.CaseInsensitive = ignoreCase
			spec.TypeFilter = fileType
			spec.IncludeHidden = hidden
			spec.Recursive = recursive
			spec.FollowSymlinks = followLinks
			if useRegex {
				spec.Kind = filter.PatternRegex
			}
			if cmd.Flags().Changed("max-depth") {
				spec.MaxDepth = maxDepth
			}
			if cmd.Flags().Changed("modified-days") {
				spec.ModifiedDays = modifiedDays
				spec.MaxAgeSet = true
			}
			if err := spec.Validate(); err != nil {
				return err
			}

			if minSize != "" {
				n, err := filter.ParseSize(minSize)
				if err != nil {
					return err
				}
				spec.MinSize = n
			}
			if maxSize != "" {
				n, err := filter.ParseSize(maxSize)
				if err != nil {
					return err
				}
				spec.MaxSize = n
			}

			matcher, err := filter.Compile(spec.Pattern, spec.Kind, spec.CaseInsensitive)
			if err != nil {
				return err
			}

			mode, err := report.ParseMode(output)
			if err != nil {
				return err
			}
			if quiet {
				mode = report.ModeQuiet
			} else if verbose && mode == report.ModeDefault {
				mode = report.ModeVerbose
			}

			var runner *action.Runner
			if execCommand != "" {
				runner, err = action.NewRunner(execCommand, logger)
				if err != nil {
					return err
				}
			}

			printer := report.NewPrinter(os.Stdout, mode, cfg.ColorEnabled())
			w := walker.New(logger, cfg.Exclude)
			now := time.Now()

			failed := 0
			err = w.Walk(path, walker.Options{
				MaxDepth:       spec.EffectiveMaxDepth(),
				IncludeHidden:  spec.IncludeHidden,
				FollowSymlinks: spec.FollowSymlinks,
			}, func(e *models.Entry) error {
				if !filter.Evaluate(e, &spec, matcher, now) {
					return nil
				}
				if runner != nil {
					if outcome := runner.Run(e.Path); outcome.Failed() {
						failed++
					}
					return nil
				}
				return printer.Print(e)
			})
			if err != nil {
				return err
			}

			if failed > 0 {
				logger.Warn("Some exec actions failed", zap.Int("failed", failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", ".", "Directory to search in")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Case-insensitive search")
	cmd.Flags().BoolVarP(&useRegex, "regex", "r", false, "Use regex pattern matching")
	cmd.Flags().StringVarP(&fileType, "type", "t", "", "File type filter (file, dir, symlink)")
	cmd.Flags().StringVar(&minSize, "min-size", "", "Minimum file size (e.g. 1M, 500K, 2G)")
	cmd.Flags().StringVar(&maxSize, "max-size", "", "Maximum file size (e.g. 1M, 500K, 2G)")
	cmd.Flags().Uint64VarP(&modifiedDays, "modified-days", "m", 0, "Modified within last N days")
	cmd.Flags().BoolVarP(&recursive, "recursive", "R", true, "Search recursively")
	cmd.Flags().IntVarP(&maxDepth, "max-depth", "d", 0, "Maximum depth for recursive search")
	cmd.Flags().BoolVarP(&hidden, "hidden", "H", false, "Show hidden files")
	cmd.Flags().StringVarP(&output, "output", "o", "default", "Output format (default, quiet, verbose, json, detailed)")
	cmd.Flags().StringVarP(&execCommand, "exec", "x", "", "Execute command on found files ({} is replaced by the path)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - only show file paths")
	cmd.Flags().BoolVarP(&followLinks, "follow-links", "l", false, "Follow symbolic links")

	return cmd
}
