package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Karmanya03/Ferret/internal/report"
	"github.com/Karmanya03/Ferret/internal/walker"
	"github.com/Karmanya03/Ferret/pkg/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// lsCmd creates the ls command.
func lsCmd() *cobra.Command {
	var (
		all          bool
		long         bool
		recursive    bool
		human        bool
		explainPerms bool
	)

	cmd := &cobra.Command{
		Use:   "ls [path]",
		Short: "List files in directory (like ls command)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			if _, err := os.Lstat(root); err != nil {
				return fmt.Errorf("path does not exist: %s", root)
			}

			maxDepth := 1
			if recursive {
				maxDepth = -1
			}

			lister := &dirLister{
				long:    long,
				human:   human,
				explain: explainPerms,
				dir:     color.New(color.FgCyan, color.Bold),
				link:    color.New(color.FgMagenta),
				exec:    color.New(color.FgGreen, color.Bold),
				plain:   color.New(color.Reset),
				meta:    color.New(color.FgHiBlack),
			}
			for _, c := range []*color.Color{lister.dir, lister.link, lister.exec, lister.plain, lister.meta} {
				if cfg.ColorEnabled() {
					c.EnableColor()
				} else {
					c.DisableColor()
				}
			}

			w := walker.New(logger, nil)
			return w.Walk(root, walker.Options{
				MaxDepth:      maxDepth,
				IncludeHidden: all,
			}, func(e *models.Entry) error {
				lister.print(e, recursive)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show all files including hidden (like ls -a)")
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Long format with details (like ls -l)")
	cmd.Flags().BoolVarP(&recursive, "recursive", "R", false, "List recursively (like ls -R)")
	cmd.Flags().BoolVarP(&human, "human", "H", false, "Human-readable file sizes (like ls -h)")
	cmd.Flags().BoolVarP(&explainPerms, "explain-perms", "e", false, "Explain permissions in detail")

	return cmd
}

type dirLister struct {
	long    bool
	human   bool
	explain bool

	dir   *color.Color
	link  *color.Color
	exec  *color.Color
	plain *color.Color
	meta  *color.Color
}

func (l *dirLister) print(e *models.Entry, recursive bool) {
	indent := ""
	if recursive && e.Depth > 1 {
		indent = strings.Repeat("  ", e.Depth-1)
	}

	name := l.colorName(e)
	if !l.long {
		fmt.Printf("%s%s\n", indent, name)
		return
	}

	perms := report.FormatPermissions(e.Mode)
	if l.explain {
		perms += " " + l.meta.Sprint(report.ExplainPermissions(e.Mode))
	}

	size := strconv.FormatInt(e.Size, 10)
	if l.human {
		size = report.FormatSize(e.Size)
	}

	fmt.Printf("%s%s %10s %s %s\n",
		indent,
		perms,
		size,
		l.meta.Sprint(e.ModTime.Format("Jan 02 15:04")),
		name)
}

func (l *dirLister) colorName(e *models.Entry) string {
	switch e.Kind {
	case models.KindDir:
		return l.dir.Sprint(e.Name) + "/"
	case models.KindSymlink:
		return l.link.Sprint(e.Name)
	}
	if e.Mode.Perm()&0o111 != 0 {
		return l.exec.Sprint(e.Name)
	}
	return l.plain.Sprint(e.Name)
}
