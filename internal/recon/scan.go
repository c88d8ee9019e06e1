package recon

import (
	"fmt"
	"io"

	"github.com/Karmanya03/Ferret/internal/report"
	"github.com/Karmanya03/Ferret/internal/walker"
	"github.com/Karmanya03/Ferret/pkg/models"
	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Scan is one fixed-purpose finder: a name, a description for the CLI,
// and a hardcoded predicate over filesystem entries.
type Scan struct {
	Name     string
	Describe string
	Match    func(*models.Entry) bool
}

// Options configures one scan run.
type Options struct {
	Quiet      bool   // paths only, no decoration
	Verbose    bool   // permissions, size and mtime per match
	OutputFile string // optional report path (.json or text)
}

// Runner executes scans over the shared traversal engine.
type Runner struct {
	walker *walker.Walker
	logger *zap.Logger
	out    io.Writer
	path   *color.Color
	meta   *color.Color
}

// NewRunner creates a scan runner writing matches to out.
func NewRunner(w *walker.Walker, logger *zap.Logger, out io.Writer, colorEnabled bool) *Runner {
	r := &Runner{
		walker: w,
		logger: logger,
		out:    out,
		path:   color.New(color.FgCyan),
		meta:   color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{r.path, r.meta} {
		if colorEnabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Run walks root, printing every entry the scan's predicate accepts
// and optionally writing a file report. Scans look at everything,
// including hidden entries; unreadable subtrees are skipped as usual.
func (r *Runner) Run(scan *Scan, root string, opts Options) error {
	var fileReport *report.FileReport
	if opts.OutputFile != "" {
		fileReport = report.NewFileReport(scan.Name, root)
	}

	if !opts.Quiet {
		fmt.Fprintf(r.out, "\n%s: scanning %s\n\n", scan.Describe, root)
	}

	matches := 0
	err := r.walker.Walk(root, walker.Options{
		MaxDepth:      -1,
		IncludeHidden: true,
	}, func(e *models.Entry) error {
		if !scan.Match(e) {
			return nil
		}
		matches++
		r.print(e, opts)
		if fileReport != nil {
			fileReport.Add(e)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if !opts.Quiet {
		fmt.Fprintf(r.out, "\n%d match(es)\n", matches)
	}

	if fileReport != nil {
		if err := fileReport.Write(opts.OutputFile); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if !opts.Quiet {
			fmt.Fprintf(r.out, "Report written to %s\n", opts.OutputFile)
		}
	}
	return nil
}

func (r *Runner) print(e *models.Entry, opts Options) {
	if opts.Quiet {
		fmt.Fprintln(r.out, e.Path)
		return
	}
	if opts.Verbose {
		fmt.Fprintf(r.out, "%s  %s\n",
			r.meta.Sprintf("%s %10s  %s",
				report.FormatPermissions(e.Mode),
				report.FormatSize(e.Size),
				e.ModTime.Format("2006-01-02 15:04")),
			r.path.Sprint(e.Path))
		return
	}
	fmt.Fprintln(r.out, r.path.Sprint(e.Path))
}
