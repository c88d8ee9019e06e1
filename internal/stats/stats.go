package stats

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Karmanya03/Ferret/internal/report"
	"github.com/Karmanya03/Ferret/internal/walker"
	"github.com/Karmanya03/Ferret/pkg/models"
	"github.com/fatih/color"
)

// bucket boundaries for the size distribution, in display order.
var buckets = []struct {
	label string
	max   int64 // inclusive upper bound; -1 means unbounded
}{
	{"0-1KB", 1024},
	{"1KB-100KB", 100 * 1024},
	{"100KB-1MB", 1024 * 1024},
	{"1MB-10MB", 10 * 1024 * 1024},
	{"10MB-100MB", 100 * 1024 * 1024},
	{"100MB+", -1},
}

// ExtStat aggregates one extension.
type ExtStat struct {
	Ext   string
	Count int64
	Size  int64
}

// FileSize is one candidate for the largest-files table.
type FileSize struct {
	Path string
	Size int64
}

// Summary is the aggregate over one directory tree.
type Summary struct {
	Root         string
	TotalFiles   int64
	TotalDirs    int64
	TotalSize    int64
	Distribution map[string]int64
	Extensions   []ExtStat  // sorted by count desc
	Largest      []FileSize // sorted by size desc, top 10
}

// Collect walks the tree once and aggregates counts, sizes, extension
// statistics and the largest files.
func Collect(w *walker.Walker, root string, recursive, hidden bool) (*Summary, error) {
	maxDepth := 1
	if recursive {
		maxDepth = -1
	}

	s := &Summary{Root: root, Distribution: make(map[string]int64)}
	byExt := make(map[string]*ExtStat)
	var files []FileSize

	err := w.Walk(root, walker.Options{
		MaxDepth:      maxDepth,
		IncludeHidden: hidden,
	}, func(e *models.Entry) error {
		switch e.Kind {
		case models.KindDir:
			s.TotalDirs++
		case models.KindFile:
			s.TotalFiles++
			s.TotalSize += e.Size
			s.Distribution[bucketFor(e.Size)]++

			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(e.Name), "."))
			if ext == "" {
				ext = "(no extension)"
			}
			stat, ok := byExt[ext]
			if !ok {
				stat = &ExtStat{Ext: ext}
				byExt[ext] = stat
			}
			stat.Count++
			stat.Size += e.Size

			files = append(files, FileSize{Path: e.RelativePath, Size: e.Size})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, stat := range byExt {
		s.Extensions = append(s.Extensions, *stat)
	}
	sort.Slice(s.Extensions, func(i, j int) bool {
		if s.Extensions[i].Count != s.Extensions[j].Count {
			return s.Extensions[i].Count > s.Extensions[j].Count
		}
		return s.Extensions[i].Ext < s.Extensions[j].Ext
	})

	sort.Slice(files, func(i, j int) bool { return files[i].Size > files[j].Size })
	if len(files) > 10 {
		files = files[:10]
	}
	s.Largest = files

	return s, nil
}

func bucketFor(size int64) string {
	for _, b := range buckets {
		if b.max < 0 || size <= b.max {
			return b.label
		}
	}
	return buckets[len(buckets)-1].label
}

// Render writes the summary as a human report. termWidth sizes the
// largest-files table; color is an explicit flag.
func Render(out io.Writer, s *Summary, colorEnabled bool, termWidth int) {
	header := color.New(color.FgGreen, color.Bold)
	value := color.New(color.FgCyan)
	size := color.New(color.FgYellow)
	dim := color.New(color.FgHiBlack)
	for _, c := range []*color.Color{header, value, size, dim} {
		if colorEnabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	fmt.Fprintf(out, "\nAnalyzing directory: %s\n\n", value.Sprint(s.Root))

	fmt.Fprintln(out, header.Sprint("General Statistics:"))
	fmt.Fprintf(out, "  Total Files:       %s\n", value.Sprintf("%d", s.TotalFiles))
	fmt.Fprintf(out, "  Total Directories: %s\n", value.Sprintf("%d", s.TotalDirs))
	fmt.Fprintf(out, "  Total Size:        %s\n\n", value.Sprint(report.FormatSize(s.TotalSize)))

	fmt.Fprintln(out, header.Sprint("Size Distribution:"))
	for _, b := range buckets {
		count := s.Distribution[b.label]
		fmt.Fprintf(out, "  %-12s %6d %s\n", b.label, count, bar(count, s.TotalFiles, 30, colorEnabled))
	}

	fmt.Fprintln(out, "\n"+header.Sprint("Top File Types:"))
	fmt.Fprintf(out, "  %-20s %10s %15s\n", "Extension", "Count", "Total Size")
	fmt.Fprintf(out, "  %s\n", dim.Sprint(strings.Repeat("─", 50)))
	top := s.Extensions
	if len(top) > 15 {
		top = top[:15]
	}
	for _, e := range top {
		label := e.Ext
		if label != "(no extension)" {
			label = "." + label
		}
		fmt.Fprintf(out, "  %-20s %10s %15s\n", label,
			value.Sprintf("%d", e.Count), size.Sprint(report.FormatSize(e.Size)))
	}

	fmt.Fprintln(out, "\n"+header.Sprint("Largest Files:"))
	pathWidth := termWidth - 20
	if pathWidth < 40 {
		pathWidth = 40
	}
	fmt.Fprintf(out, "  %-*s %15s\n", pathWidth, "File", "Size")
	fmt.Fprintf(out, "  %s\n", dim.Sprint(strings.Repeat("─", pathWidth+16)))
	for _, f := range s.Largest {
		fmt.Fprintf(out, "  %-*s %15s\n", pathWidth, f.Path, size.Sprint(report.FormatSize(f.Size)))
	}
	fmt.Fprintln(out)
}

func bar(value, max int64, width int, colorEnabled bool) string {
	if max == 0 {
		return ""
	}
	filled := int(float64(value) / float64(max) * float64(width))
	if filled > width {
		filled = width
	}
	full := strings.Repeat("█", filled)
	empty := strings.Repeat("░", width-filled)
	if !colorEnabled {
		return full + empty
	}
	fullColor := color.New(color.FgCyan)
	emptyColor := color.New(color.FgHiBlack)
	fullColor.EnableColor()
	emptyColor.EnableColor()
	return fullColor.Sprint(full) + emptyColor.Sprint(empty)
}
