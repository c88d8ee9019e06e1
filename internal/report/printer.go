package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Karmanya03/Ferret/pkg/models"
	"github.com/fatih/color"
)

// Mode selects how matches are rendered, one line or record per match.
type Mode string

const (
	ModeDefault  Mode = "default"
	ModeQuiet    Mode = "quiet"
	ModeVerbose  Mode = "verbose"
	ModeJSON     Mode = "json"
	ModeDetailed Mode = "detailed"
)

// ParseMode validates an output mode flag before any traversal starts.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDefault, ModeQuiet, ModeVerbose, ModeJSON, ModeDetailed:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid output mode %q: must be default, quiet, verbose, json or detailed", s)
}

// palette holds the per-kind colors used by the console printer.
// Colors are enabled explicitly so tests and piped output stay plain.
type palette struct {
	dir     *color.Color
	symlink *color.Color
	file    *color.Color
	meta    *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		dir:     color.New(color.FgCyan, color.Bold),
		symlink: color.New(color.FgMagenta),
		file:    color.New(color.Reset),
		meta:    color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.dir, p.symlink, p.file, p.meta} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) forKind(kind models.EntryKind) *color.Color {
	switch kind {
	case models.KindDir:
		return p.dir
	case models.KindSymlink:
		return p.symlink
	}
	return p.file
}

// Printer renders matched entries to a writer. Quiet mode suppresses
// all decoration; JSON mode emits one self-describing record per line.
type Printer struct {
	w       io.Writer
	mode    Mode
	palette *palette
	count   int
}

// NewPrinter creates a printer for the given mode. The writer is
// injected so tests can capture output.
func NewPrinter(w io.Writer, mode Mode, colorEnabled bool) *Printer {
	if mode == ModeQuiet {
		colorEnabled = false
	}
	return &Printer{w: w, mode: mode, palette: newPalette(colorEnabled)}
}

// jsonRecord is the structured per-match record.
type jsonRecord struct {
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Kind     string `json:"kind"`
	Modified string `json:"modified"`
}

// Print renders exactly one line or record for a match.
func (p *Printer) Print(e *models.Entry) error {
	p.count++

	switch p.mode {
	case ModeQuiet:
		_, err := fmt.Fprintln(p.w, e.Path)
		return err

	case ModeVerbose:
		_, err := fmt.Fprintf(p.w, "%s  %s%s\n",
			p.palette.forKind(e.Kind).Sprint(e.Path),
			p.palette.meta.Sprintf("%-8s %10s  ", e.Kind, FormatSize(e.Size)),
			p.palette.meta.Sprint(e.ModTime.Format("2006-01-02 15:04:05")))
		return err

	case ModeJSON:
		rec := jsonRecord{
			Path:     e.Path,
			Size:     e.Size,
			Kind:     string(e.Kind),
			Modified: e.ModTime.Format("2006-01-02T15:04:05Z07:00"),
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.w, string(data))
		return err

	case ModeDetailed:
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("[%d] %s\n", p.count, p.palette.forKind(e.Kind).Sprint(e.Path)))
		sb.WriteString(fmt.Sprintf("    Type:     %s\n", e.Kind))
		sb.WriteString(fmt.Sprintf("    Size:     %s (%d bytes)\n", FormatSize(e.Size), e.Size))
		sb.WriteString(fmt.Sprintf("    Modified: %s\n", e.ModTime.Format("2006-01-02 15:04:05")))
		_, err := fmt.Fprint(p.w, sb.String())
		return err
	}

	_, err := fmt.Fprintln(p.w, p.palette.forKind(e.Kind).Sprint(e.Path))
	return err
}

// Count reports how many matches were printed.
func (p *Printer) Count() int {
	return p.count
}
