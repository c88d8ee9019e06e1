package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Karmanya03/Ferret/pkg/models"
)

// FileReport collects the matches of one fixed-purpose scan for
// writing to disk. The format follows the output file extension:
// .json produces a machine-readable report, anything else plain text.
type FileReport struct {
	Scan      string          `json:"scan"`
	Root      string          `json:"root"`
	Generated time.Time       `json:"generated"`
	Count     int             `json:"count"`
	Entries   []*models.Entry `json:"entries"`
}

// NewFileReport creates an empty report for a named scan over root.
func NewFileReport(scan, root string) *FileReport {
	return &FileReport{Scan: scan, Root: root, Generated: time.Now()}
}

// Add appends one matched entry.
func (r *FileReport) Add(e *models.Entry) {
	r.Entries = append(r.Entries, e)
	r.Count = len(r.Entries)
}

// Write renders the report to outputFile.
func (r *FileReport) Write(outputFile string) error {
	if strings.EqualFold(filepath.Ext(outputFile), ".json") {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(outputFile, data, 0644)
	}
	return os.WriteFile(outputFile, []byte(r.renderText()), 0644)
}

func (r *FileReport) renderText() string {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", 79) + "\n")
	sb.WriteString(fmt.Sprintf("  FERRET %s REPORT\n", strings.ToUpper(r.Scan)))
	sb.WriteString(strings.Repeat("=", 79) + "\n\n")

	sb.WriteString(fmt.Sprintf("Root:       %s\n", r.Root))
	sb.WriteString(fmt.Sprintf("Generated:  %s\n", r.Generated.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Matches:    %d\n\n", r.Count))

	if r.Count == 0 {
		sb.WriteString("No matches found.\n")
	}
	for _, e := range r.Entries {
		sb.WriteString(fmt.Sprintf("%s %10s  %s  %s\n",
			e.Mode.String(),
			FormatSize(e.Size),
			e.ModTime.Format("2006-01-02 15:04"),
			e.Path))
	}

	sb.WriteString("\n" + strings.Repeat("=", 79) + "\n")
	return sb.String()
}
