package organize

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Karmanya03/Ferret/internal/walker"
	"github.com/Karmanya03/Ferret/pkg/models"
	"go.uber.org/zap"
)

// Method selects how files are grouped into destination folders.
type Method string

const (
	MethodType      Method = "type"      // extension category (Documents, Images, ...)
	MethodDate      Method = "date"      // modification month (2026-08)
	MethodSize      Method = "size"      // size bucket (tiny ... huge)
	MethodExtension Method = "extension" // one folder per extension
)

// ParseMethod validates the organize method flag.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodType, MethodDate, MethodSize, MethodExtension:
		return Method(s), nil
	}
	return "", fmt.Errorf("invalid organize method %q: must be type, date, size or extension", s)
}

// Options configures one organize run.
type Options struct {
	Method    Method
	Output    string // destination root; empty means organize in place
	DryRun    bool
	Copy      bool
	Recursive bool
	Hidden    bool
	Verbose   bool
}

// Summary reports what an organize run did (or would do, in dry-run).
type Summary struct {
	Moved   int
	Copied  int
	Skipped int
	Failed  int
}

// Organizer moves or copies files into category folders. It buffers
// the match list before acting so freshly placed files are never
// re-observed by the same run.
type Organizer struct {
	walker *walker.Walker
	rules  *Rules
	logger *zap.Logger
	out    io.Writer
}

// New creates an organizer writing progress to out.
func New(w *walker.Walker, rules *Rules, logger *zap.Logger, out io.Writer) *Organizer {
	return &Organizer{walker: w, rules: rules, logger: logger, out: out}
}

// Run organizes the files under root.
func (o *Organizer) Run(root string, opts Options) (*Summary, error) {
	destRoot := opts.Output
	if destRoot == "" {
		destRoot = root
	}

	maxDepth := 1
	if opts.Recursive {
		maxDepth = -1
	}

	var files []*models.Entry
	err := o.walker.Walk(root, walker.Options{
		MaxDepth:      maxDepth,
		IncludeHidden: opts.Hidden,
	}, func(e *models.Entry) error {
		if e.Kind == models.KindFile {
			files = append(files, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, e := range files {
		destDir := filepath.Join(destRoot, o.folderFor(e, opts.Method))
		if filepath.Dir(e.Path) == destDir {
			summary.Skipped++
			continue
		}

		dest := filepath.Join(destDir, e.Name)
		verb := "move"
		if opts.Copy {
			verb = "copy"
		}

		if opts.DryRun {
			fmt.Fprintf(o.out, "[dry-run] would %s %s -> %s\n", verb, e.Path, dest)
			summary.Skipped++
			continue
		}

		if err := os.MkdirAll(destDir, 0755); err != nil {
			o.logger.Warn("Cannot create destination", zap.String("dir", destDir), zap.Error(err))
			summary.Failed++
			continue
		}
		dest = uniqueDest(dest)

		var opErr error
		if opts.Copy {
			opErr = copyFile(e.Path, dest)
		} else {
			opErr = moveFile(e.Path, dest)
		}
		if opErr != nil {
			o.logger.Warn("Organize operation failed",
				zap.String("src", e.Path),
				zap.String("dest", dest),
				zap.Error(opErr))
			summary.Failed++
			continue
		}

		if opts.Verbose {
			fmt.Fprintf(o.out, "%sd %s -> %s\n", verb, e.Path, dest)
		}
		if opts.Copy {
			summary.Copied++
		} else {
			summary.Moved++
		}
	}

	return summary, nil
}

func (o *Organizer) folderFor(e *models.Entry, method Method) string {
	switch method {
	case MethodDate:
		return e.ModTime.Format("2006-01")
	case MethodSize:
		return sizeBucket(e.Size)
	case MethodExtension:
		ext := extensionOf(e.Name)
		if ext == "" {
			return "no_extension"
		}
		return ext
	default:
		return o.rules.CategoryFor(extensionOf(e.Name))
	}
}

func sizeBucket(size int64) string {
	switch {
	case size < 100*1024:
		return "tiny"
	case size < 1024*1024:
		return "small"
	case size < 10*1024*1024:
		return "medium"
	case size < 100*1024*1024:
		return "large"
	default:
		return "huge"
	}
}

func extensionOf(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// uniqueDest appends _1, _2, ... before the extension until the
// destination does not collide with an existing file.
func uniqueDest(dest string) string {
	if _, err := os.Lstat(dest); os.IsNotExist(err) {
		return dest
	}
	ext := filepath.Ext(dest)
	base := strings.TrimSuffix(dest, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", base, i, ext)
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// moveFile renames, falling back to copy+remove across filesystems.
func moveFile(src, dest string) error {
	if err := os.Rename(src, dest); err == nil {
		return nil
	}
	if err := copyFile(src, dest); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
