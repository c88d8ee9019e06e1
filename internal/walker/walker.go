package walker

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/Karmanya03/Ferret/pkg/models"
	"go.uber.org/zap"
)

// Options controls one traversal.
type Options struct {
	// MaxDepth stops descent into directories at depth >= MaxDepth.
	// The root is depth 0; -1 means unlimited.
	MaxDepth int
	// IncludeHidden emits and descends into dot-prefixed entries.
	// The root itself is exempt from hidden filtering.
	IncludeHidden bool
	// FollowSymlinks descends into symlinked directories, with cycle
	// detection on canonical directory identities.
	FollowSymlinks bool
}

// WalkFunc receives each surviving entry in traversal order. Returning
// an error aborts the walk.
type WalkFunc func(*models.Entry) error

// Walker walks a directory tree depth-first with name-sorted siblings.
// Unreadable entries and directories are skipped with a warning; the
// walk is best-effort and never fails on a single bad subtree.
type Walker struct {
	logger  *zap.Logger
	exclude map[string]bool
}

// New creates a walker. The logger must not be nil.
func New(logger *zap.Logger, exclude []string) *Walker {
	ex := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		ex[name] = true
	}
	return &Walker{logger: logger, exclude: ex}
}

// frame is one pending node on the traversal stack.
type frame struct {
	entry   *models.Entry
	descend bool
}

// Walk traverses the tree rooted at root and calls fn for every entry
// below the root that survives hidden and exclude pruning. The root
// itself is traversed but not emitted. Traversal order is depth-first
// with siblings in name-sorted order, which is a contract: repeated
// walks of an unchanged tree yield identical sequences.
func (w *Walker) Walk(root string, opts Options, fn WalkFunc) error {
	info, err := os.Lstat(root)
	if err != nil {
		w.logger.Warn("Cannot read walk root", zap.String("path", root), zap.Error(err))
		return nil
	}

	rootEntry := &models.Entry{
		Path:         root,
		RelativePath: ".",
		Name:         filepath.Base(root),
		Kind:         models.KindOf(info.Mode()),
		Mode:         info.Mode(),
		ModTime:      info.ModTime(),
		Depth:        0,
	}
	if rootEntry.Kind == models.KindFile {
		rootEntry.Size = info.Size()
	}

	// Visited canonical directories, used only when following
	// symlinks: a cyclic link is reported once and never re-entered.
	visited := make(map[string]bool)

	// The root sits at depth 0, so a zero depth limit already forbids
	// descending into it.
	stack := []frame{{entry: rootEntry, descend: opts.MaxDepth != 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := f.entry

		if e.Depth > 0 {
			if err := fn(e); err != nil {
				return err
			}
		}

		if !f.descend {
			continue
		}

		dirPath, ok := w.resolveDir(e, opts, visited)
		if !ok {
			continue
		}

		children, err := w.listChildren(dirPath, e, opts)
		if err != nil {
			// Subtree skipped, siblings continue.
			w.logger.Warn("Cannot list directory", zap.String("path", dirPath), zap.Error(err))
			continue
		}

		// Push in reverse so that name order pops first and each
		// subtree completes before its next sibling starts.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return nil
}

// resolveDir decides whether e is a directory to descend into and
// returns the path to list. Symlinks are only followed when enabled,
// and symlinked directories go through the visited set.
func (w *Walker) resolveDir(e *models.Entry, opts Options, visited map[string]bool) (string, bool) {
	switch e.Kind {
	case models.KindDir:
		if opts.FollowSymlinks && !w.markVisited(e.Path, visited) {
			return "", false
		}
		return e.Path, true

	case models.KindSymlink:
		if !opts.FollowSymlinks {
			return "", false
		}
		target, err := os.Stat(e.Path)
		if err != nil {
			// Dangling link: reported already, nothing to descend.
			w.logger.Warn("Cannot resolve symlink", zap.String("path", e.Path), zap.Error(err))
			return "", false
		}
		if !target.IsDir() {
			return "", false
		}
		if !w.markVisited(e.Path, visited) {
			return "", false
		}
		return e.Path, true
	}

	return "", false
}

// markVisited canonicalizes path and records it, reporting false when
// the identity was already seen in this traversal.
func (w *Walker) markVisited(path string, visited map[string]bool) bool {
	canonical, err := filepath.EvalSymlinks(path)
	if err != nil {
		w.logger.Warn("Cannot canonicalize path", zap.String("path", path), zap.Error(err))
		return false
	}
	if visited[canonical] {
		return false
	}
	visited[canonical] = true
	return true
}

// listChildren reads one directory level, applies hidden and exclude
// pruning, and builds child frames in name-sorted order.
func (w *Walker) listChildren(dirPath string, parent *models.Entry, opts Options) ([]frame, error) {
	dirents, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}
	sort.Slice(dirents, func(i, j int) bool { return dirents[i].Name() < dirents[j].Name() })

	depth := parent.Depth + 1
	canDescend := opts.MaxDepth < 0 || depth < opts.MaxDepth

	children := make([]frame, 0, len(dirents))
	for _, de := range dirents {
		name := de.Name()
		hidden := len(name) > 0 && name[0] == '.'
		if hidden && !opts.IncludeHidden {
			continue
		}
		if de.IsDir() && w.exclude[name] {
			continue
		}

		info, err := de.Info()
		if err != nil {
			// Race-deleted or unreadable entry: skip, keep walking.
			w.logger.Warn("Cannot stat entry",
				zap.String("path", filepath.Join(dirPath, name)),
				zap.Error(err))
			continue
		}

		rel := name
		if parent.Depth > 0 {
			rel = filepath.Join(parent.RelativePath, name)
		}

		entry := &models.Entry{
			Path:         filepath.Join(parent.Path, name),
			RelativePath: rel,
			Name:         name,
			Kind:         models.KindOf(info.Mode()),
			Mode:         info.Mode(),
			ModTime:      info.ModTime(),
			Depth:        depth,
			IsHidden:     hidden,
		}
		if entry.Kind == models.KindFile {
			entry.Size = info.Size()
		}

		children = append(children, frame{
			entry:   entry,
			descend: canDescend,
		})
	}

	return children, nil
}
