package filter

import (
	"fmt"

	"github.com/Karmanya03/Ferret/pkg/models"
)

// Spec is the immutable configuration for one search, built once from
// CLI input. Every configured dimension must pass for an entry to
// match; unset dimensions are unconstrained.
type Spec struct {
	Pattern         string
	Kind            PatternKind
	CaseInsensitive bool

	TypeFilter string // "", "file", "dir" or "symlink"

	MinSize int64 // -1 means unset
	MaxSize int64 // -1 means unset

	ModifiedDays uint64 // 0 means unset
	MaxAgeSet    bool

	IncludeHidden  bool
	Recursive      bool
	MaxDepth       int // -1 means unlimited
	FollowSymlinks bool
}

// NewSpec returns a Spec with all optional dimensions unset.
func NewSpec(pattern string) Spec {
	return Spec{
		Pattern:   pattern,
		Recursive: true,
		MinSize:   -1,
		MaxSize:   -1,
		MaxDepth:  -1,
	}
}

// Validate rejects enum values the engine does not understand before
// any traversal starts.
func (s *Spec) Validate() error {
	switch s.TypeFilter {
	case "", "file", "dir", "symlink":
	default:
		return fmt.Errorf("invalid type filter %q: must be file, dir or symlink", s.TypeFilter)
	}
	return nil
}

// EffectiveMaxDepth folds the recursive flag into the depth limit:
// a non-recursive search is exactly a depth-1 search.
func (s *Spec) EffectiveMaxDepth() int {
	if !s.Recursive {
		return 1
	}
	return s.MaxDepth
}

func (s *Spec) wantKind() (models.EntryKind, bool) {
	switch s.TypeFilter {
	case "file":
		return models.KindFile, true
	case "dir":
		return models.KindDir, true
	case "symlink":
		return models.KindSymlink, true
	}
	return "", false
}
