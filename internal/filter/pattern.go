package filter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// PatternKind selects how the search pattern is interpreted.
type PatternKind int

const (
	PatternGlob PatternKind = iota
	PatternRegex
)

// Matcher tests entry names against a compiled search pattern. It is
// built exactly once before traversal so that invalid patterns abort
// the run before any filesystem I/O.
type Matcher struct {
	kind     PatternKind
	glob     string // case-folded when insensitive
	fullPath bool   // glob contains a path separator: match the relative path
	re       *regexp.Regexp
	fold     bool
}

// Compile builds a Matcher from a glob or regex pattern. Compilation
// errors are fatal to the caller; per-entry matching never fails.
func Compile(pattern string, kind PatternKind, caseInsensitive bool) (*Matcher, error) {
	m := &Matcher{kind: kind, fold: caseInsensitive}

	switch kind {
	case PatternRegex:
		expr := pattern
		if caseInsensitive {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		m.re = re

	case PatternGlob:
		glob := filepath.ToSlash(pattern)
		if !doublestar.ValidatePattern(glob) {
			return nil, fmt.Errorf("invalid glob pattern %q", pattern)
		}
		if caseInsensitive {
			glob = strings.ToLower(glob)
		}
		m.glob = glob
		m.fullPath = strings.Contains(glob, "/")

	default:
		return nil, fmt.Errorf("unknown pattern kind %d", kind)
	}

	return m, nil
}

// Match tests one entry. Globs match the base name, or the
// root-relative path when the pattern itself contains a separator.
// Regexes are a partial match against the base name.
func (m *Matcher) Match(name, relPath string) bool {
	if m.kind == PatternRegex {
		return m.re.MatchString(name)
	}

	subject := name
	if m.fullPath {
		subject = filepath.ToSlash(relPath)
	}
	if m.fold {
		subject = strings.ToLower(subject)
	}

	ok, err := doublestar.Match(m.glob, subject)
	if err != nil {
		// Pattern was validated at compile time.
		return false
	}
	return ok
}
