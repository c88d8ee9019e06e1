package filter

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/Karmanya03/Ferret/pkg/models"
)

// Evaluate applies every configured dimension to one entry, cheapest
// check first, short-circuiting on the first failure. All dimensions
// are ANDed; absent dimensions are vacuously true.
func Evaluate(entry *models.Entry, spec *Spec, matcher *Matcher, now time.Time) bool {
	// Hidden visibility: the entry itself or any ancestor segment
	// under the root disqualifies it.
	if !spec.IncludeHidden && hasHiddenSegment(entry.RelativePath) {
		return false
	}

	if want, ok := spec.wantKind(); ok && entry.Kind != want {
		return false
	}

	if matcher != nil && !matcher.Match(entry.Name, entry.RelativePath) {
		return false
	}

	if spec.MinSize >= 0 && entry.Size < spec.MinSize {
		return false
	}
	if spec.MaxSize >= 0 && entry.Size > spec.MaxSize {
		return false
	}

	if spec.MaxAgeSet {
		cutoff := now.Add(-time.Duration(spec.ModifiedDays) * 24 * time.Hour)
		if entry.ModTime.Before(cutoff) {
			return false
		}
	}

	return true
}

func hasHiddenSegment(relPath string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(relPath), "/") {
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		if seg[0] == '.' {
			return true
		}
	}
	return false
}
