//go:build linux

package recon

import (
	"github.com/Karmanya03/Ferret/pkg/models"
	"golang.org/x/sys/unix"
)

// Caps finds files carrying Linux file capabilities, read from the
// security.capability extended attribute.
func Caps() *Scan {
	return &Scan{
		Name:     "caps",
		Describe: "Files with capabilities",
		Match: func(e *models.Entry) bool {
			if e.Kind != models.KindFile {
				return false
			}
			size, err := unix.Getxattr(e.Path, "security.capability", nil)
			return err == nil && size > 0
		},
	}
}
