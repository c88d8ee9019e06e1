package recon

import (
	"io/fs"
	"time"

	"github.com/Karmanya03/Ferret/pkg/models"
)

// SUID finds setuid executables, which run with their owner's
// privileges.
func SUID() *Scan {
	return &Scan{
		Name:     "suid",
		Describe: "SUID binaries",
		Match: func(e *models.Entry) bool {
			return e.Kind == models.KindFile && e.Mode&fs.ModeSetuid != 0
		},
	}
}

// SGID finds setgid executables, which run with their group's
// privileges.
func SGID() *Scan {
	return &Scan{
		Name:     "sgid",
		Describe: "SGID binaries",
		Match: func(e *models.Entry) bool {
			return e.Kind == models.KindFile && e.Mode&fs.ModeSetgid != 0
		},
	}
}

// Writable finds world-writable files and directories.
func Writable(dirsOnly, filesOnly bool) *Scan {
	return &Scan{
		Name:     "writable",
		Describe: "World-writable entries",
		Match: func(e *models.Entry) bool {
			if e.Mode.Perm()&0o002 == 0 {
				return false
			}
			switch e.Kind {
			case models.KindDir:
				return !filesOnly
			case models.KindFile:
				return !dirsOnly
			}
			return false
		},
	}
}

// Recent finds files modified within the given window.
func Recent(minutes uint64, now time.Time) *Scan {
	cutoff := now.Add(-time.Duration(minutes) * time.Minute)
	return &Scan{
		Name:     "recent",
		Describe: "Recently modified files",
		Match: func(e *models.Entry) bool {
			return e.Kind == models.KindFile && !e.ModTime.Before(cutoff)
		},
	}
}
