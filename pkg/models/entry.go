package models

import (
	"io/fs"
	"time"
)

// EntryKind classifies a filesystem entry.
type EntryKind string

const (
	KindFile    EntryKind = "file"
	KindDir     EntryKind = "dir"
	KindSymlink EntryKind = "symlink"
)

// Entry is a single filesystem observation produced during traversal.
// It is built once from the OS metadata call and never mutated.
type Entry struct {
	Path         string      `json:"path"`               // Path as walked (root argument joined with the relative path)
	RelativePath string      `json:"relative_path"`      // Path relative to the walk root
	Name         string      `json:"name"`               // Base name
	Kind         EntryKind   `json:"kind"`               // file, dir or symlink
	Size         int64       `json:"size"`               // Size in bytes (0 for directories and symlinks)
	Mode         fs.FileMode `json:"mode"`               // Full mode bits, including permission and setuid/setgid
	ModTime      time.Time   `json:"modified"`           // Last modification time
	Depth        int         `json:"depth"`              // Depth from the walk root (root = 0)
	IsHidden     bool        `json:"is_hidden,omitempty"` // Name starts with a dot
}

// KindOf maps mode bits to an EntryKind. Symlink wins over the other
// type bits because lstat reports the link itself.
func KindOf(mode fs.FileMode) EntryKind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDir
	default:
		return KindFile
	}
}
