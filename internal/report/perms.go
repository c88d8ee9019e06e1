package report

import (
	"fmt"
	"io/fs"
)

// FormatPermissions renders ls-style permission strings, including
// the setuid/setgid/sticky substitutions in the execute columns.
func FormatPermissions(mode fs.FileMode) string {
	var kind byte
	switch {
	case mode.IsDir():
		kind = 'd'
	case mode&fs.ModeSymlink != 0:
		kind = 'l'
	default:
		kind = '-'
	}

	perm := mode.Perm()
	buf := []byte{kind}
	buf = append(buf, triad(perm>>6)...)
	buf = append(buf, triad(perm>>3)...)
	buf = append(buf, triad(perm)...)

	if mode&fs.ModeSetuid != 0 {
		buf[3] = execMark(buf[3], 's', 'S')
	}
	if mode&fs.ModeSetgid != 0 {
		buf[6] = execMark(buf[6], 's', 'S')
	}
	if mode&fs.ModeSticky != 0 {
		buf[9] = execMark(buf[9], 't', 'T')
	}

	return string(buf)
}

func triad(bits fs.FileMode) []byte {
	out := []byte{'-', '-', '-'}
	if bits&4 != 0 {
		out[0] = 'r'
	}
	if bits&2 != 0 {
		out[1] = 'w'
	}
	if bits&1 != 0 {
		out[2] = 'x'
	}
	return out
}

func execMark(current byte, set, unset byte) byte {
	if current == 'x' {
		return set
	}
	return unset
}

// ExplainPermissions spells out each triad, e.g.
// "(owner:rw-, group:r--, other:r--)".
func ExplainPermissions(mode fs.FileMode) string {
	perm := mode.Perm()
	return fmt.Sprintf("(owner:%s, group:%s, other:%s)",
		triad(perm>>6), triad(perm>>3), triad(perm))
}
