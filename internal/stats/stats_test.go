package stats

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Karmanya03/Ferret/internal/walker"
	"go.uber.org/zap"
)

func writeStatsTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]int{
		"a.txt":          10,
		"b.txt":          2000,
		"big.log":        200 * 1024,
		".hidden":        5,
		"sub/nested.txt": 30,
		"sub/noext":      1,
		"sub/deep/c.log": 40,
	}
	for name, size := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newTestWalker() *walker.Walker {
	return walker.New(zap.NewNop(), nil)
}

func TestCollectRecursive(t *testing.T) {
	dir := writeStatsTree(t)

	s, err := Collect(newTestWalker(), dir, true, false)
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}

	if s.TotalFiles != 6 {
		t.Errorf("TotalFiles = %d, want 6 (hidden excluded)", s.TotalFiles)
	}
	if s.TotalDirs != 2 {
		t.Errorf("TotalDirs = %d, want 2", s.TotalDirs)
	}
	wantSize := int64(10 + 2000 + 200*1024 + 30 + 1 + 40)
	if s.TotalSize != wantSize {
		t.Errorf("TotalSize = %d, want %d", s.TotalSize, wantSize)
	}
}

func TestCollectIncludesHidden(t *testing.T) {
	dir := writeStatsTree(t)

	s, err := Collect(newTestWalker(), dir, true, true)
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if s.TotalFiles != 7 {
		t.Errorf("TotalFiles = %d, want 7 with hidden", s.TotalFiles)
	}
}

func TestCollectNonRecursive(t *testing.T) {
	dir := writeStatsTree(t)

	s, err := Collect(newTestWalker(), dir, false, false)
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if s.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d, want 3 at depth 1", s.TotalFiles)
	}
	if s.TotalDirs != 1 {
		t.Errorf("TotalDirs = %d, want 1 (sub)", s.TotalDirs)
	}
}

func TestCollectExtensions(t *testing.T) {
	dir := writeStatsTree(t)

	s, err := Collect(newTestWalker(), dir, true, false)
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}

	if len(s.Extensions) == 0 {
		t.Fatal("no extension stats collected")
	}
	// txt appears three times, more than any other extension.
	first := s.Extensions[0]
	if first.Ext != "txt" || first.Count != 3 {
		t.Errorf("top extension = %+v, want txt with count 3", first)
	}

	var sawNoExt bool
	for _, e := range s.Extensions {
		if e.Ext == "(no extension)" {
			sawNoExt = true
			if e.Count != 1 {
				t.Errorf("(no extension) count = %d, want 1", e.Count)
			}
		}
	}
	if !sawNoExt {
		t.Error("expected a (no extension) bucket")
	}
}

func TestCollectLargest(t *testing.T) {
	dir := writeStatsTree(t)

	s, err := Collect(newTestWalker(), dir, true, false)
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}

	if len(s.Largest) == 0 {
		t.Fatal("no largest files collected")
	}
	if s.Largest[0].Path != "big.log" {
		t.Errorf("largest file = %q, want big.log", s.Largest[0].Path)
	}
	for i := 1; i < len(s.Largest); i++ {
		if s.Largest[i].Size > s.Largest[i-1].Size {
			t.Errorf("largest files not sorted at index %d", i)
		}
	}
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0-1KB"},
		{1024, "0-1KB"},
		{1025, "1KB-100KB"},
		{100 * 1024, "1KB-100KB"},
		{500 * 1024, "100KB-1MB"},
		{5 * 1024 * 1024, "1MB-10MB"},
		{50 * 1024 * 1024, "10MB-100MB"},
		{500 * 1024 * 1024, "100MB+"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := bucketFor(tt.size); got != tt.expected {
				t.Errorf("bucketFor(%d) = %q, want %q", tt.size, got, tt.expected)
			}
		})
	}
}

func TestRenderPlain(t *testing.T) {
	dir := writeStatsTree(t)
	s, err := Collect(newTestWalker(), dir, true, false)
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}

	var out bytes.Buffer
	Render(&out, s, false, 80)

	text := out.String()
	for _, want := range []string{
		"General Statistics:",
		"Size Distribution:",
		"Top File Types:",
		"Largest Files:",
		".txt",
		"big.log",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("render output missing %q", want)
		}
	}
	if strings.Contains(text, "\x1b[") {
		t.Error("plain render must not contain ANSI escapes")
	}
}
