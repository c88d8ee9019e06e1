package recon

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/Karmanya03/Ferret/internal/walker"
	"github.com/Karmanya03/Ferret/pkg/models"
	"go.uber.org/zap"
)

func fileEntry(name string, mode fs.FileMode, modTime time.Time) *models.Entry {
	return &models.Entry{
		Path:    name,
		Name:    name,
		Kind:    models.KindFile,
		Mode:    mode,
		ModTime: modTime,
	}
}

func TestSUIDMatch(t *testing.T) {
	scan := SUID()

	if !scan.Match(fileEntry("passwd", fs.ModeSetuid|0o755, time.Now())) {
		t.Error("setuid binary should match")
	}
	if scan.Match(fileEntry("ls", 0o755, time.Now())) {
		t.Error("plain binary should not match")
	}
	if scan.Match(&models.Entry{Name: "d", Kind: models.KindDir, Mode: fs.ModeDir | fs.ModeSetuid | 0o755}) {
		t.Error("setuid directory should not match")
	}
}

func TestSGIDMatch(t *testing.T) {
	scan := SGID()

	if !scan.Match(fileEntry("wall", fs.ModeSetgid|0o755, time.Now())) {
		t.Error("setgid binary should match")
	}
	if scan.Match(fileEntry("wall", fs.ModeSetuid|0o755, time.Now())) {
		t.Error("setuid-only binary should not match sgid scan")
	}
}

func TestWritableMatch(t *testing.T) {
	worldFile := fileEntry("f", 0o666, time.Now())
	ownerFile := fileEntry("f", 0o644, time.Now())
	worldDir := &models.Entry{Name: "d", Kind: models.KindDir, Mode: fs.ModeDir | 0o777}

	tests := []struct {
		name      string
		dirsOnly  bool
		filesOnly bool
		entry     *models.Entry
		expected  bool
	}{
		{"world-writable file", false, false, worldFile, true},
		{"owner-only file", false, false, ownerFile, false},
		{"world-writable dir", false, false, worldDir, true},
		{"dir with files-only", false, true, worldDir, false},
		{"file with dirs-only", true, false, worldFile, false},
		{"dir with dirs-only", true, false, worldDir, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scan := Writable(tt.dirsOnly, tt.filesOnly)
			if got := scan.Match(tt.entry); got != tt.expected {
				t.Errorf("Match = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRecentMatch(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	scan := Recent(60, now)

	if !scan.Match(fileEntry("fresh", 0o644, now.Add(-30*time.Minute))) {
		t.Error("file inside the window should match")
	}
	if !scan.Match(fileEntry("edge", 0o644, now.Add(-60*time.Minute))) {
		t.Error("file exactly at the cutoff should match")
	}
	if scan.Match(fileEntry("stale", 0o644, now.Add(-61*time.Minute))) {
		t.Error("file outside the window should not match")
	}
	if scan.Match(&models.Entry{Name: "d", Kind: models.KindDir, ModTime: now}) {
		t.Error("directories should not match the recent scan")
	}
}

func TestConfigsMatch(t *testing.T) {
	scan, err := Configs(defaultConfigPatterns)
	if err != nil {
		t.Fatalf("Configs returned error: %v", err)
	}

	tests := []struct {
		name     string
		expected bool
	}{
		{"nginx.conf", true},
		{".env", true},
		{".env.production", true},
		{"server.pem", true},
		{"id_rsa", true},
		{"db_password.txt", true},
		{"main.go", false},
		{"notes.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := fileEntry(tt.name, 0o644, time.Now())
			if got := scan.Match(e); got != tt.expected {
				t.Errorf("Match(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestConfigsRejectsBadPattern(t *testing.T) {
	if _, err := Configs([]string{"[unclosed"}); err == nil {
		t.Error("expected error for malformed glob pattern")
	}
}

func TestLoadConfigPatterns(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty path returns defaults", func(t *testing.T) {
		patterns, err := LoadConfigPatterns("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(patterns) != len(defaultConfigPatterns) {
			t.Errorf("got %d patterns, want %d", len(patterns), len(defaultConfigPatterns))
		}
	})

	t.Run("override file", func(t *testing.T) {
		path := filepath.Join(dir, "patterns.yaml")
		if err := os.WriteFile(path, []byte("patterns:\n  - '*.secret'\n"), 0644); err != nil {
			t.Fatal(err)
		}
		patterns, err := LoadConfigPatterns(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(patterns) != 1 || patterns[0] != "*.secret" {
			t.Errorf("patterns = %v, want [*.secret]", patterns)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfigPatterns(filepath.Join(dir, "absent.yaml")); err == nil {
			t.Error("expected error for missing pattern file")
		}
	})
}

func TestRunnerRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not reliable on Windows")
	}

	dir := t.TempDir()
	open := filepath.Join(dir, "open.txt")
	if err := os.WriteFile(open, []byte("x"), 0o666); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(open, 0o666); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "closed.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	logger := zap.NewNop()
	var out bytes.Buffer
	runner := NewRunner(walker.New(logger, nil), logger, &out, false)

	if err := runner.Run(Writable(false, true), dir, Options{Quiet: true}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	got := strings.TrimSpace(out.String())
	if got != open {
		t.Errorf("output = %q, want only %q", got, open)
	}
}

func TestRunnerColorOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not reliable on Windows")
	}

	dir := t.TempDir()
	open := filepath.Join(dir, "open.txt")
	if err := os.WriteFile(open, []byte("x"), 0o666); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(open, 0o666); err != nil {
		t.Fatal(err)
	}
	logger := zap.NewNop()

	t.Run("enabled colors matches", func(t *testing.T) {
		var out bytes.Buffer
		runner := NewRunner(walker.New(logger, nil), logger, &out, true)
		if err := runner.Run(Writable(false, true), dir, Options{}); err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
		if !strings.Contains(out.String(), "\x1b[") {
			t.Error("expected ANSI escapes when color is enabled")
		}
	})

	t.Run("disabled stays plain", func(t *testing.T) {
		var out bytes.Buffer
		runner := NewRunner(walker.New(logger, nil), logger, &out, false)
		if err := runner.Run(Writable(false, true), dir, Options{Verbose: true}); err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
		if strings.Contains(out.String(), "\x1b[") {
			t.Error("plain output must not contain ANSI escapes")
		}
	})

	t.Run("quiet is always plain", func(t *testing.T) {
		var out bytes.Buffer
		runner := NewRunner(walker.New(logger, nil), logger, &out, true)
		if err := runner.Run(Writable(false, true), dir, Options{Quiet: true}); err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
		if got := strings.TrimSpace(out.String()); got != open {
			t.Errorf("quiet output = %q, want %q", got, open)
		}
	})
}

func TestRunnerWritesReport(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not reliable on Windows")
	}

	dir := t.TempDir()
	open := filepath.Join(dir, "open.txt")
	if err := os.WriteFile(open, []byte("x"), 0o666); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(open, 0o666); err != nil {
		t.Fatal(err)
	}

	logger := zap.NewNop()
	var out bytes.Buffer
	runner := NewRunner(walker.New(logger, nil), logger, &out, false)

	reportPath := filepath.Join(t.TempDir(), "scan.json")
	err := runner.Run(Writable(false, true), dir, Options{Quiet: true, OutputFile: reportPath})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(data), "open.txt") {
		t.Errorf("report %q missing the match", data)
	}
}
