package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileReportJSON(t *testing.T) {
	r := NewFileReport("suid", "/usr/bin")
	r.Add(sampleEntry())

	path := filepath.Join(t.TempDir(), "out.json")
	if err := r.Write(path); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded FileReport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded.Scan != "suid" || decoded.Root != "/usr/bin" || decoded.Count != 1 {
		t.Errorf("decoded report = %+v", decoded)
	}
	if len(decoded.Entries) != 1 || decoded.Entries[0].Path != "sub/a.txt" {
		t.Errorf("decoded entries = %+v", decoded.Entries)
	}
}

func TestFileReportText(t *testing.T) {
	r := NewFileReport("writable", "/tmp")
	r.Add(sampleEntry())

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := r.Write(path); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{"FERRET WRITABLE REPORT", "Root:       /tmp", "Matches:    1", "sub/a.txt"} {
		if !strings.Contains(text, want) {
			t.Errorf("text report missing %q", want)
		}
	}
}

func TestFileReportEmpty(t *testing.T) {
	r := NewFileReport("sgid", "/opt")

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := r.Write(path); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "No matches found.") {
		t.Error("empty report should say no matches found")
	}
}
