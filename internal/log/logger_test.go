package log

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
)

func TestNew_WritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Output: &buf, Service: "test"})

	l.Debug().Str("run_id", "abc").Msg("started")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["service"] != "test" {
		t.Errorf("service = %v, want test", entry["service"])
	}
	if entry["run_id"] != "abc" {
		t.Errorf("run_id = %v, want abc", entry["run_id"])
	}
	if entry["message"] != "started" {
		t.Errorf("message = %v, want started", entry["message"])
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Output: &buf})

	l.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("info entry should be filtered at warn level, got %q", buf.String())
	}

	l.Warn().Msg("shown")
	if buf.Len() == 0 {
		t.Error("warn entry should be written")
	}
}

func TestNew_DefaultsToDiscard(t *testing.T) {
	l := New(Config{})
	// Must not panic with no output configured.
	l.Info().Msg("nowhere")
}

func TestOpenFile_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prank.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString("x\n"); err != nil {
		t.Errorf("write failed: %v", err)
	}
}
