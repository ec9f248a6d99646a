package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	goerrors "github.com/go-errors/errors"
)

func withLogFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := withLogFile(t)
	SetTraceEnabled(false)
	Trace("browser.navigate", map[string]interface{}{"index": 1})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is disabled, got %v", err)
	}
}

func TestTraceWritesJSONEntry(t *testing.T) {
	path := withLogFile(t)
	SetTraceEnabled(true)
	Trace("browser.navigate", map[string]interface{}{"index": 1})

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["event"] != "browser.navigate" {
		t.Fatalf("expected event browser.navigate, got %v", entries[0]["event"])
	}
	payload, ok := entries[0]["payload"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected payload object, got %T", entries[0]["payload"])
	}
	if payload["index"] != float64(1) {
		t.Fatalf("expected index 1, got %v", payload["index"])
	}
}

func TestErrorIncludesStackForGoErrors(t *testing.T) {
	path := withLogFile(t)
	Error(goerrors.New("dataset broken"))
	Error(nil)

	entries := readEntries(t, path)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0]["msg"] != "dataset broken" {
		t.Fatalf("unexpected message %v", entries[0]["msg"])
	}
	if stack, _ := entries[0]["stack"].(string); stack == "" {
		t.Fatalf("expected stack in entry, got %#v", entries[0])
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	Configure("")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %s", Path())
	}
}
