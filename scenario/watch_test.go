package scenario

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsScenarioEdits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(path, []byte("airplane:\n"), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("airplane:\n  rows: 2\n"), 0o644); err != nil {
		t.Fatalf("edit scenario: %v", err)
	}

	select {
	case got := <-w.Events:
		if got != path {
			t.Errorf("event = %q, want %q", got, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no event after editing the scenario file")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	if err := os.WriteFile(path, []byte("airplane:\n"), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write unrelated file: %v", err)
	}

	select {
	case got := <-w.Events:
		t.Errorf("unexpected event %q for an unrelated file", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("airplane:\n"), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
