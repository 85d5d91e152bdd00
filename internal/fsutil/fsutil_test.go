package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFileCreatesParents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c.txt")
	if err := WriteFile(path, "hello\n"); err != nil {
		t.Fatalf("WriteFile() = %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() = %v", err)
	}
	if got != "hello\n" {
		t.Errorf("content = %q, want %q", got, "hello\n")
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	v := map[string]string{"build": "vite build && echo done"}
	if err := WriteJSON(path, v); err != nil {
		t.Fatalf("WriteJSON() = %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() = %v", err)
	}
	if !strings.Contains(got, "&&") {
		t.Errorf("JSON output HTML-escaped the ampersands: %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("JSON output missing trailing newline")
	}
	if !strings.Contains(got, "  \"build\"") {
		t.Errorf("JSON output not two-space indented: %q", got)
	}
}

func TestIsDirMissingOrEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	empty, err := IsDirMissingOrEmpty(filepath.Join(dir, "missing"))
	if err != nil || !empty {
		t.Errorf("missing dir: got (%v, %v), want (true, nil)", empty, err)
	}

	empty, err = IsDirMissingOrEmpty(dir)
	if err != nil || !empty {
		t.Errorf("empty dir: got (%v, %v), want (true, nil)", empty, err)
	}

	if err := os.WriteFile(filepath.Join(dir, "f"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	empty, err = IsDirMissingOrEmpty(dir)
	if err != nil || empty {
		t.Errorf("non-empty dir: got (%v, %v), want (false, nil)", empty, err)
	}

	empty, err = IsDirMissingOrEmpty(filepath.Join(dir, "f"))
	if err != nil || empty {
		t.Errorf("regular file: got (%v, %v), want (false, nil)", empty, err)
	}
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if Exists(filepath.Join(dir, "nope")) {
		t.Error("Exists() = true for missing path")
	}
	if !Exists(dir) {
		t.Error("Exists() = false for existing dir")
	}
}
