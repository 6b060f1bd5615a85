package fsutil

import (
	"path/filepath"
	"testing"
)

func TestWriteJSONCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "result.json")

	if err := WriteJSON(target, map[string]int{"edit_distance": 3}); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}
	if !FileExists(target) {
		t.Fatalf("expected %s to exist after WriteJSON", target)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.json")
	if FileExists(missing) {
		t.Fatalf("FileExists(%s) = true, want false", missing)
	}

	present := filepath.Join(dir, "present.json")
	if err := WriteJSON(present, map[string]int{}); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}
	if !FileExists(present) {
		t.Fatalf("FileExists(%s) = false, want true", present)
	}
}

func TestEnsureDirectoryIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDirectory(dir); err != nil {
		t.Fatalf("EnsureDirectory returned error: %v", err)
	}
	if err := EnsureDirectory(dir); err != nil {
		t.Fatalf("EnsureDirectory (second call) returned error: %v", err)
	}
	if !DirectoryExists(dir) {
		t.Fatalf("expected %s to exist", dir)
	}
}

func TestDeleteFileIdempotent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "gone.json")

	if err := DeleteFile(target); err != nil {
		t.Fatalf("DeleteFile on missing file returned error: %v", err)
	}

	if err := WriteJSON(target, map[string]int{}); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}
	if err := DeleteFile(target); err != nil {
		t.Fatalf("DeleteFile returned error: %v", err)
	}
	if FileExists(target) {
		t.Fatalf("expected %s to be removed", target)
	}
}
