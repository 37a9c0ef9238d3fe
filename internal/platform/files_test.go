package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	if FileExists(filepath.Join(dir, "missing.bin")) {
		t.Error("FileExists should be false for a missing file")
	}

	path := filepath.Join(dir, "present.bin")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if !FileExists(path) {
		t.Error("FileExists should be true for an existing file")
	}

	if !FileExists(dir) {
		t.Error("FileExists should be true for an existing directory")
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "jobs")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if !FileExists(dir) {
		t.Error("Directory should exist after creation")
	}

	// Second call is a no-op.
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Creating an existing directory should not fail: %v", err)
	}
}

func TestUniqueFileName(t *testing.T) {
	dir := t.TempDir()

	if got := UniqueFileName(dir, "results.zip"); got != "results.zip" {
		t.Errorf("Free name should be returned unchanged, got %s", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "results.zip"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if got := UniqueFileName(dir, "results.zip"); got != "results_1.zip" {
		t.Errorf("Expected results_1.zip, got %s", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "results_1.zip"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if got := UniqueFileName(dir, "results.zip"); got != "results_2.zip" {
		t.Errorf("Expected results_2.zip, got %s", got)
	}
}

func TestDefaultWorkingDirectory(t *testing.T) {
	dir, err := DefaultWorkingDirectory()
	if err != nil {
		t.Fatalf("DefaultWorkingDirectory failed: %v", err)
	}
	if filepath.Base(dir) != "suqaba-jobs" {
		t.Errorf("Expected a suqaba-jobs directory, got %s", dir)
	}
}
