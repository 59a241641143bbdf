package chrome

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "Bookmarks")

	content := `{
		"checksum": "abc123",
		"version": 1,
		"roots": {
			"bookmark_bar": {
				"type": "folder",
				"name": "Bookmarks bar",
				"children": []
			},
			"other": {
				"type": "folder",
				"name": "Other bookmarks",
				"children": []
			}
		}
	}`

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test bookmarks file: %v", err)
	}

	loader := NewLoader(path)
	file, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if file.Version != 1 {
		t.Errorf("Version = %d, want 1", file.Version)
	}
	if len(file.Roots) != 2 {
		t.Errorf("len(Roots) = %d, want 2", len(file.Roots))
	}
	if loader.Path() != path {
		t.Errorf("Path() = %q, want %q", loader.Path(), path)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	loader := NewLoader("/nonexistent/path/Bookmarks")
	_, err := loader.Load()
	if err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestLoaderLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "Bookmarks")

	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to create test bookmarks file: %v", err)
	}

	loader := NewLoader(path)
	if _, err := loader.Load(); err == nil {
		t.Error("Load() with invalid JSON should return error")
	}
}
