package chrome

import (
	"encoding/json"
	"testing"
)

func parseFile(t *testing.T, data string) *File {
	t.Helper()
	var file File
	if err := json.Unmarshal([]byte(data), &file); err != nil {
		t.Fatalf("Failed to parse test fixture: %v", err)
	}
	return &file
}

func TestFindFolderNested(t *testing.T) {
	file := parseFile(t, `{
		"roots": {
			"bookmark_bar": {
				"type": "folder",
				"name": "Bookmarks bar",
				"children": [
					{"type": "url", "name": "Top level", "url": "https://example.com"},
					{
						"type": "folder",
						"name": "Media",
						"children": [
							{"type": "folder", "name": "看过", "children": []}
						]
					}
				]
			}
		}
	}`)

	extractor := NewExtractor("看过")
	folder, found := extractor.FindFolder(file)
	if !found {
		t.Fatal("FindFolder() found = false, want true")
	}
	if folder.Name != "看过" {
		t.Errorf("folder.Name = %q, want %q", folder.Name, "看过")
	}
}

func TestFindFolderInExtraRoot(t *testing.T) {
	file := parseFile(t, `{
		"roots": {
			"bookmark_bar": {"type": "folder", "name": "Bookmarks bar", "children": []},
			"trash": {
				"type": "folder",
				"name": "Trash",
				"children": [
					{"type": "folder", "name": "Watched", "children": []}
				]
			}
		}
	}`)

	extractor := NewExtractor("Watched")
	if _, found := extractor.FindFolder(file); !found {
		t.Error("FindFolder() should search non-canonical roots too")
	}
}

func TestFindFolderNotFound(t *testing.T) {
	file := parseFile(t, `{
		"roots": {
			"bookmark_bar": {"type": "folder", "name": "Bookmarks bar", "children": []}
		}
	}`)

	extractor := NewExtractor("看过")
	if _, found := extractor.FindFolder(file); found {
		t.Error("FindFolder() found = true, want false")
	}

	if _, found := extractor.FindFolder(nil); found {
		t.Error("FindFolder(nil) found = true, want false")
	}
}

func TestFindFolderIgnoresURLWithSameName(t *testing.T) {
	file := parseFile(t, `{
		"roots": {
			"bookmark_bar": {
				"type": "folder",
				"name": "Bookmarks bar",
				"children": [
					{"type": "url", "name": "看过", "url": "https://example.com"}
				]
			}
		}
	}`)

	extractor := NewExtractor("看过")
	if _, found := extractor.FindFolder(file); found {
		t.Error("a url node must not satisfy a folder lookup")
	}
}

func TestEntriesFlattensWithBreadcrumbs(t *testing.T) {
	file := parseFile(t, `{
		"roots": {
			"bookmark_bar": {
				"type": "folder",
				"name": "Bookmarks bar",
				"children": [
					{
						"type": "folder",
						"name": "看过",
						"children": [
							{"type": "url", "name": "Direct", "url": "https://direct.example", "date_added": "13222310400000000"},
							{
								"type": "folder",
								"name": "2020",
								"children": [
									{"type": "url", "name": "Nested", "url": "https://nested.example"}
								]
							}
						]
					}
				]
			}
		}
	}`)

	extractor := NewExtractor("看过")
	folder, found := extractor.FindFolder(file)
	if !found {
		t.Fatal("FindFolder() found = false, want true")
	}

	entries := extractor.Entries(folder)
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	direct := entries[0]
	if len(direct.Path) != 0 {
		t.Errorf("direct child Path = %v, want empty (watched folder excluded)", direct.Path)
	}
	if direct.DateAdded == nil {
		t.Error("direct child DateAdded = nil, want parsed instant")
	}

	nested := entries[1]
	if len(nested.Path) != 1 || nested.Path[0] != "2020" {
		t.Errorf("nested child Path = %v, want [2020]", nested.Path)
	}
	if nested.DateAdded != nil {
		t.Errorf("nested child DateAdded = %v, want nil", nested.DateAdded)
	}
}

func TestEntriesSkipsMalformedChildren(t *testing.T) {
	file := parseFile(t, `{
		"roots": {
			"bookmark_bar": {
				"type": "folder",
				"name": "Bookmarks bar",
				"children": [
					{
						"type": "folder",
						"name": "Watched",
						"children": [
							null,
							"not an object",
							{"type": "separator"},
							{"type": "url", "name": "Kept", "url": "https://kept.example"}
						]
					}
				]
			}
		}
	}`)

	extractor := NewExtractor("Watched")
	folder, found := extractor.FindFolder(file)
	if !found {
		t.Fatal("FindFolder() found = false, want true")
	}

	entries := extractor.Entries(folder)
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Title != "Kept" {
		t.Errorf("Title = %q, want %q", entries[0].Title, "Kept")
	}
}

func TestEntriesTitleFallsBackToURL(t *testing.T) {
	file := parseFile(t, `{
		"roots": {
			"other": {
				"type": "folder",
				"name": "Other bookmarks",
				"children": [
					{
						"type": "folder",
						"name": "Watched",
						"children": [
							{"type": "url", "name": "", "url": "https://untitled.example"}
						]
					}
				]
			}
		}
	}`)

	extractor := NewExtractor("Watched")
	folder, _ := extractor.FindFolder(file)
	entries := extractor.Entries(folder)
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if entries[0].Title != "https://untitled.example" {
		t.Errorf("Title = %q, want the URL fallback", entries[0].Title)
	}
}

func TestEntriesUnnamedFolderAddsNoSegment(t *testing.T) {
	file := parseFile(t, `{
		"roots": {
			"other": {
				"type": "folder",
				"name": "Other bookmarks",
				"children": [
					{
						"type": "folder",
						"name": "Watched",
						"children": [
							{
								"type": "folder",
								"name": "",
								"children": [
									{"type": "url", "name": "Deep", "url": "https://deep.example"}
								]
							}
						]
					}
				]
			}
		}
	}`)

	extractor := NewExtractor("Watched")
	folder, _ := extractor.FindFolder(file)
	entries := extractor.Entries(folder)
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	if len(entries[0].Path) != 0 {
		t.Errorf("Path = %v, want empty (unnamed folder skipped)", entries[0].Path)
	}
}
