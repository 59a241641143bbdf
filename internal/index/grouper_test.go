package index

import (
	"testing"
	"time"

	"github.com/mlutra/watched/internal/domain"
)

func entryAt(title string, added *time.Time) domain.BookmarkEntry {
	return domain.BookmarkEntry{
		Title:     title,
		URL:       "https://example.com/" + title,
		Path:      []string{},
		DateAdded: added,
	}
}

func at(value string) *time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestBuildResponseFolderNotFound(t *testing.T) {
	g := NewGrouper()
	now := time.Now()

	resp := g.BuildResponse("看过", "/tmp/Bookmarks", false, nil, now)

	if resp.Found {
		t.Error("Found = true, want false")
	}
	if resp.Groups == nil {
		t.Error("Groups = nil, want empty slice")
	}
	if len(resp.Groups) != 0 {
		t.Errorf("len(Groups) = %d, want 0", len(resp.Groups))
	}
	if resp.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", resp.TotalCount)
	}
	if resp.FolderName != "看过" {
		t.Errorf("FolderName = %q, want %q", resp.FolderName, "看过")
	}
}

func TestBuildResponseGroupsByDay(t *testing.T) {
	g := NewGrouper()
	entries := []domain.BookmarkEntry{
		entryAt("old", at("2024-01-05T08:00:00Z")),
		entryAt("newest", at("2024-01-12T20:00:00Z")),
		entryAt("same-day-earlier", at("2024-01-12T09:00:00Z")),
	}

	resp := g.BuildResponse("看过", "/tmp/Bookmarks", true, entries, time.Now())

	if resp.TotalCount != 3 {
		t.Fatalf("TotalCount = %d, want 3", resp.TotalCount)
	}
	if len(resp.Groups) != 2 {
		t.Fatalf("len(Groups) = %d, want 2", len(resp.Groups))
	}

	if resp.Groups[0].Date != "2024-01-12" {
		t.Errorf("Groups[0].Date = %q, want 2024-01-12 (newest first)", resp.Groups[0].Date)
	}
	if resp.Groups[1].Date != "2024-01-05" {
		t.Errorf("Groups[1].Date = %q, want 2024-01-05", resp.Groups[1].Date)
	}

	first := resp.Groups[0]
	if first.Count != 2 || len(first.Items) != 2 {
		t.Fatalf("Groups[0].Count = %d, want 2", first.Count)
	}
	if first.Items[0].Title != "newest" || first.Items[1].Title != "same-day-earlier" {
		t.Errorf("within-group order = [%s, %s], want newest first",
			first.Items[0].Title, first.Items[1].Title)
	}
}

func TestBuildResponseDatelessEntriesGroupLast(t *testing.T) {
	g := NewGrouper()
	entries := []domain.BookmarkEntry{
		entryAt("manual-b", nil),
		entryAt("dated", at("2024-03-01T12:00:00Z")),
		entryAt("manual-a", nil),
	}

	resp := g.BuildResponse("看过", "/tmp/Bookmarks", true, entries, time.Now())

	if len(resp.Groups) != 2 {
		t.Fatalf("len(Groups) = %d, want 2", len(resp.Groups))
	}

	last := resp.Groups[len(resp.Groups)-1]
	if last.Date != domain.UnknownDateKey {
		t.Errorf("last group = %q, want %q", last.Date, domain.UnknownDateKey)
	}
	if len(last.Items) != 2 {
		t.Fatalf("unknown group size = %d, want 2", len(last.Items))
	}

	// Dateless entries keep their encounter order.
	if last.Items[0].Title != "manual-b" || last.Items[1].Title != "manual-a" {
		t.Errorf("unknown group order = [%s, %s], want encounter order",
			last.Items[0].Title, last.Items[1].Title)
	}
}

func TestBuildResponseCountInvariant(t *testing.T) {
	g := NewGrouper()
	entries := []domain.BookmarkEntry{
		entryAt("a", at("2024-01-01T00:00:00Z")),
		entryAt("b", at("2024-01-02T00:00:00Z")),
		entryAt("c", at("2024-01-02T06:00:00Z")),
		entryAt("d", nil),
	}

	resp := g.BuildResponse("看过", "/tmp/Bookmarks", true, entries, time.Now())

	sum := 0
	for _, group := range resp.Groups {
		if group.Count != len(group.Items) {
			t.Errorf("group %q Count = %d, items = %d", group.Date, group.Count, len(group.Items))
		}
		sum += group.Count
	}
	if sum != resp.TotalCount {
		t.Errorf("sum of group counts = %d, TotalCount = %d", sum, resp.TotalCount)
	}
}
