package session

import (
	"testing"
	"time"

	"github.com/mlutra/watched/internal/domain"
)

func testResponse() *domain.WatchedResponse {
	day := func(date, title string) domain.DateGroup {
		added, _ := time.Parse("2006-01-02", date)
		return domain.DateGroup{
			Date: date,
			Items: []domain.BookmarkEntry{{
				Title:     title,
				URL:       "https://example.com/" + title,
				Path:      []string{},
				DateAdded: &added,
			}},
			Count: 1,
		}
	}

	return &domain.WatchedResponse{
		FolderName: "看过",
		Found:      true,
		Groups: []domain.DateGroup{
			day("2024-02-03", "february-film"),
			day("2024-01-12", "january-late"),
			day("2024-01-05", "january-early"),
			{
				Date:  domain.UnknownDateKey,
				Items: []domain.BookmarkEntry{{Title: "manual", URL: "https://manual.example", Path: []string{}}},
				Count: 1,
			},
		},
		TotalCount: 4,
	}
}

func TestNewSelectsLatestDate(t *testing.T) {
	sess := New(testResponse())

	if got := sess.Selected(); got != "2024-02-03" {
		t.Errorf("Selected() = %q, want 2024-02-03", got)
	}

	m, ok := sess.CurrentMonth()
	if !ok {
		t.Fatal("CurrentMonth() ok = false, want true")
	}
	if m.Key != "2024-02" {
		t.Errorf("CurrentMonth().Key = %q, want 2024-02", m.Key)
	}
}

func TestSelectValidatesDates(t *testing.T) {
	sess := New(testResponse())

	if !sess.Select("2024-01-05") {
		t.Error("Select(2024-01-05) = false, want true")
	}
	if got := sess.Selected(); got != "2024-01-05" {
		t.Errorf("Selected() = %q, want 2024-01-05", got)
	}

	m, _ := sess.CurrentMonth()
	if m.Key != "2024-01" {
		t.Errorf("month cursor should follow the selection, got %q", m.Key)
	}

	for _, bad := range []string{"", "2024-01-06", domain.UnknownDateKey} {
		if sess.Select(bad) {
			t.Errorf("Select(%q) = true, want false", bad)
		}
	}
	if got := sess.Selected(); got != "2024-01-05" {
		t.Errorf("rejected Select must not move the selection, got %q", got)
	}
}

func TestStepDay(t *testing.T) {
	sess := New(testResponse())

	got, ok := sess.StepDay(true)
	if !ok || got != "2024-01-12" {
		t.Errorf("StepDay(back) = %q, %v, want 2024-01-12, true", got, ok)
	}

	got, ok = sess.StepDay(false)
	if !ok || got != "2024-02-03" {
		t.Errorf("StepDay(forward) = %q, %v, want 2024-02-03, true", got, ok)
	}

	// Already at the newest date.
	if got, ok := sess.StepDay(false); ok || got != "" {
		t.Errorf("StepDay past the end = %q, %v, want empty, false", got, ok)
	}
}

func TestStepWeek(t *testing.T) {
	sess := New(testResponse())
	sess.Select("2024-01-12")

	got, ok := sess.StepWeek(true)
	if !ok || got != "2024-01-05" {
		t.Errorf("StepWeek(back) = %q, %v, want 2024-01-05, true", got, ok)
	}

	got, ok = sess.StepWeek(false)
	if !ok || got != "2024-01-12" {
		t.Errorf("StepWeek(forward) = %q, %v, want 2024-01-12, true", got, ok)
	}
}

func TestJumpToday(t *testing.T) {
	sess := New(testResponse())

	now := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	got, ok := sess.JumpToday(now)
	if !ok || got != "2024-02-03" {
		t.Errorf("JumpToday() = %q, %v, want 2024-02-03, true", got, ok)
	}
	if sess.Selected() != "2024-02-03" {
		t.Errorf("JumpToday should move the selection, got %q", sess.Selected())
	}
}

func TestNavigationOnEmptySnapshot(t *testing.T) {
	resp := &domain.WatchedResponse{
		FolderName: "看过",
		Found:      false,
		Groups:     []domain.DateGroup{},
	}
	sess := New(resp)

	if got := sess.Selected(); got != "" {
		t.Errorf("Selected() = %q, want empty", got)
	}
	if got, ok := sess.StepDay(true); ok || got != "" {
		t.Errorf("StepDay on empty = %q, %v, want empty, false", got, ok)
	}
	if got, ok := sess.JumpToday(time.Now()); ok || got != "" {
		t.Errorf("JumpToday on empty = %q, %v, want empty, false", got, ok)
	}
	if _, ok := sess.CurrentMonth(); ok {
		t.Error("CurrentMonth on empty = ok, want false")
	}
}

func TestMonthCursorClamps(t *testing.T) {
	sess := New(testResponse())
	sess.Select("2024-01-05")

	sess.PrevMonth()
	m, _ := sess.CurrentMonth()
	if m.Key != "2024-01" {
		t.Errorf("PrevMonth at first page moved to %q, want clamp at 2024-01", m.Key)
	}

	sess.NextMonth()
	sess.NextMonth() // second call clamps
	m, _ = sess.CurrentMonth()
	if m.Key != "2024-02" {
		t.Errorf("NextMonth at last page moved to %q, want clamp at 2024-02", m.Key)
	}
}

func TestSessionSearch(t *testing.T) {
	sess := New(testResponse())

	results := sess.Search("january")
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	if got := sess.Search(""); len(got) != 0 {
		t.Errorf("empty query returned %d results, want 0", len(got))
	}
}
