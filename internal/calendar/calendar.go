package calendar

import (
	"sort"
	"time"

	"github.com/mlutra/watched/internal/domain"
)

const dayLayout = "2006-01-02"

// Calendar answers temporal-navigation queries over the distinct set of dates
// that have bookmarks. Dates are fixed-width ISO strings, so lexicographic
// order is chronological order. The zero value is an empty calendar; all
// query methods return "" when no date qualifies.
type Calendar struct {
	dates []string // sorted ascending, distinct, real dates only
}

// New builds a calendar from group date keys. The "unknown" key and anything
// that is not a parseable ISO date are ignored.
func New(dates []string) *Calendar {
	seen := make(map[string]bool, len(dates))
	kept := make([]string, 0, len(dates))

	for _, d := range dates {
		if d == "" || d == domain.UnknownDateKey || seen[d] {
			continue
		}
		if _, err := time.Parse(dayLayout, d); err != nil {
			continue
		}
		seen[d] = true
		kept = append(kept, d)
	}

	sort.Strings(kept)
	return &Calendar{dates: kept}
}

// FromResponse builds a calendar from the served group list.
func FromResponse(resp *domain.WatchedResponse) *Calendar {
	dates := make([]string, 0, len(resp.Groups))
	for _, group := range resp.Groups {
		dates = append(dates, group.Date)
	}
	return New(dates)
}

// Dates returns the sorted available dates.
func (c *Calendar) Dates() []string {
	out := make([]string, len(c.dates))
	copy(out, c.dates)
	return out
}

// IsEmpty reports whether no dates are available.
func (c *Calendar) IsEmpty() bool {
	return len(c.dates) == 0
}

// Has reports whether the exact date has bookmarks.
func (c *Calendar) Has(date string) bool {
	i := sort.SearchStrings(c.dates, date)
	return i < len(c.dates) && c.dates[i] == date
}

// Latest returns the most recent available date, "" when empty.
func (c *Calendar) Latest() string {
	if len(c.dates) == 0 {
		return ""
	}
	return c.dates[len(c.dates)-1]
}

// OnOrBefore returns the last available date <= d, "" when none qualifies.
func (c *Calendar) OnOrBefore(d string) string {
	if d == "" {
		return ""
	}
	// first index with dates[i] > d
	i := sort.Search(len(c.dates), func(i int) bool { return c.dates[i] > d })
	if i == 0 {
		return ""
	}
	return c.dates[i-1]
}

// OnOrAfter returns the first available date >= d, "" when none qualifies.
func (c *Calendar) OnOrAfter(d string) string {
	if d == "" {
		return ""
	}
	i := sort.SearchStrings(c.dates, d)
	if i == len(c.dates) {
		return ""
	}
	return c.dates[i]
}

// PrevDay returns the entry immediately before base in the sorted sequence.
// This is positional, not a calendar-day offset: there is no closer fallback
// when the preceding entry is weeks away. Base must itself be an available
// date.
func (c *Calendar) PrevDay(base string) string {
	i := c.indexOf(base)
	if i <= 0 {
		return ""
	}
	return c.dates[i-1]
}

// NextDay returns the entry immediately after base in the sorted sequence.
func (c *Calendar) NextDay(base string) string {
	i := c.indexOf(base)
	if i < 0 || i >= len(c.dates)-1 {
		return ""
	}
	return c.dates[i+1]
}

// PrevWeek resolves base minus seven calendar days via OnOrBefore. When that
// resolves to base itself or to nothing, it falls back to the adjacent entry,
// guaranteeing progress whenever an earlier date exists.
func (c *Calendar) PrevWeek(base string) string {
	if base == "" {
		return ""
	}
	if candidate := c.OnOrBefore(addDays(base, -7)); candidate != "" && candidate != base {
		return candidate
	}
	return c.PrevDay(base)
}

// NextWeek resolves base plus seven calendar days via OnOrAfter, with the
// same adjacent-entry fallback as PrevWeek.
func (c *Calendar) NextWeek(base string) string {
	if base == "" {
		return ""
	}
	if candidate := c.OnOrAfter(addDays(base, 7)); candidate != "" && candidate != base {
		return candidate
	}
	return c.NextDay(base)
}

// Today resolves the current date to the nearest available one, preferring
// the present or future and falling back to the past. "" when the set is
// empty.
func (c *Calendar) Today(now time.Time) string {
	if len(c.dates) == 0 {
		return ""
	}
	today := now.UTC().Format(dayLayout)
	if c.Has(today) {
		return today
	}
	if after := c.OnOrAfter(today); after != "" {
		return after
	}
	return c.OnOrBefore(today)
}

// indexOf returns base's position in the sorted sequence, -1 when absent.
func (c *Calendar) indexOf(base string) int {
	i := sort.SearchStrings(c.dates, base)
	if i < len(c.dates) && c.dates[i] == base {
		return i
	}
	return -1
}

// addDays shifts an ISO date by n calendar days, "" on unparseable input.
func addDays(d string, n int) string {
	t, err := time.ParseInLocation(dayLayout, d, time.UTC)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, n).Format(dayLayout)
}
