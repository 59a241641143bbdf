package session

import (
	"time"

	"github.com/mlutra/watched/internal/calendar"
	"github.com/mlutra/watched/internal/domain"
	"github.com/mlutra/watched/internal/search"
)

// Session owns all navigation and search state for one rendered snapshot of
// the watched folder: the current selection, the calendar month cursor, and
// the search index. State lives here rather than in package-level variables;
// a session is built per snapshot, never shared, and discarded with it.
//
// All reads are side-effect free over the immutable snapshot; only Select and
// the month cursor mutate the session itself.
type Session struct {
	resp        *domain.WatchedResponse
	cal         *calendar.Calendar
	idx         *search.Index
	months      []calendar.Month
	selected    string
	monthCursor int
}

// New builds a session over a served payload. The initial selection is the
// most recent available date (empty when no dated groups exist).
func New(resp *domain.WatchedResponse) *Session {
	s := &Session{
		resp:   resp,
		cal:    calendar.FromResponse(resp),
		idx:    search.FromResponse(resp),
		months: nil,
	}
	s.months = s.cal.Months()
	s.Select(s.cal.Latest())
	return s
}

// Response returns the snapshot the session was built over.
func (s *Session) Response() *domain.WatchedResponse {
	return s.resp
}

// Calendar exposes the session's date set for read-only queries.
func (s *Session) Calendar() *calendar.Calendar {
	return s.cal
}

// Months returns the calendar pages, ascending.
func (s *Session) Months() []calendar.Month {
	return s.months
}

// Selected returns the currently selected date, "" when nothing is selected.
func (s *Session) Selected() string {
	return s.selected
}

// Select moves the selection to date if it is available and aligns the month
// cursor with it. Returns false (selection unchanged) otherwise.
func (s *Session) Select(date string) bool {
	if date == "" || !s.cal.Has(date) {
		return false
	}
	s.selected = date

	monthKey := date[:7]
	for i, m := range s.months {
		if m.Key == monthKey {
			s.monthCursor = i
			break
		}
	}
	return true
}

// base returns the date navigation steps from: the selection when valid,
// otherwise the most recent available date.
func (s *Session) base() string {
	if s.selected != "" && s.cal.Has(s.selected) {
		return s.selected
	}
	return s.cal.Latest()
}

// StepDay moves the selection one position through the sorted date set.
// Returns the new date and false when no date exists in that direction.
func (s *Session) StepDay(backward bool) (string, bool) {
	base := s.base()
	if base == "" {
		return "", false
	}

	var target string
	if backward {
		target = s.cal.PrevDay(base)
	} else {
		target = s.cal.NextDay(base)
	}
	if target == "" {
		return "", false
	}
	return target, s.Select(target)
}

// StepWeek moves the selection roughly seven calendar days, falling back to
// the adjacent date when the week jump cannot make progress.
func (s *Session) StepWeek(backward bool) (string, bool) {
	base := s.base()
	if base == "" {
		return "", false
	}

	var target string
	if backward {
		target = s.cal.PrevWeek(base)
	} else {
		target = s.cal.NextWeek(base)
	}
	if target == "" {
		return "", false
	}
	return target, s.Select(target)
}

// JumpToday selects the available date nearest to now (future-or-present
// first, then past).
func (s *Session) JumpToday(now time.Time) (string, bool) {
	target := s.cal.Today(now)
	if target == "" {
		return "", false
	}
	return target, s.Select(target)
}

// Search ranks the snapshot's bookmarks for the query. Pure read; repeated
// calls are independent and each fully supersedes the last.
func (s *Session) Search(query string) []search.Result {
	return s.idx.Search(query)
}

// CurrentMonth returns the month page under the cursor.
func (s *Session) CurrentMonth() (calendar.Month, bool) {
	if len(s.months) == 0 {
		return calendar.Month{}, false
	}
	return s.months[s.monthCursor], true
}

// PrevMonth moves the month cursor one page back, clamped at the first page.
func (s *Session) PrevMonth() {
	if s.monthCursor > 0 {
		s.monthCursor--
	}
}

// NextMonth moves the month cursor one page forward, clamped at the last page.
func (s *Session) NextMonth() {
	if s.monthCursor < len(s.months)-1 {
		s.monthCursor++
	}
}
