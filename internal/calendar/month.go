package calendar

import (
	"fmt"
	"time"
)

// Month is one calendar page: the "YYYY-MM" bucket of available dates used to
// enable day cells in a navigable grid.
type Month struct {
	Key        string   `json:"key"` // "YYYY-MM"
	Year       int      `json:"year"`
	MonthIndex int      `json:"monthIndex"` // 0-based
	Label      string   `json:"label"`      // ex: "January 2024"
	Dates      []string `json:"dates"`      // available dates within the month, ascending
}

// Cell is one slot of a month grid. Filler cells pad the leading and trailing
// edges so rows align to a Sunday-first 7-column layout.
type Cell struct {
	Day     int    `json:"day,omitempty"`  // 1-based day of month, 0 for fillers
	Date    string `json:"date,omitempty"` // "YYYY-MM-DD", empty for fillers
	HasData bool   `json:"hasData"`
	Filler  bool   `json:"filler,omitempty"`
}

// Months groups the available dates into month buckets, ordered ascending by
// (year, month).
func (c *Calendar) Months() []Month {
	byKey := make(map[string]*Month)
	order := make([]string, 0)

	for _, d := range c.dates {
		key := d[:7]
		m, ok := byKey[key]
		if !ok {
			t, err := time.ParseInLocation(dayLayout, key+"-01", time.UTC)
			if err != nil {
				continue
			}
			m = &Month{
				Key:        key,
				Year:       t.Year(),
				MonthIndex: int(t.Month()) - 1,
				Label:      t.Format("January 2006"),
			}
			byKey[key] = m
			order = append(order, key)
		}
		m.Dates = append(m.Dates, d)
	}

	// c.dates is sorted, so insertion order is already chronological; the
	// explicit ordering of the result relies on that.
	months := make([]Month, 0, len(order))
	for _, key := range order {
		months = append(months, *byKey[key])
	}
	return months
}

// Grid renders the month as Sunday-first rows of seven cells, with filler
// cells before the 1st and after the last day. Days without bookmarks are
// cells with HasData=false, which callers render disabled.
func (m Month) Grid() []Cell {
	available := make(map[string]bool, len(m.Dates))
	for _, d := range m.Dates {
		available[d] = true
	}

	first := time.Date(m.Year, time.Month(m.MonthIndex+1), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := int(first.Weekday()) // Sunday == 0

	cells := make([]Cell, 0, leading+daysInMonth+6)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{Filler: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%s-%02d", m.Key, day)
		cells = append(cells, Cell{
			Day:     day,
			Date:    date,
			HasData: available[date],
		})
	}

	trailing := (7 - len(cells)%7) % 7
	for i := 0; i < trailing; i++ {
		cells = append(cells, Cell{Filler: true})
	}

	return cells
}
