package search

import (
	"sort"
	"strings"

	"github.com/mlutra/watched/internal/domain"
)

const (
	// MaxResults caps every result list.
	MaxResults = 8

	// Field weights applied to the raw fuzzy score; the best weighted field
	// wins for each bookmark.
	WeightTitle = 1.2
	WeightURL   = 0.8
	WeightPath  = 0.6
)

// Result is one ranked search hit: the entry plus its score and denormalized
// display fields. Transient, recomputed per query.
type Result struct {
	domain.BookmarkEntry
	Score     float64 `json:"score"`
	Hostname  string  `json:"hostname"`
	PathLabel string  `json:"pathLabel"`
}

// Index ranks bookmarks for a query by fuzzy-matching three fields per entry.
// It holds an immutable snapshot of the flattened entry list; every Search
// call recomputes the ranking from scratch.
type Index struct {
	entries []domain.BookmarkEntry
}

// NewIndex creates an index over the given entries
func NewIndex(entries []domain.BookmarkEntry) *Index {
	return &Index{entries: entries}
}

// FromResponse builds an index over the served payload's flattened entries.
func FromResponse(resp *domain.WatchedResponse) *Index {
	return NewIndex(resp.Flatten())
}

// Count returns the number of indexed entries.
func (ix *Index) Count() int {
	return len(ix.entries)
}

// Search returns up to MaxResults entries ranked by descending score, ties
// broken by title. An empty or whitespace-only query yields an empty list,
// the same as a query matching nothing; callers distinguish the two by
// checking their input.
func (ix *Index) Search(query string) []Result {
	query = strings.TrimSpace(query)
	results := make([]Result, 0, MaxResults)
	if query == "" {
		return results
	}

	for i := range ix.entries {
		entry := &ix.entries[i]

		score, ok := scoreEntry(entry, query)
		if !ok {
			continue
		}

		results = append(results, Result{
			BookmarkEntry: *entry,
			Score:         score,
			Hostname:      entry.Hostname(),
			PathLabel:     entry.PathLabel(),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Title < results[j].Title
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// scoreEntry takes the maximum weighted fuzzy score across title, URL, and
// path label. Empty and non-matching fields are skipped; ok is false when no
// field matched at all.
func scoreEntry(entry *domain.BookmarkEntry, query string) (float64, bool) {
	fields := []struct {
		text   string
		weight float64
	}{
		{entry.Title, WeightTitle},
		{entry.URL, WeightURL},
		{entry.PathLabel(), WeightPath},
	}

	var best float64
	matched := false

	for _, f := range fields {
		if f.text == "" {
			continue
		}
		raw, ok := domain.FuzzyScore(f.text, query)
		if !ok {
			continue
		}
		weighted := raw * f.weight
		if !matched || weighted > best {
			best = weighted
			matched = true
		}
	}

	return best, matched
}
