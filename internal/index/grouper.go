package index

import (
	"sort"
	"time"

	"github.com/mlutra/watched/internal/domain"
)

// Grouper partitions flattened bookmark entries into date-keyed groups and
// assembles the served response. It holds no state across calls; the payload
// is rebuilt from the source on every request.
type Grouper struct{}

// NewGrouper creates a new grouper
func NewGrouper() *Grouper {
	return &Grouper{}
}

// BuildResponse sorts entries by recency, partitions them by added date, and
// orders the groups newest-first. When the watched folder was not found it
// returns a well-formed empty response with Found=false.
func (g *Grouper) BuildResponse(folderName, sourcePath string, found bool, entries []domain.BookmarkEntry, now time.Time) domain.WatchedResponse {
	resp := domain.WatchedResponse{
		FolderName: folderName,
		SourcePath: sourcePath,
		Found:      found,
		UpdatedAt:  now,
		Groups:     make([]domain.DateGroup, 0),
	}

	if !found {
		return resp
	}

	sorted := sortByRecency(entries)
	resp.Groups = groupByDay(sorted)
	resp.TotalCount = len(sorted)

	return resp
}

// sortByRecency orders entries by DateAdded descending. Dated entries sort
// before dateless ones; dateless entries keep their encounter order.
func sortByRecency(entries []domain.BookmarkEntry) []domain.BookmarkEntry {
	sorted := make([]domain.BookmarkEntry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].DateAdded, sorted[j].DateAdded
		switch {
		case a != nil && b != nil:
			return a.After(*b)
		case a != nil:
			return true
		default:
			return false
		}
	})

	return sorted
}

// dayBucket pairs a group key with its members and the recency timestamp the
// group sorts by.
type dayBucket struct {
	date          string
	items         []domain.BookmarkEntry
	sortTimestamp int64
}

// groupByDay partitions recency-sorted entries by their 10-character date key
// ("unknown" for dateless entries) and orders the groups by each group's most
// recent member, descending. The unknown group carries a zero sort timestamp,
// so it lands at the oldest end unless a real group also resolves to zero.
func groupByDay(sorted []domain.BookmarkEntry) []domain.DateGroup {
	buckets := make([]*dayBucket, 0)
	byDate := make(map[string]*dayBucket)

	for _, entry := range sorted {
		key := entry.DayKey()
		bucket, ok := byDate[key]
		if !ok {
			bucket = &dayBucket{date: key}
			if entry.DateAdded != nil {
				bucket.sortTimestamp = entry.DateAdded.UnixMilli()
			}
			byDate[key] = bucket
			buckets = append(buckets, bucket)
		}
		bucket.items = append(bucket.items, entry)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].sortTimestamp > buckets[j].sortTimestamp
	})

	groups := make([]domain.DateGroup, 0, len(buckets))
	for _, bucket := range buckets {
		groups = append(groups, domain.DateGroup{
			Date:  bucket.date,
			Items: bucket.items,
			Count: len(bucket.items),
		})
	}

	return groups
}
