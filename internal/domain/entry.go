package domain

import (
	"net/url"
	"strings"
	"time"
)

// UnknownDateKey is the group key for entries without a parseable added date.
const UnknownDateKey = "unknown"

// BookmarkEntry is one URL leaf extracted from the watched folder.
// Immutable once constructed.
type BookmarkEntry struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	// ID is Chrome's own node id, carried through verbatim.
	ID string `json:"id"`

	// GUID is Chrome's stable identifier for the node.
	GUID string `json:"guid"`

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Title is the bookmark name; falls back to URL when the export has none.
	Title string `json:"title"`

	// URL is the bookmarked address.
	URL string `json:"url"`

	// Path is the breadcrumb of enclosing folder names, root-to-leaf,
	// excluding the watched folder itself. Never nil.
	Path []string `json:"path"`

	// ─────────────────────────────
	// Timestamps
	// ─────────────────────────────

	// DateAdded is the normalized added instant, nil when the export carried
	// no usable timestamp.
	DateAdded *time.Time `json:"dateAdded"`

	// DateLastUsed is the normalized last-used instant, nil when absent.
	DateLastUsed *time.Time `json:"dateLastUsed"`

	// RawDateAdded and RawDateLastUsed preserve the source microsecond
	// strings for debugging.
	RawDateAdded    string `json:"rawDateAdded"`
	RawDateLastUsed string `json:"rawDateLastUsed"`
}

// DayKey returns the 10-character UTC date the entry groups under, or
// UnknownDateKey when it has no added date.
func (e *BookmarkEntry) DayKey() string {
	if e.DateAdded == nil {
		return UnknownDateKey
	}
	return e.DateAdded.UTC().Format("2006-01-02")
}

// PathLabel renders the breadcrumb as a single display string.
func (e *BookmarkEntry) PathLabel() string {
	return strings.Join(e.Path, " / ")
}

// Hostname extracts the host of the bookmarked URL, empty when unparseable.
func (e *BookmarkEntry) Hostname() string {
	u, err := url.Parse(e.URL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// DateGroup is the set of entries sharing one added date, newest first.
type DateGroup struct {
	Date  string          `json:"date"` // "YYYY-MM-DD" or UnknownDateKey
	Items []BookmarkEntry `json:"items"`
	Count int             `json:"count"`
}

// WatchedResponse is the full served payload for the watched folder.
//
// Invariants: TotalCount equals the sum of group counts, and Found=false
// implies Groups is empty (but present, never null).
type WatchedResponse struct {
	FolderName string      `json:"folderName"`
	SourcePath string      `json:"sourcePath"`
	Found      bool        `json:"found"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	Groups     []DateGroup `json:"groups"`
	TotalCount int         `json:"totalCount"`
}

// Flatten returns every entry across all groups in served order.
func (r *WatchedResponse) Flatten() []BookmarkEntry {
	entries := make([]BookmarkEntry, 0, r.TotalCount)
	for _, group := range r.Groups {
		entries = append(entries, group.Items...)
	}
	return entries
}
