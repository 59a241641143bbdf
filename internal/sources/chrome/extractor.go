package chrome

import (
	"encoding/json"
	"sort"

	"github.com/mlutra/watched/internal/domain"
)

// maxTreeDepth bounds recursion over the bookmark tree. Real exports are a
// handful of levels deep; anything past this is treated as malformed.
const maxTreeDepth = 128

// canonicalRoots is the order Chrome writes its root folders in; extra roots
// (future or vendor-specific) are visited afterwards in name order so the
// "first match" rule stays deterministic.
var canonicalRoots = []string{"bookmark_bar", "other", "synced"}

// Extractor locates a folder by name in a bookmark tree and flattens the URL
// leaves beneath it. All methods are pure functions of their input.
type Extractor struct {
	folderName string
}

// NewExtractor creates an extractor for the given watched folder name
func NewExtractor(folderName string) *Extractor {
	return &Extractor{
		folderName: folderName,
	}
}

// FolderName returns the watched folder name.
func (e *Extractor) FolderName() string {
	return e.folderName
}

// FindFolder depth-first searches every root for the first folder node whose
// name matches the watched folder name.
func (e *Extractor) FindFolder(file *File) (Node, bool) {
	if file == nil {
		return Node{}, false
	}

	for _, key := range rootOrder(file.Roots) {
		root, ok := decodeNode(file.Roots[key])
		if !ok {
			continue
		}
		if found, ok := e.findInNode(root, 0); ok {
			return found, true
		}
	}

	return Node{}, false
}

func (e *Extractor) findInNode(node Node, depth int) (Node, bool) {
	if depth > maxTreeDepth {
		return Node{}, false
	}

	if node.IsFolder() && node.Name == e.folderName {
		return node, true
	}

	for _, raw := range node.Children {
		child, ok := decodeNode(raw)
		if !ok {
			continue
		}
		if found, ok := e.findInNode(child, depth+1); ok {
			return found, true
		}
	}

	return Node{}, false
}

// Entries flattens every URL leaf beneath the folder into bookmark entries
// with their folder-path breadcrumbs. The breadcrumb runs from (but not
// including) the watched folder down to the leaf's immediate parent; folders
// without a name contribute no segment. Malformed children are skipped.
func (e *Extractor) Entries(folder Node) []domain.BookmarkEntry {
	entries := make([]domain.BookmarkEntry, 0)
	e.collect(folder.Children, nil, &entries, 0)
	return entries
}

func (e *Extractor) collect(children []json.RawMessage, parents []string, bucket *[]domain.BookmarkEntry, depth int) {
	if depth > maxTreeDepth {
		return
	}

	for _, raw := range children {
		node, ok := decodeNode(raw)
		if !ok {
			continue
		}

		switch {
		case node.IsURL():
			*bucket = append(*bucket, mapEntry(node, parents))

		case node.IsFolder():
			next := parents
			if node.Name != "" {
				next = append(append([]string{}, parents...), node.Name)
			}
			e.collect(node.Children, next, bucket, depth+1)
		}
		// unknown node types are skipped
	}
}

// mapEntry converts a url leaf to a domain entry, normalizing its timestamps.
func mapEntry(node Node, parents []string) domain.BookmarkEntry {
	title := node.Name
	if title == "" {
		title = node.URL
	}

	path := make([]string, len(parents))
	copy(path, parents)

	return domain.BookmarkEntry{
		ID:              node.ID,
		GUID:            node.GUID,
		Title:           title,
		URL:             node.URL,
		Path:            path,
		DateAdded:       domain.ChromeTime(node.DateAdded),
		DateLastUsed:    domain.ChromeTime(node.DateLastUsed),
		RawDateAdded:    node.DateAdded,
		RawDateLastUsed: node.DateLastUsed,
	}
}

// rootOrder returns the root keys in canonical-then-alphabetical order.
func rootOrder(roots map[string]json.RawMessage) []string {
	seen := make(map[string]bool, len(roots))
	order := make([]string, 0, len(roots))

	for _, key := range canonicalRoots {
		if _, ok := roots[key]; ok {
			order = append(order, key)
			seen[key] = true
		}
	}

	extra := make([]string, 0, len(roots))
	for key := range roots {
		if !seen[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)

	return append(order, extra...)
}
