package chrome

import (
	"bytes"
	"encoding/json"
)

// File represents the top level of a Chrome Bookmarks export. Roots is a map
// of named root folders ("bookmark_bar", "other", "synced"); values are kept
// raw so a single malformed root cannot fail the whole file.
type File struct {
	Checksum string                     `json:"checksum"`
	Version  int                        `json:"version"`
	Roots    map[string]json.RawMessage `json:"roots"`
}

// Node is one bookmark tree node: a folder (with children) or a url leaf.
// Children stay raw so malformed siblings are skipped individually instead of
// aborting the decode.
type Node struct {
	Type         string            `json:"type"` // "folder" | "url"
	ID           string            `json:"id"`
	GUID         string            `json:"guid"`
	Name         string            `json:"name"`
	URL          string            `json:"url,omitempty"`
	DateAdded    string            `json:"date_added,omitempty"`
	DateLastUsed string            `json:"date_last_used,omitempty"`
	Children     []json.RawMessage `json:"children,omitempty"`
}

// IsFolder reports whether the node is a folder container.
func (n *Node) IsFolder() bool { return n.Type == "folder" }

// IsURL reports whether the node is a bookmark leaf.
func (n *Node) IsURL() bool { return n.Type == "url" }

var jsonNull = []byte("null")

// decodeNode parses a raw child into a Node. Null or malformed entries return
// false and are skipped by callers.
func decodeNode(raw json.RawMessage) (Node, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return Node{}, false
	}

	var node Node
	if err := json.Unmarshal(trimmed, &node); err != nil {
		return Node{}, false
	}
	return node, true
}
