package chrome

import (
	"encoding/json"
	"fmt"
	"os"
)

// Loader handles loading and parsing of a Chrome Bookmarks JSON file
type Loader struct {
	filePath string
}

// NewLoader creates a new Chrome bookmarks loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the bookmarks file. A missing, unreadable, or
// syntactically invalid file is fatal for the caller's request.
func (l *Loader) Load() (*File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmarks file: %w", err)
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse bookmarks json: %w", err)
	}

	return &file, nil
}

// Path returns the configured source file path.
func (l *Loader) Path() string {
	return l.filePath
}
