package handlers

import (
	"net/http"
	"os"

	"github.com/mlutra/watched/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready  bool   `json:"ready"`
	Reason string `json:"reason,omitempty"`
}

// Readyz reports whether the bookmarks file is readable. The folder itself
// may be absent; that still serves a valid empty payload, so only an
// unreadable source makes the process not ready.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := os.Open(d.BookmarksPath)
		if err != nil {
			writeJSON(w, http.StatusServiceUnavailable, readyzResponse{
				Ready:  false,
				Reason: err.Error(),
			})
			return
		}
		_ = f.Close()

		writeJSON(w, http.StatusOK, readyzResponse{Ready: true})
	}
}
