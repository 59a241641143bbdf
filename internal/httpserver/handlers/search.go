package handlers

import (
	"net/http"
	"strings"

	"github.com/mlutra/watched/internal/httpserver/deps"
	"github.com/mlutra/watched/internal/logger"
	"github.com/mlutra/watched/internal/search"
	"github.com/mlutra/watched/internal/session"
)

type searchResponse struct {
	Query   string          `json:"query"`
	Results []search.Result `json:"results"`
	Total   int             `json:"total"`
}

// Search ranks the watched folder's bookmarks against the q parameter. An
// empty query is not an error; it returns an empty result list, same as a
// query matching nothing.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		resp, err := loadWatched(d)
		if err != nil {
			d.Logger.Error("failed to load watched bookmarks",
				logger.String("path", d.BookmarksPath),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "ingestion_failed", err)
			return
		}

		sess := session.New(&resp)
		results := sess.Search(query)

		d.Logger.Debug("search request",
			logger.String("query", query),
			logger.Int("results", len(results)))

		writeJSON(w, http.StatusOK, searchResponse{
			Query:   query,
			Results: results,
			Total:   len(results),
		})
	}
}
