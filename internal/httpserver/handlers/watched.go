package handlers

import (
	"net/http"
	"time"

	"github.com/mlutra/watched/internal/domain"
	"github.com/mlutra/watched/internal/httpserver/deps"
	"github.com/mlutra/watched/internal/index"
	"github.com/mlutra/watched/internal/logger"
	"github.com/mlutra/watched/internal/sources/chrome"
	redisstore "github.com/mlutra/watched/internal/store/redis"
)

// loadWatched re-reads and re-parses the bookmarks file and assembles the
// served payload. Nothing is cached between calls; every request pays the
// full read. A missing watched folder is a valid, empty payload; only an
// unreadable or malformed source file is an error.
func loadWatched(d deps.Deps) (domain.WatchedResponse, error) {
	loader := chrome.NewLoader(d.BookmarksPath)
	extractor := chrome.NewExtractor(d.FolderName)
	grouper := index.NewGrouper()

	file, err := loader.Load()
	if err != nil {
		return domain.WatchedResponse{}, err
	}

	folder, found := extractor.FindFolder(file)

	var entries []domain.BookmarkEntry
	if found {
		entries = extractor.Entries(folder)
	}

	return grouper.BuildResponse(d.FolderName, d.BookmarksPath, found, entries, d.Now()), nil
}

// Watched serves the grouped bookmark payload for the watched folder.
func Watched(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		resp, err := loadWatched(d)
		if err != nil {
			d.Logger.Error("failed to load watched bookmarks",
				logger.String("path", d.BookmarksPath),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "ingestion_failed", err)
			return
		}

		elapsed := time.Since(start)
		d.Logger.Info("served watched bookmarks",
			logger.String("folder", resp.FolderName),
			logger.Bool("found", resp.Found),
			logger.Int("total", resp.TotalCount),
			logger.Int("groups", len(resp.Groups)),
			logger.Duration("elapsed", elapsed))

		recordServe(r, d, &resp, elapsed)

		writeJSON(w, http.StatusOK, resp)
	}
}

// recordServe appends a serve summary to the redis history. Best effort: a
// failure is logged and never fails the request.
func recordServe(r *http.Request, d deps.Deps, resp *domain.WatchedResponse, elapsed time.Duration) {
	if d.History == nil {
		return
	}

	rec := redisstore.ServeRecord{
		ServedAt:   resp.UpdatedAt,
		Found:      resp.Found,
		TotalCount: resp.TotalCount,
		GroupCount: len(resp.Groups),
		ElapsedMS:  elapsed.Milliseconds(),
	}

	if err := d.History.RecordServe(r.Context(), rec); err != nil {
		d.Logger.Warn("failed to record serve history", logger.Error(err))
	}
}
