package handlers

import (
	"net/http"

	"github.com/mlutra/watched/internal/httpserver/deps"
	"github.com/mlutra/watched/internal/logger"
	redisstore "github.com/mlutra/watched/internal/store/redis"
)

type statsResponse struct {
	Enabled bool                     `json:"enabled"`
	History []redisstore.ServeRecord `json:"history"`
	Last    *redisstore.ServeRecord  `json:"last,omitempty"`
}

// Stats exposes the recent serve history kept in redis. When no redis is
// configured the endpoint still answers, with enabled=false and an empty
// history.
func Stats(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.History == nil {
			writeJSON(w, http.StatusOK, statsResponse{
				Enabled: false,
				History: []redisstore.ServeRecord{},
			})
			return
		}

		history, err := d.History.RecentServes(r.Context(), d.HistoryLimit)
		if err != nil {
			d.Logger.Error("failed to read serve history", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "history_unavailable", err)
			return
		}

		last, err := d.History.LastServe(r.Context())
		if err != nil {
			d.Logger.Warn("failed to read last serve", logger.Error(err))
		}

		writeJSON(w, http.StatusOK, statsResponse{
			Enabled: true,
			History: history,
			Last:    last,
		})
	}
}
