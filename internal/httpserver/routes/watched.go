package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mlutra/watched/internal/httpserver/deps"
	"github.com/mlutra/watched/internal/httpserver/handlers"
	"github.com/mlutra/watched/internal/httpserver/mw"
)

func init() { Register(registerWatched) }

// apiRateLimit bounds per-IP load on the endpoints that re-read the
// bookmarks file on every hit.
func apiRateLimit(d deps.Deps) Middleware {
	return mw.RateLimit(mw.RateLimitConfig{
		Burst:             20,
		RefillPerIPPerMin: 60,
		MaxEntries:        10_000,
		SweepInterval:     time.Minute,
		IdleTTL:           15 * time.Minute,
		TrustProxy:        d.TrustProxy,
	})
}

func registerWatched(r chi.Router, d deps.Deps) {
	r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		apiRateLimit(d),
	).Get("/api/watched", handlers.Watched(d))
}
