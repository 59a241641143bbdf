package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mlutra/watched/internal/httpserver/deps"
	"github.com/mlutra/watched/internal/httpserver/handlers"
	"github.com/mlutra/watched/internal/httpserver/mw"
)

func init() { Register(registerSearch) }

func registerSearch(r chi.Router, d deps.Deps) {
	r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		apiRateLimit(d),
	).Get("/api/search", handlers.Search(d))
}
