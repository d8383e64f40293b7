// Package httpapi serves pages of the user table as JSON.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// NewRouter creates the HTTP router.
//
//	GET /healthz         liveness probe
//	GET /users?page=N    one page of users, N defaults to 1
func NewRouter(pages PageFunc, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(hlog.NewHandler(logger))
	r.Use(accessLog)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", Health)
	r.Get("/users", ListUsers(pages))

	return r
}

func accessLog(next http.Handler) http.Handler {
	return hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(next)
}
