package hc

import (
	"context"
	"net/http"
	"redbank/handler/render"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
)

// Pinger reports whether a dependency is reachable
type Pinger func(ctx context.Context) error

// Handle health check, 503 when ping fails
func Handle(version string, ping Pinger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)
	r.Get("/", handle(version, ping))
	return r
}

func handle(version string, ping Pinger) http.HandlerFunc {
	start := time.Now()
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			if err := ping(r.Context()); err != nil {
				render.Unavailable(w, err)
				return
			}
		}

		render.JSON(w, render.H{
			"uptime":  time.Since(start).Truncate(time.Millisecond).String(),
			"version": version,
		})
	}
}
