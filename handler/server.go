package handler

import (
	"errors"
	"net/http"
	"redbank/core"
	"redbank/handler/hc"
	"redbank/handler/render"
	"redbank/handler/rest"

	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Server server
type Server struct {
	system    *core.System
	ledger    core.ILedger
	events    core.IEventStore
	addresses rest.AddressRegistry
	prices    core.IPriceStore
	ping      hc.Pinger
}

// New new server function
func New(
	system *core.System,
	ledger core.ILedger,
	events core.IEventStore,
	addresses rest.AddressRegistry,
	prices core.IPriceStore,
	ping hc.Pinger,
) Server {
	return Server{
		system:    system,
		ledger:    ledger,
		events:    events,
		addresses: addresses,
		prices:    prices,
		ping:      ping,
	}
}

// Handler root handler: /hc, /metrics and the rest api under /api
func (s Server) Handler() http.Handler {
	mux := chi.NewMux()
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(cors.AllowAll().Handler)
	mux.Use(logger.WithRequestID)
	mux.Use(middleware.Logger)
	mux.Use(middleware.NewCompressor(5).Handler)

	mux.Mount("/hc", hc.Handle(s.system.Version, s.ping))
	mux.Mount("/metrics", promhttp.Handler())
	mux.Mount("/api", s.HandleRestAPI())

	return mux
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	r.Mount("/", rest.Handle(s.system, s.ledger, s.events, s.addresses, s.prices))
	return r
}
