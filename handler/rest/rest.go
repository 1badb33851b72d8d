package rest

import (
	"context"
	"errors"
	"net/http"
	"redbank/core"
	"redbank/handler/render"

	"github.com/go-chi/chi"
)

// AddressRegistry role address registry
type AddressRegistry interface {
	Set(ctx context.Context, caller string, addressType core.AddressType, addr string) error
	All(ctx context.Context) ([]*core.Address, error)
}

// Handle handle rest api request
func Handle(
	system *core.System,
	ledger core.ILedger,
	events core.IEventStore,
	addresses AddressRegistry,
	prices core.IPriceStore,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Route("/markets", func(r chi.Router) {
		r.Get("/", marketsHandler(ledger))
		r.Get("/{denom}", marketHandler(ledger))
		r.Post("/{denom}", initAssetHandler(ledger))
		r.Get("/{denom}/scaled-liquidity", scaledLiquidityHandler(ledger))
		r.Get("/{denom}/scaled-debt", scaledDebtHandler(ledger))
	})

	router.Post("/deposit", depositHandler(ledger))
	router.Post("/borrow", borrowHandler(ledger))
	router.Post("/repay", repayHandler(ledger))
	router.Post("/withdraw", withdrawHandler(ledger))
	router.Post("/liquidate", liquidateHandler(ledger))
	router.Post("/collateral-status", collateralStatusHandler(ledger))
	router.Post("/loan-limits", loanLimitHandler(ledger))

	router.Route("/users/{user}", func(r chi.Router) {
		r.Get("/position", positionHandler(ledger))
		r.Get("/collaterals", collateralsHandler(ledger))
		r.Get("/collaterals/{denom}", collateralHandler(ledger))
		r.Get("/debts", debtsHandler(ledger))
		r.Get("/debts/{denom}", debtHandler(ledger))
		r.Get("/loan-limits/{denom}", loanLimitQueryHandler(ledger))
		r.Get("/events", eventsHandler(events))
	})

	router.Get("/addresses", addressesHandler(addresses))
	router.Post("/addresses", setAddressHandler(addresses))
	router.Get("/prices", pricesHandler(prices))
	router.Post("/prices", setPriceHandler(system, prices))

	return router
}
