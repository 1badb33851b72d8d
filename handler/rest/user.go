package rest

import (
	"net/http"
	"redbank/core"
	"redbank/handler/param"
	"redbank/handler/render"
	"redbank/handler/views"

	"github.com/spf13/cast"
)

type userRequest struct {
	User  string `json:"user" valid:"required"`
	Denom string `json:"denom"`
}

func bindUser(w http.ResponseWriter, r *http.Request, requireDenom bool) (*userRequest, bool) {
	var params userRequest
	if err := param.Binding(r, &params); err != nil {
		render.BadRequest(w, err)
		return nil, false
	}

	if requireDenom && params.Denom == "" {
		render.BadRequest(w, errDenomRequired)
		return nil, false
	}

	return &params, true
}

func positionHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := bindUser(w, r, false)
		if !ok {
			return
		}

		ctx := r.Context()
		position, err := ledger.UserPosition(ctx, params.User)
		if err != nil {
			render.Error(w, err)
			return
		}

		collaterals, err := ledger.UserCollaterals(ctx, params.User)
		if err != nil {
			render.Error(w, err)
			return
		}

		debts, err := ledger.UserDebts(ctx, params.User)
		if err != nil {
			render.Error(w, err)
			return
		}

		view := views.UserPosition(params.User, collaterals, debts, position)
		render.JSON(w, view)
	}
}

func collateralsHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := bindUser(w, r, false)
		if !ok {
			return
		}

		collaterals, err := ledger.UserCollaterals(r.Context(), params.User)
		if err != nil {
			render.Error(w, err)
			return
		}

		if collaterals == nil {
			collaterals = []*core.UserCollateral{}
		}

		render.JSON(w, collaterals)
	}
}

func collateralHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := bindUser(w, r, true)
		if !ok {
			return
		}

		collateral, err := ledger.UserCollateral(r.Context(), params.User, params.Denom)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, collateral)
	}
}

func debtsHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := bindUser(w, r, false)
		if !ok {
			return
		}

		debts, err := ledger.UserDebts(r.Context(), params.User)
		if err != nil {
			render.Error(w, err)
			return
		}

		if debts == nil {
			debts = []*core.UserDebt{}
		}

		render.JSON(w, debts)
	}
}

func debtHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := bindUser(w, r, true)
		if !ok {
			return
		}

		debt, err := ledger.UserDebt(r.Context(), params.User, params.Denom)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, debt)
	}
}

func loanLimitQueryHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := bindUser(w, r, true)
		if !ok {
			return
		}

		limit, err := ledger.UncollateralizedLoanLimit(r.Context(), params.User, params.Denom)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, render.H{
			"user":  params.User,
			"denom": params.Denom,
			"limit": limit,
		})
	}
}

// events of the user in commit order, paged by id
func eventsHandler(events core.IEventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := bindUser(w, r, false)
		if !ok {
			return
		}

		query := r.URL.Query()
		from := cast.ToUint64(query.Get("from"))
		limit := cast.ToInt(query.Get("limit"))
		if limit <= 0 || limit > 500 {
			limit = 500
		}

		list, err := events.ListByUser(r.Context(), params.User, from, limit)
		if err != nil {
			render.Error(w, err)
			return
		}

		if list == nil {
			list = []*core.Event{}
		}

		render.JSON(w, list)
	}
}
