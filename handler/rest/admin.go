package rest

import (
	"errors"
	"net/http"
	"redbank/core"
	"redbank/handler/param"
	"redbank/handler/render"
	"redbank/handler/views"
	"redbank/service/oracle"
)

var errDenomRequired = errors.New("denom: non zero value required")

func addressesHandler(addresses AddressRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := addresses.All(r.Context())
		if err != nil {
			render.Error(w, err)
			return
		}

		if list == nil {
			list = []*core.Address{}
		}

		render.JSON(w, list)
	}
}

func setAddressHandler(addresses AddressRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Caller  string `json:"caller" valid:"required"`
			Type    string `json:"type" valid:"required"`
			Address string `json:"address" valid:"required"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := addresses.Set(r.Context(), params.Caller, core.AddressType(params.Type), params.Address); err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.DefaultSuccess)
	}
}

func pricesHandler(prices core.IPriceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := prices.All(r.Context())
		if err != nil {
			render.Error(w, err)
			return
		}

		if list == nil {
			list = []*core.Price{}
		}

		render.JSON(w, list)
	}
}

func setPriceHandler(system *core.System, prices core.IPriceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Caller string `json:"caller" valid:"required"`
			Denom  string `json:"denom" valid:"required"`
			Price  string `json:"price" valid:"required,float"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		price, err := param.Decimal(params.Price)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := oracle.SetPrice(r.Context(), system, prices, params.Caller, params.Denom, price); err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.DefaultSuccess)
	}
}
