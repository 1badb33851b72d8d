package rest

import (
	"context"
	"net/http"
	"redbank/core"
	"redbank/handler/param"
	"redbank/handler/render"
	"redbank/handler/views"

	"github.com/shopspring/decimal"
)

func marketsHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		markets, err := ledger.Markets(r.Context())
		if err != nil {
			render.Error(w, err)
			return
		}

		if markets == nil {
			markets = []*core.MarketInfo{}
		}

		render.JSON(w, markets)
	}
}

func marketHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Denom string `json:"denom" valid:"required"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		market, err := ledger.Market(r.Context(), params.Denom)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, market)
	}
}

type initAssetRequest struct {
	Caller string `json:"caller" valid:"required"`
	Denom  string `json:"denom" valid:"required"`
	core.AssetParams
}

func initAssetHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params initAssetRequest
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		market, err := ledger.InitAsset(r.Context(), params.Caller, params.Denom, params.AssetParams)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, market)
	}
}

type scaledRequest struct {
	Denom  string `json:"denom" valid:"required"`
	Amount string `json:"amount" valid:"required,int"`
}

func scaledLiquidityHandler(ledger core.ILedger) http.HandlerFunc {
	return scaledHandler(ledger.ScaledLiquidityAmount)
}

func scaledDebtHandler(ledger core.ILedger) http.HandlerFunc {
	return scaledHandler(ledger.ScaledDebtAmount)
}

func scaledHandler(scale func(ctx context.Context, denom string, amount decimal.Decimal) (decimal.Decimal, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params scaledRequest
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := param.Decimal(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		scaled, err := scale(r.Context(), params.Denom, amount)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.Scaled{
			Denom:        params.Denom,
			Amount:       amount.String(),
			AmountScaled: scaled.String(),
		})
	}
}
