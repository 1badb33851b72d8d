package rest

import (
	"net/http"
	"redbank/core"
	"redbank/handler/param"
	"redbank/handler/render"
	"redbank/handler/views"

	"github.com/shopspring/decimal"
)

type depositRequest struct {
	Sender     string `json:"sender" valid:"required"`
	OnBehalfOf string `json:"on_behalf_of"`
	Denom      string `json:"denom" valid:"required"`
	Amount     string `json:"amount" valid:"required,int"`
}

func depositHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params depositRequest
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := param.Decimal(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := ledger.Deposit(r.Context(), &core.DepositRequest{
			Sender:     params.Sender,
			OnBehalfOf: params.OnBehalfOf,
			Denom:      params.Denom,
			Amount:     amount,
		})
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, result)
	}
}

type borrowRequest struct {
	User      string `json:"user" valid:"required"`
	Denom     string `json:"denom" valid:"required"`
	Amount    string `json:"amount" valid:"required,int"`
	Recipient string `json:"recipient"`
}

func borrowHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params borrowRequest
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := param.Decimal(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := ledger.Borrow(r.Context(), &core.BorrowRequest{
			User:      params.User,
			Denom:     params.Denom,
			Amount:    amount,
			Recipient: params.Recipient,
		})
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func repayHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params depositRequest
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := param.Decimal(params.Amount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := ledger.Repay(r.Context(), &core.RepayRequest{
			Sender:     params.Sender,
			OnBehalfOf: params.OnBehalfOf,
			Denom:      params.Denom,
			Amount:     amount,
		})
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, result)
	}
}

// withdrawRequest an empty amount withdraws everything
type withdrawRequest struct {
	User      string `json:"user" valid:"required"`
	Denom     string `json:"denom" valid:"required"`
	Amount    string `json:"amount" valid:"int"`
	Recipient string `json:"recipient"`
}

func withdrawHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params withdrawRequest
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		req := &core.WithdrawRequest{
			User:      params.User,
			Denom:     params.Denom,
			Recipient: params.Recipient,
		}

		if params.Amount != "" {
			amount, err := param.Decimal(params.Amount)
			if err != nil {
				render.BadRequest(w, err)
				return
			}

			req.Amount = decimal.NewNullDecimal(amount)
		}

		result, err := ledger.Withdraw(r.Context(), req)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, result)
	}
}

type liquidateRequest struct {
	Liquidator      string `json:"liquidator" valid:"required"`
	User            string `json:"user" valid:"required"`
	CollateralDenom string `json:"collateral_denom" valid:"required"`
	DebtDenom       string `json:"debt_denom" valid:"required"`
	DebtAmount      string `json:"debt_amount" valid:"required,int"`
	Recipient       string `json:"recipient"`
}

func liquidateHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params liquidateRequest
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		amount, err := param.Decimal(params.DebtAmount)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := ledger.Liquidate(r.Context(), &core.LiquidateRequest{
			Liquidator:      params.Liquidator,
			User:            params.User,
			CollateralDenom: params.CollateralDenom,
			DebtDenom:       params.DebtDenom,
			DebtAmount:      amount,
			Recipient:       params.Recipient,
		})
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, result)
	}
}

func collateralStatusHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			User   string `json:"user" valid:"required"`
			Denom  string `json:"denom" valid:"required"`
			Enable bool   `json:"enable"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := ledger.UpdateAssetCollateralStatus(r.Context(), params.User, params.Denom, params.Enable); err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.DefaultSuccess)
	}
}

func loanLimitHandler(ledger core.ILedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Caller string `json:"caller" valid:"required"`
			User   string `json:"user" valid:"required"`
			Denom  string `json:"denom" valid:"required"`
			Limit  string `json:"limit" valid:"required,int"`
		}

		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		limit, err := param.Decimal(params.Limit)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := ledger.UpdateUncollateralizedLoanLimit(r.Context(), params.Caller, params.User, params.Denom, limit); err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, views.DefaultSuccess)
	}
}
