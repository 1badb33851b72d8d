package views

import (
	"redbank/core"

	"github.com/shopspring/decimal"
)

// Position user position view
type Position struct {
	User        string                 `json:"user"`
	Collaterals []*core.UserCollateral `json:"collaterals"`
	Debts       []*core.UserDebt       `json:"debts"`
	*core.UserPosition
	// collateral weighted averages of the enabled collaterals
	AvgMaxLTV               decimal.Decimal `json:"avg_max_ltv"`
	AvgLiquidationThreshold decimal.Decimal `json:"avg_liquidation_threshold"`
	Liquidatable            bool            `json:"liquidatable"`
}

// Scaled scaled amount view
type Scaled struct {
	Denom        string `json:"denom"`
	Amount       string `json:"amount"`
	AmountScaled string `json:"amount_scaled"`
}

// UserPosition position view with empty lists instead of nulls
func UserPosition(user string, collaterals []*core.UserCollateral, debts []*core.UserDebt, position *core.UserPosition) Position {
	view := Position{
		User:                    user,
		Collaterals:             collaterals,
		Debts:                   debts,
		UserPosition:            position,
		AvgMaxLTV:               position.AvgMaxLTV(),
		AvgLiquidationThreshold: position.AvgLiquidationThreshold(),
		Liquidatable:            position.IsLiquidatable(),
	}

	if view.Collaterals == nil {
		view.Collaterals = []*core.UserCollateral{}
	}

	if view.Debts == nil {
		view.Debts = []*core.UserDebt{}
	}

	return view
}
