package redbank

import (
	"redbank/core"

	"github.com/shopspring/decimal"
)

// LiquidationInput amounts in underlying units, prices in the base denom
type LiquidationInput struct {
	// debt coin attached by the liquidator
	DebtAmount decimal.Decimal
	// user's outstanding debt in the debt denom
	UserDebt decimal.Decimal
	// user's collateral in the collateral denom
	UserCollateral  decimal.Decimal
	DebtPrice       decimal.Decimal
	CollateralPrice decimal.Decimal
	// liquidation bonus of the collateral market
	LiquidationBonus decimal.Decimal
	CloseFactor      decimal.Decimal
	ClampPolicy      core.ClampPolicy
}

// LiquidationOutput amounts in underlying units
type LiquidationOutput struct {
	Repay  decimal.Decimal
	Refund decimal.Decimal
	Seize  decimal.Decimal
}

// LiquidationAmounts repay at most close_factor * user_debt and seize
// repay * debt_price * (1 + bonus) / collateral_price of the collateral.
// A debt too small for the close factor to leave a whole unit may be
// repaid in full, the repay never exceeds the debt.
//
// When the seize amount exceeds the collateral, ClampPolicyReduce seizes
// the whole collateral and shrinks the repay amount to match, while
// ClampPolicyReject fails with ErrLiquidationExceedsCollateral.
func LiquidationAmounts(in *LiquidationInput) (*LiquidationOutput, error) {
	if !in.DebtPrice.IsPositive() || !in.CollateralPrice.IsPositive() {
		return nil, core.ErrInvalidPrice
	}

	closeFactor := in.CloseFactor
	if !closeFactor.IsPositive() {
		closeFactor = DefaultCloseFactor
	}

	maxRepay := in.UserDebt.Mul(closeFactor).Floor()
	if !maxRepay.IsPositive() {
		maxRepay = in.UserDebt
	}

	repay := decimal.Min(in.DebtAmount, maxRepay, in.UserDebt)
	bonus := one.Add(in.LiquidationBonus)
	seize := repay.Mul(in.DebtPrice).Mul(bonus).DivRound(in.CollateralPrice, MaxPrecision).Floor()

	if seize.GreaterThan(in.UserCollateral) {
		if in.ClampPolicy == core.ClampPolicyReject {
			return nil, core.ErrLiquidationExceedsCollateral
		}

		seize = in.UserCollateral
		repay = seize.Mul(in.CollateralPrice).DivRound(in.DebtPrice.Mul(bonus), MaxPrecision).Floor()
	}

	if !repay.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	return &LiquidationOutput{
		Repay:  repay,
		Refund: in.DebtAmount.Sub(repay),
		Seize:  seize,
	}, nil
}
