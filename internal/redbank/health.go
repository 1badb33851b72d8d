package redbank

import (
	"redbank/core"

	"github.com/shopspring/decimal"
)

// Asset one denom of a user's position, amounts in underlying units
type Asset struct {
	Denom                string
	Price                decimal.Decimal
	MaxLoanToValue       decimal.Decimal
	LiquidationThreshold decimal.Decimal

	Collateral        decimal.Decimal
	CollateralEnabled bool

	Debt decimal.Decimal
	// debt governed by an uncollateralized loan limit
	Uncollateralized bool
}

// Position aggregate assets into a user position
//
// max_ltv_hf = sum(collateral_value * max_ltv) / debt_value
// liq_threshold_hf = sum(collateral_value * liquidation_threshold) / debt_value
func Position(assets []*Asset) *core.UserPosition {
	p := &core.UserPosition{
		TotalEnabledCollateral:                 decimal.Zero,
		TotalCollateralizedDebt:                decimal.Zero,
		WeightedMaxLTVCollateral:               decimal.Zero,
		WeightedLiquidationThresholdCollateral: decimal.Zero,
		HealthStatus:                           core.NotBorrowing(),
	}

	for _, a := range assets {
		if a.CollateralEnabled && a.Collateral.IsPositive() {
			value := a.Collateral.Mul(a.Price)
			p.TotalEnabledCollateral = p.TotalEnabledCollateral.Add(value)
			p.WeightedMaxLTVCollateral = p.WeightedMaxLTVCollateral.Add(value.Mul(a.MaxLoanToValue))
			p.WeightedLiquidationThresholdCollateral = p.WeightedLiquidationThresholdCollateral.Add(value.Mul(a.LiquidationThreshold))
		}

		if !a.Uncollateralized && a.Debt.IsPositive() {
			p.TotalCollateralizedDebt = p.TotalCollateralizedDebt.Add(a.Debt.Mul(a.Price))
		}
	}

	if p.TotalCollateralizedDebt.IsPositive() {
		debt := p.TotalCollateralizedDebt
		p.HealthStatus = core.Borrowing(
			p.WeightedLiquidationThresholdCollateral.DivRound(debt, MaxPrecision),
			p.WeightedMaxLTVCollateral.DivRound(debt, MaxPrecision),
		)
	}

	return p
}

// MaxLTVHealthy not borrowing or max_ltv_hf >= 1
func MaxLTVHealthy(p *core.UserPosition) bool {
	_, maxLTVHF, ok := p.HealthStatus.Borrowing()
	return !ok || maxLTVHF.GreaterThanOrEqual(one)
}
