package redbank

import (
	"redbank/core"
	"time"

	"github.com/shopspring/decimal"
)

// NewMarket market with both indexes at 1
func NewMarket(denom string, params *core.AssetParams, now time.Time) *core.Market {
	m := &core.Market{
		Denom:              denom,
		LiquidityIndex:     one,
		BorrowIndex:        one,
		IndexesLastUpdated: now.Unix(),
	}

	ApplyAssetParams(m, params)
	RefreshRates(m)
	return m
}

// ApplyAssetParams copy params onto the market
func ApplyAssetParams(m *core.Market, params *core.AssetParams) {
	m.InterestRateModel = params.InterestRateModel
	m.ReserveFactor = params.ReserveFactor
	m.MaxLoanToValue = params.MaxLoanToValue
	m.LiquidationThreshold = params.LiquidationThreshold
	m.LiquidationBonus = params.LiquidationBonus
	m.DepositCap = params.DepositCap
	m.DepositEnabled = params.DepositEnabled
	m.BorrowEnabled = params.BorrowEnabled
}

// TotalLiquidity underlying liquidity of the market, pending reserve included
func TotalLiquidity(m *core.Market) decimal.Decimal {
	return UnderlyingLiquidity(m.ScaledLiquidityTotal.Add(m.PendingReserveScaled), m.LiquidityIndex)
}

// TotalDebt underlying debt of the market
func TotalDebt(m *core.Market) decimal.Decimal {
	return UnderlyingDebt(m.ScaledDebtTotal, m.BorrowIndex)
}

// AvailableLiquidity liquidity not lent out, never negative
func AvailableLiquidity(m *core.Market) decimal.Decimal {
	available := TotalLiquidity(m).Sub(TotalDebt(m))
	if available.IsNegative() {
		return decimal.Zero
	}

	return available
}

// CurrentUtilizationRate utilization rate at the current indexes
func CurrentUtilizationRate(m *core.Market) decimal.Decimal {
	return UtilizationRate(TotalLiquidity(m), TotalDebt(m))
}

// RefreshRates recompute the informational rates from the current totals
func RefreshRates(m *core.Market) {
	m.BorrowRate, m.LiquidityRate = Rates(m.InterestRateModel, m.ReserveFactor, CurrentUtilizationRate(m))
}

// AccrueInterest compound both indexes up to now and return the reserve
// share of the accrued interest in underlying units.
//
// Accruing twice at the same time is a no-op. A timestamp before the last
// update returns ErrInvariantViolation and leaves the market untouched.
func AccrueInterest(m *core.Market, now time.Time) (decimal.Decimal, error) {
	elapsed := now.Unix() - m.IndexesLastUpdated
	if elapsed < 0 {
		return decimal.Zero, core.ErrInvariantViolation
	}

	if elapsed == 0 {
		return decimal.Zero, nil
	}

	debtBefore := TotalDebt(m)
	borrowRate, liquidityRate := Rates(m.InterestRateModel, m.ReserveFactor, UtilizationRate(TotalLiquidity(m), debtBefore))

	years := decimal.NewFromInt(elapsed).DivRound(SecondsPerYear, MaxPrecision+6)
	borrowIndex := compound(m.BorrowIndex, borrowRate, years)
	liquidityIndex := compound(m.LiquidityIndex, liquidityRate, years)
	if borrowIndex.LessThan(m.BorrowIndex) || liquidityIndex.LessThan(m.LiquidityIndex) {
		return decimal.Zero, core.ErrInvariantViolation
	}

	m.BorrowIndex = borrowIndex
	m.LiquidityIndex = liquidityIndex
	m.IndexesLastUpdated = now.Unix()

	interest := TotalDebt(m).Sub(debtBefore)
	reserve := interest.Mul(m.ReserveFactor).Floor()
	if reserve.IsNegative() {
		reserve = decimal.Zero
	}

	RefreshRates(m)
	return reserve, nil
}

// index * (1 + rate * years)
func compound(index, rate, years decimal.Decimal) decimal.Decimal {
	return index.Mul(one.Add(rate.Mul(years))).Truncate(MaxPrecision)
}
