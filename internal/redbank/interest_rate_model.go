package redbank

import (
	"redbank/core"

	"github.com/shopspring/decimal"
)

// ValidateInterestRateModel optimal in (0, 1], base and slope_1 in [0, 1], slope_2 >= 0
func ValidateInterestRateModel(m core.InterestRateModel) error {
	ok := m.OptimalUtilizationRate.IsPositive() &&
		m.OptimalUtilizationRate.LessThanOrEqual(one) &&
		isPercentage(m.Base) &&
		isPercentage(m.Slope1) &&
		!m.Slope2.IsNegative()

	return Require(ok, core.ErrInvalidParams)
}

// UtilizationRate utilization rate
// utilization_rate = total_debt / total_liquidity
func UtilizationRate(totalLiquidity, totalDebt decimal.Decimal) decimal.Decimal {
	if !totalLiquidity.IsPositive() {
		return decimal.Zero
	}

	return totalDebt.DivRound(totalLiquidity, MaxPrecision).Truncate(MaxPrecision)
}

// BorrowRate yearly borrow rate at the utilization rate
//
// u <= optimal: base + slope_1 * u / optimal
// u > optimal: base + slope_1 + slope_2 * (u - optimal) / (1 - optimal)
func BorrowRate(m core.InterestRateModel, u decimal.Decimal) decimal.Decimal {
	optimal := m.OptimalUtilizationRate
	if !optimal.IsPositive() {
		return m.Base
	}

	if u.LessThanOrEqual(optimal) {
		return m.Base.Add(m.Slope1.Mul(u).DivRound(optimal, MaxPrecision)).Truncate(MaxPrecision)
	}

	rate := m.Base.Add(m.Slope1)
	if rest := one.Sub(optimal); rest.IsPositive() {
		rate = rate.Add(m.Slope2.Mul(u.Sub(optimal)).DivRound(rest, MaxPrecision))
	}

	return rate.Truncate(MaxPrecision)
}

// LiquidityRate yearly rate paid to suppliers
// liquidity_rate = borrow_rate * u * (1 - reserve_factor)
func LiquidityRate(borrowRate, u, reserveFactor decimal.Decimal) decimal.Decimal {
	return borrowRate.Mul(u).Mul(one.Sub(reserveFactor)).Truncate(MaxPrecision)
}

// Rates borrow and liquidity rates of the model at utilization u
func Rates(m core.InterestRateModel, reserveFactor, u decimal.Decimal) (borrowRate, liquidityRate decimal.Decimal) {
	borrowRate = BorrowRate(m, u)
	liquidityRate = LiquidityRate(borrowRate, u, reserveFactor)
	return
}
