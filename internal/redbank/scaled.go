package redbank

import (
	"redbank/pkg/number"

	"github.com/shopspring/decimal"
)

// Liquidity amounts round down and debt amounts round up, so rounding
// never favors the user against the market.

// ScaledLiquidity amount * SCALING_FACTOR / liquidity_index, floor
func ScaledLiquidity(amount, liquidityIndex decimal.Decimal) decimal.Decimal {
	return toScaled(amount, liquidityIndex).Floor()
}

// UnderlyingLiquidity scaled * liquidity_index / SCALING_FACTOR, floor
func UnderlyingLiquidity(scaled, liquidityIndex decimal.Decimal) decimal.Decimal {
	return toUnderlying(scaled, liquidityIndex).Floor()
}

// ScaledDebt amount * SCALING_FACTOR / borrow_index, ceil
func ScaledDebt(amount, borrowIndex decimal.Decimal) decimal.Decimal {
	return toScaled(amount, borrowIndex).Ceil()
}

// ScaledDebtRepay amount * SCALING_FACTOR / borrow_index, floor
func ScaledDebtRepay(amount, borrowIndex decimal.Decimal) decimal.Decimal {
	return toScaled(amount, borrowIndex).Floor()
}

// UnderlyingDebt scaled * borrow_index / SCALING_FACTOR, ceil
func UnderlyingDebt(scaled, borrowIndex decimal.Decimal) decimal.Decimal {
	return toUnderlying(scaled, borrowIndex).Ceil()
}

func toScaled(amount, index decimal.Decimal) decimal.Decimal {
	if !index.IsPositive() {
		index = one
	}

	// extra precision so Floor/Ceil see the exact integer part
	return number.Floor(amount.Mul(ScalingFactor).DivRound(index, MaxPrecision+2), MaxPrecision)
}

func toUnderlying(scaled, index decimal.Decimal) decimal.Decimal {
	if !index.IsPositive() {
		index = one
	}

	return scaled.Mul(index).DivRound(ScalingFactor, MaxPrecision+6)
}
