package redbank

import (
	"redbank/core"

	"github.com/shopspring/decimal"
)

var (
	// SecondsPerYear seconds per year
	SecondsPerYear = decimal.NewFromInt(31536000)
	// ScalingFactor scaled balances carry this many extra units per underlying unit
	ScalingFactor = decimal.NewFromInt(1000000)
	// DefaultCloseFactor max fraction of a debt repaid in one liquidation
	DefaultCloseFactor = decimal.NewFromFloat(0.8)
	// MaxPrecision max precision of indexes, rates and health factors
	MaxPrecision int32 = 18

	one = decimal.New(1, 0)
)

// Require returns code unless condition holds
func Require(condition bool, code core.ErrorCode) error {
	if condition {
		return nil
	}

	return code
}

func isPercentage(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(one)
}

// ValidateAssetParams max_ltv <= liquidation_threshold <= 1, every factor a percentage
func ValidateAssetParams(params *core.AssetParams) error {
	if err := ValidateInterestRateModel(params.InterestRateModel); err != nil {
		return err
	}

	ok := isPercentage(params.ReserveFactor) &&
		isPercentage(params.MaxLoanToValue) &&
		isPercentage(params.LiquidationThreshold) &&
		isPercentage(params.LiquidationBonus) &&
		params.MaxLoanToValue.LessThanOrEqual(params.LiquidationThreshold)
	if !ok {
		return core.ErrInvalidParams
	}

	if params.DepositCap.Valid {
		depositCap := params.DepositCap.Decimal
		if depositCap.IsNegative() || !depositCap.IsInteger() {
			return core.ErrInvalidParams
		}
	}

	return nil
}

// ValidateCloseFactor close factor in (0, 1]
func ValidateCloseFactor(closeFactor decimal.Decimal) error {
	return Require(closeFactor.IsPositive() && closeFactor.LessThanOrEqual(one), core.ErrInvalidParams)
}
