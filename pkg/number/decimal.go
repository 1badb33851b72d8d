package number

import (
	"github.com/shopspring/decimal"
)

var (
	// MaxUint128 2^128 - 1
	MaxUint128 = decimal.New(2, 0).Pow(decimal.New(128, 0)).Sub(decimal.New(1, 0))
)

// Decimal parse v, zero when invalid
func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// Floor round down to precision decimal places
func Floor(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Shift(precision).Floor().Shift(-precision)
}

// IsUint128 non negative integer that fits in 128 bits
func IsUint128(d decimal.Decimal) bool {
	return !d.IsNegative() && d.IsInteger() && d.LessThanOrEqual(MaxUint128)
}
