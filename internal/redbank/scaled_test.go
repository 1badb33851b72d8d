package redbank

import (
	"redbank/pkg/number"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaledRoundTrip(t *testing.T) {
	indexes := []string{"1", "1.000000000000000001", "1.273333333333333333", "2.5"}
	amounts := []string{"1", "1234", "999999999", "100000000000000000000"}

	for _, idx := range indexes {
		index := number.Decimal(idx)
		for _, a := range amounts {
			amount := number.Decimal(a)

			scaled := ScaledLiquidity(amount, index)
			assert.True(t, scaled.IsInteger())
			assert.True(t, UnderlyingLiquidity(scaled, index).LessThanOrEqual(amount), "liquidity rounds down")

			debt := ScaledDebt(amount, index)
			assert.True(t, debt.IsInteger())
			assert.True(t, debt.GreaterThanOrEqual(ScaledDebtRepay(amount, index)))
			assert.True(t, UnderlyingDebt(debt, index).GreaterThanOrEqual(amount), "debt rounds up")
		}
	}
}

func TestScaledAtIndexOne(t *testing.T) {
	assert.Equal(t, "1000000000", ScaledLiquidity(number.Decimal("1000"), one).String())
	assert.Equal(t, "1000", UnderlyingLiquidity(number.Decimal("1000000000"), one).String())
	assert.Equal(t, "1000", UnderlyingDebt(number.Decimal("1000000000"), one).String())
}
