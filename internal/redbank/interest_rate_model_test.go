package redbank

import (
	"redbank/core"
	"redbank/pkg/number"
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultModel() core.InterestRateModel {
	return core.InterestRateModel{
		OptimalUtilizationRate: number.Decimal("0.1"),
		Base:                   number.Decimal("0.3"),
		Slope1:                 number.Decimal("0.25"),
		Slope2:                 number.Decimal("0.3"),
	}
}

func TestBorrowRate(t *testing.T) {
	m := defaultModel()
	data := map[string]string{
		"0":    "0.3",
		"0.05": "0.425",
		"0.1":  "0.55",
		"0.55": "0.7",
		"1":    "0.85",
	}

	for u, rate := range data {
		t.Run(u, func(t *testing.T) {
			assert.Equal(t, rate, BorrowRate(m, number.Decimal(u)).String())
		})
	}
}

func TestRates(t *testing.T) {
	borrow, liquidity := Rates(defaultModel(), number.Decimal("0.2"), number.Decimal("0.55"))
	assert.Equal(t, "0.7", borrow.String())
	assert.Equal(t, "0.308", liquidity.String())

	borrow, liquidity = Rates(defaultModel(), number.Decimal("0.2"), number.Decimal("0"))
	assert.Equal(t, "0.3", borrow.String())
	assert.True(t, liquidity.IsZero())
}

func TestUtilizationRate(t *testing.T) {
	assert.True(t, UtilizationRate(number.Decimal("0"), number.Decimal("10")).IsZero())
	assert.Equal(t, "0.5", UtilizationRate(number.Decimal("1000"), number.Decimal("500")).String())
}

func TestValidateInterestRateModel(t *testing.T) {
	assert.NoError(t, ValidateInterestRateModel(defaultModel()))

	m := defaultModel()
	m.OptimalUtilizationRate = number.Decimal("0")
	assert.ErrorIs(t, ValidateInterestRateModel(m), core.ErrInvalidParams)

	m = defaultModel()
	m.Slope1 = number.Decimal("1.5")
	assert.ErrorIs(t, ValidateInterestRateModel(m), core.ErrInvalidParams)

	m = defaultModel()
	m.Slope2 = number.Decimal("3")
	assert.NoError(t, ValidateInterestRateModel(m))
}
