package redbank

import (
	"redbank/core"
	"redbank/pkg/number"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func defaultParams() *core.AssetParams {
	return &core.AssetParams{
		ReserveFactor:        number.Decimal("0.2"),
		MaxLoanToValue:       number.Decimal("0.6"),
		LiquidationThreshold: number.Decimal("0.8"),
		LiquidationBonus:     number.Decimal("0.1"),
		InterestRateModel:    defaultModel(),
		DepositEnabled:       true,
		BorrowEnabled:        true,
	}
}

func TestValidateAssetParams(t *testing.T) {
	assert.NoError(t, ValidateAssetParams(defaultParams()))

	p := defaultParams()
	p.MaxLoanToValue = number.Decimal("0.9")
	assert.ErrorIs(t, ValidateAssetParams(p), core.ErrInvalidParams, "max ltv above liquidation threshold")

	p = defaultParams()
	p.LiquidationThreshold = number.Decimal("1.1")
	assert.ErrorIs(t, ValidateAssetParams(p), core.ErrInvalidParams)

	p = defaultParams()
	p.LiquidationBonus = number.Decimal("-0.1")
	assert.ErrorIs(t, ValidateAssetParams(p), core.ErrInvalidParams)

	p = defaultParams()
	p.DepositCap = decimal.NewNullDecimal(number.Decimal("1.5"))
	assert.ErrorIs(t, ValidateAssetParams(p), core.ErrInvalidParams)

	p.DepositCap = decimal.NewNullDecimal(number.Decimal("1000000"))
	assert.NoError(t, ValidateAssetParams(p))
}

func TestValidateCloseFactor(t *testing.T) {
	assert.NoError(t, ValidateCloseFactor(number.Decimal("0.8")))
	assert.NoError(t, ValidateCloseFactor(number.Decimal("1")))
	assert.Error(t, ValidateCloseFactor(number.Decimal("0")))
	assert.Error(t, ValidateCloseFactor(number.Decimal("1.01")))
}
