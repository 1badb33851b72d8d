package redbank

import (
	"redbank/core"
	"redbank/pkg/number"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liquidationInput() *LiquidationInput {
	return &LiquidationInput{
		DebtAmount:       number.Decimal("1000"),
		UserDebt:         number.Decimal("500"),
		UserCollateral:   number.Decimal("1000"),
		DebtPrice:        number.Decimal("1.7"),
		CollateralPrice:  number.Decimal("1"),
		LiquidationBonus: number.Decimal("0.1"),
		CloseFactor:      number.Decimal("0.8"),
		ClampPolicy:      core.ClampPolicyReduce,
	}
}

func TestLiquidationAmounts(t *testing.T) {
	out, err := LiquidationAmounts(liquidationInput())
	require.NoError(t, err)

	// close factor caps the repay at 80% of 500
	assert.Equal(t, "400", out.Repay.String())
	assert.Equal(t, "600", out.Refund.String())
	// 400 * 1.7 * 1.1
	assert.Equal(t, "748", out.Seize.String())
}

func TestLiquidationAmountsBelowCloseFactor(t *testing.T) {
	in := liquidationInput()
	in.DebtAmount = number.Decimal("100")

	out, err := LiquidationAmounts(in)
	require.NoError(t, err)
	assert.Equal(t, "100", out.Repay.String())
	assert.True(t, out.Refund.IsZero())
	assert.Equal(t, "187", out.Seize.String())
}

func TestLiquidationAmountsClamp(t *testing.T) {
	in := liquidationInput()
	in.UserCollateral = number.Decimal("500")

	out, err := LiquidationAmounts(in)
	require.NoError(t, err)
	assert.Equal(t, "500", out.Seize.String())
	// 500 / (1.7 * 1.1)
	assert.Equal(t, "267", out.Repay.String())
	assert.Equal(t, "733", out.Refund.String())
	assert.True(t, out.Seize.LessThanOrEqual(in.UserCollateral))
	assert.True(t, out.Repay.LessThanOrEqual(in.UserDebt.Mul(in.CloseFactor)))

	in.ClampPolicy = core.ClampPolicyReject
	_, err = LiquidationAmounts(in)
	assert.ErrorIs(t, err, core.ErrLiquidationExceedsCollateral)
}

func TestLiquidationAmountsInvalid(t *testing.T) {
	in := liquidationInput()
	in.DebtPrice = number.Decimal("0")
	_, err := LiquidationAmounts(in)
	assert.ErrorIs(t, err, core.ErrInvalidPrice)

	// one unit of collateral buys less than one unit of debt
	in = liquidationInput()
	in.UserCollateral = number.Decimal("1")
	_, err = LiquidationAmounts(in)
	assert.ErrorIs(t, err, core.ErrInvalidAmount)
}

func TestLiquidationAmountsDustDebt(t *testing.T) {
	in := liquidationInput()
	in.UserDebt = number.Decimal("1")

	out, err := LiquidationAmounts(in)
	require.NoError(t, err)
	assert.Equal(t, "1", out.Repay.String())
	assert.Equal(t, "999", out.Refund.String())
	// 1 * 1.7 * 1.1
	assert.Equal(t, "1", out.Seize.String())
}

func TestLiquidationAmountsNeverExceedDebt(t *testing.T) {
	in := liquidationInput()
	in.CloseFactor = number.Decimal("1.5")
	in.DebtPrice = number.Decimal("1.65")

	out, err := LiquidationAmounts(in)
	require.NoError(t, err)
	assert.Equal(t, "500", out.Repay.String())
	assert.Equal(t, "500", out.Refund.String())
	// 500 * 1.65 * 1.1
	assert.Equal(t, "907", out.Seize.String())
	assert.True(t, out.Repay.Add(out.Refund).Equal(in.DebtAmount))
}
