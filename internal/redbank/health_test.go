package redbank

import (
	"redbank/pkg/number"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioAssets(atomPrice string) []*Asset {
	return []*Asset{
		{
			Denom:                "uosmo",
			Price:                number.Decimal("1"),
			MaxLoanToValue:       number.Decimal("0.6"),
			LiquidationThreshold: number.Decimal("0.8"),
			Collateral:           number.Decimal("1000"),
			CollateralEnabled:    true,
		},
		{
			Denom:                "uatom",
			Price:                number.Decimal(atomPrice),
			MaxLoanToValue:       number.Decimal("0.6"),
			LiquidationThreshold: number.Decimal("0.8"),
			Debt:                 number.Decimal("500"),
		},
	}
}

func TestPosition(t *testing.T) {
	p := Position(scenarioAssets("1"))
	liqHF, maxLTVHF, ok := p.HealthStatus.Borrowing()
	require.True(t, ok)
	assert.Equal(t, "1.2", maxLTVHF.String())
	assert.Equal(t, "1.6", liqHF.String())
	assert.Equal(t, "0.6", p.AvgMaxLTV().String())
	assert.Equal(t, "0.8", p.AvgLiquidationThreshold().String())
	assert.True(t, MaxLTVHealthy(p))
	assert.False(t, p.IsLiquidatable())

	p = Position(scenarioAssets("1.7"))
	liqHF, _, ok = p.HealthStatus.Borrowing()
	require.True(t, ok)
	assert.Equal(t, "850", p.TotalCollateralizedDebt.String())
	assert.Equal(t, "0.941176470588235294", liqHF.String())
	assert.True(t, p.IsLiquidatable())
	assert.False(t, MaxLTVHealthy(p))
}

func TestPositionNotBorrowing(t *testing.T) {
	assets := scenarioAssets("1")
	assets[1].Debt = number.Decimal("0")

	p := Position(assets)
	assert.False(t, p.HealthStatus.IsBorrowing())
	assert.False(t, p.IsLiquidatable())
	assert.True(t, MaxLTVHealthy(p))

	p = Position(nil)
	assert.False(t, p.IsLiquidatable())
	assert.True(t, p.AvgMaxLTV().IsZero())
}

func TestPositionExcludesDisabledAndUncollateralized(t *testing.T) {
	assets := scenarioAssets("1")
	assets[0].CollateralEnabled = false

	p := Position(assets)
	assert.True(t, p.TotalEnabledCollateral.IsZero())
	liqHF, _, ok := p.HealthStatus.Borrowing()
	require.True(t, ok)
	assert.True(t, liqHF.IsZero())
	assert.True(t, p.IsLiquidatable())

	assets[1].Uncollateralized = true
	p = Position(assets)
	assert.False(t, p.HealthStatus.IsBorrowing())
}
