package redbank

import (
	"math/rand"
	"redbank/core"
	"redbank/pkg/number"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccrueInterest(t *testing.T) {
	start := time.Unix(1600000000, 0)
	m := NewMarket("uosmo", defaultParams(), start)
	m.ScaledLiquidityTotal = ScaledLiquidity(number.Decimal("1000"), m.LiquidityIndex)
	m.ScaledDebtTotal = ScaledDebt(number.Decimal("500"), m.BorrowIndex)

	now := start.Add(365 * 24 * time.Hour)
	reserve, err := AccrueInterest(m, now)
	require.NoError(t, err)

	// u = 0.5, borrow = 0.55 + 0.3 * 0.4 / 0.9
	assert.Equal(t, "1.683333333333333333", m.BorrowIndex.String())
	// liquidity = borrow * 0.5 * 0.8
	assert.Equal(t, "1.273333333333333333", m.LiquidityIndex.String())
	assert.Equal(t, "842", TotalDebt(m).String())
	// 20% of the 342 accrued
	assert.Equal(t, "68", reserve.String())
	assert.Equal(t, now.Unix(), m.IndexesLastUpdated)

	t.Run("idempotent", func(t *testing.T) {
		before := m.Clone()
		reserve, err := AccrueInterest(m, now)
		require.NoError(t, err)
		assert.True(t, reserve.IsZero())
		assert.True(t, before.BorrowIndex.Equal(m.BorrowIndex))
		assert.True(t, before.LiquidityIndex.Equal(m.LiquidityIndex))
	})

	t.Run("time goes backwards", func(t *testing.T) {
		before := m.Clone()
		_, err := AccrueInterest(m, now.Add(-time.Second))
		assert.ErrorIs(t, err, core.ErrInvariantViolation)
		assert.Equal(t, before.IndexesLastUpdated, m.IndexesLastUpdated)
		assert.True(t, before.BorrowIndex.Equal(m.BorrowIndex))
	})
}

func TestAccrueInterestMonotonic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	now := time.Unix(1600000000, 0)
	m := NewMarket("uatom", defaultParams(), now)
	m.ScaledLiquidityTotal = ScaledLiquidity(number.Decimal("1000000"), m.LiquidityIndex)
	m.ScaledDebtTotal = ScaledDebt(number.Decimal("700000"), m.BorrowIndex)

	for i := 0; i < 200; i++ {
		now = now.Add(time.Duration(r.Intn(86400)) * time.Second)
		before := m.Clone()
		_, err := AccrueInterest(m, now)
		require.NoError(t, err)
		assert.True(t, m.BorrowIndex.GreaterThanOrEqual(before.BorrowIndex))
		assert.True(t, m.LiquidityIndex.GreaterThanOrEqual(before.LiquidityIndex))
		assert.True(t, m.LiquidityIndex.GreaterThanOrEqual(one))
	}
}

func TestAvailableLiquidity(t *testing.T) {
	m := NewMarket("uosmo", defaultParams(), time.Unix(0, 0))
	assert.True(t, AvailableLiquidity(m).IsZero())

	m.ScaledLiquidityTotal = ScaledLiquidity(number.Decimal("1000"), m.LiquidityIndex)
	m.ScaledDebtTotal = ScaledDebt(number.Decimal("400"), m.BorrowIndex)
	assert.Equal(t, "600", AvailableLiquidity(m).String())
	assert.Equal(t, "0.4", CurrentUtilizationRate(m).String())
}
