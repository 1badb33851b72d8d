package priceoracle

import (
	"context"
	"redbank/core"
	"redbank/pkg/number"
	"redbank/store/memory"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tickers map[string]string

func (t tickers) PullPriceTicker(ctx context.Context, denom string) (*core.PriceTicker, error) {
	price, ok := t[denom]
	if !ok {
		return nil, core.ErrNoPriceSource
	}

	return &core.PriceTicker{Denom: denom, Price: number.Decimal(price)}, nil
}

func TestWorker(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewLedger()
	prices := memory.NewPrices()

	for _, denom := range []string{"uosmo", "uatom", "ujuno", "uusdc"} {
		require.NoError(t, ledger.Commit(ctx, &core.Changeset{
			Markets: []*core.Market{{Denom: denom}},
		}))
	}

	w := New(ledger, prices, tickers{
		"uosmo": "0.8",
		"uatom": "12.5",
		"uusdc": "0",
	})
	require.NoError(t, w.onWork(ctx))

	p, err := prices.Find(ctx, "uatom")
	require.NoError(t, err)
	assert.Equal(t, "12.5", p.Price.String())

	p, err = prices.Find(ctx, "uosmo")
	require.NoError(t, err)
	assert.Equal(t, "0.8", p.Price.String())

	for _, denom := range []string{"ujuno", "uusdc"} {
		p, err := prices.Find(ctx, denom)
		require.NoError(t, err)
		assert.Zero(t, p.ID, denom)
	}
}
