package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"redbank/core"
	"redbank/pkg/number"
	"redbank/service/address"
	"redbank/store/memory"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedOracle(t *testing.T) {
	ctx := context.Background()
	system := &core.System{Owner: "owner"}
	prices := memory.NewPrices()
	o := NewFixed("uusd", prices)

	_, err := o.Price(ctx, "uosmo")
	assert.ErrorIs(t, err, core.ErrNoPriceSource)

	price, err := o.Price(ctx, "uusd")
	require.NoError(t, err)
	assert.Equal(t, "1", price.String())

	assert.ErrorIs(t, SetPrice(ctx, system, prices, "mallory", "uosmo", number.Decimal("1")), core.ErrUnauthorized)
	assert.ErrorIs(t, SetPrice(ctx, system, prices, "owner", "uosmo", number.Decimal("0")), core.ErrInvalidPrice)
	require.NoError(t, SetPrice(ctx, system, prices, "owner", "uosmo", number.Decimal("1.7")))

	price, err = o.Price(ctx, "uosmo")
	require.NoError(t, err)
	assert.Equal(t, "1.7", price.String())
}

func TestRemoteOracle(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		denom := strings.TrimPrefix(r.URL.Path, "/api/v1/prices/")
		if denom != "uatom" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":404,"msg":"price source not found"}`))
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]string{"denom": denom, "price": "10.5"})
	}))
	defer ts.Close()

	ctx := context.Background()
	registry := address.New(&core.System{Owner: "owner"}, memory.NewAddresses())
	o := NewRemote("", registry)

	_, err := o.Price(ctx, "uatom")
	assert.ErrorIs(t, err, core.ErrAddressNotFound)

	require.NoError(t, registry.Set(ctx, "owner", core.AddressTypeOracle, ts.URL))

	price, err := o.Price(ctx, "uatom")
	require.NoError(t, err)
	assert.Equal(t, "10.5", price.String())

	_, err = o.Price(ctx, "uosmo")
	assert.ErrorIs(t, err, core.ErrNoPriceSource)

	o = NewRemote(ts.URL+"/", nil)
	price, err = o.Price(ctx, "uatom")
	require.NoError(t, err)
	assert.Equal(t, "10.5", price.String())
}
