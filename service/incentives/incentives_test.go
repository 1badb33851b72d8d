package incentives

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"redbank/core"
	"redbank/pkg/number"
	"redbank/service/address"
	"redbank/store/memory"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceChanged(t *testing.T) {
	var received struct {
		Changes []*core.BalanceChange `json:"changes"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/balance_changes", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	ctx := context.Background()
	registry := address.New(&core.System{Owner: "owner"}, memory.NewAddresses())
	s := New(registry)

	changes := []*core.BalanceChange{{
		UserID:            "alice",
		Denom:             "uosmo",
		Kind:              core.BalanceKindCollateral,
		ScaledBefore:      number.Decimal("0"),
		TotalScaledBefore: number.Decimal("5000000"),
		ScaledAfter:       number.Decimal("1000000"),
	}}

	err := s.BalanceChanged(ctx, changes)
	assert.ErrorIs(t, err, core.ErrAddressNotFound)

	require.NoError(t, registry.Set(ctx, "owner", core.AddressTypeIncentives, ts.URL))
	require.NoError(t, s.BalanceChanged(ctx, changes))

	require.Len(t, received.Changes, 1)
	assert.Equal(t, "alice", received.Changes[0].UserID)
	assert.Equal(t, core.BalanceKindCollateral, received.Changes[0].Kind)
	assert.Equal(t, "5000000", received.Changes[0].TotalScaledBefore.String())

	assert.NoError(t, s.BalanceChanged(ctx, nil))
}
