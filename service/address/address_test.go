package address

import (
	"context"
	"redbank/core"
	"redbank/store/memory"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	r := New(&core.System{Owner: "owner"}, memory.NewAddresses())

	_, err := r.Resolve(ctx, core.AddressTypeRewardsCollector)
	assert.ErrorIs(t, err, core.ErrAddressNotFound)
	assert.Equal(t, core.KindNotFound, core.ErrorKindOf(err))

	err = r.Set(ctx, "mallory", core.AddressTypeRewardsCollector, "collector")
	assert.ErrorIs(t, err, core.ErrUnauthorized)

	err = r.Set(ctx, "owner", core.AddressType("treasury"), "x")
	assert.ErrorIs(t, err, core.ErrInvalidParams)

	require.NoError(t, r.Set(ctx, "owner", core.AddressTypeRewardsCollector, "collector"))
	addr, err := r.Resolve(ctx, core.AddressTypeRewardsCollector)
	require.NoError(t, err)
	assert.Equal(t, "collector", addr)

	all, err := r.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
