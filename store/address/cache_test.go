package address

import (
	"context"
	"redbank/core"
	"redbank/store/memory"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewAddresses()
	store := Cache(backend, time.Minute)

	missing, err := store.Find(ctx, core.AddressTypeOracle)
	require.NoError(t, err)
	assert.Zero(t, missing.ID)

	require.NoError(t, store.Save(ctx, &core.Address{
		Type:    core.AddressTypeOracle,
		Address: "http://oracle.local",
	}))

	for i := 0; i < 3; i++ {
		address, err := store.Find(ctx, core.AddressTypeOracle)
		require.NoError(t, err)
		assert.Equal(t, "http://oracle.local", address.Address)
	}

	// one miss before the save, one load after it
	assert.Equal(t, 2, backend.Finds)

	require.NoError(t, store.Save(ctx, &core.Address{
		Type:    core.AddressTypeOracle,
		Address: "http://oracle-2.local",
	}))

	address, err := store.Find(ctx, core.AddressTypeOracle)
	require.NoError(t, err)
	assert.Equal(t, "http://oracle-2.local", address.Address)
	assert.EqualValues(t, 1, address.Version)
}
