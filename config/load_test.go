package config

import (
	"os"
	"path/filepath"
	"redbank/core"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "redbank.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(`
app:
  owner: owner
  base_denom: uusd
  close_factor: "0.5"
oracle:
  source: remote
  end_point: http://oracle
admins:
  - admin
`), 0o600))

	var cfg core.Config
	require.NoError(t, Load(filename, &cfg))

	assert.Equal(t, "owner", cfg.App.Owner)
	assert.Equal(t, "uusd", cfg.App.BaseDenom)
	assert.Equal(t, "0.5", cfg.App.CloseFactor.String())
	assert.Equal(t, "remote", cfg.Oracle.Source)
	assert.Equal(t, "http://oracle", cfg.Oracle.EndPoint)
	assert.True(t, cfg.IsAdmin("admin"))

	assert.Equal(t, "reduce", cfg.App.LiquidationClampPolicy)
	assert.Equal(t, 100, cfg.Notifier.Batch)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestLoadInvalidLiquidationSettings(t *testing.T) {
	for name, content := range map[string]string{
		"close factor above one": "app:\n  close_factor: \"1.5\"\n",
		"negative close factor":  "app:\n  close_factor: \"-0.2\"\n",
		"unknown clamp policy":   "app:\n  liquidation_clamp_policy: clip\n",
	} {
		t.Run(name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "redbank.yaml")
			require.NoError(t, os.WriteFile(filename, []byte(content), 0o600))

			var cfg core.Config
			assert.ErrorIs(t, Load(filename, &cfg), core.ErrInvalidParams)
		})
	}
}

func TestLoadRejectPolicy(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "redbank.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("app:\n  close_factor: \"1\"\n  liquidation_clamp_policy: reject\n"), 0o600))

	var cfg core.Config
	require.NoError(t, Load(filename, &cfg))
	assert.Equal(t, "reject", cfg.App.LiquidationClampPolicy)
	assert.Equal(t, "1", cfg.App.CloseFactor.String())
}
