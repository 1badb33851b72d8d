package config

import (
	"fmt"
	"redbank/core"
	"redbank/internal/redbank"

	"github.com/fox-one/pkg/config"
)

// Load load config file, REDBANK_* environment variables override its values
func Load(cfgFile string, cfg *core.Config) error {
	config.AutomaticLoadEnv("REDBANK")
	if err := config.LoadYaml(cfgFile, cfg); err != nil {
		return err
	}

	defaultConfig(cfg)
	return validate(cfg)
}

// validate rejects liquidation settings the ledger cannot run with,
// an unset close factor falls back to the ledger default
func validate(cfg *core.Config) error {
	if !cfg.App.CloseFactor.IsZero() {
		if err := redbank.ValidateCloseFactor(cfg.App.CloseFactor); err != nil {
			return fmt.Errorf("app.close_factor %s: %w", cfg.App.CloseFactor, err)
		}
	}

	if policy := core.ClampPolicy(cfg.App.LiquidationClampPolicy); !policy.Valid() {
		return fmt.Errorf("app.liquidation_clamp_policy %q: %w", policy, core.ErrInvalidParams)
	}

	return nil
}

func defaultConfig(cfg *core.Config) {
	if cfg.App.LiquidationClampPolicy == "" {
		cfg.App.LiquidationClampPolicy = string(core.ClampPolicyReduce)
	}

	if cfg.App.Location == "" {
		cfg.App.Location = "UTC"
	}

	if cfg.Oracle.Source == "" {
		cfg.Oracle.Source = "fixed"
	}

	if cfg.Oracle.Timeout <= 0 {
		cfg.Oracle.Timeout = 10
	}

	if cfg.Notifier.Batch <= 0 {
		cfg.Notifier.Batch = 100
	}

	if cfg.Notifier.Interval <= 0 {
		cfg.Notifier.Interval = 1
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 9000
	}
}
