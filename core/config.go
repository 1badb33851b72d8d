package core

import (
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Config red bank config
type Config struct {
	App      App       `json:"app"`
	DB       db.Config `json:"db"`
	Oracle   Oracle    `json:"oracle"`
	Notifier Notifier  `json:"notifier"`
	Server   Server    `json:"server"`
	Admins   []string  `json:"admins"`
}

// IsAdmin check if the user is admin
func (c *Config) IsAdmin(userID string) bool {
	if len(c.Admins) <= 0 {
		return false
	}

	for _, a := range c.Admins {
		if a == userID {
			return true
		}
	}

	return false
}

// App app config
type App struct {
	Owner          string `json:"owner"`
	EmergencyOwner string `json:"emergency_owner"`
	// denom prices are quoted in
	BaseDenom string `json:"base_denom"`
	// max fraction of a debt repaid in one liquidation, 0 means the default
	CloseFactor decimal.Decimal `json:"close_factor"`
	// reduce or reject
	LiquidationClampPolicy string `json:"liquidation_clamp_policy"`
	Location               string `json:"location"`
}

// Oracle price source config
type Oracle struct {
	// fixed or remote
	Source string `json:"source"`
	// remote endpoint, falls back to the registered oracle address
	EndPoint string `json:"end_point"`
	// seconds
	Timeout int64 `json:"timeout"`
}

// Notifier incentives notifier config
type Notifier struct {
	Batch int `json:"batch"`
	// seconds
	Interval int64 `json:"interval"`
}

// Server http server config
type Server struct {
	Port int `json:"port"`
}
