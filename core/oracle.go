package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceTicker remote oracle response
type PriceTicker struct {
	Denom string          `json:"denom,omitempty"`
	Price decimal.Decimal `json:"price,omitempty"`
}

// IOracle price oracle interface, prices are never cached by callers
type IOracle interface {
	// Price returns ErrNoPriceSource when the denom has no source
	Price(ctx context.Context, denom string) (decimal.Decimal, error)
}

// IPriceTickerService remote price feed
type IPriceTickerService interface {
	PullPriceTicker(ctx context.Context, denom string) (*PriceTicker, error)
}
