package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Price fixed price source of a denom, quoted in the base denom
type Price struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	Denom     string          `sql:"size:128;unique_index:idx_prices_denom" json:"denom,omitempty"`
	Price     decimal.Decimal `sql:"type:decimal(38,18)" json:"price,omitempty"`
	Version   int64           `sql:"default:0" json:"version,omitempty"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at,omitempty"`
}

// IPriceStore price store interface
type IPriceStore interface {
	// Find returns a price with ID 0 when no source is set
	Find(ctx context.Context, denom string) (*Price, error)
	Save(ctx context.Context, price *Price) error
	All(ctx context.Context) ([]*Price, error)
}
