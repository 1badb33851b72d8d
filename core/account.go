package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Collateral user deposit in one market
type Collateral struct {
	ID           uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID       string          `sql:"size:128;unique_index:idx_collaterals_user_denom" json:"user_id"`
	Denom        string          `sql:"size:128;unique_index:idx_collaterals_user_denom" json:"denom"`
	AmountScaled decimal.Decimal `sql:"type:decimal(64,0)" json:"amount_scaled"`
	Enabled      bool            `json:"enabled"`
	Version      int64           `sql:"default:0" json:"version"`
	CreatedAt    time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Clone returns a detached copy
func (c *Collateral) Clone() *Collateral {
	cc := *c
	return &cc
}

// Debt user debt in one market
type Debt struct {
	ID           uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID       string          `sql:"size:128;unique_index:idx_debts_user_denom" json:"user_id"`
	Denom        string          `sql:"size:128;unique_index:idx_debts_user_denom" json:"denom"`
	AmountScaled decimal.Decimal `sql:"type:decimal(64,0)" json:"amount_scaled"`
	// backed by an uncollateralized loan limit, excluded from health factor
	Uncollateralized bool      `json:"uncollateralized"`
	Version          int64     `sql:"default:0" json:"version"`
	CreatedAt        time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Clone returns a detached copy
func (d *Debt) Clone() *Debt {
	dd := *d
	return &dd
}

// UserCollateral collateral query result in underlying units
type UserCollateral struct {
	Denom        string          `json:"denom"`
	AmountScaled decimal.Decimal `json:"amount_scaled"`
	Amount       decimal.Decimal `json:"amount"`
	Enabled      bool            `json:"enabled"`
}

// UserDebt debt query result in underlying units
type UserDebt struct {
	Denom            string          `json:"denom"`
	AmountScaled     decimal.Decimal `json:"amount_scaled"`
	Amount           decimal.Decimal `json:"amount"`
	Uncollateralized bool            `json:"uncollateralized"`
}

// IAccountStore collateral & debt store interface
type IAccountStore interface {
	// FindCollateral returns a collateral with ID 0 when absent
	FindCollateral(ctx context.Context, userID, denom string) (*Collateral, error)
	ListCollaterals(ctx context.Context, userID string) ([]*Collateral, error)
	// FindDebt returns a debt with ID 0 when absent
	FindDebt(ctx context.Context, userID, denom string) (*Debt, error)
	ListDebts(ctx context.Context, userID string) ([]*Debt, error)
}
