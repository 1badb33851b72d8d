package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InterestRateModel piecewise linear borrow rate model, all values are yearly rates
type InterestRateModel struct {
	// utilization rate where slope_2 kicks in, (0, 1]
	OptimalUtilizationRate decimal.Decimal `sql:"type:decimal(38,18)" json:"optimal_utilization_rate"`
	// borrow rate at zero utilization
	Base decimal.Decimal `sql:"type:decimal(38,18)" json:"base"`
	// slope below the optimal utilization rate
	Slope1 decimal.Decimal `sql:"type:decimal(38,18)" json:"slope_1"`
	// slope above the optimal utilization rate
	Slope2 decimal.Decimal `sql:"type:decimal(38,18)" json:"slope_2"`
}

// Market per denom reserve state
type Market struct {
	ID    uint64 `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Denom string `sql:"size:128;unique_index:idx_markets_denom" json:"denom"`
	// sum of all suppliers' scaled deposits
	ScaledLiquidityTotal decimal.Decimal `sql:"type:decimal(64,0)" json:"scaled_liquidity_total"`
	// sum of all borrowers' scaled debts
	ScaledDebtTotal decimal.Decimal `sql:"type:decimal(64,0)" json:"scaled_debt_total"`
	// reserve share accrued while no rewards collector resolved, minted on a later accrual
	PendingReserveScaled decimal.Decimal `sql:"type:decimal(64,0)" json:"pending_reserve_scaled"`
	LiquidityIndex       decimal.Decimal `sql:"type:decimal(48,18)" json:"liquidity_index"`
	BorrowIndex          decimal.Decimal `sql:"type:decimal(48,18)" json:"borrow_index"`
	// rates derived at the last accrual, informational only
	LiquidityRate decimal.Decimal `sql:"type:decimal(38,18)" json:"liquidity_rate"`
	BorrowRate    decimal.Decimal `sql:"type:decimal(38,18)" json:"borrow_rate"`
	// unix seconds
	IndexesLastUpdated int64 `json:"indexes_last_updated"`

	InterestRateModel InterestRateModel `gorm:"embedded;embedded_prefix:irm_" json:"interest_rate_model"`

	ReserveFactor        decimal.Decimal `sql:"type:decimal(38,18)" json:"reserve_factor"`
	MaxLoanToValue       decimal.Decimal `sql:"type:decimal(38,18)" json:"max_loan_to_value"`
	LiquidationThreshold decimal.Decimal `sql:"type:decimal(38,18)" json:"liquidation_threshold"`
	LiquidationBonus     decimal.Decimal `sql:"type:decimal(38,18)" json:"liquidation_bonus"`
	// unset means no cap
	DepositCap     decimal.NullDecimal `sql:"type:decimal(64,0)" json:"deposit_cap"`
	DepositEnabled bool                `json:"deposit_enabled"`
	BorrowEnabled  bool                `json:"borrow_enabled"`

	Version   int64     `sql:"default:0" json:"version"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Clone returns a detached copy, decimals are immutable so a shallow copy is enough
func (m *Market) Clone() *Market {
	c := *m
	return &c
}

// LastUpdated time of the last index update
func (m *Market) LastUpdated() time.Time {
	return time.Unix(m.IndexesLastUpdated, 0).UTC()
}

// AssetParams init asset parameters
type AssetParams struct {
	ReserveFactor        decimal.Decimal     `json:"reserve_factor"`
	MaxLoanToValue       decimal.Decimal     `json:"max_loan_to_value"`
	LiquidationThreshold decimal.Decimal     `json:"liquidation_threshold"`
	LiquidationBonus     decimal.Decimal     `json:"liquidation_bonus"`
	InterestRateModel    InterestRateModel   `json:"interest_rate_model"`
	DepositEnabled       bool                `json:"deposit_enabled"`
	BorrowEnabled        bool                `json:"borrow_enabled"`
	DepositCap           decimal.NullDecimal `json:"deposit_cap"`
}

// IMarketStore market store interface
type IMarketStore interface {
	// Find returns a market with ID 0 when the denom is unknown
	Find(ctx context.Context, denom string) (*Market, error)
	All(ctx context.Context) ([]*Market, error)
}
