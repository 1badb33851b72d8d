package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// Changeset candidate state produced by one ledger operation.
// Collaterals or debts whose AmountScaled is zero are removed on commit.
type Changeset struct {
	Markets     []*Market
	Collaterals []*Collateral
	Debts       []*Debt
	LoanLimits  []*LoanLimit
	Events      []*Event
}

// IsEmpty nothing to commit
func (c *Changeset) IsEmpty() bool {
	return len(c.Markets) == 0 &&
		len(c.Collaterals) == 0 &&
		len(c.Debts) == 0 &&
		len(c.LoanLimits) == 0 &&
		len(c.Events) == 0
}

// ILedgerStore ledger state store, Commit applies a changeset atomically.
// Records with ID 0 are created, others are updated under their version.
type ILedgerStore interface {
	IMarketStore
	IAccountStore
	ILoanLimitStore
	Commit(ctx context.Context, cs *Changeset) error
}

// DepositRequest deposit request, OnBehalfOf defaults to Sender
type DepositRequest struct {
	Sender     string          `json:"sender"`
	OnBehalfOf string          `json:"on_behalf_of,omitempty"`
	Denom      string          `json:"denom"`
	Amount     decimal.Decimal `json:"amount"`
}

// BorrowRequest borrow request, Recipient defaults to User
type BorrowRequest struct {
	User      string          `json:"user"`
	Denom     string          `json:"denom"`
	Amount    decimal.Decimal `json:"amount"`
	Recipient string          `json:"recipient,omitempty"`
}

// RepayRequest repay request, OnBehalfOf defaults to Sender
type RepayRequest struct {
	Sender     string          `json:"sender"`
	OnBehalfOf string          `json:"on_behalf_of,omitempty"`
	Denom      string          `json:"denom"`
	Amount     decimal.Decimal `json:"amount"`
}

// WithdrawRequest withdraw request, a null Amount withdraws everything
type WithdrawRequest struct {
	User      string              `json:"user"`
	Denom     string              `json:"denom"`
	Amount    decimal.NullDecimal `json:"amount"`
	Recipient string              `json:"recipient,omitempty"`
}

// LiquidateRequest liquidate request, Recipient defaults to Liquidator
type LiquidateRequest struct {
	Liquidator      string          `json:"liquidator"`
	User            string          `json:"user"`
	CollateralDenom string          `json:"collateral_denom"`
	DebtDenom       string          `json:"debt_denom"`
	DebtAmount      decimal.Decimal `json:"debt_amount"`
	Recipient       string          `json:"recipient,omitempty"`
}

// Result outcome of a committed operation
type Result struct {
	TraceID string `json:"trace_id"`
	// amount actually deposited, borrowed, repaid, withdrawn or repaid by liquidation
	Amount decimal.Decimal `json:"amount"`
	// part of the attached funds returned to the sender
	Refund decimal.Decimal `json:"refund"`
	// collateral seized by liquidation
	CollateralSeized decimal.Decimal `json:"collateral_seized"`
	Events           []*Event        `json:"events,omitempty"`
}

// MarketInfo market query result
type MarketInfo struct {
	*Market
	TotalLiquidity     decimal.Decimal `json:"total_liquidity"`
	TotalDebt          decimal.Decimal `json:"total_debt"`
	AvailableLiquidity decimal.Decimal `json:"available_liquidity"`
	UtilizationRate    decimal.Decimal `json:"utilization_rate"`
}

// ILedger red bank ledger
type ILedger interface {
	InitAsset(ctx context.Context, caller, denom string, params AssetParams) (*Market, error)
	Deposit(ctx context.Context, req *DepositRequest) (*Result, error)
	Borrow(ctx context.Context, req *BorrowRequest) (*Result, error)
	Repay(ctx context.Context, req *RepayRequest) (*Result, error)
	Withdraw(ctx context.Context, req *WithdrawRequest) (*Result, error)
	Liquidate(ctx context.Context, req *LiquidateRequest) (*Result, error)
	UpdateUncollateralizedLoanLimit(ctx context.Context, caller, user, denom string, limit decimal.Decimal) error
	UpdateAssetCollateralStatus(ctx context.Context, user, denom string, enable bool) error

	Market(ctx context.Context, denom string) (*MarketInfo, error)
	Markets(ctx context.Context) ([]*MarketInfo, error)
	UserDebt(ctx context.Context, user, denom string) (*UserDebt, error)
	UserDebts(ctx context.Context, user string) ([]*UserDebt, error)
	UserCollateral(ctx context.Context, user, denom string) (*UserCollateral, error)
	UserCollaterals(ctx context.Context, user string) ([]*UserCollateral, error)
	UserPosition(ctx context.Context, user string) (*UserPosition, error)
	ScaledLiquidityAmount(ctx context.Context, denom string, amount decimal.Decimal) (decimal.Decimal, error)
	ScaledDebtAmount(ctx context.Context, denom string, amount decimal.Decimal) (decimal.Decimal, error)
	UncollateralizedLoanLimit(ctx context.Context, user, denom string) (decimal.Decimal, error)
}
