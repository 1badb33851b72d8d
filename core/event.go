package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// ActionType ledger action
type ActionType int

const (
	// ActionTypeDefault default
	ActionTypeDefault ActionType = iota
	// ActionTypeInitAsset init asset
	ActionTypeInitAsset
	// ActionTypeDeposit deposit
	ActionTypeDeposit
	// ActionTypeBorrow borrow
	ActionTypeBorrow
	// ActionTypeRepay repay
	ActionTypeRepay
	// ActionTypeWithdraw withdraw
	ActionTypeWithdraw
	// ActionTypeLiquidate liquidate
	ActionTypeLiquidate
	// ActionTypeUpdateLoanLimit update uncollateralized loan limit
	ActionTypeUpdateLoanLimit
	// ActionTypeUpdateCollateralStatus enable or disable collateral
	ActionTypeUpdateCollateralStatus
)

var actionTypeNames = map[ActionType]string{
	ActionTypeDefault:                "default",
	ActionTypeInitAsset:              "init_asset",
	ActionTypeDeposit:                "deposit",
	ActionTypeBorrow:                 "borrow",
	ActionTypeRepay:                  "repay",
	ActionTypeWithdraw:               "withdraw",
	ActionTypeLiquidate:              "liquidate",
	ActionTypeUpdateLoanLimit:        "update_uncollateralized_loan_limit",
	ActionTypeUpdateCollateralStatus: "update_asset_collateral_status",
}

func (a ActionType) String() string {
	if s, ok := actionTypeNames[a]; ok {
		return s
	}

	return actionTypeNames[ActionTypeDefault]
}

// BalanceKind collateral or debt
type BalanceKind string

const (
	// BalanceKindCollateral collateral balance
	BalanceKindCollateral BalanceKind = "collateral"
	// BalanceKindDebt debt balance
	BalanceKindDebt BalanceKind = "debt"
)

// BalanceChange scaled balance change reported to the incentives service
type BalanceChange struct {
	UserID            string          `json:"user_id" structs:"user_id"`
	Denom             string          `json:"denom" structs:"denom"`
	Kind              BalanceKind     `json:"kind" structs:"kind"`
	ScaledBefore      decimal.Decimal `json:"user_amount_scaled_before" structs:"user_amount_scaled_before,omitnested"`
	TotalScaledBefore decimal.Decimal `json:"total_amount_scaled_before" structs:"total_amount_scaled_before,omitnested"`
	ScaledAfter       decimal.Decimal `json:"user_amount_scaled_after" structs:"user_amount_scaled_after,omitnested"`
}

const (
	// EventKeyRecipient recipient
	EventKeyRecipient = "recipient"
	// EventKeyOnBehalfOf on behalf of
	EventKeyOnBehalfOf = "on_behalf_of"
	// EventKeyRefund refund
	EventKeyRefund = "refund"
	// EventKeyCollateralDenom collateral denom
	EventKeyCollateralDenom = "collateral_denom"
	// EventKeyCollateralAmount seized collateral amount
	EventKeyCollateralAmount = "collateral_amount"
	// EventKeyLimit loan limit
	EventKeyLimit = "limit"
	// EventKeyEnable collateral status
	EventKeyEnable = "enable"
	// EventKeyReserveShare reserve share minted to the rewards collector
	EventKeyReserveShare = "reserve_share"
)

// EventExtraData extra data
type EventExtraData map[string]interface{}

// NewEventExtra new event extra instance
func NewEventExtra() EventExtraData {
	return make(EventExtraData)
}

// Put put data
func (e EventExtraData) Put(key string, value interface{}) {
	e[key] = value
}

// Format format as []byte by default
func (e EventExtraData) Format() []byte {
	bs, err := json.Marshal(e)
	if err != nil {
		return []byte("{}")
	}

	return bs
}

// Event state delta emitted by one ledger operation
type Event struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	TraceID   string          `sql:"size:36;unique_index:idx_events_trace_id" json:"trace_id,omitempty"`
	Action    ActionType      `json:"action,omitempty"`
	Sender    string          `sql:"size:128" json:"sender,omitempty"`
	UserID    string          `sql:"size:128;index:idx_events_user_id" json:"user_id,omitempty"`
	Denom     string          `sql:"size:128" json:"denom,omitempty"`
	Amount    decimal.Decimal `sql:"type:decimal(64,0)" json:"amount,omitempty"`
	Changes   types.JSONText  `sql:"type:TEXT" json:"changes,omitempty"`
	Data      types.JSONText  `sql:"type:TEXT" json:"data,omitempty"`
	Notified  bool            `sql:"index:idx_events_notified" json:"notified,omitempty"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
}

// SetChanges encode balance changes
func (e *Event) SetChanges(changes []*BalanceChange) {
	bs, err := json.Marshal(changes)
	if err != nil {
		bs = []byte("[]")
	}

	e.Changes = bs
}

// UnmarshalChanges decode balance changes
func (e *Event) UnmarshalChanges() ([]*BalanceChange, error) {
	if len(e.Changes) == 0 {
		return nil, nil
	}

	var changes []*BalanceChange
	if err := json.Unmarshal(e.Changes, &changes); err != nil {
		return nil, err
	}

	return changes, nil
}

// SetExtraData encode extra data
func (e *Event) SetExtraData(extra EventExtraData) {
	data := []byte("{}")
	if extra != nil {
		data = extra.Format()
	}

	e.Data = data
}

// IEventStore event outbox interface
type IEventStore interface {
	ListPending(ctx context.Context, limit int) ([]*Event, error)
	ListByUser(ctx context.Context, userID string, fromID uint64, limit int) ([]*Event, error)
	MarkNotified(ctx context.Context, ids []uint64) error
}

// IIncentivesService incentives peer, notified of balance changes
type IIncentivesService interface {
	BalanceChanged(ctx context.Context, changes []*BalanceChange) error
}
