package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LoanLimit uncollateralized loan limit of a user in one market
type LoanLimit struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string          `sql:"size:128;unique_index:idx_loan_limits_user_denom" json:"user_id"`
	Denom     string          `sql:"size:128;unique_index:idx_loan_limits_user_denom" json:"denom"`
	Limit     decimal.Decimal `sql:"type:decimal(64,0)" gorm:"column:loan_limit" json:"limit"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Clone returns a detached copy
func (l *LoanLimit) Clone() *LoanLimit {
	ll := *l
	return &ll
}

// ILoanLimitStore loan limit store interface
type ILoanLimitStore interface {
	// FindLoanLimit returns a limit with ID 0 when absent
	FindLoanLimit(ctx context.Context, userID, denom string) (*LoanLimit, error)
}
