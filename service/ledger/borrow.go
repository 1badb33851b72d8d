package ledger

import (
	"context"
	"redbank/core"
	"redbank/internal/redbank"

	"github.com/shopspring/decimal"
)

func (s *service) Borrow(ctx context.Context, req *core.BorrowRequest) (*core.Result, error) {
	recipient := orDefault(req.Recipient, req.User)

	sess, err := s.execute(ctx, "borrow", func(ctx context.Context, sess *session) error {
		if err := checkAmount(req.Amount); err != nil {
			return err
		}

		m, err := sess.mustMarket(ctx, req.Denom, core.ErrAssetNotEnabled)
		if err != nil {
			return err
		}

		if !m.BorrowEnabled {
			return core.ErrAssetNotEnabled
		}

		if req.Amount.GreaterThan(redbank.AvailableLiquidity(m)) {
			return core.ErrBorrowAmountExceedsAvailableLiquidity
		}

		d, err := sess.debt(ctx, req.User, req.Denom)
		if err != nil {
			return err
		}

		if err := sess.changeDebt(m, d, redbank.ScaledDebt(req.Amount, m.BorrowIndex)); err != nil {
			return err
		}

		limit, err := sess.loanLimit(ctx, req.User, req.Denom)
		if err != nil {
			return err
		}

		// debt covered by the loan limit stays out of the health factor,
		// anything beyond it must be backed by collateral
		d.Uncollateralized = coveredByLimit(limit, redbank.UnderlyingDebt(d.AmountScaled, m.BorrowIndex))
		if !d.Uncollateralized {
			position, err := sess.position(ctx, req.User)
			if err != nil {
				return err
			}

			if !redbank.MaxLTVHealthy(position) {
				return core.ErrBorrowAmountExceedsGivenCollateral
			}
		}

		redbank.RefreshRates(m)

		extra := core.NewEventExtra()
		extra.Put(core.EventKeyRecipient, recipient)
		sess.emit(core.ActionTypeBorrow, req.User, req.User, req.Denom, req.Amount, extra)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sess.result(req.Amount), nil
}

func coveredByLimit(limit *core.LoanLimit, debt decimal.Decimal) bool {
	return limit.Limit.IsPositive() && debt.LessThanOrEqual(limit.Limit)
}
