package ledger

import (
	"context"
	"redbank/core"
	"redbank/internal/redbank"

	"github.com/shopspring/decimal"
)

// Repay repays at most the outstanding debt, the excess is refunded
func (s *service) Repay(ctx context.Context, req *core.RepayRequest) (*core.Result, error) {
	user := orDefault(req.OnBehalfOf, req.Sender)

	var repaid, refund decimal.Decimal
	sess, err := s.execute(ctx, "repay", func(ctx context.Context, sess *session) error {
		if err := checkAmount(req.Amount); err != nil {
			return err
		}

		m, err := sess.mustMarket(ctx, req.Denom, core.ErrCannotRepayZeroDebt)
		if err != nil {
			return err
		}

		d, err := sess.debt(ctx, user, req.Denom)
		if err != nil {
			return err
		}

		if !d.AmountScaled.IsPositive() {
			return core.ErrCannotRepayZeroDebt
		}

		if user != req.Sender && d.Uncollateralized {
			return core.ErrCannotRepayUncollateralizedLoanOnBehalfOf
		}

		outstanding := redbank.UnderlyingDebt(d.AmountScaled, m.BorrowIndex)
		scaled := redbank.ScaledDebtRepay(req.Amount, m.BorrowIndex)
		repaid = req.Amount
		if req.Amount.GreaterThanOrEqual(outstanding) {
			repaid, scaled = outstanding, d.AmountScaled
		}

		if !scaled.IsPositive() {
			return core.ErrInvalidAmount
		}

		if err := sess.changeDebt(m, d, scaled.Neg()); err != nil {
			return err
		}

		redbank.RefreshRates(m)

		refund = req.Amount.Sub(repaid)
		extra := core.NewEventExtra()
		if user != req.Sender {
			extra.Put(core.EventKeyOnBehalfOf, user)
		}

		if refund.IsPositive() {
			extra.Put(core.EventKeyRefund, refund)
		}

		sess.emit(core.ActionTypeRepay, req.Sender, user, req.Denom, repaid, extra)
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := sess.result(repaid)
	result.Refund = refund
	return result, nil
}
