package ledger

import (
	"context"
	"redbank/core"
	"redbank/internal/redbank"

	"github.com/shopspring/decimal"
)

// Withdraw withdraws the whole collateral when no amount is given
func (s *service) Withdraw(ctx context.Context, req *core.WithdrawRequest) (*core.Result, error) {
	recipient := orDefault(req.Recipient, req.User)

	var amount decimal.Decimal
	sess, err := s.execute(ctx, "withdraw", func(ctx context.Context, sess *session) error {
		m, err := sess.mustMarket(ctx, req.Denom, core.ErrAssetNotEnabled)
		if err != nil {
			return err
		}

		c, err := sess.collateral(ctx, req.User, req.Denom)
		if err != nil {
			return err
		}

		balance := redbank.UnderlyingLiquidity(c.AmountScaled, m.LiquidityIndex)
		scaled := c.AmountScaled
		amount = balance

		if req.Amount.Valid {
			if err := checkAmount(req.Amount.Decimal); err != nil {
				return err
			}

			amount = req.Amount.Decimal
			if amount.GreaterThan(balance) {
				return core.ErrInvalidAmount
			}

			if amount.LessThan(balance) {
				scaled = redbank.ScaledLiquidity(amount, m.LiquidityIndex)
			}
		}

		if !amount.IsPositive() || !scaled.IsPositive() {
			return core.ErrInvalidAmount
		}

		if amount.GreaterThan(redbank.AvailableLiquidity(m)) {
			return core.ErrWithdrawAmountExceedsAvailableLiquidity
		}

		if err := sess.decreaseCollateral(m, c, scaled); err != nil {
			return err
		}

		if c.Enabled {
			borrowing, err := sess.hasCollateralizedDebt(ctx, req.User)
			if err != nil {
				return err
			}

			if borrowing {
				position, err := sess.position(ctx, req.User)
				if err != nil {
					return err
				}

				if !redbank.MaxLTVHealthy(position) {
					return core.ErrInvalidHealthFactorAfterWithdraw
				}
			}
		}

		redbank.RefreshRates(m)

		extra := core.NewEventExtra()
		extra.Put(core.EventKeyRecipient, recipient)
		sess.emit(core.ActionTypeWithdraw, req.User, req.User, req.Denom, amount, extra)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sess.result(amount), nil
}
