package ledger

import (
	"context"
	"redbank/core"
	"redbank/internal/redbank"
)

func (s *service) Deposit(ctx context.Context, req *core.DepositRequest) (*core.Result, error) {
	user := orDefault(req.OnBehalfOf, req.Sender)

	sess, err := s.execute(ctx, "deposit", func(ctx context.Context, sess *session) error {
		if err := checkAmount(req.Amount); err != nil {
			return err
		}

		m, err := sess.mustMarket(ctx, req.Denom, core.ErrAssetNotEnabled)
		if err != nil {
			return err
		}

		if !m.DepositEnabled {
			return core.ErrAssetNotEnabled
		}

		scaled := redbank.ScaledLiquidity(req.Amount, m.LiquidityIndex)
		if !scaled.IsPositive() {
			return core.ErrInvalidAmount
		}

		if m.DepositCap.Valid {
			liquidity := redbank.UnderlyingLiquidity(m.ScaledLiquidityTotal.Add(scaled), m.LiquidityIndex)
			if liquidity.GreaterThan(m.DepositCap.Decimal) {
				return core.ErrDepositCapExceeded
			}
		}

		c, err := sess.collateral(ctx, user, req.Denom)
		if err != nil {
			return err
		}

		// first collateral entry of the denom
		if c.ID == 0 && !c.AmountScaled.IsPositive() {
			c.Enabled = true
		}

		if err := sess.increaseCollateral(m, c, scaled); err != nil {
			return err
		}

		redbank.RefreshRates(m)

		extra := core.NewEventExtra()
		if user != req.Sender {
			extra.Put(core.EventKeyOnBehalfOf, user)
		}

		sess.emit(core.ActionTypeDeposit, req.Sender, user, req.Denom, req.Amount, extra)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return sess.result(req.Amount), nil
}
