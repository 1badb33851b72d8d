package ledger

import (
	"context"
	"redbank/core"
	"redbank/internal/redbank"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// Liquidate repays part of an unhealthy user's debt and moves the seized
// collateral, bonus included, to the recipient's collateral position
func (s *service) Liquidate(ctx context.Context, req *core.LiquidateRequest) (*core.Result, error) {
	recipient := orDefault(req.Recipient, req.Liquidator)

	var out *redbank.LiquidationOutput
	sess, err := s.execute(ctx, "liquidate", func(ctx context.Context, sess *session) error {
		if err := checkAmount(req.DebtAmount); err != nil {
			return err
		}

		if req.Liquidator == req.User {
			return core.ErrCannotLiquidateSelf
		}

		cm, err := sess.mustMarket(ctx, req.CollateralDenom, core.ErrMarketNotFound)
		if err != nil {
			return err
		}

		dm, err := sess.mustMarket(ctx, req.DebtDenom, core.ErrMarketNotFound)
		if err != nil {
			return err
		}

		c, err := sess.collateral(ctx, req.User, req.CollateralDenom)
		if err != nil {
			return err
		}

		if !c.AmountScaled.IsPositive() {
			return core.ErrCannotLiquidateWhenNoCollateralBalance
		}

		if !c.Enabled {
			return core.ErrCannotLiquidateWhenCollateralDisabled
		}

		d, err := sess.debt(ctx, req.User, req.DebtDenom)
		if err != nil {
			return err
		}

		if !d.AmountScaled.IsPositive() {
			return core.ErrCannotLiquidateWhenNoDebtBalance
		}

		if d.Uncollateralized {
			return core.ErrCannotLiquidateUncollateralizedDebt
		}

		position, err := sess.position(ctx, req.User)
		if err != nil {
			return err
		}

		if !position.IsLiquidatable() {
			return core.ErrUserNotLiquidatable
		}

		debtPrice, err := sess.price(ctx, req.DebtDenom)
		if err != nil {
			return err
		}

		collateralPrice, err := sess.price(ctx, req.CollateralDenom)
		if err != nil {
			return err
		}

		userDebt := redbank.UnderlyingDebt(d.AmountScaled, dm.BorrowIndex)
		userCollateral := redbank.UnderlyingLiquidity(c.AmountScaled, cm.LiquidityIndex)
		out, err = redbank.LiquidationAmounts(&redbank.LiquidationInput{
			DebtAmount:       req.DebtAmount,
			UserDebt:         userDebt,
			UserCollateral:   userCollateral,
			DebtPrice:        debtPrice,
			CollateralPrice:  collateralPrice,
			LiquidationBonus: cm.LiquidationBonus,
			CloseFactor:      s.closeFactor(),
			ClampPolicy:      s.clampPolicy(),
		})
		if err != nil {
			return err
		}

		repayScaled := redbank.ScaledDebtRepay(out.Repay, dm.BorrowIndex)
		if out.Repay.GreaterThanOrEqual(userDebt) {
			repayScaled = d.AmountScaled
		}

		seizeScaled := redbank.ScaledLiquidity(out.Seize, cm.LiquidityIndex)
		if out.Seize.GreaterThanOrEqual(userCollateral) {
			seizeScaled = c.AmountScaled
		}

		if err := sess.changeDebt(dm, d, repayScaled.Neg()); err != nil {
			return err
		}

		rc, err := sess.collateral(ctx, recipient, req.CollateralDenom)
		if err != nil {
			return err
		}

		if rc.ID == 0 && !rc.AmountScaled.IsPositive() {
			rc.Enabled = true
		}

		// collateral changes hands, the market total stays put
		if err := sess.moveCollateral(cm, c, seizeScaled.Neg(), decimal.Zero); err != nil {
			return err
		}

		if err := sess.moveCollateral(cm, rc, seizeScaled, decimal.Zero); err != nil {
			return err
		}

		redbank.RefreshRates(dm)

		extra := core.NewEventExtra()
		extra.Put(core.EventKeyRecipient, recipient)
		extra.Put(core.EventKeyCollateralDenom, req.CollateralDenom)
		extra.Put(core.EventKeyCollateralAmount, out.Seize)
		if out.Refund.IsPositive() {
			extra.Put(core.EventKeyRefund, out.Refund)
		}

		sess.emit(core.ActionTypeLiquidate, req.Liquidator, req.User, req.DebtDenom, out.Repay, extra)

		logger.FromContext(ctx).WithField("user", req.User).Infof("liquidated, repay %s %s, seize %s %s",
			out.Repay, req.DebtDenom, out.Seize, req.CollateralDenom)
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := sess.result(out.Repay)
	result.Refund = out.Refund
	result.CollateralSeized = out.Seize
	return result, nil
}
