package ledger

import (
	"context"
	"redbank/core"
	"redbank/internal/redbank"
	"redbank/pkg/number"

	"github.com/shopspring/decimal"
)

// UpdateUncollateralizedLoanLimit trust based override, owner or admin only.
// Debt in denom within a positive limit is taken out of the health factor.
func (s *service) UpdateUncollateralizedLoanLimit(ctx context.Context, caller, user, denom string, limit decimal.Decimal) error {
	_, err := s.execute(ctx, "update_uncollateralized_loan_limit", func(ctx context.Context, sess *session) error {
		if !s.system.IsPrivileged(caller) {
			return core.ErrUnauthorized
		}

		if limit.IsNegative() || !limit.IsInteger() {
			return core.ErrInvalidAmount
		}

		if !number.IsUint128(limit) {
			return core.ErrOverflow
		}

		m, err := sess.mustMarket(ctx, denom, core.ErrMarketNotFound)
		if err != nil {
			return err
		}

		l, err := sess.loanLimit(ctx, user, denom)
		if err != nil {
			return err
		}

		l.Limit = limit
		sess.touchLimit(l)

		d, err := sess.debt(ctx, user, denom)
		if err != nil {
			return err
		}

		if d.AmountScaled.IsPositive() {
			d.Uncollateralized = coveredByLimit(l, redbank.UnderlyingDebt(d.AmountScaled, m.BorrowIndex))
			sess.touchDebt(d)
		}

		extra := core.NewEventExtra()
		extra.Put(core.EventKeyLimit, limit)
		sess.emit(core.ActionTypeUpdateLoanLimit, caller, user, denom, decimal.Zero, extra)
		return nil
	})

	return err
}

// UpdateAssetCollateralStatus enable or disable a collateral, disabling must keep max_ltv_hf >= 1
func (s *service) UpdateAssetCollateralStatus(ctx context.Context, user, denom string, enable bool) error {
	_, err := s.execute(ctx, "update_asset_collateral_status", func(ctx context.Context, sess *session) error {
		if _, err := sess.mustMarket(ctx, denom, core.ErrMarketNotFound); err != nil {
			return err
		}

		c, err := sess.collateral(ctx, user, denom)
		if err != nil {
			return err
		}

		if !c.AmountScaled.IsPositive() {
			return core.ErrCollateralNotFound
		}

		if c.Enabled == enable {
			return nil
		}

		c.Enabled = enable
		sess.touchCollateral(c)

		if !enable {
			position, err := sess.position(ctx, user)
			if err != nil {
				return err
			}

			if !redbank.MaxLTVHealthy(position) {
				return core.ErrInvalidHealthFactorAfterDisablingCollateral
			}
		}

		extra := core.NewEventExtra()
		extra.Put(core.EventKeyEnable, enable)
		sess.emit(core.ActionTypeUpdateCollateralStatus, user, user, denom, decimal.Zero, extra)
		return nil
	})

	return err
}
