package ledger

import (
	"context"
	"redbank/core"
	"redbank/internal/redbank"

	"github.com/shopspring/decimal"
)

func marketInfo(m *core.Market) *core.MarketInfo {
	return &core.MarketInfo{
		Market:             m,
		TotalLiquidity:     redbank.TotalLiquidity(m),
		TotalDebt:          redbank.TotalDebt(m),
		AvailableLiquidity: redbank.AvailableLiquidity(m),
		UtilizationRate:    redbank.CurrentUtilizationRate(m),
	}
}

func (s *service) Market(ctx context.Context, denom string) (*core.MarketInfo, error) {
	var info *core.MarketInfo
	err := s.query(ctx, func(ctx context.Context, sess *session) error {
		m, err := sess.mustMarket(ctx, denom, core.ErrMarketNotFound)
		if err != nil {
			return err
		}

		info = marketInfo(m)
		return nil
	})

	return info, err
}

func (s *service) Markets(ctx context.Context) ([]*core.MarketInfo, error) {
	var infos []*core.MarketInfo
	err := s.query(ctx, func(ctx context.Context, sess *session) error {
		markets, err := s.store.All(ctx)
		if err != nil {
			return err
		}

		for _, m := range markets {
			sess.markets[m.Denom] = m
			if err := sess.accrue(ctx, m); err != nil {
				return err
			}

			infos = append(infos, marketInfo(m))
		}

		return nil
	})

	return infos, err
}

func (s *service) UserDebt(ctx context.Context, user, denom string) (*core.UserDebt, error) {
	var debt *core.UserDebt
	err := s.query(ctx, func(ctx context.Context, sess *session) error {
		m, err := sess.mustMarket(ctx, denom, core.ErrMarketNotFound)
		if err != nil {
			return err
		}

		d, err := sess.debt(ctx, user, denom)
		if err != nil {
			return err
		}

		debt = userDebt(m, d)
		return nil
	})

	return debt, err
}

func (s *service) UserDebts(ctx context.Context, user string) ([]*core.UserDebt, error) {
	var debts []*core.UserDebt
	err := s.query(ctx, func(ctx context.Context, sess *session) error {
		_, list, err := sess.accounts(ctx, user)
		if err != nil {
			return err
		}

		for _, d := range list {
			m, err := sess.mustMarket(ctx, d.Denom, core.ErrMarketNotFound)
			if err != nil {
				return err
			}

			debts = append(debts, userDebt(m, d))
		}

		return nil
	})

	return debts, err
}

func userDebt(m *core.Market, d *core.Debt) *core.UserDebt {
	return &core.UserDebt{
		Denom:            d.Denom,
		AmountScaled:     d.AmountScaled,
		Amount:           redbank.UnderlyingDebt(d.AmountScaled, m.BorrowIndex),
		Uncollateralized: d.Uncollateralized,
	}
}

func (s *service) UserCollateral(ctx context.Context, user, denom string) (*core.UserCollateral, error) {
	var collateral *core.UserCollateral
	err := s.query(ctx, func(ctx context.Context, sess *session) error {
		m, err := sess.mustMarket(ctx, denom, core.ErrMarketNotFound)
		if err != nil {
			return err
		}

		c, err := sess.collateral(ctx, user, denom)
		if err != nil {
			return err
		}

		collateral = userCollateral(m, c)
		return nil
	})

	return collateral, err
}

func (s *service) UserCollaterals(ctx context.Context, user string) ([]*core.UserCollateral, error) {
	var collaterals []*core.UserCollateral
	err := s.query(ctx, func(ctx context.Context, sess *session) error {
		list, _, err := sess.accounts(ctx, user)
		if err != nil {
			return err
		}

		for _, c := range list {
			m, err := sess.mustMarket(ctx, c.Denom, core.ErrMarketNotFound)
			if err != nil {
				return err
			}

			collaterals = append(collaterals, userCollateral(m, c))
		}

		return nil
	})

	return collaterals, err
}

func userCollateral(m *core.Market, c *core.Collateral) *core.UserCollateral {
	return &core.UserCollateral{
		Denom:        c.Denom,
		AmountScaled: c.AmountScaled,
		Amount:       redbank.UnderlyingLiquidity(c.AmountScaled, m.LiquidityIndex),
		Enabled:      c.Enabled,
	}
}

func (s *service) UserPosition(ctx context.Context, user string) (*core.UserPosition, error) {
	var position *core.UserPosition
	err := s.query(ctx, func(ctx context.Context, sess *session) error {
		p, err := sess.position(ctx, user)
		position = p
		return err
	})

	return position, err
}

// ScaledLiquidityAmount amount of denom in scaled liquidity units at the current index
func (s *service) ScaledLiquidityAmount(ctx context.Context, denom string, amount decimal.Decimal) (decimal.Decimal, error) {
	scaled := decimal.Zero
	err := s.query(ctx, func(ctx context.Context, sess *session) error {
		m, err := sess.mustMarket(ctx, denom, core.ErrMarketNotFound)
		if err != nil {
			return err
		}

		scaled = redbank.ScaledLiquidity(amount, m.LiquidityIndex)
		return nil
	})

	return scaled, err
}

// ScaledDebtAmount amount of denom in scaled debt units at the current index
func (s *service) ScaledDebtAmount(ctx context.Context, denom string, amount decimal.Decimal) (decimal.Decimal, error) {
	scaled := decimal.Zero
	err := s.query(ctx, func(ctx context.Context, sess *session) error {
		m, err := sess.mustMarket(ctx, denom, core.ErrMarketNotFound)
		if err != nil {
			return err
		}

		scaled = redbank.ScaledDebt(amount, m.BorrowIndex)
		return nil
	})

	return scaled, err
}

func (s *service) UncollateralizedLoanLimit(ctx context.Context, user, denom string) (decimal.Decimal, error) {
	limit := decimal.Zero
	err := s.query(ctx, func(ctx context.Context, sess *session) error {
		l, err := sess.loanLimit(ctx, user, denom)
		if err != nil {
			return err
		}

		if l.ID > 0 {
			limit = l.Limit
		}

		return nil
	})

	return limit, err
}
