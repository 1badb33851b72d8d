package ledger

import (
	"context"
	"fmt"
	"redbank/core"
	"redbank/internal/redbank"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

func (s *service) InitAsset(ctx context.Context, caller, denom string, params core.AssetParams) (*core.Market, error) {
	_, err := s.execute(ctx, "init_asset", func(ctx context.Context, sess *session) error {
		if !s.system.IsOwner(caller) {
			return core.ErrUnauthorized
		}

		if denom == "" {
			return core.ErrInvalidParams
		}

		if err := redbank.ValidateAssetParams(&params); err != nil {
			return err
		}

		_, exists, err := sess.market(ctx, denom)
		if err != nil {
			return err
		}

		if exists {
			return fmt.Errorf("init %s: %w", denom, core.ErrAssetAlreadyInitialized)
		}

		m := redbank.NewMarket(denom, &params, sess.now)
		sess.markets[denom] = m
		sess.touchMarket(m)

		extra := core.NewEventExtra()
		extra.Put("params", params)
		sess.emit(core.ActionTypeInitAsset, caller, caller, denom, decimal.Zero, extra)

		logger.FromContext(ctx).WithField("denom", denom).Infoln("asset initialized")
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.store.Find(ctx, denom)
}
