package oracle

import (
	"context"
	"fmt"
	"redbank/core"

	"github.com/shopspring/decimal"
)

type fixedOracle struct {
	baseDenom string
	prices    core.IPriceStore
}

// NewFixed oracle over fixed price sources, the base denom is always priced at 1
func NewFixed(baseDenom string, prices core.IPriceStore) core.IOracle {
	return &fixedOracle{
		baseDenom: baseDenom,
		prices:    prices,
	}
}

func (o *fixedOracle) Price(ctx context.Context, denom string) (decimal.Decimal, error) {
	price, err := o.prices.Find(ctx, denom)
	if err != nil {
		return decimal.Zero, err
	}

	if price.ID == 0 {
		if denom != "" && denom == o.baseDenom {
			return decimal.New(1, 0), nil
		}

		return decimal.Zero, fmt.Errorf("price of %s: %w", denom, core.ErrNoPriceSource)
	}

	if !price.Price.IsPositive() {
		return decimal.Zero, fmt.Errorf("price of %s: %w", denom, core.ErrInvalidPrice)
	}

	return price.Price, nil
}

// SetPrice set the fixed price source of a denom, owner only
func SetPrice(ctx context.Context, system *core.System, prices core.IPriceStore, caller, denom string, price decimal.Decimal) error {
	if !system.IsOwner(caller) {
		return core.ErrUnauthorized
	}

	if denom == "" || !price.IsPositive() {
		return core.ErrInvalidPrice
	}

	return prices.Save(ctx, &core.Price{Denom: denom, Price: price})
}
