package oracle

import (
	"context"
	"fmt"
	"net/url"
	"redbank/core"
	"redbank/pkg/resthttp"
	"strings"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

// Remote price oracle backed by an http price service
type Remote struct {
	endpoint  string
	addresses core.IAddressProvider
}

// NewRemote oracle querying {endpoint}/api/v1/prices/{denom}; with an
// empty endpoint the registered oracle address is resolved on every call
func NewRemote(endpoint string, addresses core.IAddressProvider) *Remote {
	return &Remote{
		endpoint:  strings.TrimSuffix(endpoint, "/"),
		addresses: addresses,
	}
}

var (
	_ core.IOracle             = (*Remote)(nil)
	_ core.IPriceTickerService = (*Remote)(nil)
)

func (o *Remote) Price(ctx context.Context, denom string) (decimal.Decimal, error) {
	ticker, err := o.PullPriceTicker(ctx, denom)
	if err != nil {
		return decimal.Zero, err
	}

	if !ticker.Price.IsPositive() {
		return decimal.Zero, fmt.Errorf("price of %s: %w", denom, core.ErrInvalidPrice)
	}

	return ticker.Price, nil
}

// PullPriceTicker pull price ticker
func (o *Remote) PullPriceTicker(ctx context.Context, denom string) (*core.PriceTicker, error) {
	endpoint, err := o.resolveEndpoint(ctx)
	if err != nil {
		return nil, err
	}

	uri := fmt.Sprintf("%s/api/v1/prices/%s", endpoint, url.PathEscape(denom))
	logger.FromContext(ctx).Debugln("pull price:", uri)

	resp, err := resthttp.Request(ctx).Get(uri)
	if err != nil {
		return nil, err
	}

	var ticker core.PriceTicker
	if err := resthttp.ParseResponse(resp, &ticker); err != nil {
		if resthttp.IsNotFound(err) {
			return nil, fmt.Errorf("price of %s: %w", denom, core.ErrNoPriceSource)
		}

		return nil, err
	}

	return &ticker, nil
}

func (o *Remote) resolveEndpoint(ctx context.Context) (string, error) {
	if o.endpoint != "" {
		return o.endpoint, nil
	}

	endpoint, err := o.addresses.Resolve(ctx, core.AddressTypeOracle)
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(endpoint, "/"), nil
}
