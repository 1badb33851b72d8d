package incentives

import (
	"context"
	"fmt"
	"redbank/core"
	"redbank/pkg/resthttp"
	"strings"

	"github.com/fatih/structs"
	"github.com/fox-one/pkg/logger"
)

type service struct {
	addresses core.IAddressProvider
}

// New incentives service posting balance changes to the registered incentives address
func New(addresses core.IAddressProvider) core.IIncentivesService {
	return &service{
		addresses: addresses,
	}
}

func (s *service) BalanceChanged(ctx context.Context, changes []*core.BalanceChange) error {
	if len(changes) == 0 {
		return nil
	}

	endpoint, err := s.addresses.Resolve(ctx, core.AddressTypeIncentives)
	if err != nil {
		return err
	}

	body := map[string]interface{}{
		"changes": toMaps(changes),
	}

	uri := fmt.Sprintf("%s/api/v1/balance_changes", strings.TrimSuffix(endpoint, "/"))
	if _, err := resthttp.Execute(resthttp.Request(ctx), "POST", uri, body, nil); err != nil {
		logger.FromContext(ctx).WithError(err).Errorln("post balance changes")
		return err
	}

	return nil
}

func toMaps(changes []*core.BalanceChange) []map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(changes))
	for _, c := range changes {
		items = append(items, structs.Map(c))
	}

	return items
}
