package address

import (
	"context"
	"fmt"
	"redbank/core"
	"time"

	"github.com/bluele/gcache"
	"golang.org/x/sync/singleflight"
)

// Cache wraps store with an expiring LRU cache, lookups for the same role are collapsed
func Cache(store core.IAddressStore, exp time.Duration) core.IAddressStore {
	return &cacheAddressStore{
		IAddressStore: store,
		cache:         gcache.New(64).LRU().Expiration(exp).Build(),
		sf:            &singleflight.Group{},
	}
}

type cacheAddressStore struct {
	core.IAddressStore
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cacheAddressStore) Find(ctx context.Context, addressType core.AddressType) (*core.Address, error) {
	key := s.addressKey(addressType)
	if v, err := s.cache.Get(key); err == nil {
		if address, ok := v.(*core.Address); ok {
			return address, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		address, err := s.IAddressStore.Find(ctx, addressType)
		if err != nil {
			return nil, err
		}

		if address.ID > 0 {
			_ = s.cache.Set(key, address)
		}

		return address, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*core.Address), nil
}

func (s *cacheAddressStore) Save(ctx context.Context, address *core.Address) error {
	if err := s.IAddressStore.Save(ctx, address); err != nil {
		return err
	}

	s.cache.Remove(s.addressKey(address.Type))
	return nil
}

func (s *cacheAddressStore) addressKey(addressType core.AddressType) string {
	return fmt.Sprintf("address:type:%s", addressType)
}
