package memory

import (
	"context"
	"redbank/core"
	"sort"
	"sync"
	"time"
)

// Prices in-memory fixed price sources
type Prices struct {
	mux    sync.RWMutex
	seq    uint64
	prices map[string]*core.Price
}

var _ core.IPriceStore = (*Prices)(nil)

// NewPrices empty price store
func NewPrices() *Prices {
	return &Prices{prices: make(map[string]*core.Price)}
}

func (s *Prices) Find(ctx context.Context, denom string) (*core.Price, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	if p, ok := s.prices[denom]; ok {
		price := *p
		return &price, nil
	}

	return &core.Price{Denom: denom}, nil
}

func (s *Prices) Save(ctx context.Context, price *core.Price) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	now := time.Now()
	if current, ok := s.prices[price.Denom]; ok {
		price.ID = current.ID
		price.Version = current.Version + 1
		price.CreatedAt = current.CreatedAt
	} else {
		s.seq++
		price.ID = s.seq
		price.CreatedAt = now
	}

	price.UpdatedAt = now
	p := *price
	s.prices[price.Denom] = &p
	return nil
}

func (s *Prices) All(ctx context.Context) ([]*core.Price, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	prices := make([]*core.Price, 0, len(s.prices))
	for _, p := range s.prices {
		price := *p
		prices = append(prices, &price)
	}

	sort.Slice(prices, func(i, j int) bool {
		return prices[i].Denom < prices[j].Denom
	})

	return prices, nil
}

// Addresses in-memory address registry
type Addresses struct {
	mux       sync.RWMutex
	seq       uint64
	addresses map[core.AddressType]*core.Address
	// lookups served, lets cache tests count round trips
	Finds int
}

var _ core.IAddressStore = (*Addresses)(nil)

// NewAddresses empty address store
func NewAddresses() *Addresses {
	return &Addresses{addresses: make(map[core.AddressType]*core.Address)}
}

func (s *Addresses) Find(ctx context.Context, addressType core.AddressType) (*core.Address, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.Finds++
	if a, ok := s.addresses[addressType]; ok {
		address := *a
		return &address, nil
	}

	return &core.Address{Type: addressType}, nil
}

func (s *Addresses) Save(ctx context.Context, address *core.Address) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	now := time.Now()
	if current, ok := s.addresses[address.Type]; ok {
		address.ID = current.ID
		address.Version = current.Version + 1
		address.CreatedAt = current.CreatedAt
	} else {
		s.seq++
		address.ID = s.seq
		address.CreatedAt = now
	}

	address.UpdatedAt = now
	a := *address
	s.addresses[address.Type] = &a
	return nil
}

func (s *Addresses) All(ctx context.Context) ([]*core.Address, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	addresses := make([]*core.Address, 0, len(s.addresses))
	for _, a := range s.addresses {
		address := *a
		addresses = append(addresses, &address)
	}

	sort.Slice(addresses, func(i, j int) bool {
		return addresses[i].Type < addresses[j].Type
	})

	return addresses, nil
}
