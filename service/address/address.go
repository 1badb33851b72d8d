package address

import (
	"context"
	"fmt"
	"redbank/core"

	"github.com/fox-one/pkg/logger"
)

// Registry address provider over an address store, only the owner may register roles
type Registry struct {
	system *core.System
	store  core.IAddressStore
}

var _ core.IAddressProvider = (*Registry)(nil)

// New new address registry
func New(system *core.System, store core.IAddressStore) *Registry {
	return &Registry{
		system: system,
		store:  store,
	}
}

// Resolve address of the role
func (r *Registry) Resolve(ctx context.Context, addressType core.AddressType) (string, error) {
	address, err := r.store.Find(ctx, addressType)
	if err != nil {
		return "", err
	}

	if address.ID == 0 || address.Address == "" {
		return "", fmt.Errorf("resolve %s: %w", addressType, core.ErrAddressNotFound)
	}

	return address.Address, nil
}

// Set register the address of a role
func (r *Registry) Set(ctx context.Context, caller string, addressType core.AddressType, addr string) error {
	log := logger.FromContext(ctx).WithField("address_type", addressType)

	if !r.system.IsOwner(caller) {
		log.Infoln("set address rejected, caller:", caller)
		return core.ErrUnauthorized
	}

	if !addressType.Valid() || addr == "" {
		return core.ErrInvalidParams
	}

	if err := r.store.Save(ctx, &core.Address{Type: addressType, Address: addr}); err != nil {
		log.WithError(err).Errorln("address.Save")
		return err
	}

	return nil
}

// All registered addresses
func (r *Registry) All(ctx context.Context) ([]*core.Address, error) {
	return r.store.All(ctx)
}
