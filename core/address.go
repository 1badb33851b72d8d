package core

import (
	"context"
	"time"
)

// AddressType logical role of a peer
type AddressType string

const (
	// AddressTypeIncentives incentives service endpoint
	AddressTypeIncentives AddressType = "incentives"
	// AddressTypeOracle remote oracle endpoint
	AddressTypeOracle AddressType = "oracle"
	// AddressTypeRedBank the ledger itself
	AddressTypeRedBank AddressType = "red_bank"
	// AddressTypeRewardsCollector receives the reserve share of interest
	AddressTypeRewardsCollector AddressType = "rewards_collector"
	// AddressTypeProtocolAdmin protocol admin
	AddressTypeProtocolAdmin AddressType = "protocol_admin"
)

// AddressTypes all known roles
var AddressTypes = []AddressType{
	AddressTypeIncentives,
	AddressTypeOracle,
	AddressTypeRedBank,
	AddressTypeRewardsCollector,
	AddressTypeProtocolAdmin,
}

func (t AddressType) String() string {
	return string(t)
}

// Valid is a known role
func (t AddressType) Valid() bool {
	for _, v := range AddressTypes {
		if v == t {
			return true
		}
	}

	return false
}

// Address registry entry
type Address struct {
	ID        uint64      `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id,omitempty"`
	Type      AddressType `sql:"size:32;unique_index:idx_addresses_type" json:"type,omitempty"`
	Address   string      `sql:"size:256" json:"address,omitempty"`
	Version   int64       `sql:"default:0" json:"version,omitempty"`
	CreatedAt time.Time   `sql:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
	UpdatedAt time.Time   `sql:"default:CURRENT_TIMESTAMP" json:"updated_at,omitempty"`
}

// IAddressStore address store interface
type IAddressStore interface {
	// Find returns an address with ID 0 when the role is not registered
	Find(ctx context.Context, addressType AddressType) (*Address, error)
	Save(ctx context.Context, address *Address) error
	All(ctx context.Context) ([]*Address, error)
}

// IAddressProvider address registry
type IAddressProvider interface {
	// Resolve returns ErrAddressNotFound when the role is not registered
	Resolve(ctx context.Context, addressType AddressType) (string, error)
}
