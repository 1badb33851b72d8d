package core

import (
	"github.com/shopspring/decimal"
)

// ClampPolicy what liquidation does when the seize amount exceeds the collateral
type ClampPolicy string

const (
	// ClampPolicyReduce clamp the seize amount and reduce the repay amount proportionally
	ClampPolicyReduce ClampPolicy = "reduce"
	// ClampPolicyReject reject the liquidation
	ClampPolicyReject ClampPolicy = "reject"
)

// Valid known policy
func (p ClampPolicy) Valid() bool {
	return p == ClampPolicyReduce || p == ClampPolicyReject
}

// System stores system information.
type System struct {
	Owner          string
	EmergencyOwner string
	Admins         []string
	BaseDenom      string
	CloseFactor    decimal.Decimal
	ClampPolicy    ClampPolicy
	Location       string
	Version        string
}

// IsOwner owner or emergency owner
func (s *System) IsOwner(userID string) bool {
	if userID == "" {
		return false
	}

	return userID == s.Owner || userID == s.EmergencyOwner
}

// IsAdmin is admin
func (s *System) IsAdmin(userID string) bool {
	if len(s.Admins) == 0 {
		return false
	}

	for _, a := range s.Admins {
		if a == userID {
			return true
		}
	}

	return false
}

// IsPrivileged owner or admin
func (s *System) IsPrivileged(userID string) bool {
	return s.IsOwner(userID) || s.IsAdmin(userID)
}
