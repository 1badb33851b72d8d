package core

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// HealthStatus is either NotBorrowing or Borrowing{LiqThresholdHF, MaxLTVHF}.
// The health factors only exist on the Borrowing variant.
type HealthStatus struct {
	borrowing      bool
	liqThresholdHF decimal.Decimal
	maxLTVHF       decimal.Decimal
}

// NotBorrowing user has no collateralized debt
func NotBorrowing() HealthStatus {
	return HealthStatus{}
}

// Borrowing user has debt with the given health factors
func Borrowing(liqThresholdHF, maxLTVHF decimal.Decimal) HealthStatus {
	return HealthStatus{
		borrowing:      true,
		liqThresholdHF: liqThresholdHF,
		maxLTVHF:       maxLTVHF,
	}
}

// Borrowing reports the health factors, ok is false for NotBorrowing
func (h HealthStatus) Borrowing() (liqThresholdHF, maxLTVHF decimal.Decimal, ok bool) {
	return h.liqThresholdHF, h.maxLTVHF, h.borrowing
}

// IsBorrowing is the Borrowing variant
func (h HealthStatus) IsBorrowing() bool {
	return h.borrowing
}

func (h HealthStatus) String() string {
	if !h.borrowing {
		return "not_borrowing"
	}

	return "borrowing{liq_threshold_hf:" + h.liqThresholdHF.String() + ",max_ltv_hf:" + h.maxLTVHF.String() + "}"
}

type healthStatusJSON struct {
	Borrowing *struct {
		LiqThresholdHF decimal.Decimal `json:"liq_threshold_hf"`
		MaxLTVHF       decimal.Decimal `json:"max_ltv_hf"`
	} `json:"borrowing,omitempty"`
}

// MarshalJSON encodes as "not_borrowing" or {"borrowing":{...}}
func (h HealthStatus) MarshalJSON() ([]byte, error) {
	if !h.borrowing {
		return json.Marshal("not_borrowing")
	}

	var v healthStatusJSON
	v.Borrowing = &struct {
		LiqThresholdHF decimal.Decimal `json:"liq_threshold_hf"`
		MaxLTVHF       decimal.Decimal `json:"max_ltv_hf"`
	}{h.liqThresholdHF, h.maxLTVHF}
	return json.Marshal(v)
}

// UnmarshalJSON inverse of MarshalJSON
func (h *HealthStatus) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*h = NotBorrowing()
		return nil
	}

	var v healthStatusJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	if v.Borrowing == nil {
		*h = NotBorrowing()
		return nil
	}

	*h = Borrowing(v.Borrowing.LiqThresholdHF, v.Borrowing.MaxLTVHF)
	return nil
}

// UserPosition derived snapshot of a user's positions valued in the base currency
type UserPosition struct {
	TotalEnabledCollateral decimal.Decimal `json:"total_enabled_collateral"`
	TotalCollateralizedDebt decimal.Decimal `json:"total_collateralized_debt"`
	// sum of collateral value * max_loan_to_value
	WeightedMaxLTVCollateral decimal.Decimal `json:"weighted_max_ltv_collateral"`
	// sum of collateral value * liquidation_threshold
	WeightedLiquidationThresholdCollateral decimal.Decimal `json:"weighted_liquidation_threshold_collateral"`
	HealthStatus                           HealthStatus    `json:"health_status"`
}

// AvgMaxLTV collateral weighted average max loan to value
func (p *UserPosition) AvgMaxLTV() decimal.Decimal {
	if !p.TotalEnabledCollateral.IsPositive() {
		return decimal.Zero
	}

	return p.WeightedMaxLTVCollateral.Div(p.TotalEnabledCollateral)
}

// AvgLiquidationThreshold collateral weighted average liquidation threshold
func (p *UserPosition) AvgLiquidationThreshold() decimal.Decimal {
	if !p.TotalEnabledCollateral.IsPositive() {
		return decimal.Zero
	}

	return p.WeightedLiquidationThresholdCollateral.Div(p.TotalEnabledCollateral)
}

// IsLiquidatable liq_threshold_hf < 1, never for NotBorrowing
func (p *UserPosition) IsLiquidatable() bool {
	liqHF, _, ok := p.HealthStatus.Borrowing()
	return ok && liqHF.LessThan(decimal.New(1, 0))
}
