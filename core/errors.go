package core

import (
	"errors"
	"strconv"
)

// ErrorKind error category
type ErrorKind int

const (
	// KindUnknown unknown
	KindUnknown ErrorKind = iota
	// KindConfig market parameters or configuration invalid
	KindConfig
	// KindNotFound unknown denom, user, position or peer
	KindNotFound
	// KindUnauthorized privileged operation by non-privileged caller
	KindUnauthorized
	// KindInsufficientFunds amount exceeds the user's balance
	KindInsufficientFunds
	// KindInsufficientLiquidity amount exceeds the market's free liquidity
	KindInsufficientLiquidity
	// KindHealthFactorViolation operation would breach solvency
	KindHealthFactorViolation
	// KindNotLiquidatable liquidation of a healthy or invalid position
	KindNotLiquidatable
	// KindOverflow arithmetic upper bound exceeded
	KindOverflow
	// KindUnderflow arithmetic lower bound exceeded
	KindUnderflow
	// KindInvariant internal invariant violated, fatal
	KindInvariant
)

var kindNames = map[ErrorKind]string{
	KindUnknown:               "unknown",
	KindConfig:                "config",
	KindNotFound:              "not_found",
	KindUnauthorized:          "unauthorized",
	KindInsufficientFunds:     "insufficient_funds",
	KindInsufficientLiquidity: "insufficient_liquidity",
	KindHealthFactorViolation: "health_factor_violation",
	KindNotLiquidatable:       "not_liquidatable",
	KindOverflow:              "overflow",
	KindUnderflow:             "underflow",
	KindInvariant:             "invariant",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return kindNames[KindUnknown]
}

// Fatal kinds report broken internal state rather than a rejected request
func (k ErrorKind) Fatal() bool {
	return k == KindInvariant || k == KindOverflow || k == KindUnderflow
}

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unkown
	ErrUnknown ErrorCode = 100000
	// ErrUnauthorized caller is not the owner
	ErrUnauthorized ErrorCode = 100001

	// ErrInvalidParams market parameters violate their bounds
	ErrInvalidParams ErrorCode = 100100
	// ErrAssetAlreadyInitialized market exists
	ErrAssetAlreadyInitialized ErrorCode = 100101
	// ErrAssetNotEnabled market unknown or the action is disabled
	ErrAssetNotEnabled ErrorCode = 100102
	// ErrMarketNotFound no market
	ErrMarketNotFound ErrorCode = 100103
	// ErrInvalidAmount zero amount or more than the balance
	ErrInvalidAmount ErrorCode = 100104
	// ErrDepositCapExceeded deposit would exceed the market cap
	ErrDepositCapExceeded ErrorCode = 100105
	// ErrInvalidPrice oracle price is not positive
	ErrInvalidPrice ErrorCode = 100106

	// ErrBorrowAmountExceedsAvailableLiquidity insufficient market liquidity
	ErrBorrowAmountExceedsAvailableLiquidity ErrorCode = 100200
	// ErrWithdrawAmountExceedsAvailableLiquidity insufficient market liquidity
	ErrWithdrawAmountExceedsAvailableLiquidity ErrorCode = 100201
	// ErrBorrowAmountExceedsGivenCollateral max_ltv_hf would drop below 1
	ErrBorrowAmountExceedsGivenCollateral ErrorCode = 100202
	// ErrInvalidHealthFactorAfterWithdraw max_ltv_hf would drop below 1
	ErrInvalidHealthFactorAfterWithdraw ErrorCode = 100204
	// ErrInvalidHealthFactorAfterDisablingCollateral max_ltv_hf would drop below 1
	ErrInvalidHealthFactorAfterDisablingCollateral ErrorCode = 100205

	// ErrCannotRepayZeroDebt user has no debt in the denom
	ErrCannotRepayZeroDebt ErrorCode = 100300
	// ErrCannotRepayUncollateralizedLoanOnBehalfOf third party repay of an uncollateralized loan
	ErrCannotRepayUncollateralizedLoanOnBehalfOf ErrorCode = 100301
	// ErrCollateralNotFound user has no collateral in the denom
	ErrCollateralNotFound ErrorCode = 100302

	// ErrUserNotLiquidatable liq_threshold_hf >= 1
	ErrUserNotLiquidatable ErrorCode = 100400
	// ErrCannotLiquidateWhenNoCollateralBalance nothing to seize
	ErrCannotLiquidateWhenNoCollateralBalance ErrorCode = 100401
	// ErrCannotLiquidateWhenCollateralDisabled collateral not enabled
	ErrCannotLiquidateWhenCollateralDisabled ErrorCode = 100402
	// ErrCannotLiquidateWhenNoDebtBalance nothing to repay
	ErrCannotLiquidateWhenNoDebtBalance ErrorCode = 100403
	// ErrCannotLiquidateUncollateralizedDebt debt is backed by a loan limit
	ErrCannotLiquidateUncollateralizedDebt ErrorCode = 100404
	// ErrCannotLiquidateSelf liquidator is the user
	ErrCannotLiquidateSelf ErrorCode = 100405
	// ErrLiquidationExceedsCollateral seize exceeds collateral under the reject policy
	ErrLiquidationExceedsCollateral ErrorCode = 100406

	// ErrAddressNotFound role not registered
	ErrAddressNotFound ErrorCode = 100500
	// ErrNoPriceSource no price for the denom
	ErrNoPriceSource ErrorCode = 100501

	// ErrOverflow arithmetic overflow
	ErrOverflow ErrorCode = 100900
	// ErrUnderflow arithmetic underflow
	ErrUnderflow ErrorCode = 100901
	// ErrInvariantViolation internal state broken
	ErrInvariantViolation ErrorCode = 100902
)

type errorInfo struct {
	kind ErrorKind
	msg  string
}

var errorInfos = map[ErrorCode]errorInfo{
	ErrUnknown:      {KindUnknown, "unknown error"},
	ErrUnauthorized: {KindUnauthorized, "unauthorized"},

	ErrInvalidParams:           {KindConfig, "invalid asset params"},
	ErrAssetAlreadyInitialized: {KindConfig, "asset already initialized"},
	ErrAssetNotEnabled:         {KindConfig, "asset not enabled"},
	ErrMarketNotFound:          {KindNotFound, "market not found"},
	ErrInvalidAmount:           {KindInsufficientFunds, "invalid amount"},
	ErrDepositCapExceeded:      {KindInsufficientLiquidity, "deposit cap exceeded"},
	ErrInvalidPrice:            {KindConfig, "invalid price"},

	ErrBorrowAmountExceedsAvailableLiquidity:       {KindInsufficientLiquidity, "borrow amount exceeds available liquidity"},
	ErrWithdrawAmountExceedsAvailableLiquidity:     {KindInsufficientLiquidity, "withdraw amount exceeds available liquidity"},
	ErrBorrowAmountExceedsGivenCollateral:          {KindHealthFactorViolation, "borrow amount exceeds given collateral"},
	ErrInvalidHealthFactorAfterWithdraw:            {KindHealthFactorViolation, "invalid health factor after withdraw"},
	ErrInvalidHealthFactorAfterDisablingCollateral: {KindHealthFactorViolation, "invalid health factor after disabling collateral"},

	ErrCannotRepayZeroDebt:                       {KindNotFound, "cannot repay zero debt"},
	ErrCannotRepayUncollateralizedLoanOnBehalfOf: {KindUnauthorized, "cannot repay uncollateralized loan on behalf of another user"},
	ErrCollateralNotFound:                        {KindNotFound, "collateral not found"},

	ErrUserNotLiquidatable:                    {KindNotLiquidatable, "invalid liquidation: user not liquidatable"},
	ErrCannotLiquidateWhenNoCollateralBalance: {KindNotLiquidatable, "invalid liquidation: no collateral balance"},
	ErrCannotLiquidateWhenCollateralDisabled:  {KindNotLiquidatable, "invalid liquidation: collateral not enabled"},
	ErrCannotLiquidateWhenNoDebtBalance:       {KindNotLiquidatable, "invalid liquidation: no debt balance"},
	ErrCannotLiquidateUncollateralizedDebt:    {KindNotLiquidatable, "invalid liquidation: debt is uncollateralized"},
	ErrCannotLiquidateSelf:                    {KindNotLiquidatable, "invalid liquidation: liquidator is the user"},
	ErrLiquidationExceedsCollateral:           {KindNotLiquidatable, "invalid liquidation: seize amount exceeds collateral"},

	ErrAddressNotFound: {KindNotFound, "address not found"},
	ErrNoPriceSource:   {KindNotFound, "no price source"},

	ErrOverflow:           {KindOverflow, "overflow"},
	ErrUnderflow:          {KindUnderflow, "underflow"},
	ErrInvariantViolation: {KindInvariant, "invariant violation"},
}

// Code numeric code as string
func (e ErrorCode) Code() string {
	return strconv.Itoa(int(e))
}

// Kind category of the error code
func (e ErrorCode) Kind() ErrorKind {
	if info, ok := errorInfos[e]; ok {
		return info.kind
	}

	return KindUnknown
}

func (e ErrorCode) String() string {
	if info, ok := errorInfos[e]; ok {
		return info.msg
	}

	return e.Code()
}

func (e ErrorCode) Error() string {
	return e.String()
}

// ErrorKindOf category of err, KindUnknown when err carries no ErrorCode
func ErrorKindOf(err error) ErrorKind {
	var code ErrorCode
	if errors.As(err, &code) {
		return code.Kind()
	}

	return KindUnknown
}

// ErrorCodeOf code carried by err, ErrUnknown when none
func ErrorCodeOf(err error) ErrorCode {
	var code ErrorCode
	if errors.As(err, &code) {
		return code
	}

	return ErrUnknown
}
