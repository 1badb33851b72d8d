package codes

import (
	"net/http"
	"redbank/core"
)

const (
	// InvalidArguments request could not be bound
	InvalidArguments = 100001
)

var kindStatus = map[core.ErrorKind]int{
	core.KindConfig:                http.StatusBadRequest,
	core.KindNotFound:              http.StatusNotFound,
	core.KindUnauthorized:          http.StatusForbidden,
	core.KindInsufficientFunds:     http.StatusBadRequest,
	core.KindInsufficientLiquidity: http.StatusConflict,
	core.KindHealthFactorViolation: http.StatusConflict,
	core.KindNotLiquidatable:       http.StatusConflict,
	core.KindOverflow:              http.StatusBadRequest,
	core.KindUnderflow:             http.StatusInternalServerError,
	core.KindInvariant:             http.StatusInternalServerError,
}

// HTTPStatus status code reported for an error kind
func HTTPStatus(kind core.ErrorKind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}

	return http.StatusInternalServerError
}
