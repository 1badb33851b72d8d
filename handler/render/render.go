package render

import (
	"encoding/json"
	"net/http"
	"os"
	"redbank/core"
	"redbank/handler/codes"
	"strconv"

	"github.com/sirupsen/logrus"
)

// ResponseErrorMessageAsHint expose internal error messages as hint
var ResponseErrorMessageAsHint bool

func init() {
	v := os.Getenv("RESPONSE_ERROR_MESSAGE_AS_HINT")
	ResponseErrorMessageAsHint, _ = strconv.ParseBool(v)
}

// H shorthand of a json object
type H map[string]interface{}

type dataResponse struct {
	Data interface{} `json:"data"`
}

type errorResponse struct {
	Code int    `json:"code"`
	Kind string `json:"kind,omitempty"`
	Msg  string `json:"msg"`
	Hint string `json:"hint,omitempty"`
}

func write(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Errorln("render: encode response")
	}
}

// JSON render v as {"data": v}
func JSON(w http.ResponseWriter, v interface{}) {
	write(w, http.StatusOK, dataResponse{Data: v})
}

// Error render a ledger error with the status of its kind,
// errors without a code are reported as internal errors
func Error(w http.ResponseWriter, err error) {
	code := core.ErrorCodeOf(err)
	if code == core.ErrUnknown {
		resp := errorResponse{Code: int(core.ErrUnknown), Msg: "internal error"}
		if ResponseErrorMessageAsHint {
			resp.Hint = err.Error()
		}

		write(w, http.StatusInternalServerError, resp)
		return
	}

	write(w, codes.HTTPStatus(code.Kind()), errorResponse{
		Code: int(code),
		Kind: code.Kind().String(),
		Msg:  code.String(),
		Hint: err.Error(),
	})
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	write(w, http.StatusBadRequest, errorResponse{Code: codes.InvalidArguments, Msg: err.Error()})
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	write(w, http.StatusNotFound, errorResponse{Code: http.StatusNotFound, Msg: err.Error()})
}

// Unavailable service unavailable error
func Unavailable(w http.ResponseWriter, err error) {
	write(w, http.StatusServiceUnavailable, errorResponse{Code: http.StatusServiceUnavailable, Msg: err.Error()})
}
