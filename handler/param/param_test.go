package param

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	User   string `json:"user" valid:"required"`
	Denom  string `json:"denom" valid:"required"`
	Amount string `json:"amount" valid:"int"`
	Enable bool   `json:"enable"`
}

func bind(t *testing.T, r *http.Request) (*request, error) {
	var (
		params request
		err    error
	)

	router := chi.NewRouter()
	router.HandleFunc("/users/{user}", func(w http.ResponseWriter, r *http.Request) {
		err = Binding(r, &params)
	})
	router.ServeHTTP(httptest.NewRecorder(), r)
	return &params, err
}

func TestBinding(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/users/alice?denom=uosmo", strings.NewReader(`{"user":"bob","amount":"100","enable":true}`))
	params, err := bind(t, r)
	require.NoError(t, err)
	assert.Equal(t, "alice", params.User, "url params win")
	assert.Equal(t, "uosmo", params.Denom)
	assert.Equal(t, "100", params.Amount)
	assert.True(t, params.Enable)

	r = httptest.NewRequest(http.MethodGet, "/users/alice?amount=1.5&denom=uosmo", nil)
	_, err = bind(t, r)
	assert.Error(t, err)

	r = httptest.NewRequest(http.MethodGet, "/users/alice", nil)
	_, err = bind(t, r)
	assert.Error(t, err, "denom is required")

	r = httptest.NewRequest(http.MethodPost, "/users/alice", strings.NewReader(`{`))
	_, err = bind(t, r)
	assert.Error(t, err)
}

func TestDecimal(t *testing.T) {
	d, err := Decimal("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = Decimal("12.5")
	require.NoError(t, err)
	assert.Equal(t, "12.5", d.String())

	_, err = Decimal("abc")
	assert.Error(t, err)
}
