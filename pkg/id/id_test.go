package id

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	a := GenTraceID()
	b := GenTraceID()
	assert.NotEqual(t, a, b)

	_, err := uuid.FromString(a)
	assert.NoError(t, err)
}
