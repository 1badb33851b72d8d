package number

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestFloor(t *testing.T) {
	data := map[string]string{
		"0.10304": "0.1",
		"0.119":   "0.11",
		"7.999":   "7.99",
		"3":       "3",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			f := Floor(Decimal(k), 2)
			assert.Equal(t, v, f.String(), "should be floor")
		})
	}
}

func TestIsUint128(t *testing.T) {
	assert.Equal(t, true, IsUint128(Decimal("0")))
	assert.Equal(t, true, IsUint128(Decimal("340282366920938463463374607431768211455")))
	assert.Equal(t, false, IsUint128(Decimal("340282366920938463463374607431768211456")))
	assert.Equal(t, false, IsUint128(Decimal("-1")))
	assert.Equal(t, false, IsUint128(Decimal("1.5")))
}
