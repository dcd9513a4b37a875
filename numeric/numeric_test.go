package numeric_test

import (
	"testing"

	"github.com/blockdtw/blockdtw/numeric"
	"github.com/stretchr/testify/assert"
)

// TestSaturateAdd_NormalCase checks plain addition below the Inf ceiling.
func TestSaturateAdd_NormalCase(t *testing.T) {
	assert.Equal(t, int64(5), numeric.SaturateAdd(2, 3))
}

// TestSaturateAdd_SaturatesAtInf checks that operands at or exceeding Inf
// saturate, and that Inf plus a small increment stays Inf.
func TestSaturateAdd_SaturatesAtInf(t *testing.T) {
	assert.Equal(t, numeric.Inf, numeric.SaturateAdd(numeric.Inf, 1))
	assert.Equal(t, numeric.Inf, numeric.SaturateAdd(numeric.Inf, numeric.Inf))
	assert.Equal(t, numeric.Inf, numeric.SaturateAdd(numeric.Inf-1, 5))
}

// TestMin3 checks the three-way minimum helper.
func TestMin3(t *testing.T) {
	assert.Equal(t, int64(1), numeric.Min3(3, 1, 2))
	assert.Equal(t, int64(1), numeric.Min3(1, 1, 1))
	assert.Equal(t, int64(-5), numeric.Min3(0, -5, 10))
}
