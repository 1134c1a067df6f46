package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalResolverValues(t *testing.T) {
	r := DecimalResolver{}
	assert.InDelta(t, 0.5, r.Tolerance(0), 1e-12)
	assert.InDelta(t, 0.05, r.Tolerance(1), 1e-12)
	assert.InDelta(t, 0.005, r.Tolerance(2), 1e-12)
}

func TestDecimalResolverMonotonicNonIncreasing(t *testing.T) {
	r := DecimalResolver{}
	prev := r.Tolerance(0)
	for p := 1; p <= 15; p++ {
		cur := r.Tolerance(p)
		assert.LessOrEqual(t, cur, prev)
		assert.GreaterOrEqual(t, cur, 0.0)
		prev = cur
	}
}
