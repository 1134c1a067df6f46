package compare

import "math"

// PrecisionResolver maps an integer precision (significant decimal digits)
// to an absolute tolerance. Implementations must be deterministic and
// monotonically non-increasing as precision grows.
type PrecisionResolver interface {
	Tolerance(precision int) float64
}

// DecimalResolver resolves the tolerance to half of the place value of the
// last significant decimal digit, e.g. precision 2 -> 0.005.
type DecimalResolver struct{}

func (DecimalResolver) Tolerance(precision int) float64 {
	return 0.5 * math.Pow(10, -float64(precision))
}
