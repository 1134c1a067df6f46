package lib

import (
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// AlmostEqual reports whether a and b differ by no more than the absolute
// tolerance. The check is symmetric in a and b.
func AlmostEqual[T Number](a, b T, tolerance float64) bool {
	return float64(Abs(a-b)) <= tolerance
}

func Abs[T Number](a T) T {
	if a < 0 {
		return -a
	}
	return a
}
