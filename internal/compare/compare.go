// Package compare implements the structural equality oracle: a recursive
// comparator of received vs expected values with numeric tolerance, strict
// and subset object matching, and fail-fast single-discrepancy reporting.
package compare

import (
	"fmt"
	"math"

	"gitlab.com/TitanInd/deepmatch/internal/lib"
)

type Comparator struct {
	resolver PrecisionResolver
}

func NewComparator(resolver PrecisionResolver) *Comparator {
	return &Comparator{resolver: resolver}
}

// Compare walks both values depth-first, left-to-right for sequences and in
// sorted key order for objects, and returns the first mismatch found, or nil
// if the values match. strict requires object key sets to have equal
// cardinality; non-strict tolerates extra keys in received. precision is
// forwarded to the resolver untouched.
func (c *Comparator) Compare(received, expected Value, precision int, strict bool) *Discrepancy {
	tolerance := c.resolver.Tolerance(precision)
	return c.compare(received, expected, tolerance, strict).finalize()
}

// compare dispatches on the kind pair. The branch order is load-bearing:
// later branches assume earlier categories were excluded.
func (c *Comparator) compare(received, expected Value, tolerance float64, strict bool) *Discrepancy {
	switch {
	case received.kind == KindNumber && expected.kind == KindNumber:
		return compareNumbers(received.num, expected.num, tolerance)

	case received.kind == expected.kind && (received.kind == KindString || received.kind == KindBool):
		if received.Interface() == expected.Interface() {
			return nil
		}
		reason := fmt.Sprintf("the %ss do not match", received.kind)
		return newDiscrepancy(reason, expected.Interface(), received.Interface())

	case received.isSequenceLike() && expected.isSequenceLike():
		if received.seqLen() != expected.seqLen() {
			return newDiscrepancy(ReasonArrayLength, expected.seqLen(), received.seqLen())
		}
		for i := 0; i < expected.seqLen(); i++ {
			if d := c.compare(received.seqAt(i), expected.seqAt(i), tolerance, strict); d != nil {
				return d.annotateIndex(i)
			}
		}
		return nil

	case received.kind == KindAbsent && expected.kind == KindAbsent:
		return nil

	case received.kind == KindNull && expected.kind == KindNull:
		return nil

	case received.kind == KindObject && expected.kind == KindObject:
		receivedKeys := keySet(received.obj)
		expectedKeys := keySet(expected.obj).Sorted()

		if strict && receivedKeys.Len() != len(expectedKeys) {
			return newDiscrepancy(ReasonObjectKeys, expectedKeys, receivedKeys.Sorted())
		}
		if !receivedKeys.ContainsAll(expectedKeys) {
			return newDiscrepancy(ReasonObjectKeys, expectedKeys, receivedKeys.Sorted())
		}

		// Keys present only in received are never visited.
		for _, k := range expectedKeys {
			if d := c.compare(received.field(k), expected.field(k), tolerance, strict); d != nil {
				return d.annotateKey(k)
			}
		}
		return nil

	default:
		return newDiscrepancy(ReasonUnsupported, expected.kind.String(), received.kind.String())
	}
}

// compareNumbers applies the numeric semantics: NaN equals only NaN,
// infinities match by exact identity, finite numbers by absolute tolerance.
func compareNumbers(received, expected, tolerance float64) *Discrepancy {
	if math.IsNaN(received) {
		if math.IsNaN(expected) {
			return nil
		}
		return newDiscrepancy(ReasonExpected, expected, received)
	}

	if math.IsInf(received, 0) {
		if received == expected {
			return nil
		}
		return newDiscrepancy(ReasonExpected, expected, received)
	}

	if lib.AlmostEqual(received, expected, tolerance) {
		return nil
	}
	d := newDiscrepancy(ReasonExpected, expected, received)
	d.Diff = lib.Abs(received - expected)
	return d
}

func keySet(obj map[string]Value) lib.Set {
	s := lib.NewSet()
	for k := range obj {
		s.Add(k)
	}
	return s
}

// Compare runs a one-off comparison with the default DecimalResolver.
func Compare(received, expected Value, precision int, strict bool) *Discrepancy {
	return NewComparator(DecimalResolver{}).Compare(received, expected, precision, strict)
}
