// SPDX-License-Identifier: MIT

package monomial

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced samples over the closed interval
// [from, to], endpoints included.
//
// Errors:
//   - ErrBadSampleCount — n < 2 (floats.Span needs both endpoints).
//   - ErrBadInterval    — from ≥ to, or a non-finite endpoint.
//
// Complexity: O(n) time, O(n) memory.
func Linspace(from, to float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, ErrBadSampleCount
	}
	if math.IsNaN(from) || math.IsInf(from, 0) || math.IsNaN(to) || math.IsInf(to, 0) {
		return nil, ErrBadInterval
	}
	if from >= to {
		return nil, ErrBadInterval
	}

	return floats.Span(make([]float64, n), from, to), nil
}
