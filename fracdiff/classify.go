// SPDX-License-Identifier: MIT

package fracdiff

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// IsNegativeInteger reports whether x represents a negative integer:
// x lies within eps (absolute) of its nearest integer AND that integer
// is strictly less than zero.
//
// Non-finite x (NaN, ±Inf) returns false. Zero is not negative, so
// values within eps of 0 return false. eps = 0 means exact comparison.
//
// Complexity: O(1).
func IsNegativeInteger(x, eps float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}

	nearest := math.Round(x)
	if !scalar.EqualWithinAbs(x, nearest, eps) {
		return false
	}

	return nearest < 0
}
