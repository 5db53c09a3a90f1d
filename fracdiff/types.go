// SPDX-License-Identifier: MIT
// Package fracdiff: options and numeric-policy defaults.

package fracdiff

// Numeric policy.
const (
	// DefaultEpsilon is the absolute tolerance used by the edge-case
	// classifier to decide whether a float64 represents an integer.
	// A value of 0 degrades to exact comparison and remains valid.
	DefaultEpsilon = 1e-9
)

// Options configures fractional differentiation.
//
// Fields:
//   - Epsilon — absolute tolerance for the negative-integer
//     classification of Power and Power−order. Must be ≥ 0 and finite;
//     anything else surfaces as ErrBadEpsilon.
//
// Example:
//
//	opts := fracdiff.DefaultOptions()
//	opts.Epsilon = 1e-12 // tighter integer detection
//	g, err := fracdiff.Differentiate(f, 0.5, &opts)
type Options struct {
	Epsilon float64
}

// DefaultOptions returns an Options with the documented defaults:
//   - Epsilon = DefaultEpsilon (1e-9).
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}
