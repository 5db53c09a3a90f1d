// SPDX-License-Identifier: MIT

package monomial

import (
	"fmt"
	"math"
)

// Monomial represents the power function Const·x^Power.
//
// It is an immutable value type: no constructor invariants, no identity
// beyond the two fields, freely copied. The zero value is the constant
// function 0.
type Monomial struct {
	Const float64
	Power float64
}

// New returns the monomial c·x^k.
func New(c, k float64) Monomial {
	return Monomial{Const: c, Power: k}
}

// IsZero reports whether m is the zero function (Const == 0).
func (m Monomial) IsZero() bool {
	return m.Const == 0
}

// At evaluates m at x: Const·x^Power via math.Pow.
//
// At follows math.Pow semantics outside the real domain: a fractional
// Power with x < 0 yields NaN, a negative Power with x == 0 yields ±Inf.
// Use Map for validated evaluation over a sample grid.
func (m Monomial) At(x float64) float64 {
	return m.Const * math.Pow(x, m.Power)
}

// Func materializes m as a func(float64) float64 closure.
//
// The closure captures m by value and is safe to share across
// goroutines.
func (m Monomial) Func() func(float64) float64 {
	return func(x float64) float64 { return m.At(x) }
}

// NeedsPositiveDomain reports whether evaluating m is only well-defined
// for x > 0, i.e. Power is negative or has a fractional part.
//
// The integer test here is exact (no epsilon): this guards the real
// domain of x^Power, and an almost-integer power still has no real
// value at x < 0.
func (m Monomial) NeedsPositiveDomain() bool {
	return m.Power < 0 || m.Power != math.Trunc(m.Power)
}

// Map evaluates m element-wise over the ordered sample grid xs and
// returns a freshly allocated slice of the same length.
//
// When NeedsPositiveDomain() holds, every x must be strictly positive;
// otherwise Map returns ErrNonPositiveDomain and no result. Validation
// runs before any evaluation, so a returned slice is always fully
// populated.
func (m Monomial) Map(xs []float64) ([]float64, error) {
	if m.NeedsPositiveDomain() {
		for _, x := range xs {
			if !(x > 0) {
				return nil, ErrNonPositiveDomain
			}
		}
	}

	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = m.At(x)
	}

	return ys, nil
}

// String renders m compactly with %.4g precision, eliding unit
// constants and zero powers:
//
//	{0, k}   → "0"
//	{1, 0}   → "1"
//	{1, 1}   → "x"
//	{6, 1}   → "6x"
//	{2.5, 1.5} → "2.5x^1.5"
func (m Monomial) String() string {
	if m.Const == 0 {
		return "0"
	}
	if m.Const == 1 && m.Power == 0 {
		return "1"
	}

	constStr := ""
	if m.Const != 1 {
		constStr = fmt.Sprintf("%.4g", m.Const)
	}
	powerStr := ""
	switch {
	case m.Power == 1:
		powerStr = "x"
	case m.Power != 0:
		powerStr = fmt.Sprintf("x^%.4g", m.Power)
	}

	return constStr + powerStr
}
