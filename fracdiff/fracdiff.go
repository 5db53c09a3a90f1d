// SPDX-License-Identifier: MIT

package fracdiff

import (
	"math"

	"github.com/katalvlaran/fraccalc/monomial"
)

// Differentiate — fractional derivative of a monomial
//
// Description:
//
//	Differentiates m = Const·x^Power `order` times, where order is any
//	real: positive differentiates, negative integrates, zero is the
//	identity. Returns the resulting monomial (Const', Power').
//
// Algorithm Outline:
//  1. Validate opts (nil means DefaultOptions). Epsilon must be a
//     finite value ≥ 0.
//  2. Classify Power and Power−order via IsNegativeInteger.
//  3. Select the evaluation regime:
//     a. both negative integers — the Gamma formula is degenerate but
//     the derivative is elementary: order is itself (near-)integer,
//     so apply the ordinary power rule |order| times, each step on
//     the already-updated power.
//     b. exactly one negative integer — Γ would be evaluated at a
//     pole. Return the placeholder monomial 0 (see package doc:
//     a documented approximation, not an error).
//     c. neither — the general closed form
//     Const' = Const · Γ(Power+1)/Γ(Power−order+1),
//     Power' = Power − order.
//
// Regime (c) guards both Γ arguments: a non-positive integer argument
// that escaped classification surfaces as ErrGammaPole rather than a
// silent NaN.
//
// Errors:
//   - ErrBadEpsilon — Options.Epsilon negative, NaN or ±Inf.
//   - ErrGammaPole  — Γ pole reached in the general regime.
//
// Complexity: O(1), or O(|order|) iterations in regime (a).
func Differentiate(m monomial.Monomial, order float64, opts *Options) (monomial.Monomial, error) {
	eps := DefaultEpsilon
	if opts != nil {
		eps = opts.Epsilon
	}
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return monomial.Monomial{}, ErrBadEpsilon
	}

	negPower := IsNegativeInteger(m.Power, eps)
	negShifted := IsNegativeInteger(m.Power-order, eps)

	switch {
	case negPower && negShifted:
		return diffIntegerLadder(m, order), nil

	case negPower || negShifted:
		// Placeholder regime: Γ has a pole here while the true
		// derivative is generally finite (NOT always 0, e.g.
		// d/dx x⁻¹ = −x⁻²). Preserved as-is; see package doc.
		return monomial.Monomial{}, nil

	default:
		num, err := gammaAt(m.Power + 1)
		if err != nil {
			return monomial.Monomial{}, err
		}
		den, err := gammaAt(m.Power - order + 1)
		if err != nil {
			return monomial.Monomial{}, err
		}

		return monomial.New(m.Const*num/den, m.Power-order), nil
	}
}

// DerivativeFunc differentiates m `order` times and materializes the
// result as a pointwise func(float64) float64, ready for tabulation or
// plotting layers. See monomial.Func for domain caveats.
func DerivativeFunc(m monomial.Monomial, order float64, opts *Options) (func(float64) float64, error) {
	g, err := Differentiate(m, order, opts)
	if err != nil {
		return nil, err
	}

	return g.Func(), nil
}

// diffIntegerLadder applies the ordinary power rule |order| times.
//
// Both Power and Power−order are negative integers here, so order is
// within tolerance of an integer; round, don't truncate. The powers
// visited run between two negative integers, so the multiplier
// (current power) is always ≤ −1 and the divisor (current power + 1)
// is always ≤ −1: no zero ever enters the ladder.
func diffIntegerLadder(m monomial.Monomial, order float64) monomial.Monomial {
	c, k := m.Const, m.Power
	steps := int(math.Round(order))

	if steps >= 0 {
		for i := 0; i < steps; i++ {
			c *= k
			k--
		}
	} else {
		for i := 0; i < -steps; i++ {
			c /= k + 1
			k++
		}
	}

	return monomial.New(c, k)
}

// gammaAt evaluates Γ(x), rejecting pole arguments.
//
// Γ has poles at every non-positive integer; math.Gamma would return
// NaN (or ±Inf at zero) there. The guard mirrors a strict math-domain
// failure so a misclassification upstream cannot leak a silent NaN.
func gammaAt(x float64) (float64, error) {
	if x <= 0 && x == math.Trunc(x) {
		return 0, ErrGammaPole
	}

	return math.Gamma(x), nil
}
