// Package monomial provides the Monomial value type — a pure power
// function Const·x^Power — together with scalar, closure and
// sequence-lifted evaluation.
//
// 🚀 What is a Monomial here?
//
//	An immutable (Const, Power) pair of float64s with no identity beyond
//	its values. All operations are pure; copies are free; nothing in the
//	package holds state between calls.
//
// ✨ Key features:
//   - At(x) — scalar evaluation Const·x^Power
//   - Func() — a materialized func(float64) float64, ready to hand to
//     plotting or tabulation layers
//   - Map(xs) — element-wise evaluation over an ordered sample grid,
//     with up-front domain validation (negative or fractional powers
//     require strictly positive x; see ErrNonPositiveDomain)
//   - Linspace(from, to, n) — evenly spaced sample grids
//   - String() — compact rendering: "0", "1", "x", "6x", "2.5x^1.5"
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fraccalc/monomial"
//
//	m := monomial.New(2, 3)          // 2x³
//	y := m.At(2)                     // 16
//	xs, _ := monomial.Linspace(1, 5, 5)
//	ys, _ := m.Map(xs)               // [2 16 54 128 250]
//
// Evaluation is deliberately split into a scalar contract (At/Func) and
// a lifted sequence contract (Map) rather than relying on implicit
// broadcasting.
//
// Complexity: every operation is O(1) per evaluated point.
package monomial
