// Package fraccalc computes fractional-order derivatives and
// antiderivatives of monomial functions c·x^k in closed form, using the
// Gamma-function extension of the power rule.
//
// 🚀 What is fraccalc?
//
//	A small, pure library for the Riemann–Liouville fractional derivative
//	restricted to monomials:
//		• monomial/ — the c·x^k value type, pointwise & sequence evaluators
//		• fracdiff/ — the a-th order differentiator (a any real) with
//		  explicit edge-case classification for negative-integer powers
//
// ✨ Why choose fraccalc?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – pure functions, no shared state, safe for
//     concurrent use with zero coordination
//   - Explicit numerics – documented epsilon policy, sentinel errors,
//     no silent NaN/Inf escapes from Gamma poles
//
// Quick taste:
//
//	f := monomial.New(1, 2)                       // x²
//	g, err := fracdiff.Differentiate(f, 0.5, nil) // half-derivative
//	// g ≈ 1.5045·x^1.5
//
// See examples/ for a slider-style parameter sweep and each package's
// example_test.go for runnable snippets.
//
//	go get github.com/katalvlaran/fraccalc
package fraccalc
