// Package fracdiff computes the fractional-order derivative of a
// monomial Const·x^Power in closed form.
//
// 🚀 What is fractional differentiation?
//
//	A generalization of the n-th derivative to any real order a:
//	positive a differentiates, negative a integrates, a = 0 is the
//	identity. For pure power functions the Riemann–Liouville derivative
//	has a closed form built on the Gamma function:
//
//	  d^a/dx^a [c·x^k] = c · Γ(k+1)/Γ(k−a+1) · x^(k−a)
//
// ✨ Key features:
//   - Differentiate — maps (c, k, a) to the derivative monomial (c', k')
//   - three explicit evaluation regimes: integer power-rule recursion,
//     documented placeholder, general Gamma formula
//   - IsNegativeInteger — the edge-case classifier, with an explicit,
//     configurable epsilon policy (Options.Epsilon, default 1e-9)
//   - DerivativeFunc — the derivative materialized as a pointwise
//     func(float64) float64
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/fraccalc/fracdiff"
//	  "github.com/katalvlaran/fraccalc/monomial"
//	)
//
//	g, err := fracdiff.Differentiate(monomial.New(1, 2), 0.5, nil)
//	if err != nil {
//	  // handle ErrGammaPole or ErrBadEpsilon
//	}
//	fmt.Println(g) // 1.505x^1.5
//
// ⚠️ Known approximation (preserved on purpose):
//
//	When exactly one of Power and Power−order is a negative integer the
//	Gamma formula hits a pole while the true derivative is generally
//	finite (and sometimes logarithmic, e.g. ∫ x⁻¹ dx = ln x). This
//	package returns the placeholder monomial 0 in that regime, exactly
//	like the reference algorithm. It is a documented semantic
//	limitation surfaced as a normal result, not an error — do not
//	"fix" it.
//
// Every call is a pure function of its scalar inputs: no shared state,
// bounded time, safe for unsynchronized concurrent use.
//
// Complexity: O(1), or O(|order|) in the integer-recursion regime.
package fracdiff
