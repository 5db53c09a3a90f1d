// SPDX-License-Identifier: MIT
// Re-exports private helpers for white-box tests in package
// fracdiff_test. Test-only file; nothing here ships in builds.

package fracdiff

// GammaAt exposes the internal pole-guarded Gamma evaluator so the
// ErrGammaPole path can be exercised directly: with any valid epsilon
// the classifier intercepts every exact pole argument before the
// general regime, making the guard unreachable through Differentiate.
var GammaAt = gammaAt
