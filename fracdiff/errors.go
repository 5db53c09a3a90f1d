// SPDX-License-Identifier: MIT
// Package fracdiff: sentinel error set. All public entry points return
// these sentinels; tests match them via errors.Is. No panics on
// user-triggered conditions.

package fracdiff

import "errors"

var (
	// ErrGammaPole is returned when the general Gamma formula would be
	// evaluated at a non-positive integer argument, where Γ has a pole.
	// Under correct edge-case classification this regime is intercepted
	// before Γ is reached, so seeing this error indicates a tolerance
	// policy that let a pole argument through.
	ErrGammaPole = errors.New("fracdiff: gamma evaluated at non-positive integer")

	// ErrBadEpsilon is returned when Options.Epsilon is negative, NaN
	// or ±Inf; the tolerance must be a non-negative finite value.
	ErrBadEpsilon = errors.New("fracdiff: epsilon must be a non-negative finite value")
)
