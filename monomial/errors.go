// SPDX-License-Identifier: MIT
// Package monomial: sentinel error set. Algorithms return these
// sentinels and tests match them via errors.Is; no panics on
// user-triggered conditions.

package monomial

import "errors"

var (
	// ErrNonPositiveDomain is returned by Map when the monomial has a
	// negative or fractional power and the sample grid contains a value
	// x ≤ 0, where the real power x^Power is undefined.
	ErrNonPositiveDomain = errors.New("monomial: x must be > 0 for negative or fractional powers")

	// ErrBadInterval is returned by Linspace when from ≥ to or either
	// endpoint is NaN/±Inf.
	ErrBadInterval = errors.New("monomial: invalid sample interval")

	// ErrBadSampleCount is returned by Linspace when fewer than two
	// samples are requested.
	ErrBadSampleCount = errors.New("monomial: sample count must be at least 2")
)
