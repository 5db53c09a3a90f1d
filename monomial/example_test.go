// SPDX-License-Identifier: MIT

package monomial_test

import (
	"fmt"

	"github.com/katalvlaran/fraccalc/monomial"
)

// ExampleMonomial_Map lifts a monomial over an evenly spaced grid —
// the sequence-evaluation contract used by tabulation and plotting
// layers.
func ExampleMonomial_Map() {
	m := monomial.New(2, 2) // 2x²

	xs, err := monomial.Linspace(1, 5, 5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	ys, err := m.Map(xs)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ys)
	// Output:
	// [2 8 18 32 50]
}

// ExampleMonomial_String shows the compact rendering rules.
func ExampleMonomial_String() {
	fmt.Println(monomial.New(0, 5))
	fmt.Println(monomial.New(1, 0))
	fmt.Println(monomial.New(1, 1))
	fmt.Println(monomial.New(6, 1))
	fmt.Println(monomial.New(2.5, 1.5))
	// Output:
	// 0
	// 1
	// x
	// 6x
	// 2.5x^1.5
}
