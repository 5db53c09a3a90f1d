// SPDX-License-Identifier: MIT

package fracdiff_test

import (
	"fmt"

	"github.com/katalvlaran/fraccalc/fracdiff"
	"github.com/katalvlaran/fraccalc/monomial"
)

// ExampleDifferentiate demonstrates the classical case: the second
// derivative of x³ is 6x, recovered here through the Gamma closed form.
func ExampleDifferentiate() {
	f := monomial.New(1, 3)

	g, err := fracdiff.Differentiate(f, 2, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("const=%.4f power=%.4f\n", g.Const, g.Power)
	// Output:
	// const=6.0000 power=1.0000
}

// ExampleDifferentiate_halfOrder takes the half-derivative of x²:
// d^0.5/dx^0.5 x² = Γ(3)/Γ(2.5)·x^1.5.
func ExampleDifferentiate_halfOrder() {
	f := monomial.New(1, 2)

	g, err := fracdiff.Differentiate(f, 0.5, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("const=%.4f power=%.4f\n", g.Const, g.Power)
	// Output:
	// const=1.5045 power=1.5000
}

// ExampleDifferentiate_placeholder shows the documented approximation:
// exactly one of Power and Power−order is a negative integer (here
// Power = −1, Power−order = −1.5), so the result is the placeholder
// monomial 0 even though the true half-derivative of x⁻¹ is finite.
func ExampleDifferentiate_placeholder() {
	f := monomial.New(1, -1)

	g, _ := fracdiff.Differentiate(f, 0.5, nil)
	fmt.Println(g)
	// Output:
	// 0
}

// ExampleIsNegativeInteger walks the classifier's boundary table.
func ExampleIsNegativeInteger() {
	eps := fracdiff.DefaultEpsilon

	fmt.Println(fracdiff.IsNegativeInteger(-2.0, eps))
	fmt.Println(fracdiff.IsNegativeInteger(-2.5, eps))
	fmt.Println(fracdiff.IsNegativeInteger(2.0, eps))
	fmt.Println(fracdiff.IsNegativeInteger(0.0, eps))
	// Output:
	// true
	// false
	// false
	// false
}
