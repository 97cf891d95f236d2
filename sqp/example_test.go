package sqp_test

import (
	"fmt"

	"github.com/katalvlaran/agroplan/sqp"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMinimize
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Minimize (x−3)² subject to x ≤ 2. The unconstrained minimum at 3 is
//	cut off by the upper bound, so the solver must stop exactly on it.
//
// Use case:
//
//	The smallest complete Problem: one variable, bounds only.
//
// Complexity: a couple of iterations; the bound enters the QP as a row.
func ExampleMinimize() {
	p := sqp.Problem{
		Dim: 1,
		Objective: func(x []float64) float64 {
			return (x[0] - 3) * (x[0] - 3)
		},
		Upper: []float64{2},
	}

	res, err := sqp.Minimize(p, []float64{0}, sqp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("status=%s\nx=%.2f\n", res.Status, res.X[0])
	// Output:
	// status=success
	// x=2.00
}
