package sqp

// qpProblem is one linearized subproblem:
//
//	minimize  ½‖d‖² + g·d
//	subject to  A·d + c ≥ 0
//
// A holds one row per linearized inequality (model constraints first,
// then box rows), c the corresponding slacks at the current iterate.
type qpProblem struct {
	g []float64 // objective gradient at the iterate (length n)
	a *dense    // constraint Jacobian (m×n)
	c []float64 // constraint slacks at the iterate (length m)
}

// degenerateRow is the squared-norm floor below which a Jacobian row is
// treated as all-zero and skipped by the sweeps (a constraint locally
// independent of every variable cannot steer the step).
const degenerateRow = 1e-14

// solveQP solves the strictly convex subproblem in its dual by projected
// Gauss–Seidel: KKT optimality gives d = Aᵀλ − g with λ ≥ 0 and
// complementarity λᵢ·(aᵢ·d + cᵢ) = 0, and each sweep performs the exact
// coordinate update
//
//	λᵢ ← max(0, λᵢ − (aᵢ·d + cᵢ)/‖aᵢ‖²)
//
// maintaining d incrementally. Sweeps stop when the largest multiplier
// change falls below qpTol or after maxSweeps.
//
// lambda is the warm-start multiplier vector (length m) and is updated in
// place, so consecutive SQP iterations reuse the previous active-set
// estimate. d (length n) receives the step.
//
// Deterministic: rows are swept in fixed index order.
//
// Complexity: O(maxSweeps·m·n) worst case.
func solveQP(p qpProblem, lambda, d []float64, maxSweeps int, qpTol float64) {
	n := len(p.g)
	m := p.a.r

	// Prime d from the warm-started multipliers: d = Aᵀλ − g.
	p.a.transMulVec(lambda, d)
	for k := 0; k < n; k++ {
		d[k] -= p.g[k]
	}

	var (
		i      int
		slack  float64 // aᵢ·d + cᵢ at the current d
		next   float64 // projected new multiplier value
		delta  float64 // multiplier change this update
		worst  float64 // largest |delta| in the sweep
		normSq float64
	)
	for sweep := 0; sweep < maxSweeps; sweep++ {
		worst = 0
		for i = 0; i < m; i++ {
			normSq = p.a.rowNormSq(i)
			if normSq < degenerateRow {
				continue
			}
			slack = p.a.rowDot(i, d) + p.c[i]
			next = lambda[i] - slack/normSq
			if next < 0 {
				next = 0
			}
			delta = next - lambda[i]
			if delta == 0 {
				continue
			}
			lambda[i] = next
			p.a.addScaledRow(i, delta, d)
			if delta < 0 {
				delta = -delta
			}
			if delta > worst {
				worst = delta
			}
		}
		if worst <= qpTol {
			return
		}
	}
}
