package sqp

import "math"

// validateProblem is the single configuration gate of the solver: anything
// it rejects never starts iterating.
//
// Complexity: O(n + m).
func validateProblem(p Problem, x0 []float64, opts Options) error {
	if p.Dim <= 0 {
		return ErrBadDimension
	}
	if p.Objective == nil {
		return ErrNilObjective
	}
	for _, con := range p.Constraints {
		if con.Eval == nil {
			return ErrNilConstraint
		}
	}
	if len(x0) != p.Dim {
		return ErrBadDimension
	}
	if p.Lower != nil && len(p.Lower) != p.Dim {
		return ErrBadDimension
	}
	if p.Upper != nil && len(p.Upper) != p.Dim {
		return ErrBadDimension
	}
	if p.Lower != nil && p.Upper != nil {
		for j := 0; j < p.Dim; j++ {
			if p.Lower[j] > p.Upper[j] {
				return ErrBadBounds
			}
		}
	}
	if opts.MaxIterations <= 0 || opts.Tolerance <= 0 || opts.StepTolerance <= 0 ||
		opts.DiffStep <= 0 || opts.QPSweeps <= 0 || opts.QPTolerance <= 0 || opts.TimeLimit < 0 {
		return ErrBadTolerance
	}

	return nil
}

// clampToBounds snaps v into the problem's box in place.
func clampToBounds(p Problem, v []float64) {
	for j := range v {
		if p.Lower != nil && v[j] < p.Lower[j] {
			v[j] = p.Lower[j]
		}
		if p.Upper != nil && v[j] > p.Upper[j] {
			v[j] = p.Upper[j]
		}
	}
}

// countBoundRows returns the number of finite box bounds, each of which
// becomes one linear row of the QP subproblem.
func countBoundRows(p Problem) int {
	var rows int
	for j := 0; j < p.Dim; j++ {
		if p.Lower != nil && !math.IsInf(p.Lower[j], -1) {
			rows++
		}
		if p.Upper != nil && !math.IsInf(p.Upper[j], 1) {
			rows++
		}
	}

	return rows
}

// installBoundRows writes the constant ±eⱼ Jacobian rows of the finite box
// bounds into jac starting at row offset. Lower bound j contributes row
// +eⱼ (slack x−l), upper bound j contributes −eⱼ (slack u−x).
func installBoundRows(p Problem, jac *dense, offset int) {
	r := offset
	for j := 0; j < p.Dim; j++ {
		if p.Lower != nil && !math.IsInf(p.Lower[j], -1) {
			jac.row(r)[j] = 1
			r++
		}
		if p.Upper != nil && !math.IsInf(p.Upper[j], 1) {
			jac.row(r)[j] = -1
			r++
		}
	}
}

// refreshBoundSlacks rewrites the bound-row slacks for the current iterate
// into crow, mirroring installBoundRows' row order exactly.
func refreshBoundSlacks(p Problem, x, crow []float64, offset int) {
	r := offset
	for j := 0; j < p.Dim; j++ {
		if p.Lower != nil && !math.IsInf(p.Lower[j], -1) {
			crow[r] = x[j] - p.Lower[j]
			r++
		}
		if p.Upper != nil && !math.IsInf(p.Upper[j], 1) {
			crow[r] = p.Upper[j] - x[j]
			r++
		}
	}
}

// gradientOf fills out with the central-difference gradient of f at x,
// using a relative step h = rel·(1+|xⱼ|) per coordinate. scratch must be a
// length-n buffer; it is restored to x on return.
//
// Complexity: 2n evaluations of f.
func gradientOf(f func([]float64) float64, x []float64, rel float64, out, scratch []float64) {
	copy(scratch, x)
	for j := range x {
		h := rel * (1 + math.Abs(x[j]))
		scratch[j] = x[j] + h
		fp := f(scratch)
		scratch[j] = x[j] - h
		fm := f(scratch)
		scratch[j] = x[j]
		out[j] = (fp - fm) / (2 * h)
	}
}

// totalViolation sums max(0, −cᵢ(v)) over the model constraints: the
// penalty term of the L1 merit function.
//
// Complexity: O(m) constraint evaluations.
func totalViolation(p Problem, v []float64) float64 {
	var sum float64
	for _, con := range p.Constraints {
		if s := con.Eval(v); s < 0 {
			sum -= s
		}
	}

	return sum
}

// lagrangianResidual returns ‖∇F − Aᵀλ‖∞, the stationarity half of the
// KKT conditions at the current linearization. scratch must be length n.
func lagrangianResidual(grad []float64, jac *dense, lambda, scratch []float64) float64 {
	jac.transMulVec(lambda, scratch)
	var worst float64
	for j := range grad {
		r := math.Abs(grad[j] - scratch[j])
		if r > worst {
			worst = r
		}
	}

	return worst
}

// infNorm returns ‖v‖∞.
func infNorm(v []float64) float64 {
	var worst float64
	for _, e := range v {
		if e < 0 {
			e = -e
		}
		if e > worst {
			worst = e
		}
	}

	return worst
}

// dot returns a·b for equal-length slices.
func dot(a, b []float64) float64 {
	var sum float64
	for k := range a {
		sum += a[k] * b[k]
	}

	return sum
}
