package sqp

import (
	"math"
	"time"
)

// Line-search tuning. Armijo slope and halving cap follow the usual
// exact-penalty SQP practice; both shape robustness rather than problem
// semantics, so neither is an Option.
const (
	armijoSlope = 1e-4
	maxHalvings = 40
	penaltyInit = 10.0
)

// Minimize runs the SQP iteration on p from start point x0.
//
// Contracts:
//   - p and x0 pass validateProblem (returns a sentinel otherwise).
//   - p.Objective and every Constraint.Eval are pure; Minimize never
//     mutates p and may be called concurrently on the same Problem.
//   - x0 is clamped into the box bounds before the first iteration.
//
// The returned Result always carries the best-known iterate: feasible
// iterates are preferred over infeasible ones, lower objective breaks
// ties among the feasible, lower violation orders the infeasible. On
// TimeLimit expiry the solve ends cleanly with Status NonConverged.
//
// Errors: ErrNilObjective, ErrNilConstraint, ErrBadDimension,
// ErrBadBounds, ErrBadTolerance.
//
// Determinism: fixed evaluation and sweep order, no randomness; repeated
// calls with identical inputs return identical results.
func Minimize(p Problem, x0 []float64, opts Options) (Result, error) {
	if err := validateProblem(p, x0, opts); err != nil {
		return Result{}, err
	}
	start := time.Now()

	var (
		n = p.Dim
		m = len(p.Constraints)

		x      = make([]float64, n)
		grad   = make([]float64, n) // objective gradient
		conRow = make([]float64, n) // scratch constraint gradient
		d      = make([]float64, n) // QP step
		trial  = make([]float64, n) // line-search / finite-diff scratch
		slacks = make([]float64, m)

		rows   = m + countBoundRows(p)
		jac    = newDense(rows, n)
		crow   = make([]float64, rows)
		lambda = make([]float64, rows) // warm-started across iterations
	)
	copy(x, x0)
	clampToBounds(p, x)

	// Box-bound Jacobian rows are constant (±eⱼ): write them once.
	installBoundRows(p, jac, m)

	var (
		best = newIncumbent(n, m, opts.Tolerance)
		mu   = penaltyInit // L1 merit penalty, ratcheted by multipliers
		kkt  float64
		iter int
	)

	for iter = 0; iter < opts.MaxIterations; iter++ {
		if opts.TimeLimit > 0 && time.Since(start) >= opts.TimeLimit {
			break
		}

		// Stage 1: evaluate and linearize at x.
		f := p.Objective(x)
		gradientOf(p.Objective, x, opts.DiffStep, grad, trial)

		var viol, sumViol float64
		for i, con := range p.Constraints {
			slacks[i] = con.Eval(x)
			if -slacks[i] > viol {
				viol = -slacks[i]
			}
			if slacks[i] < 0 {
				sumViol -= slacks[i]
			}
			gradientOf(con.Eval, x, opts.DiffStep, conRow, trial)
			jac.setRow(i, conRow)
			crow[i] = slacks[i]
		}
		refreshBoundSlacks(p, x, crow, m)
		best.offer(x, f, viol, slacks)

		// Stage 2: QP subproblem for the step.
		solveQP(qpProblem{g: grad, a: jac, c: crow}, lambda, d, opts.QPSweeps, opts.QPTolerance)
		kkt = lagrangianResidual(grad, jac, lambda, trial)

		// Stage 3: KKT-style stopping on step size.
		if infNorm(d) <= opts.StepTolerance {
			return finish(best, classify(viol, opts.Tolerance), iter, kkt, start), nil
		}

		// Stage 4: penalty ratchet, then merit line search.
		if lmax := infNorm(lambda); mu < 2*lmax+1 {
			mu = 2*lmax + 1
		}
		phi0 := f + mu*sumViol
		deriv := dot(grad, d) - mu*sumViol

		accepted := false
		t := 1.0
		for ls := 0; ls < maxHalvings; ls++ {
			for j := range trial {
				trial[j] = x[j] + t*d[j]
			}
			clampToBounds(p, trial)
			phit := p.Objective(trial) + mu*totalViolation(p, trial)
			if phit <= phi0+armijoSlope*t*deriv {
				copy(x, trial)
				accepted = true

				break
			}
			t *= 0.5
			if t*infNorm(d) <= opts.StepTolerance {
				break
			}
		}
		if !accepted {
			// No merit decrease along the QP direction: stationary for the
			// penalty function. Classify by feasibility and stop.
			return finish(best, classify(viol, opts.Tolerance), iter, kkt, start), nil
		}
	}

	// Budget exhausted: score the final iterate before reporting.
	var viol float64
	for i, con := range p.Constraints {
		slacks[i] = con.Eval(x)
		if -slacks[i] > viol {
			viol = -slacks[i]
		}
	}
	best.offer(x, p.Objective(x), viol, slacks)

	return finish(best, NonConverged, iter, kkt, start), nil
}

// classify maps a converged iterate's violation onto Success/Infeasible.
func classify(viol, tol float64) Status {
	if viol <= tol {
		return Success
	}

	return Infeasible
}

// finish assembles the Result from the incumbent iterate.
func finish(best *incumbent, status Status, iter int, kkt float64, start time.Time) Result {
	return Result{
		X:            best.x,
		Objective:    best.f,
		Status:       status,
		Iterations:   iter,
		Runtime:      time.Since(start),
		Slacks:       best.slacks,
		MaxViolation: best.viol,
		KKTResidual:  kkt,
	}
}

// incumbent tracks the best-known iterate under feasibility-first ordering,
// with "feasible" meaning violation within the solve tolerance.
type incumbent struct {
	x      []float64
	f      float64
	viol   float64
	slacks []float64
	tol    float64
	seeded bool
}

func newIncumbent(n, m int, tol float64) *incumbent {
	return &incumbent{
		x:      make([]float64, n),
		slacks: make([]float64, m),
		f:      math.Inf(1),
		viol:   math.Inf(1),
		tol:    tol,
	}
}

// offer replaces the incumbent when the candidate ranks strictly better:
// feasible beats infeasible, lower objective orders the feasible, lower
// violation orders the infeasible. The candidate slices are copied.
func (b *incumbent) offer(x []float64, f, viol float64, slacks []float64) {
	better := false
	switch {
	case !b.seeded:
		better = true
	case viol <= b.tol && b.viol > b.tol:
		better = true
	case viol <= b.tol && b.viol <= b.tol:
		better = f < b.f
	case viol > b.tol && b.viol > b.tol:
		better = viol < b.viol
	}
	if !better {
		return
	}
	copy(b.x, x)
	copy(b.slacks, slacks)
	b.f, b.viol, b.seeded = f, viol, true
}
