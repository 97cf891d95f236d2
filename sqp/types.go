package sqp

import (
	"errors"
	"time"
)

// Sentinel errors raised by Minimize before any iteration runs. Solver
// outcomes (infeasible, non-converged) are Status values, never errors.
var (
	// ErrNilObjective indicates that Problem.Objective is nil.
	ErrNilObjective = errors.New("sqp: objective function is nil")

	// ErrNilConstraint indicates a Constraint with a nil Eval function.
	ErrNilConstraint = errors.New("sqp: constraint function is nil")

	// ErrBadDimension indicates a non-positive Problem.Dim or a bound /
	// start vector whose length disagrees with it.
	ErrBadDimension = errors.New("sqp: dimension mismatch")

	// ErrBadBounds indicates a lower bound strictly above its upper bound.
	ErrBadBounds = errors.New("sqp: lower bound exceeds upper bound")

	// ErrBadTolerance indicates a non-positive tolerance, step tolerance,
	// difference step, or a negative iteration/time budget.
	ErrBadTolerance = errors.New("sqp: tolerances and budgets must be positive")
)

// Constraint is one inequality in slack form: satisfied when Eval(x) ≥ 0.
// Eval must be pure (no retained state, no side effects); the solver calls
// it from finite-difference probes in a fixed deterministic order.
type Constraint struct {
	// Name labels the constraint in results and diagnostics.
	Name string

	// Eval returns the slack at x. Negative means violated by that margin.
	Eval func(x []float64) float64
}

// Problem is a complete NLP specification. It is read-only to the solver:
// Minimize never mutates it, so one Problem may serve concurrent runs.
type Problem struct {
	// Dim is the number of decision variables (n > 0).
	Dim int

	// Objective is the scalar function to minimize. Must be non-nil.
	Objective func(x []float64) float64

	// Constraints holds the inequality set; may be empty.
	Constraints []Constraint

	// Lower and Upper are optional box bounds of length Dim; nil means
	// unbounded on that side.
	Lower, Upper []float64
}

// Status is the discrete outcome of a solve.
type Status int

const (
	// Success: converged within tolerance with every constraint satisfied.
	Success Status = iota

	// Infeasible: converged to a stationary point that still violates a
	// constraint by more than Tolerance.
	Infeasible

	// NonConverged: iteration or wall-clock budget exhausted before the
	// stopping criteria were met.
	NonConverged
)

// String implements fmt.Stringer with stable, lowercase labels.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Infeasible:
		return "infeasible"
	case NonConverged:
		return "non-converged"
	default:
		return "unknown"
	}
}

// Result is the full solve outcome. X is always the best-known iterate
// regardless of Status (feasibility first, then objective value).
type Result struct {
	// X is the best-known iterate.
	X []float64

	// Objective is F(X).
	Objective float64

	// Status classifies the outcome; see the Status constants.
	Status Status

	// Iterations is the number of SQP iterations performed.
	Iterations int

	// Runtime is the wall-clock time the solve consumed.
	Runtime time.Duration

	// Slacks holds cᵢ(X) for every constraint, in Problem order.
	Slacks []float64

	// MaxViolation is max(0, −min slack): zero exactly when X is feasible.
	MaxViolation float64

	// KKTResidual is the ∞-norm of the Lagrangian gradient at the last
	// accepted iterate, a stationarity measure.
	KKTResidual float64
}

// Options tunes the solver. Use DefaultOptions as the starting point.
//
// MaxIterations – SQP iteration cap (> 0).
// TimeLimit     – wall-clock budget; 0 means none. On expiry the solver
//
//	returns NonConverged with the best iterate, cleanly.
//
// Tolerance     – feasibility and stationarity tolerance (> 0).
// StepTolerance – step ∞-norm below which the iterate counts as stationary.
// DiffStep      – relative central-difference step for gradients.
// QPSweeps      – projected Gauss–Seidel sweep cap per subproblem.
// QPTolerance   – multiplier-change threshold ending the sweeps early.
type Options struct {
	MaxIterations int
	TimeLimit     time.Duration
	Tolerance     float64
	StepTolerance float64
	DiffStep      float64
	QPSweeps      int
	QPTolerance   float64
}

// DefaultOptions returns the tuning that every documented property of this
// package was validated against.
//
// Defaults:
//   - MaxIterations: 300
//   - TimeLimit:     0 (none)
//   - Tolerance:     1e-6
//   - StepTolerance: 1e-9
//   - DiffStep:      1e-6
//   - QPSweeps:      400
//   - QPTolerance:   1e-10
func DefaultOptions() Options {
	return Options{
		MaxIterations: 300,
		TimeLimit:     0,
		Tolerance:     1e-6,
		StepTolerance: 1e-9,
		DiffStep:      1e-6,
		QPSweeps:      400,
		QPTolerance:   1e-10,
	}
}
