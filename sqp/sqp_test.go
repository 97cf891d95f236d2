package sqp_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/agroplan/sqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unbounded returns ±Inf bounds of length n.
func unbounded(n int) (lo, up []float64) {
	lo, up = make([]float64, n), make([]float64, n)
	for j := range lo {
		lo[j], up[j] = math.Inf(-1), math.Inf(1)
	}

	return lo, up
}

// TestMinimize_UnconstrainedQuadratic verifies convergence to the analytic
// minimum of (x−3)² from a cold start.
func TestMinimize_UnconstrainedQuadratic(t *testing.T) {
	lo, up := unbounded(1)
	p := sqp.Problem{
		Dim:       1,
		Objective: func(x []float64) float64 { return (x[0] - 3) * (x[0] - 3) },
		Lower:     lo, Upper: up,
	}

	res, err := sqp.Minimize(p, []float64{0}, sqp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, sqp.Success, res.Status)
	assert.InDelta(t, 3.0, res.X[0], 1e-5)
	assert.InDelta(t, 0.0, res.Objective, 1e-9)
}

// TestMinimize_ActiveBound verifies that a linear objective rides down to
// its lower bound and stops there with Success.
func TestMinimize_ActiveBound(t *testing.T) {
	p := sqp.Problem{
		Dim:       1,
		Objective: func(x []float64) float64 { return x[0] },
		Lower:     []float64{2}, Upper: []float64{10},
	}

	res, err := sqp.Minimize(p, []float64{5}, sqp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, sqp.Success, res.Status)
	assert.InDelta(t, 2.0, res.X[0], 1e-6)
}

// TestMinimize_LinearConstraintBinds verifies that min x+y over x+y ≥ 1
// lands on the constraint with objective value 1 and zero slack.
func TestMinimize_LinearConstraintBinds(t *testing.T) {
	p := sqp.Problem{
		Dim:       2,
		Objective: func(x []float64) float64 { return x[0] + x[1] },
		Constraints: []sqp.Constraint{
			{Name: "halfplane", Eval: func(x []float64) float64 { return x[0] + x[1] - 1 }},
		},
		Lower: []float64{0, 0}, Upper: []float64{10, 10},
	}

	res, err := sqp.Minimize(p, []float64{4, 4}, sqp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, sqp.Success, res.Status)
	assert.InDelta(t, 1.0, res.Objective, 1e-5)
	assert.InDelta(t, 0.0, res.Slacks[0], 1e-5, "optimum sits on the constraint")
}

// TestMinimize_CurvedConstraint starts infeasible outside the unit disc
// and must converge to the known optimum (−√½,−√½) of min x+y on the disc.
func TestMinimize_CurvedConstraint(t *testing.T) {
	p := sqp.Problem{
		Dim:       2,
		Objective: func(x []float64) float64 { return x[0] + x[1] },
		Constraints: []sqp.Constraint{
			{Name: "disc", Eval: func(x []float64) float64 { return 1 - x[0]*x[0] - x[1]*x[1] }},
		},
		Lower: []float64{-2, -2}, Upper: []float64{2, 2},
	}

	res, err := sqp.Minimize(p, []float64{1, 1}, sqp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, sqp.Success, res.Status)
	want := -math.Sqrt(0.5)
	assert.InDelta(t, want, res.X[0], 1e-3)
	assert.InDelta(t, want, res.X[1], 1e-3)
	assert.LessOrEqual(t, res.MaxViolation, 1e-6)
}

// TestMinimize_InfeasibleSystem verifies that mutually unsatisfiable
// constraints yield Status Infeasible, never a spurious Success, with
// the best-known iterate and its violation attached.
func TestMinimize_InfeasibleSystem(t *testing.T) {
	p := sqp.Problem{
		Dim:       1,
		Objective: func(x []float64) float64 { return x[0] },
		Constraints: []sqp.Constraint{
			{Name: "atLeast2", Eval: func(x []float64) float64 { return x[0] - 2 }},
			{Name: "atMost1", Eval: func(x []float64) float64 { return 1 - x[0] }},
		},
		Lower: []float64{0}, Upper: []float64{3},
	}

	res, err := sqp.Minimize(p, []float64{0}, sqp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, sqp.Infeasible, res.Status)
	assert.GreaterOrEqual(t, res.MaxViolation, 0.4, "the gap between the constraints is 1")
	assert.Len(t, res.Slacks, 2)
}

// TestMinimize_TimeLimit verifies the wall-clock budget ends the solve
// cleanly with NonConverged and a usable iterate.
func TestMinimize_TimeLimit(t *testing.T) {
	p := sqp.Problem{
		Dim:       1,
		Objective: func(x []float64) float64 { return x[0] * x[0] },
		Lower:     []float64{-10}, Upper: []float64{10},
	}
	opts := sqp.DefaultOptions()
	opts.TimeLimit = time.Nanosecond

	res, err := sqp.Minimize(p, []float64{7}, opts)
	require.NoError(t, err)
	assert.Equal(t, sqp.NonConverged, res.Status)
	require.Len(t, res.X, 1)
}

// TestMinimize_Deterministic verifies bit-for-bit repeatability of the
// returned iterate across runs with identical input.
func TestMinimize_Deterministic(t *testing.T) {
	p := sqp.Problem{
		Dim:       2,
		Objective: func(x []float64) float64 { return 3*x[0] + 2*x[1] },
		Constraints: []sqp.Constraint{
			{Name: "mix", Eval: func(x []float64) float64 { return x[0]*x[1] - 2 }},
		},
		Lower: []float64{0.1, 0.1}, Upper: []float64{10, 10},
	}

	a, err := sqp.Minimize(p, []float64{3, 3}, sqp.DefaultOptions())
	require.NoError(t, err)
	b, err := sqp.Minimize(p, []float64{3, 3}, sqp.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, a.X, b.X, "identical input must yield identical areas")
	assert.Equal(t, a.Status, b.Status)
}

// TestMinimize_ConfigurationErrors verifies the fail-fast sentinels.
func TestMinimize_ConfigurationErrors(t *testing.T) {
	obj := func(x []float64) float64 { return x[0] }

	_, err := sqp.Minimize(sqp.Problem{Dim: 0, Objective: obj}, nil, sqp.DefaultOptions())
	assert.ErrorIs(t, err, sqp.ErrBadDimension)

	_, err = sqp.Minimize(sqp.Problem{Dim: 1}, []float64{0}, sqp.DefaultOptions())
	assert.ErrorIs(t, err, sqp.ErrNilObjective)

	_, err = sqp.Minimize(sqp.Problem{
		Dim: 1, Objective: obj, Constraints: []sqp.Constraint{{Name: "nil"}},
	}, []float64{0}, sqp.DefaultOptions())
	assert.ErrorIs(t, err, sqp.ErrNilConstraint)

	_, err = sqp.Minimize(sqp.Problem{
		Dim: 1, Objective: obj, Lower: []float64{2}, Upper: []float64{1},
	}, []float64{0}, sqp.DefaultOptions())
	assert.ErrorIs(t, err, sqp.ErrBadBounds)

	bad := sqp.DefaultOptions()
	bad.Tolerance = 0
	_, err = sqp.Minimize(sqp.Problem{Dim: 1, Objective: obj}, []float64{0}, bad)
	assert.ErrorIs(t, err, sqp.ErrBadTolerance)
}

// TestStatus_String verifies the stable status labels used in reports.
func TestStatus_String(t *testing.T) {
	assert.Equal(t, "success", sqp.Success.String())
	assert.Equal(t, "infeasible", sqp.Infeasible.String())
	assert.Equal(t, "non-converged", sqp.NonConverged.String())
	assert.Equal(t, "unknown", sqp.Status(42).String())
}
