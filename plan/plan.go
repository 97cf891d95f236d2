package plan

import (
	"github.com/katalvlaran/agroplan/farm"
	"github.com/katalvlaran/agroplan/finance"
	"github.com/katalvlaran/agroplan/sqp"
)

// Options configures one optimization run. Use DefaultOptions as the
// starting point.
//
// Solver    – the sqp tuning (iteration cap, tolerances, TimeLimit).
// Sharpness – softplus sharpness of the financed variant's kink smoothing,
//
//	in currency units; ignored by the basic variant.
type Options struct {
	Solver    sqp.Options
	Sharpness float64
}

// DefaultOptions returns the standard tuning: sqp.DefaultOptions plus
// finance.DefaultSharpness.
func DefaultOptions() Options {
	return Options{
		Solver:    sqp.DefaultOptions(),
		Sharpness: finance.DefaultSharpness,
	}
}

// Optimize runs one full pass: validate → build → seed → solve →
// classify. Crops and scenario are read-only snapshots; the returned
// Solution is fresh and never mutated afterwards.
//
// Errors: only configuration errors, from farm.Validate or the solver's
// own validation. Infeasible and non-converged runs come back as a
// Solution with the corresponding Status and full diagnostics.
//
// Determinism: identical input yields an identical area vector; only the
// Solution.RunID label differs between invocations.
func Optimize(crops []farm.Crop, sc farm.Scenario, opts Options) (Solution, error) {
	if err := farm.Validate(crops, sc); err != nil {
		return Solution{}, err
	}
	if opts.Sharpness <= 0 {
		opts.Sharpness = finance.DefaultSharpness
	}

	prob := BuildProblem(crops, sc, opts.Sharpness)
	res, err := sqp.Minimize(prob, InitialGuess(crops, sc), opts.Solver)
	if err != nil {
		return Solution{}, err
	}

	return Classify(crops, sc, res, opts.Sharpness), nil
}
