package plan

import (
	"context"

	"github.com/katalvlaran/agroplan/farm"
	"golang.org/x/sync/errgroup"
)

// Run is one named, self-contained optimization to dispatch: its own crop
// list and scenario snapshot, sharing nothing mutable with other runs.
type Run struct {
	Name     string
	Crops    []farm.Crop
	Scenario farm.Scenario
}

// Outcome pairs a Run's name with its result. Err carries that run's
// configuration error, if any; solver-level outcomes live in
// Solution.Status as usual.
type Outcome struct {
	Name     string
	Solution Solution
	Err      error
}

// RunAll executes the runs concurrently (each is a pure computation over
// its own immutable snapshot) and returns the outcomes in input order. A run's failure never aborts its
// siblings; ctx cancellation skips runs that have not started and is
// returned as the error.
//
// Complexity: the runs execute with errgroup's default unbounded
// parallelism; callers with many runs can rely on each being CPU-bound
// and short-lived.
func RunAll(ctx context.Context, runs []Run, opts Options) ([]Outcome, error) {
	outs := make([]Outcome, len(runs))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range runs {
		i, r := i, r
		g.Go(func() error {
			outs[i].Name = r.Name
			select {
			case <-gctx.Done():
				outs[i].Err = gctx.Err()

				return nil
			default:
			}
			outs[i].Solution, outs[i].Err = Optimize(r.Crops, r.Scenario, opts)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outs, err
	}

	return outs, ctx.Err()
}
