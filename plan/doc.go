// Package plan assembles and runs a farm-plan optimization: it turns
// validated farm inputs into an sqp.Problem, seeds the search at the
// skill-adjusted revenue peaks, solves, and classifies the outcome into a
// reportable Solution.
//
// The pieces:
//
//   - BuildProblem — the constraint set in slack form: income/cashflow,
//     land, one independent labor constraint per period (the period index
//     is bound by value through a factory, never through a shared loop
//     variable), and the loan ceiling in the financed variant; plus
//     [0, LandLimit] box bounds. The objective is total skill-adjusted
//     annual labor Z(x) = Σ (Lⱼ/k)·xⱼ.
//
//   - InitialGuess — the peak-seeded start x0ⱼ = P'ⱼ, uniformly rescaled
//     to 90% of the land limit when the peaks oversubscribe the land.
//     Starting at or near zero is unsafe: when variable cost exceeds base
//     revenue the origin shows negative marginal return and a local solver
//     stalls there, reporting an all-zero plan even though profitable
//     peak-area plans exist. The seed is a first-class algorithmic
//     decision, not a tuning detail.
//
//   - Optimize — validate → build → solve → classify, one call.
//
//   - Classify — labels each crop against its effective peak (unplanted /
//     at-peak / under-scale / over-scale within tolerance δ = 1% of the
//     median effective peak), aggregates totals and per-period labor
//     utilization, evaluates every constraint at the final iterate, and
//     collects numeric-guard diagnostics (revenue ε, finance kink).
//
//   - RunAll — dispatches independent runs (skill comparisons, subsidy
//     on/off, …) concurrently; each run is pure over its own immutable
//     snapshot, so the only synchronization is collecting the outcomes.
//
// Determinism: given identical input, the returned area vector is
// identical bit for bit; only the RunID label differs between invocations.
package plan
