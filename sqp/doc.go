// Package sqp implements a small, deterministic, sequential-quadratic-
// programming style minimizer for inequality-constrained nonlinear
// problems of low dimension:
//
//	minimize    F(x)
//	subject to  cᵢ(x) ≥ 0   (slack form, i = 1..m)
//	            l ≤ x ≤ u   (optional box bounds)
//
// Algorithm outline (per iteration):
//
//  1. Evaluate F, its gradient, every constraint and its gradient at the
//     current iterate via central finite differences.
//  2. Linearize: build the QP subproblem
//     min ½‖d‖² + ∇F·d   s.t.   cᵢ + ∇cᵢ·d ≥ 0, box rows folded in,
//     i.e. identity curvature with first-order constraint models.
//  3. Solve the strictly convex QP in its dual via projected Gauss–Seidel
//     sweeps (deterministic fixed-order coordinate updates, warm-started
//     multipliers across iterations).
//  4. Line-search the step against an L1 exact-penalty merit function
//     φ(x) = F(x) + μ·Σ max(0, −cᵢ(x)) with backtracking halving.
//  5. Stop on a KKT-style criterion: step norm within StepTolerance, or
//     feasibility + stationarity within Tolerance, or budget exhaustion.
//
// Outcomes are a Status, not an error:
//
//   - Success      — converged, every constraint within Tolerance.
//   - Infeasible   — converged to a stationary point that still violates
//     some constraint beyond Tolerance (mutually unsatisfiable system).
//   - NonConverged — iteration or wall-clock budget exhausted first.
//
// All three carry the best-known iterate, per-constraint slacks and the
// KKT residual, so callers can always report *why*. Only malformed
// problems (nil objective, bound crossings, bad tolerances) return a Go
// error, before any iteration runs.
//
// Determinism: no randomness anywhere; identical inputs produce identical
// iterates bit for bit. The iteration is inherently sequential and is not
// parallelized; independent Minimize calls are safe to run concurrently.
//
// Complexity per iteration: O((n+m)·n) QP sweep work plus 2·(n+1)·(m+1)
// function evaluations for the finite-difference linearization; intended
// for n,m in the tens, not thousands.
package sqp
