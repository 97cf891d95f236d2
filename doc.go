// Package agroplan is a constrained farm-plan optimizer: it finds the
// planted area of each crop that minimizes total annual labor while
// honoring income, land, seasonal-labor and loan-limit constraints.
//
// 🚜 What is agroplan?
//
//	A deterministic, library-first optimizer built around a scale-dependent
//	revenue model: unit revenue per crop is a peaked rational function of
//	planted area, so the feasible region is non-convex and naive local
//	search collapses into zero-area traps. agroplan ships:
//		• farm/    — immutable Crop & Scenario value types + fail-fast validation
//		• revenue/ — the peaked unit-revenue curve with its numeric guards
//		• finance/ — loan amortization (CRF) and kink smoothing
//		• sqp/     — a small deterministic SQP-style constrained minimizer
//		• plan/    — constraint assembly, peak-seeded starts, classification,
//		             and a concurrent multi-scenario runner
//		• record/  — schema-validated YAML/JSON input & report documents
//
// ✨ Why choose agroplan?
//
//   - Deterministic – identical input yields bit-for-bit identical plans
//   - Honest outcomes – success, infeasible and non-converged are first-class
//     statuses with full constraint diagnostics, never silent failures
//   - Pure computation – immutable inputs, no global state, runs compose
//     safely across goroutines
//
// Quick sketch of a run:
//
//	parameters → revenue + finance models → constraints + objective
//	          → sqp solver (iterative) → area vector → classified report
//
// Dive into plan.Optimize for the single entry point most callers need,
// or cmd/agroplan for the CLI wrapper.
//
//	go get github.com/katalvlaran/agroplan
package agroplan
