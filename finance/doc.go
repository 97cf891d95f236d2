// Package finance implements the loan arithmetic of the financed scenario
// variant: total capital outlay, loan sizing, and constant-payment
// amortization via the capital recovery factor.
//
// Model:
//
//	cost(x)  = Σⱼ InitialCostⱼ · xⱼ
//	loan(x)  = max(0, cost(x) − SelfCapital)
//	CRF      = r(1+r)^y / ((1+r)^y − 1)   for r > 0, else 1/y
//	payment  = loan(x) · CRF
//
// The max(0,·) puts a non-smooth kink exactly where cost(x) crosses the
// self capital. That kink is hostile to a gradient-based solver, so the
// constraint-facing surface of this package (SmoothLoan, SmoothPayment)
// replaces it with a softplus approximation of fixed sharpness while the
// reporting surface (Amortize) keeps the exact economics. KinkActive
// reports when an iterate sits inside the smoothed band, so callers can
// see that the approximation was load-bearing.
//
// All functions are pure; the package holds no state.
package finance
