// Package revenue implements the scale-dependent unit-revenue curve that
// gives the optimizer its non-convex geometry.
//
// For a crop with base revenue R₀, peak revenue R₁ and effective peak area
// P' (skill-adjusted), unit revenue at planted area x is
//
//	R(x) = R₀ + (R₁ − R₀) · (2·x·P') / (x² + P'² + ε)
//
// with ε a small positive constant that keeps the expression defined even
// if the effective peak area degenerates toward zero.
//
// Guaranteed shape (for R₁ ≥ R₀):
//
//   - R(0) = R₀
//   - R(P') = R₁, the global maximum over x ≥ 0
//   - strictly increasing on [0,P'), strictly decreasing on (P',∞)
//   - R(x) → R₀ as x → ∞
//
// R₁ < R₀ is a legal degenerate input; the curve then dips to R₁ at P'
// instead of peaking, and all functions here remain total.
//
// Negative probe areas are clamped to zero before evaluation: the solver's
// line search may step below zero, and the curve must answer as if at the
// boundary rather than extrapolate into meaningless territory.
//
// Every function is pure and deterministic; there is no package state.
package revenue
