package revenue

import "github.com/katalvlaran/agroplan/farm"

// Epsilon is the additive denominator guard of the revenue curve. It only
// matters when both the probe area and the effective peak area are near
// zero; GuardActive reports when it is load-bearing.
const Epsilon = 1e-9

// guardShare is the denominator fraction above which the ε term is
// considered load-bearing (see GuardActive).
const guardShare = 1e-3

// UnitRevenue evaluates the unit-revenue curve of crop c at planted area x
// under skill level k. Negative x is clamped to 0 before evaluation.
//
// Contracts:
//   - k ∈ (0,1] (enforced upstream by farm.Validate).
//   - Defined for every real x; never panics, never divides by zero.
//
// Complexity: O(1).
func UnitRevenue(c farm.Crop, k, x float64) float64 {
	if x < 0 {
		x = 0
	}
	peak := c.EffectivePeakArea(k)

	return c.BaseRevenue + (c.PeakRevenue-c.BaseRevenue)*(2*x*peak)/(x*x+peak*peak+Epsilon)
}

// Margin returns the gross margin contribution (R(x) − V)·x of crop c at
// area x: the quantity the income/cashflow constraint sums over crops.
//
// Complexity: O(1).
func Margin(c farm.Crop, k, x float64) float64 {
	if x < 0 {
		x = 0
	}

	return (UnitRevenue(c, k, x) - c.VariableCost) * x
}

// GuardActive reports whether the ε denominator guard carries a
// non-negligible share of the curve's denominator at area x, i.e. whether
// the evaluation leaned on the numeric guard rather than the model proper.
// Callers surface this as a diagnostic, not an error.
//
// Complexity: O(1).
func GuardActive(c farm.Crop, k, x float64) bool {
	if x < 0 {
		x = 0
	}
	peak := c.EffectivePeakArea(k)

	return Epsilon > guardShare*(x*x+peak*peak)
}
