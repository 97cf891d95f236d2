package revenue_test

import (
	"testing"

	"github.com/katalvlaran/agroplan/farm"
	"github.com/katalvlaran/agroplan/revenue"
	"github.com/stretchr/testify/assert"
)

// curveCrop is the reference crop used across curve-shape tests.
var curveCrop = farm.Crop{
	ID: "ref", PeakRevenue: 20, BaseRevenue: 10, PeakArea: 20, VariableCost: 8,
}

// TestUnitRevenue_Endpoints verifies R(0)=R_base and R(P)=R_peak within
// 1e-6 relative error.
func TestUnitRevenue_Endpoints(t *testing.T) {
	assert.InDelta(t, 10.0, revenue.UnitRevenue(curveCrop, 1, 0), 1e-6, "R(0) must equal BaseRevenue")
	assert.InDelta(t, 20.0, revenue.UnitRevenue(curveCrop, 1, curveCrop.PeakArea), 20*1e-6, "R(P) must equal PeakRevenue")
}

// TestUnitRevenue_Monotonicity samples a grid and verifies the curve rises
// strictly on [0,P] and falls strictly on [P,10P].
func TestUnitRevenue_Monotonicity(t *testing.T) {
	const steps = 200
	peak := curveCrop.PeakArea

	prev := revenue.UnitRevenue(curveCrop, 1, 0)
	for i := 1; i <= steps; i++ {
		x := peak * float64(i) / steps
		cur := revenue.UnitRevenue(curveCrop, 1, x)
		assert.Greater(t, cur, prev, "curve must rise at x=%.3f", x)
		prev = cur
	}
	for i := 1; i <= steps; i++ {
		x := peak + 9*peak*float64(i)/steps
		cur := revenue.UnitRevenue(curveCrop, 1, x)
		assert.Less(t, cur, prev, "curve must fall at x=%.3f", x)
		prev = cur
	}
}

// TestUnitRevenue_LowerBound verifies R(x) ≥ min(R_base,R_peak) − tol on a
// wide grid, for both the regular and the inverted (degenerate) curve.
func TestUnitRevenue_LowerBound(t *testing.T) {
	inverted := curveCrop
	inverted.PeakRevenue, inverted.BaseRevenue = 5, 30

	for _, c := range []farm.Crop{curveCrop, inverted} {
		low := c.BaseRevenue
		if c.PeakRevenue < low {
			low = c.PeakRevenue
		}
		for i := 0; i <= 400; i++ {
			x := c.PeakArea * 20 * float64(i) / 400
			assert.GreaterOrEqual(t, revenue.UnitRevenue(c, 1, x), low-1e-9,
				"crop %q at x=%.3f", c.ID, x)
		}
	}
}

// TestUnitRevenue_NegativeClamped verifies that negative probe areas answer
// exactly as x=0 (solver line searches probe below the bound).
func TestUnitRevenue_NegativeClamped(t *testing.T) {
	assert.Equal(t, revenue.UnitRevenue(curveCrop, 1, 0), revenue.UnitRevenue(curveCrop, 1, -3))
}

// TestUnitRevenue_SkillShiftsPeak verifies that skill k moves the maximum
// to P·k while keeping the peak value itself.
func TestUnitRevenue_SkillShiftsPeak(t *testing.T) {
	const k = 0.5
	shifted := curveCrop.EffectivePeakArea(k)

	assert.InDelta(t, 10.0, shifted, 1e-12)
	assert.InDelta(t, 20.0, revenue.UnitRevenue(curveCrop, k, shifted), 20*1e-6,
		"peak value is preserved under skill adjustment")
	assert.Less(t, revenue.UnitRevenue(curveCrop, k, curveCrop.PeakArea),
		revenue.UnitRevenue(curveCrop, k, shifted),
		"the old peak area is past the new maximum")
}

// TestMargin verifies the (R(x)−V)·x contribution at the peak.
func TestMargin(t *testing.T) {
	// At the peak: (20−8)·20 = 240.
	assert.InDelta(t, 240.0, revenue.Margin(curveCrop, 1, curveCrop.PeakArea), 1e-3)
	// Zero area contributes nothing regardless of the curve.
	assert.Zero(t, revenue.Margin(curveCrop, 1, 0))
}

// TestGuardActive verifies that the ε guard is reported only when the
// denominator truly degenerates.
func TestGuardActive(t *testing.T) {
	assert.False(t, revenue.GuardActive(curveCrop, 1, 0), "healthy peak area keeps the guard idle")

	tiny := curveCrop
	tiny.PeakArea = 1e-6
	assert.True(t, revenue.GuardActive(tiny, 1e-3, 0), "degenerate effective peak leans on ε")
}
