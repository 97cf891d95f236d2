package finance_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/agroplan/farm"
	"github.com/katalvlaran/agroplan/finance"
	"github.com/stretchr/testify/assert"
)

// TestCRF_ZeroRate verifies the straight-line degradation CRF = 1/y.
func TestCRF_ZeroRate(t *testing.T) {
	assert.InDelta(t, 0.1, finance.CRF(0, 10), 1e-12)
}

// TestCRF_PositiveRate verifies the annuity formula against a hand
// computation: r=5%, y=10 ⇒ CRF ≈ 0.1295046.
func TestCRF_PositiveRate(t *testing.T) {
	assert.InDelta(t, 0.1295046, finance.CRF(0.05, 10), 1e-6)
}

// TestAmortize verifies exact loan sizing including the max(0,·) floor.
func TestAmortize(t *testing.T) {
	crops := []farm.Crop{
		{ID: "a", PeakArea: 10, InitialCost: 50},
		{ID: "b", PeakArea: 10, InitialCost: 20},
	}
	fin := farm.FinancePlan{SelfCapital: 400, InterestRate: 0, RepaymentYears: 10, MaxLoan: 1e6}

	// cost = 50·10 + 20·5 = 600 ⇒ loan 200, payment 20.
	loan, pay := finance.Amortize(crops, fin, []float64{10, 5})
	assert.InDelta(t, 200.0, loan, 1e-9)
	assert.InDelta(t, 20.0, pay, 1e-9)

	// cost 300 < capital ⇒ loan floored at zero.
	loan, pay = finance.Amortize(crops, fin, []float64{6, 0})
	assert.Zero(t, loan)
	assert.Zero(t, pay)
}

// TestSmoothLoan_Asymptotes verifies that far from the kink the softplus
// matches the exact loan, and that at the kink the gap is ln2·s.
func TestSmoothLoan_Asymptotes(t *testing.T) {
	const s = finance.DefaultSharpness

	assert.InDelta(t, 500.0, finance.SmoothLoan(1500, 1000, s), 1e-6, "deep in the financed branch")
	assert.InDelta(t, 0.0, finance.SmoothLoan(500, 1000, s), 1e-6, "deep in the self-funded branch")
	assert.InDelta(t, math.Ln2*s, finance.SmoothLoan(1000, 1000, s), 1e-9, "softplus value at the kink")
}

// TestSmoothLoan_Monotone samples the crossing region and verifies the
// smoothed loan never decreases in cost, the property the solver's
// gradients rely on.
func TestSmoothLoan_Monotone(t *testing.T) {
	const s = finance.DefaultSharpness
	prev := finance.SmoothLoan(900, 1000, s)
	for cost := 901.0; cost <= 1100; cost++ {
		cur := finance.SmoothLoan(cost, 1000, s)
		assert.GreaterOrEqual(t, cur, prev, "cost=%.0f", cost)
		prev = cur
	}
}

// TestKinkActive verifies the band in which the smoothing is reported as
// load-bearing.
func TestKinkActive(t *testing.T) {
	const s = finance.DefaultSharpness
	assert.True(t, finance.KinkActive(1000, 1000, s))
	assert.True(t, finance.KinkActive(1005, 1000, s))
	assert.False(t, finance.KinkActive(1200, 1000, s))
}
