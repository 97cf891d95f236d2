package finance

import (
	"math"

	"github.com/katalvlaran/agroplan/farm"
)

// DefaultSharpness is the softplus sharpness (in currency units) used by
// the constraint-facing loan surface. The smoothed loan differs from the
// exact max(0,·) by at most ln2·s, concentrated in a band of a few s
// around the kink.
const DefaultSharpness = 1.0

// kinkBand is the half-width, in sharpness units, of the region around the
// kink inside which KinkActive reports the smoothing as load-bearing.
const kinkBand = 8.0

// softplusCut bounds the exponent fed to math.Exp; beyond it the softplus
// is indistinguishable from its linear/zero asymptote in float64.
const softplusCut = 30.0

// CRF returns the capital recovery factor for annual rate r (fraction)
// over y years: the multiplier converting a principal into a constant
// annual payment. For r = 0 it degrades to straight-line 1/y.
//
// Contracts: y ≥ 1, r ≥ 0 (enforced upstream by farm.Validate).
//
// Complexity: O(1).
func CRF(r float64, y int) float64 {
	if r == 0 {
		return 1 / float64(y)
	}
	growth := math.Pow(1+r, float64(y))

	return r * growth / (growth - 1)
}

// TotalCost returns the capital outlay Σⱼ InitialCostⱼ·xⱼ of allocation x.
// Negative areas are clamped to 0, mirroring the revenue curve's clamp.
//
// Complexity: O(n).
func TotalCost(crops []farm.Crop, x []float64) float64 {
	var cost float64
	for j, c := range crops {
		if x[j] > 0 {
			cost += c.InitialCost * x[j]
		}
	}

	return cost
}

// Amortize returns the exact loan amount and annual debt service for
// allocation x under plan fin. This is the reporting surface: it keeps the
// hard max(0,·) economics untouched.
//
// Complexity: O(n).
func Amortize(crops []farm.Crop, fin farm.FinancePlan, x []float64) (loan, payment float64) {
	loan = TotalCost(crops, x) - fin.SelfCapital
	if loan < 0 {
		loan = 0
	}

	return loan, loan * CRF(fin.InterestRate, fin.RepaymentYears)
}

// SmoothLoan returns the softplus approximation of max(0, cost−capital)
// with sharpness s:
//
//	loanₛ = s·ln(1 + exp((cost−capital)/s))
//
// Monotone, smooth, and within ln2·s of the exact loan everywhere; exact
// in both asymptotes. This is the surface the cashflow and loan-limit
// constraints differentiate through.
//
// Complexity: O(1).
func SmoothLoan(cost, capital, s float64) float64 {
	z := (cost - capital) / s
	switch {
	case z > softplusCut:
		return cost - capital
	case z < -softplusCut:
		return 0
	default:
		return s * math.Log1p(math.Exp(z))
	}
}

// SmoothPayment returns the annual debt service implied by the smoothed
// loan for allocation x: SmoothLoan(cost, capital, s) · CRF.
//
// Complexity: O(n).
func SmoothPayment(crops []farm.Crop, fin farm.FinancePlan, x []float64, s float64) float64 {
	return SmoothLoan(TotalCost(crops, x), fin.SelfCapital, s) * CRF(fin.InterestRate, fin.RepaymentYears)
}

// KinkActive reports whether cost sits inside the smoothed band around the
// self-capital kink, i.e. whether the softplus approximation materially
// shaped the constraint surface at this iterate. A diagnostic, not an
// error.
//
// Complexity: O(1).
func KinkActive(cost, capital, s float64) bool {
	return math.Abs(cost-capital) < kinkBand*s
}
