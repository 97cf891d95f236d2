package plan

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/katalvlaran/agroplan/farm"
	"github.com/katalvlaran/agroplan/finance"
	"github.com/katalvlaran/agroplan/revenue"
	"github.com/katalvlaran/agroplan/sqp"
)

// peakToleranceShare sets the classification tolerance δ as a share of
// the median effective peak area.
const peakToleranceShare = 0.01

// Classify turns a raw solver result into the reportable Solution:
// per-crop scale labels, aggregate totals, per-period utilization, every
// constraint's slack at the final iterate, and the numeric-guard
// diagnostics. sharpness must match the value BuildProblem was given.
//
// Classification rule with δ = 1% of the median effective peak:
//
//	x < δ            → Unplanted
//	|x − P'| < δ     → AtPeak
//	x > P' + δ       → OverScale
//	otherwise        → UnderScale
func Classify(crops []farm.Crop, sc farm.Scenario, res sqp.Result, sharpness float64) Solution {
	k := sc.SkillLevel()
	delta := peakTolerance(crops, k)

	sol := Solution{
		RunID:        uuid.NewString(),
		Areas:        res.X,
		Status:       res.Status,
		Crops:        make([]CropReport, len(crops)),
		Periods:      make([]PeriodReport, sc.Periods()),
		Iterations:   res.Iterations,
		Runtime:      res.Runtime,
		KKTResidual:  res.KKTResidual,
		MaxViolation: res.MaxViolation,
	}

	// Per-crop diagnostics and margin/labor totals.
	for j, c := range crops {
		area := res.X[j]
		peak := c.EffectivePeakArea(k)
		margin := revenue.Margin(c, k, area)

		sol.Crops[j] = CropReport{
			ID:            c.ID,
			Area:          area,
			EffectivePeak: peak,
			UnitRevenue:   revenue.UnitRevenue(c, k, area),
			Margin:        margin,
			Scale:         scaleOf(area, peak, delta),
		}
		sol.Totals.Labor += c.EffectiveAnnualLabor(k) * area
		sol.Totals.Margin += margin
		sol.Totals.LandUsed += area

		if revenue.GuardActive(c, k, area) {
			sol.Guards = append(sol.Guards, fmt.Sprintf("revenue-epsilon:%s", c.ID))
		}
	}
	sol.Totals.LandUtilization = sol.Totals.LandUsed / sc.LandLimit

	// Per-period labor budgets.
	for t := range sol.Periods {
		var used float64
		for j, c := range crops {
			used += c.EffectivePeriodLabor(t, k) * res.X[j]
		}
		p := PeriodReport{Cap: sc.PeriodCaps[t], Used: used}
		if p.Cap > 0 {
			p.Utilization = used / p.Cap
		}
		sol.Periods[t] = p
	}

	// Financed aggregates use the exact economics, not the smoothing.
	if sc.Financed() {
		fin := *sc.Finance
		sol.Totals.Loan, sol.Totals.AnnualPayment = finance.Amortize(crops, fin, res.X)
		sol.Totals.Margin += sc.Subsidy - sol.Totals.AnnualPayment

		if cost := finance.TotalCost(crops, res.X); finance.KinkActive(cost, fin.SelfCapital, sharpness) {
			sol.Guards = append(sol.Guards, "finance-kink")
		}
	}

	// Constraint slacks in problem order, for binding/violation display.
	prob := BuildProblem(crops, sc, sharpness)
	sol.Constraints = make([]ConstraintReport, len(prob.Constraints))
	for i, con := range prob.Constraints {
		sol.Constraints[i] = ConstraintReport{Name: con.Name, Slack: con.Eval(res.X)}
	}

	return sol
}

// scaleOf applies the classification rule for one crop.
func scaleOf(area, peak, delta float64) ScaleClass {
	diff := area - peak
	switch {
	case area < delta:
		return Unplanted
	case diff > -delta && diff < delta:
		return AtPeak
	case diff >= delta:
		return OverScale
	default:
		return UnderScale
	}
}

// peakTolerance returns δ = 1% of the median effective peak area.
func peakTolerance(crops []farm.Crop, k float64) float64 {
	peaks := make([]float64, len(crops))
	for j, c := range crops {
		peaks[j] = c.EffectivePeakArea(k)
	}
	sort.Float64s(peaks)

	mid := len(peaks) / 2
	median := peaks[mid]
	if len(peaks)%2 == 0 {
		median = (peaks[mid-1] + peaks[mid]) / 2
	}

	return peakToleranceShare * median
}
