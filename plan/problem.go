package plan

import (
	"fmt"

	"github.com/katalvlaran/agroplan/farm"
	"github.com/katalvlaran/agroplan/finance"
	"github.com/katalvlaran/agroplan/revenue"
	"github.com/katalvlaran/agroplan/sqp"
)

// landSeedFraction is the share of the land limit the initial guess is
// rescaled to when the effective peaks oversubscribe the land.
const landSeedFraction = 0.9

// Objective returns Z(x) = Σⱼ (Lⱼ/k)·xⱼ, the skill-adjusted total annual
// labor. Pure function of x; the crops slice is captured read-only.
func Objective(crops []farm.Crop, sc farm.Scenario) func(x []float64) float64 {
	k := sc.SkillLevel()

	return func(x []float64) float64 {
		var z float64
		for j, c := range crops {
			z += c.EffectiveAnnualLabor(k) * x[j]
		}

		return z
	}
}

// BuildProblem assembles the full sqp.Problem for the given inputs:
// income/cashflow, land, per-period labor and (financed variant) loan
// limit constraints in slack form, with [0, LandLimit] box bounds per
// crop. sharpness tunes the financed variant's kink smoothing; pass
// finance.DefaultSharpness unless you know better.
//
// Every constraint is an independently evaluable pure function. The
// per-period constraints are produced by a factory that receives the
// period index as an argument, so each closure owns its index by value
// and can never collapse onto a shared loop variable.
//
// Constraint order (mirrored by Solution.Constraints): cashflow, land,
// labor-p00..labor-pTT, loan-limit.
func BuildProblem(crops []farm.Crop, sc farm.Scenario, sharpness float64) sqp.Problem {
	n := len(crops)

	cons := make([]sqp.Constraint, 0, 2+sc.Periods()+1)
	cons = append(cons, cashflowConstraint(crops, sc, sharpness), landConstraint(sc, n))
	for t := 0; t < sc.Periods(); t++ {
		cons = append(cons, periodConstraint(crops, sc, t))
	}
	if sc.Financed() {
		cons = append(cons, loanConstraint(crops, *sc.Finance, sharpness))
	}

	lower := make([]float64, n)
	upper := make([]float64, n)
	for j := range upper {
		upper[j] = sc.LandLimit
	}

	return sqp.Problem{
		Dim:         n,
		Objective:   Objective(crops, sc),
		Constraints: cons,
		Lower:       lower,
		Upper:       upper,
	}
}

// InitialGuess returns the peak-seeded start: x0ⱼ = P'ⱼ, uniformly
// rescaled to landSeedFraction of the land limit if the peaks
// oversubscribe it. Deterministic; no randomness.
//
// Seeding at the peaks matters: when Vⱼ > R_baseⱼ the region near x = 0
// has negative marginal return, and a local solver started there stalls
// in the all-zero trap even though profitable peak-area plans exist.
func InitialGuess(crops []farm.Crop, sc farm.Scenario) []float64 {
	k := sc.SkillLevel()

	x0 := make([]float64, len(crops))
	var sum float64
	for j, c := range crops {
		x0[j] = c.EffectivePeakArea(k)
		sum += x0[j]
	}
	if sum > sc.LandLimit {
		scale := landSeedFraction * sc.LandLimit / sum
		for j := range x0 {
			x0[j] *= scale
		}
	}

	return x0
}

// cashflowConstraint returns the income constraint in slack form.
//
// Basic variant:    Σⱼ (Rⱼ(xⱼ) − Vⱼ)·xⱼ − IncomeMin ≥ 0.
// Financed variant: Σⱼ (Rⱼ(xⱼ) − Vⱼ)·xⱼ + Subsidy − LivingCost
//   − smoothedPayment(x) ≥ 0, where the debt service differentiates
//     through the softplus-smoothed loan (the exact kink is reporting-only).
func cashflowConstraint(crops []farm.Crop, sc farm.Scenario, sharpness float64) sqp.Constraint {
	k := sc.SkillLevel()

	if !sc.Financed() {
		return sqp.Constraint{
			Name: "cashflow",
			Eval: func(x []float64) float64 {
				var margin float64
				for j, c := range crops {
					margin += revenue.Margin(c, k, x[j])
				}

				return margin - sc.IncomeMin
			},
		}
	}

	fin := *sc.Finance

	return sqp.Constraint{
		Name: "cashflow",
		Eval: func(x []float64) float64 {
			var margin float64
			for j, c := range crops {
				margin += revenue.Margin(c, k, x[j])
			}

			return margin + sc.Subsidy - sc.LivingCost - finance.SmoothPayment(crops, fin, x, sharpness)
		},
	}
}

// landConstraint returns LandLimit − Σⱼ xⱼ ≥ 0.
func landConstraint(sc farm.Scenario, n int) sqp.Constraint {
	return sqp.Constraint{
		Name: "land",
		Eval: func(x []float64) float64 {
			used := 0.0
			for j := 0; j < n; j++ {
				used += x[j]
			}

			return sc.LandLimit - used
		},
	}
}

// periodConstraint returns H_t − Σⱼ l'ⱼₜ·xⱼ ≥ 0 for one period. The
// factory parameter t is the closure's own copy of the period index.
func periodConstraint(crops []farm.Crop, sc farm.Scenario, t int) sqp.Constraint {
	k := sc.SkillLevel()
	hours := sc.PeriodCaps[t]

	return sqp.Constraint{
		Name: fmt.Sprintf("labor-p%02d", t),
		Eval: func(x []float64) float64 {
			var used float64
			for j, c := range crops {
				used += c.EffectivePeriodLabor(t, k) * x[j]
			}

			return hours - used
		},
	}
}

// loanConstraint returns MaxLoan − smoothedLoan(x) ≥ 0 (financed variant).
func loanConstraint(crops []farm.Crop, fin farm.FinancePlan, sharpness float64) sqp.Constraint {
	return sqp.Constraint{
		Name: "loan-limit",
		Eval: func(x []float64) float64 {
			return fin.MaxLoan - finance.SmoothLoan(finance.TotalCost(crops, x), fin.SelfCapital, sharpness)
		},
	}
}
