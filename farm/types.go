package farm

import "errors"

// Sentinel errors raised by Validate. Every one of them means the input is
// malformed; none of them can come back from a solve.
var (
	// ErrNoCrops indicates that the crop list is empty.
	ErrNoCrops = errors.New("farm: crop list is empty")

	// ErrEmptyCropID indicates that a crop was defined without an ID.
	ErrEmptyCropID = errors.New("farm: crop ID is empty")

	// ErrDuplicateCropID indicates that two crops share the same ID.
	ErrDuplicateCropID = errors.New("farm: duplicate crop ID")

	// ErrBadPeakArea indicates a PeakArea that is zero or negative; the
	// revenue curve is undefined without a strictly positive peak.
	ErrBadPeakArea = errors.New("farm: PeakArea must be positive")

	// ErrNegativeCost indicates a negative VariableCost or InitialCost.
	ErrNegativeCost = errors.New("farm: cost parameters must be non-negative")

	// ErrNegativeLabor indicates a negative annual or per-period labor
	// intensity.
	ErrNegativeLabor = errors.New("farm: labor intensities must be non-negative")

	// ErrPeriodMismatch indicates that a crop's PeriodLabor length differs
	// from the scenario's PeriodCaps length.
	ErrPeriodMismatch = errors.New("farm: per-period array lengths disagree")

	// ErrBadLandLimit indicates a land limit that is zero or negative.
	ErrBadLandLimit = errors.New("farm: LandLimit must be positive")

	// ErrBadSkill indicates a skill level outside (0,1].
	ErrBadSkill = errors.New("farm: Skill must lie in (0,1]")

	// ErrBadPeriodCap indicates a negative per-period labor cap.
	ErrBadPeriodCap = errors.New("farm: PeriodCaps entries must be non-negative")

	// ErrBadFinance indicates an out-of-range finance parameter
	// (negative capital/rate/ceiling or a repayment term below one year).
	ErrBadFinance = errors.New("farm: finance parameters out of range")
)

// Crop is one production activity. All monetary fields are per unit area,
// labor fields are hours per unit area. A Crop is a plain value: copy it
// freely, never share a mutable one.
//
// The unit-revenue curve peaks at PeakArea with value PeakRevenue and
// starts (and asymptotically ends) at BaseRevenue. PeakRevenue below
// BaseRevenue is a degenerate but accepted input: the curve then dips
// instead of peaking, and every consumer must survive it.
type Crop struct {
	ID           string    // unique crop identifier
	PeakRevenue  float64   // unit revenue at the peak area (R_peak)
	BaseRevenue  float64   // unit revenue at zero and at infinite area (R_base)
	PeakArea     float64   // area of maximum unit revenue (P, must be > 0)
	VariableCost float64   // variable production cost per unit area (V)
	AnnualLabor  float64   // annual labor per unit area (L)
	PeriodLabor  []float64 // labor per unit area in period t (l_t)
	InitialCost  float64   // capital outlay per unit area (financed variant)
}

// EffectivePeakArea returns the skill-adjusted peak area P' = P·k.
func (c Crop) EffectivePeakArea(skill float64) float64 {
	return c.PeakArea * skill
}

// EffectiveAnnualLabor returns the skill-adjusted annual labor L' = L/k.
func (c Crop) EffectiveAnnualLabor(skill float64) float64 {
	return c.AnnualLabor / skill
}

// EffectivePeriodLabor returns the skill-adjusted labor intensity of
// period t, l'ₜ = lₜ/k. The period index must be in range; Validate
// guarantees that for every period the scenario defines.
func (c Crop) EffectivePeriodLabor(t int, skill float64) float64 {
	return c.PeriodLabor[t] / skill
}

// FinancePlan carries the parameters of the financed scenario variant.
// A nil plan on the Scenario selects the basic (flat income target) variant.
type FinancePlan struct {
	SelfCapital    float64 // own capital applied before borrowing
	InterestRate   float64 // annual rate, fraction (0.03 == 3%)
	RepaymentYears int     // amortization term, ≥ 1
	MaxLoan        float64 // loan ceiling for the loan-limit constraint
}

// Scenario is the run envelope. IncomeMin drives the basic cashflow
// constraint; when Finance is set, LivingCost and Subsidy replace it and
// debt service enters the cashflow. A zero Skill means "unset" and is
// treated as 1 (fully experienced operator).
type Scenario struct {
	LandLimit  float64      // total available area
	IncomeMin  float64      // flat income target (basic variant)
	LivingCost float64      // annual household outflow (financed variant)
	Subsidy    float64      // annual subsidy inflow (financed variant)
	PeriodCaps []float64    // available labor hours per period (H_t)
	Skill      float64      // operator skill level k ∈ (0,1]; 0 ⇒ 1
	Finance    *FinancePlan // nil ⇒ basic variant
}

// SkillLevel returns the effective skill level, mapping the unset zero
// value to 1.
func (s Scenario) SkillLevel() float64 {
	if s.Skill == 0 {
		return 1
	}

	return s.Skill
}

// Financed reports whether the financed variant is active.
func (s Scenario) Financed() bool { return s.Finance != nil }

// Periods returns the number of labor periods the scenario constrains.
func (s Scenario) Periods() int { return len(s.PeriodCaps) }
