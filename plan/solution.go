package plan

import (
	"time"

	"github.com/katalvlaran/agroplan/sqp"
)

// ScaleClass labels a crop's solution area relative to its effective peak.
type ScaleClass int

const (
	// Unplanted: area below the classification tolerance δ.
	Unplanted ScaleClass = iota

	// AtPeak: area within δ of the skill-adjusted peak P'.
	AtPeak

	// UnderScale: planted but restrained below the peak.
	UnderScale

	// OverScale: pushed past the peak, where extra area buys labor, not revenue.
	OverScale
)

// String implements fmt.Stringer with stable report labels.
func (s ScaleClass) String() string {
	switch s {
	case Unplanted:
		return "unplanted"
	case AtPeak:
		return "at-peak"
	case UnderScale:
		return "under-scale"
	case OverScale:
		return "over-scale"
	default:
		return "unknown"
	}
}

// CropReport is the per-crop diagnostic block of a Solution.
type CropReport struct {
	ID            string     // crop identifier
	Area          float64    // solved planted area
	EffectivePeak float64    // skill-adjusted peak area P'
	UnitRevenue   float64    // R(area) at the solution
	Margin        float64    // (R(area) − V)·area
	Scale         ScaleClass // position relative to the peak
}

// PeriodReport is the labor budget of one period at the solution.
type PeriodReport struct {
	Cap         float64 // available hours H_t
	Used        float64 // Σⱼ l'ⱼₜ·xⱼ
	Utilization float64 // Used/Cap, 0 when the cap is 0
}

// Totals aggregates the solution-level economics.
type Totals struct {
	Labor           float64 // Z(x): total skill-adjusted annual labor
	Margin          float64 // Σ margins (+ subsidy − payment when financed)
	LandUsed        float64 // Σ xⱼ
	LandUtilization float64 // LandUsed / LandLimit
	Loan            float64 // exact loan amount (financed variant, else 0)
	AnnualPayment   float64 // exact debt service (financed variant, else 0)
}

// ConstraintReport is one constraint's slack at the final iterate, so a
// caller can show which constraint binds (≈0) or is violated (<0).
type ConstraintReport struct {
	Name  string
	Slack float64
}

// Solution is the full outcome of one optimization run. It is produced
// fresh per run and never mutated afterwards.
type Solution struct {
	RunID string // unique label for this run (not part of determinism)

	Areas  []float64  // solved area vector, crop order
	Status sqp.Status // success / infeasible / non-converged

	Crops       []CropReport
	Periods     []PeriodReport
	Totals      Totals
	Constraints []ConstraintReport

	// Guards lists the numeric guards exercised at the final iterate
	// (revenue ε, finance kink smoothing). Diagnostics, not errors.
	Guards []string

	Iterations   int
	Runtime      time.Duration
	KKTResidual  float64
	MaxViolation float64
}

// Feasible reports whether the run ended in a fully satisfied plan.
func (s Solution) Feasible() bool { return s.Status == sqp.Success }
