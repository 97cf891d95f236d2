package record

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/agroplan/plan"
	"gopkg.in/yaml.v3"
)

// CropReportDoc is the on-disk form of one crop's diagnostic block.
type CropReportDoc struct {
	ID             string  `yaml:"id" json:"id"`
	Area           float64 `yaml:"area" json:"area"`
	EffectivePeak  float64 `yaml:"effective_peak" json:"effective_peak"`
	UnitRevenue    float64 `yaml:"unit_revenue" json:"unit_revenue"`
	Margin         float64 `yaml:"margin" json:"margin"`
	Scale          string  `yaml:"scale" json:"scale"`
}

// PeriodReportDoc is the on-disk form of one period's labor budget.
type PeriodReportDoc struct {
	Cap         float64 `yaml:"cap" json:"cap"`
	Used        float64 `yaml:"used" json:"used"`
	Utilization float64 `yaml:"utilization" json:"utilization"`
}

// TotalsDoc is the on-disk form of the solution aggregates.
type TotalsDoc struct {
	Labor           float64 `yaml:"labor" json:"labor"`
	Margin          float64 `yaml:"margin" json:"margin"`
	LandUsed        float64 `yaml:"land_used" json:"land_used"`
	LandUtilization float64 `yaml:"land_utilization" json:"land_utilization"`
	Loan            float64 `yaml:"loan,omitempty" json:"loan,omitempty"`
	AnnualPayment   float64 `yaml:"annual_payment,omitempty" json:"annual_payment,omitempty"`
}

// ConstraintDoc is the on-disk form of one constraint's final slack.
type ConstraintDoc struct {
	Name  string  `yaml:"name" json:"name"`
	Slack float64 `yaml:"slack" json:"slack"`
}

// SolutionDoc is the complete report document Render emits.
type SolutionDoc struct {
	RunID        string            `yaml:"run_id" json:"run_id"`
	Status       string            `yaml:"status" json:"status"`
	Areas        []float64         `yaml:"areas" json:"areas"`
	Crops        []CropReportDoc   `yaml:"crops" json:"crops"`
	Periods      []PeriodReportDoc `yaml:"periods,omitempty" json:"periods,omitempty"`
	Totals       TotalsDoc         `yaml:"totals" json:"totals"`
	Constraints  []ConstraintDoc   `yaml:"constraints" json:"constraints"`
	Guards       []string          `yaml:"guards,omitempty" json:"guards,omitempty"`
	Iterations   int               `yaml:"iterations" json:"iterations"`
	RuntimeSec   float64           `yaml:"runtime_seconds" json:"runtime_seconds"`
	KKTResidual  float64           `yaml:"kkt_residual" json:"kkt_residual"`
	MaxViolation float64           `yaml:"max_violation" json:"max_violation"`
}

// NewSolutionDoc flattens a Solution into its report document.
func NewSolutionDoc(sol plan.Solution) SolutionDoc {
	doc := SolutionDoc{
		RunID:        sol.RunID,
		Status:       sol.Status.String(),
		Areas:        sol.Areas,
		Crops:        make([]CropReportDoc, len(sol.Crops)),
		Periods:      make([]PeriodReportDoc, len(sol.Periods)),
		Constraints:  make([]ConstraintDoc, len(sol.Constraints)),
		Guards:       sol.Guards,
		Iterations:   sol.Iterations,
		RuntimeSec:   sol.Runtime.Seconds(),
		KKTResidual:  sol.KKTResidual,
		MaxViolation: sol.MaxViolation,
		Totals: TotalsDoc{
			Labor:           sol.Totals.Labor,
			Margin:          sol.Totals.Margin,
			LandUsed:        sol.Totals.LandUsed,
			LandUtilization: sol.Totals.LandUtilization,
			Loan:            sol.Totals.Loan,
			AnnualPayment:   sol.Totals.AnnualPayment,
		},
	}
	for i, c := range sol.Crops {
		doc.Crops[i] = CropReportDoc{
			ID:            c.ID,
			Area:          c.Area,
			EffectivePeak: c.EffectivePeak,
			UnitRevenue:   c.UnitRevenue,
			Margin:        c.Margin,
			Scale:         c.Scale.String(),
		}
	}
	for i, p := range sol.Periods {
		doc.Periods[i] = PeriodReportDoc{Cap: p.Cap, Used: p.Used, Utilization: p.Utilization}
	}
	for i, con := range sol.Constraints {
		doc.Constraints[i] = ConstraintDoc{Name: con.Name, Slack: con.Slack}
	}

	return doc
}

// Render encodes a Solution as a YAML or JSON report.
func Render(sol plan.Solution, format Format) ([]byte, error) {
	doc := NewSolutionDoc(sol)
	switch format {
	case YAML:
		return yaml.Marshal(doc)
	case JSON:
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
}
