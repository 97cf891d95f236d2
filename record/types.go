package record

import "errors"

var (
	// ErrBadSyntax is returned when the input is not parseable YAML or
	// JSON at all.
	ErrBadSyntax = errors.New("record: input is not valid YAML or JSON")

	// ErrSchema is returned when the input parses but does not match the
	// plan document schema.
	ErrSchema = errors.New("record: input does not match the plan document schema")

	// ErrBadFormat is returned by Render for an unknown output format.
	ErrBadFormat = errors.New("record: unknown output format")
)

// Format selects the encoding Render emits.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// CropDoc is the on-disk form of one crop.
type CropDoc struct {
	ID           string    `yaml:"id" json:"id"`
	PeakRevenue  float64   `yaml:"peak_revenue" json:"peak_revenue"`
	BaseRevenue  float64   `yaml:"base_revenue" json:"base_revenue"`
	PeakArea     float64   `yaml:"peak_area" json:"peak_area"`
	VariableCost float64   `yaml:"variable_cost" json:"variable_cost"`
	AnnualLabor  float64   `yaml:"annual_labor" json:"annual_labor"`
	PeriodLabor  []float64 `yaml:"period_labor,omitempty" json:"period_labor,omitempty"`
	InitialCost  float64   `yaml:"initial_cost,omitempty" json:"initial_cost,omitempty"`
}

// FinanceDoc is the on-disk form of the optional financing block.
type FinanceDoc struct {
	SelfCapital    float64 `yaml:"self_capital" json:"self_capital"`
	InterestRate   float64 `yaml:"interest_rate" json:"interest_rate"`
	RepaymentYears int     `yaml:"repayment_years" json:"repayment_years"`
	MaxLoan        float64 `yaml:"max_loan,omitempty" json:"max_loan,omitempty"`
}

// ScenarioDoc is the on-disk form of the scenario block.
type ScenarioDoc struct {
	LandLimit  float64     `yaml:"land_limit" json:"land_limit"`
	IncomeMin  float64     `yaml:"income_min,omitempty" json:"income_min,omitempty"`
	LivingCost float64     `yaml:"living_cost,omitempty" json:"living_cost,omitempty"`
	Subsidy    float64     `yaml:"subsidy,omitempty" json:"subsidy,omitempty"`
	PeriodCaps []float64   `yaml:"period_caps,omitempty" json:"period_caps,omitempty"`
	Skill      float64     `yaml:"skill,omitempty" json:"skill,omitempty"`
	Finance    *FinanceDoc `yaml:"finance,omitempty" json:"finance,omitempty"`
}

// Document is the complete plan input: a crop list plus one scenario.
type Document struct {
	Crops    []CropDoc   `yaml:"crops" json:"crops"`
	Scenario ScenarioDoc `yaml:"scenario" json:"scenario"`
}
