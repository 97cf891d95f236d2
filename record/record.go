package record

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/agroplan/farm"
	"gopkg.in/yaml.v3"
)

// Decode parses a plan document, validates it against the schema and the
// farm domain rules, and returns solver-ready inputs.
//
// Contract:
//   - data may be YAML or JSON.
//   - unparseable input ⇒ ErrBadSyntax; schema mismatch ⇒ ErrSchema;
//     domain violations ⇒ the farm sentinel errors.
func Decode(data []byte) ([]farm.Crop, farm.Scenario, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, farm.Scenario{}, fmt.Errorf("%w: %v", ErrBadSyntax, err)
	}
	if err := compiledSchema.Validate(normalize(raw)); err != nil {
		return nil, farm.Scenario{}, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, farm.Scenario{}, fmt.Errorf("%w: %v", ErrBadSyntax, err)
	}

	crops, sc := doc.toFarm()
	if err := farm.Validate(crops, sc); err != nil {
		return nil, farm.Scenario{}, err
	}

	return crops, sc, nil
}

// Load reads and decodes the plan document at path.
func Load(path string) ([]farm.Crop, farm.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, farm.Scenario{}, fmt.Errorf("record: read %s: %w", path, err)
	}

	return Decode(data)
}

// normalize round-trips a YAML-decoded value through encoding/json so the
// schema validator sees the value types it expects.
func normalize(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}

	return out
}

// toFarm maps the document onto the farm domain types.
func (d Document) toFarm() ([]farm.Crop, farm.Scenario) {
	crops := make([]farm.Crop, len(d.Crops))
	for i, c := range d.Crops {
		crops[i] = farm.Crop{
			ID:           c.ID,
			PeakRevenue:  c.PeakRevenue,
			BaseRevenue:  c.BaseRevenue,
			PeakArea:     c.PeakArea,
			VariableCost: c.VariableCost,
			AnnualLabor:  c.AnnualLabor,
			PeriodLabor:  c.PeriodLabor,
			InitialCost:  c.InitialCost,
		}
	}

	sc := farm.Scenario{
		LandLimit:  d.Scenario.LandLimit,
		IncomeMin:  d.Scenario.IncomeMin,
		LivingCost: d.Scenario.LivingCost,
		Subsidy:    d.Scenario.Subsidy,
		PeriodCaps: d.Scenario.PeriodCaps,
		Skill:      d.Scenario.Skill,
	}
	if f := d.Scenario.Finance; f != nil {
		sc.Finance = &farm.FinancePlan{
			SelfCapital:    f.SelfCapital,
			InterestRate:   f.InterestRate,
			RepaymentYears: f.RepaymentYears,
			MaxLoan:        f.MaxLoan,
		}
	}

	return crops, sc
}
