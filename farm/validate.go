package farm

import "fmt"

// Validate checks crops and scenario for structural soundness before any
// model or solver is built. It is the single gate for the configuration
// half of the error taxonomy: everything it rejects is a hard failure,
// everything it accepts yields a reportable solve outcome later.
//
// Stages:
//  1. Scenario-only sanity (limits, skill, caps, finance ranges).
//  2. Per-crop sanity (IDs, peak area, costs, labor).
//  3. Cross checks (period array lengths against the scenario).
//
// Deterministic and side-effect free; crops are inspected in slice order so
// the first offending crop is always the same one.
//
// Complexity: O(n·T) for n crops and T periods.
func Validate(crops []Crop, sc Scenario) error {
	// Stage 1: scenario-only sanity.
	if err := validateScenario(sc); err != nil {
		return err
	}

	// Stage 2 + 3: per-crop sanity and cross checks.
	if len(crops) == 0 {
		return ErrNoCrops
	}
	seen := make(map[string]struct{}, len(crops))
	for i, c := range crops {
		if err := validateCrop(c, sc.Periods()); err != nil {
			return fmt.Errorf("crop[%d] %q: %w", i, c.ID, err)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("crop[%d] %q: %w", i, c.ID, ErrDuplicateCropID)
		}
		seen[c.ID] = struct{}{}
	}

	return nil
}

// validateScenario checks the scenario envelope in isolation.
//
// Complexity: O(T).
func validateScenario(sc Scenario) error {
	if sc.LandLimit <= 0 {
		return ErrBadLandLimit
	}
	// Skill 0 means "unset" and resolves to 1; anything else must sit in (0,1].
	if sc.Skill < 0 || sc.Skill > 1 {
		return ErrBadSkill
	}
	for t, hours := range sc.PeriodCaps {
		if hours < 0 {
			return fmt.Errorf("period %d: %w", t, ErrBadPeriodCap)
		}
	}
	if fin := sc.Finance; fin != nil {
		if fin.SelfCapital < 0 || fin.InterestRate < 0 || fin.MaxLoan < 0 {
			return ErrBadFinance
		}
		if fin.RepaymentYears < 1 {
			return ErrBadFinance
		}
	}

	return nil
}

// validateCrop checks one crop against the scenario's period count.
//
// Complexity: O(T).
func validateCrop(c Crop, periods int) error {
	if c.ID == "" {
		return ErrEmptyCropID
	}
	if c.PeakArea <= 0 {
		return ErrBadPeakArea
	}
	if c.VariableCost < 0 || c.InitialCost < 0 {
		return ErrNegativeCost
	}
	if c.AnnualLabor < 0 {
		return ErrNegativeLabor
	}
	for t, l := range c.PeriodLabor {
		if l < 0 {
			return fmt.Errorf("period %d: %w", t, ErrNegativeLabor)
		}
	}
	if len(c.PeriodLabor) != periods {
		return ErrPeriodMismatch
	}

	return nil
}
