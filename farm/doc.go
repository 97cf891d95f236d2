// Package farm defines the immutable input model for a farm-plan
// optimization run: crop parameter sets, the scenario they are planted
// under, and the fail-fast validation applied before any solving starts.
//
// Model:
//
//   - Crop — per-activity economics: a peaked unit-revenue curve described
//     by (BaseRevenue, PeakRevenue, PeakArea), a variable production cost,
//     annual and per-period labor intensities, and an optional initial
//     capital cost used by the financed scenario variant.
//
//   - Scenario — the run envelope: land limit, income/cashflow targets,
//     per-period labor caps, an operator skill level k ∈ (0,1], and an
//     optional FinancePlan (self capital, interest rate, repayment term,
//     loan ceiling).
//
// Skill adjustment:
//
//	A skill level k < 1 models a less-experienced operator. It rescales the
//	effective peak area of every crop (P' = P·k) and inflates labor
//	intensities (L' = L/k, l'ₜ = lₜ/k). The Effective* accessors apply the
//	adjustment; raw fields stay untouched.
//
// Both types are plain value objects constructed once per run and never
// mutated afterwards; there is no package-level configuration state.
//
// Errors (sentinel):
//
//	– ErrNoCrops         if the crop list is empty.
//	– ErrEmptyCropID     if a crop has an empty ID.
//	– ErrDuplicateCropID if two crops share an ID.
//	– ErrBadPeakArea     if a crop's PeakArea is not strictly positive.
//	– ErrNegativeCost    if a cost parameter is negative.
//	– ErrNegativeLabor   if a labor intensity is negative.
//	– ErrPeriodMismatch  if per-period array lengths disagree.
//	– ErrBadLandLimit    if the scenario land limit is not positive.
//	– ErrBadSkill        if the skill level is outside (0,1].
//	– ErrBadPeriodCap    if a per-period labor cap is negative.
//	– ErrBadFinance      if a finance parameter is out of range.
//
// All of the above are configuration errors in the run taxonomy: they are
// raised before the solver is ever constructed.
package farm
