package analytics

// ============================================================================
// FILTER STATE — The one externally driven mutable input
// ============================================================================
// Owned by the caller, one per user session. The presentation layer mutates
// MinSalary on slider interaction and re-invokes the aggregates with the
// current state; the pipeline itself never holds it between calls.
// ============================================================================

// DefaultSalaryStep is the documented slider step for the presentation layer.
const DefaultSalaryStep = 5000

// SalaryBounds are the documented slider bounds: the dataset's observed
// min/max salary.
type SalaryBounds struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// FilterState is the minimum-salary threshold driving filtered aggregates.
type FilterState struct {
	MinSalary float64      `json:"minSalary"`
	Bounds    SalaryBounds `json:"bounds"`
}

// NewFilterState initializes the threshold to the dataset minimum, so the
// initial filtered view is the full table.
func NewFilterState(v View) FilterState {
	min, max := v.SalaryBounds()
	return FilterState{
		MinSalary: min,
		Bounds:    SalaryBounds{Min: min, Max: max, Step: DefaultSalaryStep},
	}
}

// Set updates the threshold. Out-of-bounds values are legal: below the
// dataset minimum the filter is the identity, above the maximum it yields
// an empty view. Bounds exist for the slider, not for correctness.
func (f *FilterState) Set(value float64) {
	f.MinSalary = value
}

// Apply returns the threshold-filtered view of the table.
func (f FilterState) Apply(v View) View {
	return v.FilterBySalary(f.MinSalary)
}
