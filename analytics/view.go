package analytics

import (
	"strconv"

	"github.com/jobpulse-org/jobpulse/dataset"
)

// ============================================================================
// VIEW — Zero-copy access to an immutable posting snapshot
// ============================================================================
// The pipeline never copies row data. A View holds the base slice plus an
// optional index list; filtering produces a new View over the same backing
// array. Views are values — pass them around freely. All aggregates read
// through a View and are safe to call concurrently against one snapshot.
// ============================================================================

// View is a (possibly filtered) window over a posting table.
// The zero View is empty and valid.
type View struct {
	table   []dataset.Posting
	indices []int // nil means every row of table
}

// NewView wraps a posting slice. The slice must not be mutated afterwards.
func NewView(postings []dataset.Posting) View {
	return View{table: postings}
}

// Len returns the number of postings visible through the view.
func (v View) Len() int {
	if v.indices != nil {
		return len(v.indices)
	}
	return len(v.table)
}

// posting returns the i-th visible posting.
func (v View) posting(i int) *dataset.Posting {
	if v.indices != nil {
		return &v.table[v.indices[i]]
	}
	return &v.table[i]
}

// Where returns a view of postings matching the predicate. Index list
// into the base table — no row copy.
func (v View) Where(keep func(*dataset.Posting) bool) View {
	indices := make([]int, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if keep(v.posting(i)) {
			if v.indices != nil {
				indices = append(indices, v.indices[i])
			} else {
				indices = append(indices, i)
			}
		}
	}
	return View{table: v.table, indices: indices}
}

// FilterBySalary retains postings with salary ≥ threshold. A threshold at
// or below the dataset minimum is the identity; one above the maximum
// yields an empty view. Neither is an error.
func (v View) FilterBySalary(threshold float64) View {
	return v.Where(func(p *dataset.Posting) bool {
		return p.SalaryUSD >= threshold
	})
}

// FilterByTitleYear retains postings with an exact title match published
// in the given year.
func (v View) FilterByTitleYear(title string, year int) View {
	return v.Where(func(p *dataset.Posting) bool {
		return p.JobTitle == title && p.PostingYear() == year
	})
}

// SalaryBounds returns the observed min and max salary through the view.
// An empty view yields (0, 0).
func (v View) SalaryBounds() (min, max float64) {
	if v.Len() == 0 {
		return 0, 0
	}
	min = v.posting(0).SalaryUSD
	max = min
	for i := 1; i < v.Len(); i++ {
		s := v.posting(i).SalaryUSD
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return min, max
}

// salaries collects the visible salary values, in row order.
func (v View) salaries() []float64 {
	out := make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = v.posting(i).SalaryUSD
	}
	return out
}

// ============================================================================
// DIMENSIONS
// ============================================================================

// Dimension names a groupable string field of a posting.
type Dimension string

const (
	DimJobTitle        Dimension = "job_title"
	DimExperienceLevel Dimension = "experience_level"
	DimCompanyLocation Dimension = "company_location"
	DimEducation       Dimension = "education_required"
	DimIndustry        Dimension = "industry"
	DimCompanySize     Dimension = "company_size"
	DimEmploymentType  Dimension = "employment_type"
	DimCompanyName     Dimension = "company_name"
	DimRemoteRatio     Dimension = "remote_ratio"
)

// dimensionValue extracts a grouping key from a posting. RemoteRatio is a
// virtual dimension derived from the numeric field; a NaN ratio yields ""
// and the row is excluded from that grouping.
func dimensionValue(p *dataset.Posting, dim Dimension) string {
	switch dim {
	case DimJobTitle:
		return p.JobTitle
	case DimExperienceLevel:
		return p.ExperienceLevel
	case DimCompanyLocation:
		return p.CompanyLocation
	case DimEducation:
		return p.EducationRequired
	case DimIndustry:
		return p.Industry
	case DimCompanySize:
		return p.CompanySize
	case DimEmploymentType:
		return p.EmploymentType
	case DimCompanyName:
		return p.CompanyName
	case DimRemoteRatio:
		if p.RemoteRatio != p.RemoteRatio { // NaN
			return ""
		}
		return strconv.FormatFloat(p.RemoteRatio, 'f', -1, 64)
	}
	return ""
}
