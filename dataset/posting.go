package dataset

import (
	"strings"
	"time"
)

// ============================================================================
// POSTING — One job-listing record
// ============================================================================

// Posting is a single parsed row of the job postings table.
// Rows that fail parsing (bad salary, bad dates) never become Postings —
// the loader drops them. YearsExperience and DescriptionLength may be NaN
// when the source cell is blank or non-numeric; consumers exclude NaN.
type Posting struct {
	JobTitle            string    `json:"job_title"`
	SalaryUSD           float64   `json:"salary_usd"`
	ExperienceLevel     string    `json:"experience_level"`
	RemoteRatio         float64   `json:"remote_ratio"`
	CompanyLocation     string    `json:"company_location"`
	EducationRequired   string    `json:"education_required"`
	RequiredSkills      []string  `json:"required_skills"`
	Industry            string    `json:"industry"`
	YearsExperience     float64   `json:"years_experience"`
	CompanySize         string    `json:"company_size"`
	DescriptionLength   float64   `json:"job_description_length"`
	PostingDate         time.Time `json:"posting_date"`
	ApplicationDeadline time.Time `json:"application_deadline"`
	EmploymentType      string    `json:"employment_type"`
	CompanyName         string    `json:"company_name"`
}

// PostingYear returns the calendar year the posting was published.
func (p *Posting) PostingYear() int {
	return p.PostingDate.Year()
}

// PostingMonth returns the calendar month the posting was published,
// irrespective of year.
func (p *Posting) PostingMonth() time.Month {
	return p.PostingDate.Month()
}

// DeadlineLagDays returns the number of days between posting and
// application deadline. Negative values indicate a data-quality
// violation; callers exclude them rather than clamping.
func (p *Posting) DeadlineLagDays() int {
	return int(p.ApplicationDeadline.Sub(p.PostingDate).Hours() / 24)
}

// SplitSkills explodes a comma-delimited skills cell into trimmed tokens.
// Empty tokens are dropped — "Python, , SQL" yields two skills, and a
// blank cell yields none.
func SplitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	if len(skills) == 0 {
		return nil
	}
	return skills
}
