package schema

// ============================================================================
// SCHEMA — Describes the shape of the AI job postings dataset
// ============================================================================
// The dataset schema is fixed: every column the pipeline consumes is declared
// here, and Validate checks the full set against a CSV header once at load
// time. Missing required columns are fatal — no partial dashboard is served
// from a partially usable file.
// ============================================================================

// Role classifies how the pipeline uses a column.
type Role string

const (
	// RoleDimension — string field used for grouping and filtering.
	RoleDimension Role = "dimension"
	// RoleMeasure — numeric field used for aggregation.
	RoleMeasure Role = "measure"
	// RoleTemporal — date field used for trend derivation.
	RoleTemporal Role = "temporal"
	// RoleMultiValue — comma-delimited list field (exploded before counting).
	RoleMultiValue Role = "multi_value"
)

// Column describes one expected dataset column.
type Column struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
	Required    bool   `json:"required"`
}

// Column keys, in dataset order.
const (
	ColJobTitle            = "job_title"
	ColSalaryUSD           = "salary_usd"
	ColExperienceLevel     = "experience_level"
	ColRemoteRatio         = "remote_ratio"
	ColCompanyLocation     = "company_location"
	ColEducationRequired   = "education_required"
	ColRequiredSkills      = "required_skills"
	ColIndustry            = "industry"
	ColYearsExperience     = "years_experience"
	ColCompanySize         = "company_size"
	ColDescriptionLength   = "job_description_length"
	ColPostingDate         = "posting_date"
	ColApplicationDeadline = "application_deadline"
	ColEmploymentType      = "employment_type"
	ColCompanyName         = "company_name"
)

var columns = []Column{
	{Key: ColJobTitle, DisplayName: "Job Title", Role: RoleDimension, Required: true},
	{Key: ColSalaryUSD, DisplayName: "Salary (USD)", Role: RoleMeasure, Required: true},
	{Key: ColExperienceLevel, DisplayName: "Experience Level", Role: RoleDimension, Required: true},
	{Key: ColRemoteRatio, DisplayName: "Remote Ratio", Role: RoleMeasure, Required: true},
	{Key: ColCompanyLocation, DisplayName: "Company Location", Role: RoleDimension, Required: true},
	{Key: ColEducationRequired, DisplayName: "Education Required", Role: RoleDimension, Required: true},
	{Key: ColRequiredSkills, DisplayName: "Required Skills", Role: RoleMultiValue, Required: true},
	{Key: ColIndustry, DisplayName: "Industry", Role: RoleDimension, Required: true},
	{Key: ColYearsExperience, DisplayName: "Years of Experience", Role: RoleMeasure, Required: true},
	{Key: ColCompanySize, DisplayName: "Company Size", Role: RoleDimension, Required: true},
	{Key: ColDescriptionLength, DisplayName: "Job Description Length", Role: RoleMeasure, Required: true},
	{Key: ColPostingDate, DisplayName: "Posting Date", Role: RoleTemporal, Required: true},
	{Key: ColApplicationDeadline, DisplayName: "Application Deadline", Role: RoleTemporal, Required: true},
	{Key: ColEmploymentType, DisplayName: "Employment Type", Role: RoleDimension, Required: true},
	{Key: ColCompanyName, DisplayName: "Company Name", Role: RoleDimension, Required: true},
}

// Columns returns the full expected column set.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// RequiredKeys returns the keys of all required columns.
func RequiredKeys() []string {
	var keys []string
	for _, c := range columns {
		if c.Required {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

// ColumnByKey looks up a column definition.
func ColumnByKey(key string) (Column, bool) {
	for _, c := range columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}
