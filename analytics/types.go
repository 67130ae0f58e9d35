package analytics

// ============================================================================
// RESULT TYPES — Plain tabular/scalar outputs for the presentation layer
// ============================================================================
// Every aggregate returns one of these. They are deliberately flat and
// JSON-ready so a charting layer can consume them without translation.
// None of them holds a reference back into the source table.
// ============================================================================

// Heatmap is a mean-salary matrix over (job title × company location).
// Cells[i][j] corresponds to Titles[i] and Locations[j]; nil marks a
// combination with no postings (never zero).
type Heatmap struct {
	Titles    []string     `json:"titles"`
	Locations []string     `json:"locations"`
	Cells     [][]*float64 `json:"cells"`
}

// FiveNumber is the classic boxplot summary.
type FiveNumber struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Distribution is a per-group salary spread: the five-number summary plus
// the raw values (ascending) for violin/box rendering.
type Distribution struct {
	Group string `json:"group"`
	FiveNumber
	Values []float64 `json:"values"`
}

// LevelCountryCount is a posting count for one (experience level, country) cell.
type LevelCountryCount struct {
	ExperienceLevel string `json:"experienceLevel"`
	Country         string `json:"country"`
	Count           int    `json:"count"`
}

// LevelCountryMean is a mean salary for one (experience level, country) cell.
type LevelCountryMean struct {
	ExperienceLevel string  `json:"experienceLevel"`
	Country         string  `json:"country"`
	MeanSalary      float64 `json:"meanSalary"`
	Count           int     `json:"count"`
}

// YearLevelMean is one point of the yearly salary trend.
type YearLevelMean struct {
	Year            int     `json:"year"`
	ExperienceLevel string  `json:"experienceLevel"`
	MeanSalary      float64 `json:"meanSalary"`
	Count           int     `json:"count"`
}

// MonthCount is a posting count for one calendar month, irrespective of year.
type MonthCount struct {
	Month string `json:"month"` // "Jan" … "Dec"
	Count int    `json:"count"`
}

// SkillCount is an exploded-skill frequency.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// SkillSalary is a mean salary over all postings requiring a skill.
type SkillSalary struct {
	Skill      string  `json:"skill"`
	MeanSalary float64 `json:"meanSalary"`
	Count      int     `json:"count"`
}

// CompanySalary is a company's mean posted salary.
type CompanySalary struct {
	Company    string  `json:"company"`
	MeanSalary float64 `json:"meanSalary"`
	Count      int     `json:"count"`
}

// Share is one slice of a proportional distribution. Shares across a
// result sum to 1.0.
type Share struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// CountrySalary is a country's mean salary for the choropleth view.
type CountrySalary struct {
	Country    string  `json:"country"`
	MeanSalary float64 `json:"meanSalary"`
	Postings   int     `json:"postings"`
}

// Pair is an (x, y) point for scatter/correlation use.
type Pair struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TrendLine is a least-squares linear fit y = Slope*x + Intercept.
type TrendLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// Scatter is a pair set with an optional Pearson correlation coefficient.
// R is nil when undefined (fewer than two pairs, or zero variance).
type Scatter struct {
	Pairs []Pair   `json:"pairs"`
	R     *float64 `json:"r,omitempty"`
}

// Regression is a pair set with an optional OLS fit.
// Fit is nil when the fit is undefined (fewer than two pairs, or zero
// x-variance).
type Regression struct {
	Pairs []Pair     `json:"pairs"`
	Fit   *TrendLine `json:"fit,omitempty"`
}

// SummaryStats is the scalar salary report. StdDev uses the sample
// (n−1) denominator; a single-row table yields StdDev 0.
type SummaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Histogram is an equal-width binned count. Edges has len(Counts)+1
// entries; bin i covers [Edges[i], Edges[i+1]).
type Histogram struct {
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

// TitleCount is a job-title posting frequency.
type TitleCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// TitleSalaryRange is a per-title salary envelope.
type TitleSalaryRange struct {
	Title string  `json:"title"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// IndustryMean is an industry's mean posted salary.
type IndustryMean struct {
	Industry   string  `json:"industry"`
	MeanSalary float64 `json:"meanSalary"`
	Count      int     `json:"count"`
}
