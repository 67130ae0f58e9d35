package dashboard

import (
	"go.uber.org/zap"

	"github.com/jobpulse-org/jobpulse/analytics"
	"github.com/jobpulse-org/jobpulse/dataset"
)

// ============================================================================
// SNAPSHOT — Every dashboard view computed against one filtered state
// ============================================================================
// Build runs the whole aggregate suite once against the threshold-filtered
// view and returns a flat, JSON-ready snapshot. Re-render after a slider
// change by calling Build again with the updated filter state.
// ============================================================================

// Snapshot holds every render-ready view of the dataset at one threshold.
type Snapshot struct {
	Threshold        float64                `json:"threshold"`
	TotalPostings    int                    `json:"totalPostings"`
	FilteredPostings int                    `json:"filteredPostings"`
	SalaryBounds     analytics.SalaryBounds `json:"salaryBounds"`

	SalarySummary   analytics.SummaryStats `json:"salarySummary"`
	SalaryHistogram *Chart                 `json:"salaryHistogram,omitempty"`

	SalaryHeatmap    analytics.Heatmap        `json:"salaryHeatmap"`
	SalaryByTitle    []analytics.Distribution `json:"salaryByTitle,omitempty"`
	SalaryByLocation []analytics.Distribution `json:"salaryByLocation,omitempty"`

	ExperienceByCountry          *Chart `json:"experienceByCountry,omitempty"`
	AvgSalaryByExperienceCountry *Chart `json:"avgSalaryByExperienceCountry,omitempty"`
	YearlySalaryTrend            *Chart `json:"yearlySalaryTrend,omitempty"`
	MonthlyHiringTrend           *Chart `json:"monthlyHiringTrend,omitempty"`

	FocusTitleHistogram *Chart `json:"focusTitleHistogram,omitempty"`

	TopSkills         *Chart `json:"topSkills,omitempty"`
	SalaryByTopSkills *Chart `json:"salaryByTopSkills,omitempty"`

	TopTitles         *Chart `json:"topTitles,omitempty"`
	TitleSalaryRanges *Table `json:"titleSalaryRanges,omitempty"`
	TopCompanies      *Table `json:"topCompanies,omitempty"`
	TopIndustries     *Chart `json:"topIndustries,omitempty"`

	EmploymentTypes     *Chart                    `json:"employmentTypes,omitempty"`
	CountrySalaryMap    []analytics.CountrySalary `json:"countrySalaryMap,omitempty"`
	SalaryByCompanySize []analytics.Distribution  `json:"salaryByCompanySize,omitempty"`
	SalaryByEducation   []analytics.Distribution  `json:"salaryByEducation,omitempty"`
	SalaryByRemoteRatio []analytics.Distribution  `json:"salaryByRemoteRatio,omitempty"`

	DescriptionLengthVsSalary analytics.Scatter    `json:"descriptionLengthVsSalary"`
	ExperienceVsSalary        analytics.Regression `json:"experienceVsSalary"`
	DeadlineLag               *Chart               `json:"deadlineLag,omitempty"`
}

// ============================================================================
// OPTIONS
// ============================================================================

type buildConfig struct {
	topTitles      int
	topLocations   int
	topSkills      int
	skillSalaryTop int
	topCompanies   int
	topIndustries  int
	titleLimit     int
	mapCountries   int
	histogramBins  int
	lagBins        int
	focusTitle     string
	focusYear      int
	logger         *zap.Logger
}

func defaultBuildConfig() buildConfig {
	return buildConfig{
		topTitles:      10,
		topLocations:   10,
		topSkills:      15,
		skillSalaryTop: 10,
		topCompanies:   5,
		topIndustries:  15,
		titleLimit:     15,
		mapCountries:   30,
		histogramBins:  analytics.DefaultHistogramBins,
		lagBins:        30,
		focusTitle:     "Data Scientist",
		focusYear:      2024,
		logger:         zap.NewNop(),
	}
}

// Option customizes a Build call.
type Option func(*buildConfig)

// WithTopTitles bounds the heatmap and box plots to the n most frequent titles.
func WithTopTitles(n int) Option {
	return func(c *buildConfig) { c.topTitles = n }
}

// WithTopLocations bounds the heatmap and box plots to the n most frequent
// company locations.
func WithTopLocations(n int) Option {
	return func(c *buildConfig) { c.topLocations = n }
}

// WithTopSkills sets the size of the skill-frequency chart.
func WithTopSkills(n int) Option {
	return func(c *buildConfig) { c.topSkills = n }
}

// WithTopCompanies sets the size of the company salary leaderboard.
func WithTopCompanies(n int) Option {
	return func(c *buildConfig) { c.topCompanies = n }
}

// WithMapCountries bounds the choropleth to the n countries with the most
// postings.
func WithMapCountries(n int) Option {
	return func(c *buildConfig) { c.mapCountries = n }
}

// WithHistogramBins sets the salary histogram bin count.
func WithHistogramBins(n int) Option {
	return func(c *buildConfig) { c.histogramBins = n }
}

// WithFocusTitle sets the (title, year) pair for the focus histogram.
func WithFocusTitle(title string, year int) Option {
	return func(c *buildConfig) {
		c.focusTitle = title
		c.focusYear = year
	}
}

// WithLogger attaches a logger for build progress.
func WithLogger(l *zap.Logger) Option {
	return func(c *buildConfig) { c.logger = l }
}

// ============================================================================
// BUILD
// ============================================================================

// Build computes every dashboard view against the filter-applied table.
func Build(table analytics.View, filter analytics.FilterState, opts ...Option) Snapshot {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger

	v := filter.Apply(table)
	log.Info("building dashboard snapshot",
		zap.Float64("threshold", filter.MinSalary),
		zap.Int("total", table.Len()),
		zap.Int("filtered", v.Len()))

	snap := Snapshot{
		Threshold:        filter.MinSalary,
		TotalPostings:    table.Len(),
		FilteredPostings: v.Len(),
		SalaryBounds:     filter.Bounds,
		SalarySummary:    analytics.SummaryStatistics(v),
	}

	snap.SalaryHistogram = histogramChart(
		"Salary Distribution", "Salary (USD)",
		analytics.SalaryHistogram(v, cfg.histogramBins))

	// The heatmap and per-title/location box plots only stay readable over
	// the most frequent titles and locations, so restrict before grouping.
	focus := topTitleLocationView(v, cfg.topTitles, cfg.topLocations)
	snap.SalaryHeatmap = analytics.SalaryHeatmap(focus)
	snap.SalaryByTitle = analytics.SalaryDistribution(focus, analytics.DimJobTitle)
	snap.SalaryByLocation = analytics.SalaryDistribution(focus, analytics.DimCompanyLocation)
	snap.ExperienceByCountry = experienceByCountryChart(focus)
	snap.AvgSalaryByExperienceCountry = avgSalaryByExperienceCountryChart(focus)

	snap.YearlySalaryTrend = yearlyTrendChart(
		"Average Salary by Year and Experience Level",
		analytics.YearlySalaryTrend(v))
	snap.MonthlyHiringTrend = monthlyChart(
		"Postings by Month", analytics.MonthlyHiringTrend(v))

	focusView := v.FilterByTitleYear(cfg.focusTitle, cfg.focusYear)
	snap.FocusTitleHistogram = histogramChart(
		cfg.focusTitle+" Salaries", "Salary (USD)",
		analytics.SalaryHistogram(focusView, cfg.histogramBins))

	topSkills := analytics.TopSkills(v, cfg.topSkills)
	snap.TopSkills = skillCountChart("Most In-Demand Skills", topSkills)
	snap.SalaryByTopSkills = skillSalaryChart(
		"Average Salary by Skill",
		analytics.AvgSalaryForSkills(v, skillNames(topSkills, cfg.skillSalaryTop)))

	snap.TopTitles = titleFrequencyChart(v, cfg.titleLimit)
	snap.TitleSalaryRanges = titleRangesTable(
		"Salary Range by Job Title", analytics.TitleSalaryRanges(focus))
	snap.TopCompanies = companiesTable(
		"Top Paying Companies", analytics.TopCompaniesBySalary(v, cfg.topCompanies))
	snap.TopIndustries = industriesChart(v, cfg.topIndustries)

	snap.EmploymentTypes = pieChart(
		"Employment Type Distribution", analytics.EmploymentTypeDistribution(v))
	snap.CountrySalaryMap = analytics.CountrySalaryMap(v, cfg.mapCountries)
	snap.SalaryByCompanySize = analytics.CompanySizeSalary(v)
	snap.SalaryByEducation = analytics.SalaryDistribution(v, analytics.DimEducation)
	snap.SalaryByRemoteRatio = analytics.SalaryDistribution(v, analytics.DimRemoteRatio)

	snap.DescriptionLengthVsSalary = analytics.DescriptionLengthVsSalary(v)
	snap.ExperienceVsSalary = analytics.ExperienceVsSalaryTrend(v)
	snap.DeadlineLag = deadlineLagChart(v, cfg.lagBins)

	log.Info("dashboard snapshot ready",
		zap.Int("heatmapTitles", len(snap.SalaryHeatmap.Titles)),
		zap.Int("mapCountries", len(snap.CountrySalaryMap)))
	return snap
}

// topTitleLocationView restricts the view to the top titles and locations by
// posting count. Rows outside both sets drop out of the dense grids.
func topTitleLocationView(v analytics.View, titles, locations int) analytics.View {
	topTitles := stringSet(analytics.TopValues(v, analytics.DimJobTitle, titles))
	topLocations := stringSet(analytics.TopValues(v, analytics.DimCompanyLocation, locations))
	return v.Where(func(p *dataset.Posting) bool {
		return topTitles[p.JobTitle] && topLocations[p.CompanyLocation]
	})
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, s := range values {
		set[s] = true
	}
	return set
}

func skillNames(skills []analytics.SkillCount, n int) []string {
	if n > 0 && len(skills) > n {
		skills = skills[:n]
	}
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Skill
	}
	return names
}

func experienceByCountryChart(v analytics.View) *Chart {
	cells := analytics.ExperienceByCountry(v)
	byLevel := make(map[string][]Point)
	var levels []string
	for _, c := range cells {
		if _, seen := byLevel[c.ExperienceLevel]; !seen {
			levels = append(levels, c.ExperienceLevel)
		}
		byLevel[c.ExperienceLevel] = append(byLevel[c.ExperienceLevel], Point{
			Label: c.Country,
			Value: float64(c.Count),
		})
	}
	return levelSeriesChart("stacked_bar",
		"Experience Level Distribution by Country", "Country", "Postings",
		levels, func(level string) []Point { return byLevel[level] })
}

func avgSalaryByExperienceCountryChart(v analytics.View) *Chart {
	cells := analytics.AvgSalaryByExperienceAndCountry(v)
	byLevel := make(map[string][]Point)
	var levels []string
	for _, c := range cells {
		if _, seen := byLevel[c.ExperienceLevel]; !seen {
			levels = append(levels, c.ExperienceLevel)
		}
		byLevel[c.ExperienceLevel] = append(byLevel[c.ExperienceLevel], Point{
			Label: c.Country,
			Value: c.MeanSalary,
		})
	}
	return levelSeriesChart("grouped_bar",
		"Average Salary by Experience Level and Country", "Country", "Avg Salary (USD)",
		levels, func(level string) []Point { return byLevel[level] })
}

func titleFrequencyChart(v analytics.View, n int) *Chart {
	freq := analytics.TitleFrequency(v, n)
	points := make([]Point, len(freq))
	for i, f := range freq {
		points[i] = Point{Label: f.Title, Value: float64(f.Count)}
	}
	return barChart("Most Common Job Titles", "Job Title", "Postings", points)
}

func industriesChart(v analytics.View, n int) *Chart {
	industries := analytics.TopIndustriesBySalary(v, n)
	points := make([]Point, len(industries))
	for i, ind := range industries {
		points[i] = Point{Label: ind.Industry, Value: ind.MeanSalary}
	}
	return barChart("Highest Paying Industries", "Industry", "Avg Salary (USD)", points)
}

func deadlineLagChart(v analytics.View, bins int) *Chart {
	lags := analytics.DeadlineLag(v)
	values := make([]float64, len(lags))
	for i, d := range lags {
		values[i] = float64(d)
	}
	return histogramChart("Days from Posting to Application Deadline", "Days",
		analytics.BinValues(values, bins))
}
