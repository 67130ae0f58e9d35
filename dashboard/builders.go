package dashboard

import (
	"fmt"
	"strconv"

	"github.com/jobpulse-org/jobpulse/analytics"
)

// ============================================================================
// BUILDERS — Convert aggregate results into Chart/Table structures
// ============================================================================

func barChart(title, xAxis, yAxis string, points []Point) *Chart {
	if len(points) == 0 {
		return nil
	}
	return &Chart{
		Kind:   "bar",
		Title:  title,
		XAxis:  xAxis,
		YAxis:  yAxis,
		Series: []Series{{Points: points}},
	}
}

func histogramChart(title, xAxis string, h analytics.Histogram) *Chart {
	if len(h.Counts) == 0 {
		return nil
	}
	points := make([]Point, len(h.Counts))
	for i, c := range h.Counts {
		points[i] = Point{
			Label: fmt.Sprintf("%s–%s", fmtNum(h.Edges[i]), fmtNum(h.Edges[i+1])),
			Value: float64(c),
		}
	}
	return &Chart{
		Kind:   "histogram",
		Title:  title,
		XAxis:  xAxis,
		YAxis:  "Count",
		Series: []Series{{Points: points}},
	}
}

// levelSeriesChart builds one series per experience level from
// (level, country) cells. Used for both stacked and grouped bars.
func levelSeriesChart(kind, title, xAxis, yAxis string, levels []string, points func(level string) []Point) *Chart {
	var series []Series
	for _, level := range levels {
		if p := points(level); len(p) > 0 {
			series = append(series, Series{Name: level, Points: p})
		}
	}
	if len(series) == 0 {
		return nil
	}
	return &Chart{Kind: kind, Title: title, XAxis: xAxis, YAxis: yAxis, Series: series}
}

func pieChart(title string, shares []analytics.Share) *Chart {
	if len(shares) == 0 {
		return nil
	}
	points := make([]Point, len(shares))
	for i, s := range shares {
		points[i] = Point{Label: s.Key, Value: s.Share}
	}
	return &Chart{Kind: "pie", Title: title, Series: []Series{{Points: points}}}
}

func skillCountChart(title string, skills []analytics.SkillCount) *Chart {
	points := make([]Point, len(skills))
	for i, s := range skills {
		points[i] = Point{Label: s.Skill, Value: float64(s.Count)}
	}
	return barChart(title, "Skill", "Count", points)
}

func skillSalaryChart(title string, skills []analytics.SkillSalary) *Chart {
	points := make([]Point, len(skills))
	for i, s := range skills {
		points[i] = Point{Label: s.Skill, Value: s.MeanSalary}
	}
	return barChart(title, "Skill", "Avg Salary (USD)", points)
}

func monthlyChart(title string, trend []analytics.MonthCount) *Chart {
	if len(trend) == 0 {
		return nil
	}
	points := make([]Point, len(trend))
	for i, m := range trend {
		points[i] = Point{Label: m.Month, Value: float64(m.Count)}
	}
	return &Chart{
		Kind:   "line",
		Title:  title,
		XAxis:  "Month",
		YAxis:  "Postings",
		Series: []Series{{Points: points}},
	}
}

func yearlyTrendChart(title string, trend []analytics.YearLevelMean) *Chart {
	byLevel := make(map[string][]Point)
	var levels []string
	for _, p := range trend {
		if _, seen := byLevel[p.ExperienceLevel]; !seen {
			levels = append(levels, p.ExperienceLevel)
		}
		byLevel[p.ExperienceLevel] = append(byLevel[p.ExperienceLevel], Point{
			Label: strconv.Itoa(p.Year),
			Value: p.MeanSalary,
		})
	}
	return levelSeriesChart("line", title, "Year", "Avg Salary (USD)", levels,
		func(level string) []Point { return byLevel[level] })
}

func companiesTable(title string, companies []analytics.CompanySalary) *Table {
	if len(companies) == 0 {
		return nil
	}
	t := &Table{
		Title: title,
		Columns: []Column{
			{Key: "company", Label: "Company", Align: "left"},
			{Key: "avg_salary", Label: "Avg Salary (USD)", Align: "right"},
			{Key: "postings", Label: "Postings", Align: "right"},
		},
	}
	for _, c := range companies {
		t.Rows = append(t.Rows, []string{c.Company, fmtNum(c.MeanSalary), strconv.Itoa(c.Count)})
	}
	return t
}

func titleRangesTable(title string, ranges []analytics.TitleSalaryRange) *Table {
	if len(ranges) == 0 {
		return nil
	}
	t := &Table{
		Title: title,
		Columns: []Column{
			{Key: "title", Label: "Job Title", Align: "left"},
			{Key: "min", Label: "Min", Align: "right"},
			{Key: "max", Label: "Max", Align: "right"},
			{Key: "mean", Label: "Mean", Align: "right"},
			{Key: "postings", Label: "Postings", Align: "right"},
		},
	}
	for _, r := range ranges {
		t.Rows = append(t.Rows, []string{
			r.Title, fmtNum(r.Min), fmtNum(r.Max), fmtNum(r.Mean), strconv.Itoa(r.Count),
		})
	}
	return t
}

func summaryTable(title string, s analytics.SummaryStats) *Table {
	t := &Table{
		Title: title,
		Columns: []Column{
			{Key: "statistic", Label: "Statistic", Align: "left"},
			{Key: "value", Label: "Value", Align: "right"},
		},
	}
	t.Rows = [][]string{
		{"count", strconv.Itoa(s.Count)},
		{"mean", fmtNum(s.Mean)},
		{"std", fmtNum(s.StdDev)},
		{"min", fmtNum(s.Min)},
		{"25%", fmtNum(s.Q1)},
		{"50%", fmtNum(s.Median)},
		{"75%", fmtNum(s.Q3)},
		{"max", fmtNum(s.Max)},
	}
	return t
}

// fmtNum renders whole numbers without decimals, fractional with two.
func fmtNum(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
