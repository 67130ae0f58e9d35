package dashboard

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jobpulse-org/jobpulse/analytics"
	"github.com/jobpulse-org/jobpulse/dataset"
)

func fixturePostings() []dataset.Posting {
	mk := func(title string, salary float64, level, country, company string, month time.Month) dataset.Posting {
		posted := time.Date(2024, month, 1, 0, 0, 0, 0, time.UTC)
		return dataset.Posting{
			JobTitle:            title,
			SalaryUSD:           salary,
			ExperienceLevel:     level,
			CompanyLocation:     country,
			CompanyName:         company,
			EmploymentType:      "Full-time",
			CompanySize:         "Medium",
			EducationRequired:   "Master",
			Industry:            "Technology",
			RequiredSkills:      []string{"Python", "SQL"},
			YearsExperience:     5,
			RemoteRatio:         50,
			DescriptionLength:   1500,
			PostingDate:         posted,
			ApplicationDeadline: posted.AddDate(0, 1, 0),
		}
	}
	return []dataset.Posting{
		mk("Data Scientist", 120000, "Senior", "US", "Acme", time.January),
		mk("Data Scientist", 100000, "Mid", "US", "Acme", time.February),
		mk("Data Scientist", 90000, "Mid", "UK", "Globex", time.March),
		mk("ML Engineer", 150000, "Senior", "US", "Initech", time.April),
		mk("ML Engineer", 140000, "Senior", "UK", "Globex", time.May),
		mk("Data Analyst", 70000, "Entry", "DE", "Umbrella", time.June),
	}
}

func TestBuildFullSnapshot(t *testing.T) {
	table := analytics.NewView(fixturePostings())
	filter := analytics.NewFilterState(table)

	snap := Build(table, filter)

	if snap.TotalPostings != 6 || snap.FilteredPostings != 6 {
		t.Errorf("counts = %d/%d, want 6/6", snap.TotalPostings, snap.FilteredPostings)
	}
	if snap.SalaryBounds.Min != 70000 || snap.SalaryBounds.Max != 150000 {
		t.Errorf("bounds = %+v", snap.SalaryBounds)
	}
	if snap.SalarySummary.Count != 6 {
		t.Errorf("summary count = %d, want 6", snap.SalarySummary.Count)
	}
	if snap.SalaryHistogram == nil || snap.SalaryHistogram.Kind != "histogram" {
		t.Error("salary histogram missing")
	}
	if len(snap.SalaryHeatmap.Titles) != 3 {
		t.Errorf("heatmap titles = %v, want all 3", snap.SalaryHeatmap.Titles)
	}
	if snap.TopSkills == nil || len(snap.TopSkills.Series[0].Points) != 2 {
		t.Errorf("top skills chart = %+v", snap.TopSkills)
	}
	if snap.EmploymentTypes == nil || snap.EmploymentTypes.Kind != "pie" {
		t.Error("employment type pie missing")
	}
	if len(snap.CountrySalaryMap) != 3 {
		t.Errorf("map countries = %d, want 3", len(snap.CountrySalaryMap))
	}
	if snap.TopCompanies == nil || len(snap.TopCompanies.Rows) != 4 {
		t.Errorf("companies table = %+v", snap.TopCompanies)
	}
	if snap.MonthlyHiringTrend == nil || len(snap.MonthlyHiringTrend.Series[0].Points) != 12 {
		t.Error("monthly trend should span all 12 months")
	}
	if snap.ExperienceVsSalary.Fit != nil {
		t.Error("constant years of experience should leave the fit undefined")
	}
	if snap.DeadlineLag == nil {
		t.Error("deadline lag histogram missing")
	}
}

func TestBuildAppliesThreshold(t *testing.T) {
	table := analytics.NewView(fixturePostings())
	filter := analytics.NewFilterState(table)
	filter.Set(130000)

	snap := Build(table, filter)

	if snap.FilteredPostings != 2 {
		t.Fatalf("filtered = %d, want 2", snap.FilteredPostings)
	}
	if snap.Threshold != 130000 {
		t.Errorf("threshold = %v", snap.Threshold)
	}
	// Only ML Engineer postings survive the threshold.
	if len(snap.SalaryHeatmap.Titles) != 1 || snap.SalaryHeatmap.Titles[0] != "ML Engineer" {
		t.Errorf("heatmap titles = %v", snap.SalaryHeatmap.Titles)
	}
}

func TestBuildEmptyAfterThreshold(t *testing.T) {
	table := analytics.NewView(fixturePostings())
	filter := analytics.NewFilterState(table)
	filter.Set(1e9)

	snap := Build(table, filter)

	if snap.FilteredPostings != 0 {
		t.Fatalf("filtered = %d, want 0", snap.FilteredPostings)
	}
	if snap.SalaryHistogram != nil || snap.TopSkills != nil || snap.TopCompanies != nil {
		t.Error("empty view should yield no charts or tables")
	}
	if snap.SalarySummary.Count != 0 {
		t.Errorf("summary = %+v, want zero", snap.SalarySummary)
	}

	// The snapshot must stay marshalable even when everything is empty.
	if _, err := json.Marshal(snap); err != nil {
		t.Fatalf("marshal empty snapshot: %v", err)
	}
}

func TestBuildTopTitleRestriction(t *testing.T) {
	table := analytics.NewView(fixturePostings())
	filter := analytics.NewFilterState(table)

	snap := Build(table, filter, WithTopTitles(1), WithTopLocations(1))

	// Data Scientist (3 postings) in the US (3 postings) wins both cuts.
	if len(snap.SalaryHeatmap.Titles) != 1 || snap.SalaryHeatmap.Titles[0] != "Data Scientist" {
		t.Errorf("heatmap titles = %v", snap.SalaryHeatmap.Titles)
	}
	if len(snap.SalaryHeatmap.Locations) != 1 || snap.SalaryHeatmap.Locations[0] != "US" {
		t.Errorf("heatmap locations = %v", snap.SalaryHeatmap.Locations)
	}
}

func TestBuildFocusTitleHistogram(t *testing.T) {
	table := analytics.NewView(fixturePostings())
	filter := analytics.NewFilterState(table)

	snap := Build(table, filter, WithFocusTitle("ML Engineer", 2024))
	if snap.FocusTitleHistogram == nil {
		t.Fatal("focus histogram missing")
	}
	if snap.FocusTitleHistogram.Title != "ML Engineer Salaries" {
		t.Errorf("title = %q", snap.FocusTitleHistogram.Title)
	}

	none := Build(table, filter, WithFocusTitle("ML Engineer", 1999))
	if none.FocusTitleHistogram != nil {
		t.Error("no postings for the focus year should yield no histogram")
	}
}

func TestBuildMarshalsWithoutNaN(t *testing.T) {
	table := analytics.NewView(fixturePostings())
	snap := Build(table, analytics.NewFilterState(table))

	raw, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("round trip: %v", err)
	}
}
