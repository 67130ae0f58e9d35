package analytics

import (
	"math"
	"testing"

	"github.com/jobpulse-org/jobpulse/dataset"
)

func TestSalaryHeatmapWorkedExample(t *testing.T) {
	hm := SalaryHeatmap(heatmapExampleView())

	assertStrings(t, hm.Titles, []string{"Data Scientist", "ML Engineer"}, "titles")
	assertStrings(t, hm.Locations, []string{"UK", "US"}, "locations")

	cell := func(title, loc string) *float64 {
		for i, tt := range hm.Titles {
			for j, ll := range hm.Locations {
				if tt == title && ll == loc {
					return hm.Cells[i][j]
				}
			}
		}
		t.Fatalf("cell (%s, %s) not found", title, loc)
		return nil
	}

	if got := cell("ML Engineer", "US"); got == nil || *got != 125000 {
		t.Errorf("(ML Engineer, US) = %v, want 125000", got)
	}
	if got := cell("Data Scientist", "UK"); got == nil || *got != 90000 {
		t.Errorf("(Data Scientist, UK) = %v, want 90000", got)
	}

	// Missing combinations are null, not zero.
	if got := cell("ML Engineer", "UK"); got != nil {
		t.Errorf("(ML Engineer, UK) = %v, want nil", *got)
	}
	if got := cell("Data Scientist", "US"); got != nil {
		t.Errorf("(Data Scientist, US) = %v, want nil", *got)
	}
}

func TestExperienceByCountry(t *testing.T) {
	counts := ExperienceByCountry(heatmapExampleView())
	want := []LevelCountryCount{
		{ExperienceLevel: "Mid", Country: "UK", Count: 1},
		{ExperienceLevel: "Senior", Country: "US", Count: 2},
	}
	if len(counts) != len(want) {
		t.Fatalf("got %d cells, want %d", len(counts), len(want))
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("cell %d = %+v, want %+v", i, counts[i], want[i])
		}
	}
}

func TestAvgSalaryByExperienceAndCountry(t *testing.T) {
	means := AvgSalaryByExperienceAndCountry(heatmapExampleView())
	if len(means) != 2 {
		t.Fatalf("got %d cells, want 2", len(means))
	}
	if means[1].Country != "US" || means[1].MeanSalary != 125000 {
		t.Errorf("US Senior mean = %+v, want 125000", means[1])
	}
}

func TestTopCompaniesBySalary(t *testing.T) {
	rows := []dataset.Posting{
		posting("A", 100000, "Mid", "US"),
		posting("B", 200000, "Senior", "US"),
		posting("C", 200000, "Senior", "US"),
		posting("D", 50000, "Entry", "US"),
	}
	rows[0].CompanyName = "Middling"
	rows[1].CompanyName = "Zenith"
	rows[2].CompanyName = "Apex"
	rows[3].CompanyName = "Lone" // single posting, still included

	got := TopCompaniesBySalary(NewView(rows), 3)
	if len(got) != 3 {
		t.Fatalf("got %d companies, want 3", len(got))
	}
	// Tie at 200000 broken by name.
	if got[0].Company != "Apex" || got[1].Company != "Zenith" {
		t.Errorf("tie order = %s, %s; want Apex, Zenith", got[0].Company, got[1].Company)
	}
	if got[2].Company != "Middling" {
		t.Errorf("third = %s, want Middling", got[2].Company)
	}
}

func TestCountrySalaryMapRanksByPostingCount(t *testing.T) {
	rows := []dataset.Posting{
		posting("A", 500000, "Senior", "Luxembourg"), // highest salary, fewest postings
		posting("B", 100000, "Mid", "US"),
		posting("C", 110000, "Mid", "US"),
		posting("D", 120000, "Mid", "US"),
		posting("E", 80000, "Mid", "India"),
		posting("F", 90000, "Mid", "India"),
	}

	got := CountrySalaryMap(NewView(rows), 2)
	if len(got) != 2 {
		t.Fatalf("got %d countries, want 2", len(got))
	}
	// Selection is by posting count — Luxembourg's salary must not rescue it.
	if got[0].Country != "US" || got[1].Country != "India" {
		t.Errorf("order = %s, %s; want US, India", got[0].Country, got[1].Country)
	}
	if got[0].MeanSalary != 110000 {
		t.Errorf("US mean = %v, want 110000", got[0].MeanSalary)
	}
}

func TestEmploymentTypeDistributionSharesSumToOne(t *testing.T) {
	rows := []dataset.Posting{
		posting("A", 1, "Mid", "US"),
		posting("B", 1, "Mid", "US"),
		posting("C", 1, "Mid", "US"),
	}
	rows[2].EmploymentType = "Contract"

	shares := EmploymentTypeDistribution(NewView(rows))
	if len(shares) != 2 {
		t.Fatalf("got %d types, want 2", len(shares))
	}
	var total float64
	for _, s := range shares {
		total += s.Share
	}
	if math.Abs(total-1.0) > 1e-12 {
		t.Errorf("shares sum to %v, want 1.0", total)
	}
	if shares[0].Key != "Full-time" || shares[0].Count != 2 {
		t.Errorf("top share = %+v, want Full-time ×2", shares[0])
	}

	if got := EmploymentTypeDistribution(View{}); got != nil {
		t.Errorf("empty view should yield no shares, got %v", got)
	}
}

func TestSalaryDistributionGroups(t *testing.T) {
	rows := []dataset.Posting{
		posting("A", 100, "Mid", "US"),
		posting("B", 200, "Mid", "US"),
		posting("C", 300, "Mid", "US"),
		posting("D", 400, "Mid", "US"),
	}
	rows[0].CompanySize = "Small"
	rows[1].CompanySize = "Small"
	rows[2].CompanySize = "Large"
	rows[3].CompanySize = "Large"

	dists := CompanySizeSalary(NewView(rows))
	if len(dists) != 2 {
		t.Fatalf("got %d groups, want 2", len(dists))
	}
	// Sorted by group key.
	if dists[0].Group != "Large" || dists[1].Group != "Small" {
		t.Errorf("group order = %s, %s", dists[0].Group, dists[1].Group)
	}
	large := dists[0]
	if large.Min != 300 || large.Max != 400 || large.Median != 350 {
		t.Errorf("Large five-number = %+v", large.FiveNumber)
	}
	assertFloats(t, large.Values, []float64{300, 400}, "Large raw values")
}

func TestTitleFrequencyAndRanges(t *testing.T) {
	rows := []dataset.Posting{
		posting("ML Engineer", 100000, "Mid", "US"),
		posting("ML Engineer", 150000, "Senior", "US"),
		posting("Data Scientist", 90000, "Mid", "UK"),
	}
	v := NewView(rows)

	freq := TitleFrequency(v, 15)
	if freq[0].Title != "ML Engineer" || freq[0].Count != 2 {
		t.Errorf("top title = %+v", freq[0])
	}

	ranges := TitleSalaryRanges(v)
	for _, r := range ranges {
		if r.Title == "ML Engineer" {
			if r.Min != 100000 || r.Max != 150000 || r.Mean != 125000 {
				t.Errorf("ML Engineer range = %+v", r)
			}
		}
	}
}

func TestTopValues(t *testing.T) {
	rows := []dataset.Posting{
		posting("A", 1, "Mid", "US"),
		posting("B", 1, "Mid", "US"),
		posting("C", 1, "Mid", "UK"),
	}
	got := TopValues(NewView(rows), DimCompanyLocation, 1)
	assertStrings(t, got, []string{"US"}, "top locations")
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func assertStrings(t *testing.T, got, want []string, msg string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: got %v, want %v", msg, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: got %v, want %v", msg, got, want)
			return
		}
	}
}

func assertFloats(t *testing.T, got, want []float64, msg string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s: got %v, want %v", msg, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: got %v, want %v", msg, got, want)
			return
		}
	}
}
