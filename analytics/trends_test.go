package analytics

import (
	"testing"
	"time"

	"github.com/jobpulse-org/jobpulse/dataset"
)

func TestYearlySalaryTrend(t *testing.T) {
	rows := []dataset.Posting{
		posting("A", 100000, "Senior", "US"),
		posting("B", 120000, "Senior", "US"),
		posting("C", 80000, "Mid", "US"),
		posting("D", 90000, "Senior", "US"),
	}
	rows[0].PostingDate = date(2024, time.January, 5)
	rows[1].PostingDate = date(2024, time.June, 5)
	rows[2].PostingDate = date(2024, time.March, 5)
	rows[3].PostingDate = date(2025, time.February, 5)

	trend := YearlySalaryTrend(NewView(rows))

	want := []YearLevelMean{
		{Year: 2024, ExperienceLevel: "Mid", MeanSalary: 80000, Count: 1},
		{Year: 2024, ExperienceLevel: "Senior", MeanSalary: 110000, Count: 2},
		{Year: 2025, ExperienceLevel: "Senior", MeanSalary: 90000, Count: 1},
	}
	if len(trend) != len(want) {
		t.Fatalf("got %d points, want %d", len(trend), len(want))
	}
	for i := range want {
		if trend[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, trend[i], want[i])
		}
	}

	// Years non-decreasing, no duplicate (year, level) pairs.
	seen := make(map[[2]string]bool)
	for i, p := range trend {
		if i > 0 && p.Year < trend[i-1].Year {
			t.Error("years out of order")
		}
		k := [2]string{p.ExperienceLevel, time.Date(p.Year, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")}
		if seen[k] {
			t.Errorf("duplicate (year, level) pair: %+v", p)
		}
		seen[k] = true
	}
}

func TestMonthlyHiringTrendJanToDec(t *testing.T) {
	rows := []dataset.Posting{
		posting("A", 1, "Mid", "US"),
		posting("B", 1, "Mid", "US"),
		posting("C", 1, "Mid", "US"),
	}
	rows[0].PostingDate = date(2024, time.January, 1)
	rows[1].PostingDate = date(2025, time.January, 15) // same month, other year
	rows[2].PostingDate = date(2024, time.December, 1)

	trend := MonthlyHiringTrend(NewView(rows))
	if len(trend) != 12 {
		t.Fatalf("got %d months, want 12", len(trend))
	}
	if trend[0].Month != "Jan" || trend[0].Count != 2 {
		t.Errorf("Jan = %+v, want count 2 across years", trend[0])
	}
	if trend[11].Month != "Dec" || trend[11].Count != 1 {
		t.Errorf("Dec = %+v, want count 1", trend[11])
	}
	if trend[5].Count != 0 {
		t.Errorf("Jun = %+v, want zero count", trend[5])
	}

	if got := MonthlyHiringTrend(View{}); got != nil {
		t.Errorf("empty view should yield no series, got %v", got)
	}
}

func TestDeadlineLagExcludesNegative(t *testing.T) {
	rows := []dataset.Posting{
		posting("A", 1, "Mid", "US"),
		posting("B", 1, "Mid", "US"),
	}
	rows[0].PostingDate = date(2024, time.March, 1)
	rows[0].ApplicationDeadline = date(2024, time.March, 31)
	rows[1].PostingDate = date(2024, time.May, 10)
	rows[1].ApplicationDeadline = date(2024, time.May, 1) // violation

	lags := DeadlineLag(NewView(rows))
	if len(lags) != 1 {
		t.Fatalf("got %d lags, want 1 (negative excluded)", len(lags))
	}
	if lags[0] != 30 {
		t.Errorf("lag = %d, want 30", lags[0])
	}
}
