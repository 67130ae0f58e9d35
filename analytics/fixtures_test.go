package analytics

import (
	"time"

	"github.com/jobpulse-org/jobpulse/dataset"
)

// ── Shared fixtures ───────────────────────────────────────────────────────────

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// posting builds a fully populated row; tests override what they assert on.
func posting(title string, salary float64, level, country string) dataset.Posting {
	return dataset.Posting{
		JobTitle:            title,
		SalaryUSD:           salary,
		ExperienceLevel:     level,
		RemoteRatio:         100,
		CompanyLocation:     country,
		EducationRequired:   "Master",
		RequiredSkills:      []string{"Python"},
		Industry:            "Technology",
		YearsExperience:     5,
		CompanySize:         "Medium",
		DescriptionLength:   1500,
		PostingDate:         date(2024, time.March, 1),
		ApplicationDeadline: date(2024, time.April, 1),
		EmploymentType:      "Full-time",
		CompanyName:         "Acme AI",
	}
}

// heatmapExampleView is the three-row table behind the heatmap assertions.
func heatmapExampleView() View {
	return NewView([]dataset.Posting{
		posting("ML Engineer", 100000, "Senior", "US"),
		posting("ML Engineer", 150000, "Senior", "US"),
		posting("Data Scientist", 90000, "Mid", "UK"),
	})
}
