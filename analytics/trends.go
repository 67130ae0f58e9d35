package analytics

import (
	"sort"
	"time"
)

// ============================================================================
// TRENDS — Time-derived series
// ============================================================================
// Years and months come from posting_date, which the loader already
// guarantees parseable — rows with bad dates never reach a View.
// ============================================================================

// YearlySalaryTrend computes mean salary per (posting year, experience
// level), ordered by year ascending then level. No (year, level) pair
// appears twice.
func YearlySalaryTrend(v View) []YearLevelMean {
	type cell struct {
		sum   float64
		count int
	}
	type key struct {
		year  int
		level string
	}

	cells := make(map[key]*cell)
	for i := 0; i < v.Len(); i++ {
		p := v.posting(i)
		if p.ExperienceLevel == "" {
			continue
		}
		k := key{year: p.PostingYear(), level: p.ExperienceLevel}
		c, ok := cells[k]
		if !ok {
			c = &cell{}
			cells[k] = c
		}
		c.sum += p.SalaryUSD
		c.count++
	}

	out := make([]YearLevelMean, 0, len(cells))
	for k, c := range cells {
		out = append(out, YearLevelMean{
			Year:            k.year,
			ExperienceLevel: k.level,
			MeanSalary:      c.sum / float64(c.count),
			Count:           c.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].ExperienceLevel < out[j].ExperienceLevel
	})
	return out
}

// MonthlyHiringTrend counts postings per calendar month irrespective of
// year, ordered January through December. Months with no postings carry a
// zero count; an empty view yields an empty series.
func MonthlyHiringTrend(v View) []MonthCount {
	if v.Len() == 0 {
		return nil
	}

	var counts [12]int
	for i := 0; i < v.Len(); i++ {
		counts[v.posting(i).PostingMonth()-1]++
	}

	out := make([]MonthCount, 12)
	for m := time.January; m <= time.December; m++ {
		out[m-1] = MonthCount{Month: m.String()[:3], Count: counts[m-1]}
	}
	return out
}

// DeadlineLag returns the days between posting and application deadline,
// one entry per posting in row order. Negative lags are data-quality
// violations and are excluded, not clamped.
func DeadlineLag(v View) []int {
	var out []int
	for i := 0; i < v.Len(); i++ {
		lag := v.posting(i).DeadlineLagDays()
		if lag < 0 {
			continue
		}
		out = append(out, lag)
	}
	return out
}
