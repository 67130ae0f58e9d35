package analytics

import (
	"math"
	"sort"

	"github.com/jobpulse-org/jobpulse/dataset"
)

// ============================================================================
// STATISTICS — Summaries, quantiles, histograms, correlation, OLS
// ============================================================================

// SummaryStatistics reports count, mean, median, sample standard deviation
// (n−1 denominator), and quartiles of salary. An empty view yields the zero
// report; a single-row view yields that salary as mean/median with StdDev 0
// and Q1 = Q3 = the value.
func SummaryStatistics(v View) SummaryStats {
	values := v.salaries()
	if len(values) == 0 {
		return SummaryStats{}
	}
	sort.Float64s(values)

	var total float64
	for _, x := range values {
		total += x
	}
	mean := total / float64(len(values))

	fn, _ := fiveNumberSorted(values)
	return SummaryStats{
		Count:  len(values),
		Mean:   mean,
		Median: fn.Median,
		StdDev: sampleStdDev(values, mean),
		Min:    fn.Min,
		Q1:     fn.Q1,
		Q3:     fn.Q3,
		Max:    fn.Max,
	}
}

// fiveNumberSorted computes the boxplot summary of ascending values.
// Quartiles use linear interpolation between order statistics.
func fiveNumberSorted(sorted []float64) (FiveNumber, bool) {
	if len(sorted) == 0 {
		return FiveNumber{}, false
	}
	return FiveNumber{
		Min:    sorted[0],
		Q1:     quantileSorted(sorted, 0.25),
		Median: quantileSorted(sorted, 0.5),
		Q3:     quantileSorted(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}, true
}

// quantileSorted interpolates the q-quantile of ascending values.
func quantileSorted(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// sampleStdDev computes the n−1 standard deviation of values around mean.
// Fewer than two values yields 0.
func sampleStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var ss float64
	for _, x := range values {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// ============================================================================
// HISTOGRAM
// ============================================================================

// DefaultHistogramBins matches the original dashboard's salary histogram.
const DefaultHistogramBins = 20

// SalaryHistogram bins the visible salaries into equal-width buckets.
func SalaryHistogram(v View, bins int) Histogram {
	return BinValues(v.salaries(), bins)
}

// BinValues bins values into equal-width buckets. An empty input yields
// the zero histogram. When every value is identical the result is a
// single bin holding all rows.
func BinValues(values []float64, bins int) Histogram {
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	if len(values) == 0 {
		return Histogram{}
	}

	min, max := values[0], values[0]
	for _, x := range values[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	if min == max {
		return Histogram{Edges: []float64{min, min + 1}, Counts: []int{len(values)}}
	}

	width := (max - min) / float64(bins)
	counts := make([]int, bins)
	for _, x := range values {
		i := int((x - min) / width)
		if i >= bins { // x == max lands in the last bin
			i = bins - 1
		}
		counts[i]++
	}

	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	return Histogram{Edges: edges, Counts: counts}
}

// ============================================================================
// SCATTER & REGRESSION
// ============================================================================

// DescriptionLengthVsSalary collects (description length, salary) pairs
// for correlation/scatter use, excluding rows with a missing length.
// R is the Pearson coefficient, nil when undefined.
func DescriptionLengthVsSalary(v View) Scatter {
	pairs := collectPairs(v, func(p *dataset.Posting) float64 { return p.DescriptionLength })
	s := Scatter{Pairs: pairs}
	if r, ok := pearson(pairs); ok {
		s.R = &r
	}
	return s
}

// ExperienceVsSalaryTrend collects (years of experience, salary) pairs plus
// an ordinary-least-squares trendline over the non-null pairs. Fit is nil
// when the line is undefined.
func ExperienceVsSalaryTrend(v View) Regression {
	pairs := collectPairs(v, func(p *dataset.Posting) float64 { return p.YearsExperience })
	reg := Regression{Pairs: pairs}
	if fit, ok := olsFit(pairs); ok {
		reg.Fit = &fit
	}
	return reg
}

// collectPairs gathers (x, salary) pairs through the view, skipping NaN x.
func collectPairs(v View, x func(*dataset.Posting) float64) []Pair {
	var pairs []Pair
	for i := 0; i < v.Len(); i++ {
		p := v.posting(i)
		xv := x(p)
		if math.IsNaN(xv) {
			continue
		}
		pairs = append(pairs, Pair{X: xv, Y: p.SalaryUSD})
	}
	return pairs
}

// olsFit computes the least-squares line through the pairs.
// Returns false with fewer than two pairs or zero x-variance.
func olsFit(pairs []Pair) (TrendLine, bool) {
	n := float64(len(pairs))
	if len(pairs) < 2 {
		return TrendLine{}, false
	}

	var sumX, sumY float64
	for _, p := range pairs {
		sumX += p.X
		sumY += p.Y
	}
	meanX, meanY := sumX/n, sumY/n

	var sxx, sxy float64
	for _, p := range pairs {
		dx := p.X - meanX
		sxx += dx * dx
		sxy += dx * (p.Y - meanY)
	}
	if sxx == 0 {
		return TrendLine{}, false
	}

	slope := sxy / sxx
	return TrendLine{Slope: slope, Intercept: meanY - slope*meanX}, true
}

// pearson computes the correlation coefficient of the pairs.
// Returns false with fewer than two pairs or zero variance on either axis.
func pearson(pairs []Pair) (float64, bool) {
	n := float64(len(pairs))
	if len(pairs) < 2 {
		return 0, false
	}

	var sumX, sumY float64
	for _, p := range pairs {
		sumX += p.X
		sumY += p.Y
	}
	meanX, meanY := sumX/n, sumY/n

	var sxx, syy, sxy float64
	for _, p := range pairs {
		dx, dy := p.X-meanX, p.Y-meanY
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, false
	}
	return sxy / math.Sqrt(sxx*syy), true
}
