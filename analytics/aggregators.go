package analytics

import (
	"sort"

	"github.com/jobpulse-org/jobpulse/dataset"
)

// ============================================================================
// AGGREGATORS — Grouped means, counts, and rankings
// ============================================================================
// All operations are pure: they read through a View and return flat result
// slices. Empty views degrade to empty results, never errors — the salary
// slider can legitimately filter out every row.
// ============================================================================

// groupRows buckets visible row positions by a key function. Keys come back
// in first-seen order; rows with an empty key are excluded.
func groupRows(v View, key func(*dataset.Posting) string) ([]string, map[string][]int) {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < v.Len(); i++ {
		k := key(v.posting(i))
		if k == "" {
			continue
		}
		if _, exists := grouped[k]; !exists {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], i)
	}
	return order, grouped
}

// meanSalary averages salary over a row bucket.
func meanSalary(v View, rows []int) float64 {
	if len(rows) == 0 {
		return 0
	}
	var total float64
	for _, i := range rows {
		total += v.posting(i).SalaryUSD
	}
	return total / float64(len(rows))
}

// ============================================================================
// HEATMAP — Mean salary by (job title × company location)
// ============================================================================

// SalaryHeatmap computes the full mean-salary grid over every observed
// (title, location) pair. Titles and locations are sorted ascending;
// combinations with no postings are nil, not zero.
func SalaryHeatmap(v View) Heatmap {
	titles, byTitle := groupRows(v, func(p *dataset.Posting) string { return p.JobTitle })
	locations, _ := groupRows(v, func(p *dataset.Posting) string { return p.CompanyLocation })
	sort.Strings(titles)
	sort.Strings(locations)

	locIndex := make(map[string]int, len(locations))
	for j, loc := range locations {
		locIndex[loc] = j
	}

	hm := Heatmap{Titles: titles, Locations: locations}
	if len(titles) == 0 || len(locations) == 0 {
		return hm
	}

	hm.Cells = make([][]*float64, len(titles))
	for i, title := range titles {
		hm.Cells[i] = make([]*float64, len(locations))

		sums := make([]float64, len(locations))
		counts := make([]int, len(locations))
		for _, row := range byTitle[title] {
			p := v.posting(row)
			if p.CompanyLocation == "" {
				continue
			}
			j := locIndex[p.CompanyLocation]
			sums[j] += p.SalaryUSD
			counts[j]++
		}
		for j := range locations {
			if counts[j] > 0 {
				mean := sums[j] / float64(counts[j])
				hm.Cells[i][j] = &mean
			}
		}
	}
	return hm
}

// ============================================================================
// EXPERIENCE × COUNTRY
// ============================================================================

// ExperienceByCountry counts postings per (experience level, country),
// sorted by country then level.
func ExperienceByCountry(v View) []LevelCountryCount {
	countries, byCountry := groupRows(v, func(p *dataset.Posting) string { return p.CompanyLocation })
	sort.Strings(countries)

	var out []LevelCountryCount
	for _, country := range countries {
		sub := subView(v, byCountry[country])
		levels, byLevel := groupRows(sub, func(p *dataset.Posting) string { return p.ExperienceLevel })
		sort.Strings(levels)
		for _, level := range levels {
			out = append(out, LevelCountryCount{
				ExperienceLevel: level,
				Country:         country,
				Count:           len(byLevel[level]),
			})
		}
	}
	return out
}

// AvgSalaryByExperienceAndCountry computes mean salary per
// (experience level, country), sorted by country then level.
func AvgSalaryByExperienceAndCountry(v View) []LevelCountryMean {
	countries, byCountry := groupRows(v, func(p *dataset.Posting) string { return p.CompanyLocation })
	sort.Strings(countries)

	var out []LevelCountryMean
	for _, country := range countries {
		sub := subView(v, byCountry[country])
		levels, byLevel := groupRows(sub, func(p *dataset.Posting) string { return p.ExperienceLevel })
		sort.Strings(levels)
		for _, level := range levels {
			out = append(out, LevelCountryMean{
				ExperienceLevel: level,
				Country:         country,
				MeanSalary:      meanSalary(sub, byLevel[level]),
				Count:           len(byLevel[level]),
			})
		}
	}
	return out
}

// subView re-wraps a row bucket as a View over the same backing table.
func subView(v View, rows []int) View {
	indices := make([]int, len(rows))
	for i, r := range rows {
		if v.indices != nil {
			indices[i] = v.indices[r]
		} else {
			indices[i] = r
		}
	}
	return View{table: v.table, indices: indices}
}

// ============================================================================
// RANKINGS
// ============================================================================

// TopCompaniesBySalary ranks companies by mean posted salary, descending,
// ties broken by company name. Companies with a single posting are included.
func TopCompaniesBySalary(v View, n int) []CompanySalary {
	companies, byCompany := groupRows(v, func(p *dataset.Posting) string { return p.CompanyName })

	out := make([]CompanySalary, 0, len(companies))
	for _, c := range companies {
		out = append(out, CompanySalary{
			Company:    c,
			MeanSalary: meanSalary(v, byCompany[c]),
			Count:      len(byCompany[c]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanSalary != out[j].MeanSalary {
			return out[i].MeanSalary > out[j].MeanSalary
		}
		return out[i].Company < out[j].Company
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TopIndustriesBySalary ranks industries by mean posted salary, descending.
func TopIndustriesBySalary(v View, n int) []IndustryMean {
	industries, byIndustry := groupRows(v, func(p *dataset.Posting) string { return p.Industry })

	out := make([]IndustryMean, 0, len(industries))
	for _, ind := range industries {
		out = append(out, IndustryMean{
			Industry:   ind,
			MeanSalary: meanSalary(v, byIndustry[ind]),
			Count:      len(byIndustry[ind]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanSalary != out[j].MeanSalary {
			return out[i].MeanSalary > out[j].MeanSalary
		}
		return out[i].Industry < out[j].Industry
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TitleFrequency ranks job titles by posting count, descending, ties
// broken by title.
func TitleFrequency(v View, n int) []TitleCount {
	titles, byTitle := groupRows(v, func(p *dataset.Posting) string { return p.JobTitle })

	out := make([]TitleCount, 0, len(titles))
	for _, t := range titles {
		out = append(out, TitleCount{Title: t, Count: len(byTitle[t])})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Title < out[j].Title
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TitleSalaryRanges computes the salary envelope (min/max/mean) per job
// title, sorted by title.
func TitleSalaryRanges(v View) []TitleSalaryRange {
	titles, byTitle := groupRows(v, func(p *dataset.Posting) string { return p.JobTitle })
	sort.Strings(titles)

	out := make([]TitleSalaryRange, 0, len(titles))
	for _, t := range titles {
		rows := byTitle[t]
		r := TitleSalaryRange{Title: t, Count: len(rows)}
		var total float64
		for k, i := range rows {
			s := v.posting(i).SalaryUSD
			if k == 0 || s < r.Min {
				r.Min = s
			}
			if k == 0 || s > r.Max {
				r.Max = s
			}
			total += s
		}
		r.Mean = total / float64(len(rows))
		out = append(out, r)
	}
	return out
}

// TopValues ranks the distinct values of a dimension by posting count,
// descending, ties broken by value. Used for "top N titles/locations"
// restrictions.
func TopValues(v View, dim Dimension, n int) []string {
	values, byValue := groupRows(v, func(p *dataset.Posting) string { return dimensionValue(p, dim) })

	sort.Slice(values, func(i, j int) bool {
		ci, cj := len(byValue[values[i]]), len(byValue[values[j]])
		if ci != cj {
			return ci > cj
		}
		return values[i] < values[j]
	})
	if n > 0 && len(values) > n {
		values = values[:n]
	}
	return values
}

// ============================================================================
// PROPORTIONS & CHOROPLETH
// ============================================================================

// EmploymentTypeDistribution counts postings per employment type as
// proportions summing to 1.0. An empty view yields an empty result, not a
// division by zero.
func EmploymentTypeDistribution(v View) []Share {
	types, byType := groupRows(v, func(p *dataset.Posting) string { return p.EmploymentType })
	if v.Len() == 0 || len(types) == 0 {
		return nil
	}

	var total int
	for _, t := range types {
		total += len(byType[t])
	}

	out := make([]Share, 0, len(types))
	for _, t := range types {
		c := len(byType[t])
		out = append(out, Share{Key: t, Count: c, Share: float64(c) / float64(total)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// CountrySalaryMap computes mean salary per country, restricted to the
// topN countries by posting count — not by salary. The count-based
// selection decides which countries appear on the map at all.
func CountrySalaryMap(v View, topN int) []CountrySalary {
	countries, byCountry := groupRows(v, func(p *dataset.Posting) string { return p.CompanyLocation })

	sort.Slice(countries, func(i, j int) bool {
		ci, cj := len(byCountry[countries[i]]), len(byCountry[countries[j]])
		if ci != cj {
			return ci > cj
		}
		return countries[i] < countries[j]
	})
	if topN > 0 && len(countries) > topN {
		countries = countries[:topN]
	}

	out := make([]CountrySalary, 0, len(countries))
	for _, c := range countries {
		out = append(out, CountrySalary{
			Country:    c,
			MeanSalary: meanSalary(v, byCountry[c]),
			Postings:   len(byCountry[c]),
		})
	}
	return out
}

// ============================================================================
// DISTRIBUTIONS
// ============================================================================

// SalaryDistribution computes per-group salary spreads (five-number summary
// plus raw values) grouped by the given dimension. Groups are sorted by key.
func SalaryDistribution(v View, dim Dimension) []Distribution {
	keys, byKey := groupRows(v, func(p *dataset.Posting) string { return dimensionValue(p, dim) })
	sort.Strings(keys)

	out := make([]Distribution, 0, len(keys))
	for _, k := range keys {
		values := make([]float64, 0, len(byKey[k]))
		for _, i := range byKey[k] {
			values = append(values, v.posting(i).SalaryUSD)
		}
		sort.Float64s(values)
		fn, _ := fiveNumberSorted(values)
		out = append(out, Distribution{Group: k, FiveNumber: fn, Values: values})
	}
	return out
}

// CompanySizeSalary is the salary spread grouped by company size.
func CompanySizeSalary(v View) []Distribution {
	return SalaryDistribution(v, DimCompanySize)
}
