package analytics

import (
	"sort"
)

// ============================================================================
// SKILLS — Exploded skill table operations
// ============================================================================
// required_skills is a comma-delimited cell; the loader splits it into
// trimmed tokens at parse time. Explosion here produces one (posting, skill)
// row per token. A posting with no skills contributes nothing — it is never
// counted as one blank skill.
// ============================================================================

type skillRow struct {
	skill  string
	salary float64
}

// explodeSkills flattens the view into one row per (posting, skill).
func explodeSkills(v View) []skillRow {
	var rows []skillRow
	for i := 0; i < v.Len(); i++ {
		p := v.posting(i)
		for _, s := range p.RequiredSkills {
			rows = append(rows, skillRow{skill: s, salary: p.SalaryUSD})
		}
	}
	return rows
}

// TopSkills counts occurrences per skill over the exploded table and
// returns the top n, sorted by count descending, ties broken
// lexicographically by skill name. The result never contains an
// empty-string skill.
func TopSkills(v View, n int) []SkillCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, row := range explodeSkills(v) {
		if _, seen := counts[row.skill]; !seen {
			order = append(order, row.skill)
		}
		counts[row.skill]++
	}

	out := make([]SkillCount, 0, len(order))
	for _, s := range order {
		out = append(out, SkillCount{Skill: s, Count: counts[s]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// AvgSalaryBySkill computes mean salary per skill over the exploded table,
// sorted by mean descending, ties broken by skill name.
func AvgSalaryBySkill(v View) []SkillSalary {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, row := range explodeSkills(v) {
		if _, seen := counts[row.skill]; !seen {
			order = append(order, row.skill)
		}
		sums[row.skill] += row.salary
		counts[row.skill]++
	}

	out := make([]SkillSalary, 0, len(order))
	for _, s := range order {
		out = append(out, SkillSalary{
			Skill:      s,
			MeanSalary: sums[s] / float64(counts[s]),
			Count:      counts[s],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanSalary != out[j].MeanSalary {
			return out[i].MeanSalary > out[j].MeanSalary
		}
		return out[i].Skill < out[j].Skill
	})
	return out
}

// AvgSalaryForSkills is AvgSalaryBySkill restricted to a skill allow-list,
// preserving the mean-descending order. Used by the dashboard to chart
// salaries for the top-ranked skills only.
func AvgSalaryForSkills(v View, skills []string) []SkillSalary {
	allowed := make(map[string]bool, len(skills))
	for _, s := range skills {
		allowed[s] = true
	}

	all := AvgSalaryBySkill(v)
	out := make([]SkillSalary, 0, len(skills))
	for _, ss := range all {
		if allowed[ss.Skill] {
			out = append(out, ss)
		}
	}
	return out
}
