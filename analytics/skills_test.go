package analytics

import (
	"testing"

	"github.com/jobpulse-org/jobpulse/dataset"
)

func skillView() View {
	rows := []dataset.Posting{
		posting("A", 100000, "Mid", "US"),
		posting("B", 200000, "Senior", "US"),
		posting("C", 150000, "Mid", "UK"),
		posting("D", 120000, "Mid", "UK"),
	}
	rows[0].RequiredSkills = []string{"Python", "SQL", "TensorFlow"}
	rows[1].RequiredSkills = []string{"Python", "Kubernetes"}
	rows[2].RequiredSkills = []string{"Python", "SQL"}
	rows[3].RequiredSkills = nil // no skills — contributes nothing
	return NewView(rows)
}

func TestTopSkillsRanking(t *testing.T) {
	got := TopSkills(skillView(), 15)

	if len(got) != 4 {
		t.Fatalf("got %d skills, want 4", len(got))
	}
	if got[0].Skill != "Python" || got[0].Count != 3 {
		t.Errorf("top skill = %+v, want Python ×3", got[0])
	}
	if got[1].Skill != "SQL" || got[1].Count != 2 {
		t.Errorf("second = %+v, want SQL ×2", got[1])
	}
	// Tie at count 1 broken lexicographically.
	if got[2].Skill != "Kubernetes" || got[3].Skill != "TensorFlow" {
		t.Errorf("tie order = %s, %s; want Kubernetes, TensorFlow", got[2].Skill, got[3].Skill)
	}

	for _, s := range got {
		if s.Skill == "" {
			t.Error("ranking must never include an empty-string skill")
		}
	}
}

func TestTopSkillsLimit(t *testing.T) {
	got := TopSkills(skillView(), 2)
	if len(got) != 2 {
		t.Fatalf("got %d skills, want at most 2", len(got))
	}
	assertStrings(t, []string{got[0].Skill, got[1].Skill}, []string{"Python", "SQL"}, "limited ranking")
}

func TestAvgSalaryBySkill(t *testing.T) {
	got := AvgSalaryBySkill(skillView())

	bySkill := make(map[string]SkillSalary)
	for _, s := range got {
		bySkill[s.Skill] = s
	}
	if s := bySkill["Python"]; s.MeanSalary != 150000 || s.Count != 3 {
		t.Errorf("Python = %+v, want mean 150000 over 3", s)
	}
	if s := bySkill["SQL"]; s.MeanSalary != 125000 {
		t.Errorf("SQL mean = %v, want 125000", s.MeanSalary)
	}
	if s := bySkill["Kubernetes"]; s.MeanSalary != 200000 {
		t.Errorf("Kubernetes mean = %v, want 200000", s.MeanSalary)
	}

	// Sorted by mean descending.
	for i := 1; i < len(got); i++ {
		if got[i].MeanSalary > got[i-1].MeanSalary {
			t.Errorf("not sorted by mean descending at %d: %v after %v", i, got[i], got[i-1])
		}
	}
}

func TestAvgSalaryForSkills(t *testing.T) {
	got := AvgSalaryForSkills(skillView(), []string{"Python", "SQL"})
	if len(got) != 2 {
		t.Fatalf("got %d skills, want 2", len(got))
	}
	if got[0].Skill != "Python" || got[1].Skill != "SQL" {
		t.Errorf("order = %s, %s; want Python, SQL", got[0].Skill, got[1].Skill)
	}
}
