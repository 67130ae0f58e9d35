package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Format != "pretty" {
		t.Errorf("Format = %q, want pretty", cfg.Format)
	}
	if cfg.HistogramBins != 20 || cfg.TopCompanies != 5 || cfg.MapCountries != 30 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("JOBPULSE_DATASET", "/data/ai_jobs.csv")
	t.Setenv("JOBPULSE_MIN_SALARY", "120000")
	t.Setenv("JOBPULSE_HISTOGRAM_BINS", "40")
	t.Setenv("JOBPULSE_TOP_SKILLS", "not-a-number") // falls back

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DatasetPath != "/data/ai_jobs.csv" {
		t.Errorf("DatasetPath = %q", cfg.DatasetPath)
	}
	if cfg.MinSalary != 120000 {
		t.Errorf("MinSalary = %v", cfg.MinSalary)
	}
	if cfg.HistogramBins != 40 {
		t.Errorf("HistogramBins = %d", cfg.HistogramBins)
	}
	if cfg.TopSkills != 15 {
		t.Errorf("TopSkills = %d, want default on bad value", cfg.TopSkills)
	}
}
