package config

import (
	"os"
	"strconv"
)

// Config carries the environment-driven defaults for the CLI. Flags
// override these; the environment overrides the built-in defaults.
type Config struct {
	DatasetPath string
	MinSalary   float64
	Format      string
	LogLevel    string

	HistogramBins int
	TopSkills     int
	TopCompanies  int
	MapCountries  int
}

func LoadConfig() (*Config, error) {
	config := &Config{
		DatasetPath: getEnvString("JOBPULSE_DATASET", "jobs.csv"),
		MinSalary:   getEnvFloat("JOBPULSE_MIN_SALARY", 0),
		Format:      getEnvString("JOBPULSE_FORMAT", "pretty"),
		LogLevel:    getEnvString("JOBPULSE_LOG_LEVEL", "info"),

		HistogramBins: getEnvInt("JOBPULSE_HISTOGRAM_BINS", 20),
		TopSkills:     getEnvInt("JOBPULSE_TOP_SKILLS", 15),
		TopCompanies:  getEnvInt("JOBPULSE_TOP_COMPANIES", 5),
		MapCountries:  getEnvInt("JOBPULSE_MAP_COUNTRIES", 30),
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
