package schema

import (
	"fmt"
	"strings"

	apperrors "github.com/jobpulse-org/jobpulse/errors"
)

// ============================================================================
// VALIDATION — Fail-fast header check
// ============================================================================
// Runs once at load time. Dynamic column lookups mid-aggregate are a bug
// class this package exists to remove: after Validate succeeds, every
// consumer indexes rows through the returned Mapping.
// ============================================================================

// Mapping resolves schema keys to column positions in the CSV header.
type Mapping map[string]int

// Index returns the column position for a schema key, or -1 if absent.
func (m Mapping) Index(key string) int {
	if i, ok := m[key]; ok {
		return i
	}
	return -1
}

// Validate checks a CSV header row against the expected schema.
// Header names are normalized ("Salary USD" matches "salary_usd").
// A missing required column is fatal — the error names every absent column.
func Validate(headers []string) (Mapping, error) {
	mapping := make(Mapping, len(headers))
	for i, h := range headers {
		key := NormalizeHeader(h)
		if _, dup := mapping[key]; dup {
			continue // first occurrence wins
		}
		mapping[key] = i
	}

	var missing []string
	for _, key := range RequiredKeys() {
		if _, ok := mapping[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.Schema(
			fmt.Sprintf("dataset is missing required columns: %s", strings.Join(missing, ", ")), nil)
	}

	return mapping, nil
}

// NormalizeHeader converts "Column Name" → "column_name".
func NormalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}
