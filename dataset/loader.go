package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/jobpulse-org/jobpulse/errors"
	"github.com/jobpulse-org/jobpulse/schema"
)

// ============================================================================
// LOADER — Parses the job postings CSV into []Posting
// ============================================================================
// One read at startup; everything downstream works on the immutable result.
// Schema validation is fail-fast (missing column → error before any row is
// parsed). Row-level failures follow the drop policy: a row with an
// unparseable salary or date is excluded from all aggregates and counted,
// never repaired and never surfaced individually.
// ============================================================================

// Table is the loaded, immutable job postings snapshot.
type Table struct {
	Postings []Posting `json:"postings"`
	Stats    LoadStats `json:"stats"`
}

// LoadStats reports how the load went.
type LoadStats struct {
	Rows          int `json:"rows"`          // data rows seen (excluding header)
	Loaded        int `json:"loaded"`        // rows that became Postings
	DroppedSalary int `json:"droppedSalary"` // missing/non-numeric/negative salary
	DroppedDate   int `json:"droppedDate"`   // unparseable posting or deadline date
	DroppedShort  int `json:"droppedShort"`  // too few fields to index
}

// Dropped returns the total number of excluded rows.
func (s LoadStats) Dropped() int {
	return s.DroppedSalary + s.DroppedDate + s.DroppedShort
}

// Option configures the loader.
type Option func(*loaderConfig)

type loaderConfig struct {
	logger *zap.Logger
}

// WithLogger attaches a logger for load diagnostics. Defaults to a no-op.
func WithLogger(logger *zap.Logger) Option {
	return func(c *loaderConfig) {
		c.logger = logger
	}
}

// Load reads and parses a job postings CSV file.
func Load(path string, opts ...Option) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Internal("failed to read dataset file", err)
	}
	return Parse(data, opts...)
}

// Parse parses CSV bytes into a Table. The header row is validated against
// the full schema before any data row is read.
func Parse(data []byte, opts ...Option) (*Table, error) {
	cfg := &loaderConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1 // row width enforced below, not by the reader

	headers, err := reader.Read()
	if err != nil {
		return nil, apperrors.Schema("failed to read CSV header", err)
	}

	mapping, err := schema.Validate(headers)
	if err != nil {
		return nil, err
	}

	cols := columnIndices(mapping)

	table := &Table{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			table.Stats.Rows++
			table.Stats.DroppedShort++
			continue
		}
		table.Stats.Rows++

		posting, reason := parseRow(row, cols)
		switch reason {
		case dropNone:
			table.Postings = append(table.Postings, posting)
			table.Stats.Loaded++
		case dropSalary:
			table.Stats.DroppedSalary++
		case dropDate:
			table.Stats.DroppedDate++
		case dropShort:
			table.Stats.DroppedShort++
		}
	}

	cfg.logger.Info("dataset loaded",
		zap.Int("rows", table.Stats.Rows),
		zap.Int("loaded", table.Stats.Loaded),
		zap.Int("dropped", table.Stats.Dropped()),
	)

	return table, nil
}

// SalaryBounds returns the observed min and max salary across the table.
// These are the documented slider bounds for the presentation layer.
// An empty table yields (0, 0).
func (t *Table) SalaryBounds() (min, max float64) {
	if len(t.Postings) == 0 {
		return 0, 0
	}
	min, max = t.Postings[0].SalaryUSD, t.Postings[0].SalaryUSD
	for _, p := range t.Postings[1:] {
		if p.SalaryUSD < min {
			min = p.SalaryUSD
		}
		if p.SalaryUSD > max {
			max = p.SalaryUSD
		}
	}
	return min, max
}

// ============================================================================
// ROW PARSING
// ============================================================================

type dropReason int

const (
	dropNone dropReason = iota
	dropSalary
	dropDate
	dropShort
)

// columnIndices resolves every schema key once so the row loop does no
// map lookups.
type indices struct {
	jobTitle    int
	salary      int
	experience  int
	remoteRatio int
	location    int
	education   int
	skills      int
	industry    int
	yearsExp    int
	companySize int
	descLength  int
	postingDate int
	deadline    int
	empType     int
	company     int
	width       int
}

func columnIndices(m schema.Mapping) indices {
	idx := indices{
		jobTitle:    m.Index(schema.ColJobTitle),
		salary:      m.Index(schema.ColSalaryUSD),
		experience:  m.Index(schema.ColExperienceLevel),
		remoteRatio: m.Index(schema.ColRemoteRatio),
		location:    m.Index(schema.ColCompanyLocation),
		education:   m.Index(schema.ColEducationRequired),
		skills:      m.Index(schema.ColRequiredSkills),
		industry:    m.Index(schema.ColIndustry),
		yearsExp:    m.Index(schema.ColYearsExperience),
		companySize: m.Index(schema.ColCompanySize),
		descLength:  m.Index(schema.ColDescriptionLength),
		postingDate: m.Index(schema.ColPostingDate),
		deadline:    m.Index(schema.ColApplicationDeadline),
		empType:     m.Index(schema.ColEmploymentType),
		company:     m.Index(schema.ColCompanyName),
	}
	for _, i := range []int{
		idx.jobTitle, idx.salary, idx.experience, idx.remoteRatio, idx.location,
		idx.education, idx.skills, idx.industry, idx.yearsExp, idx.companySize,
		idx.descLength, idx.postingDate, idx.deadline, idx.empType, idx.company,
	} {
		if i >= idx.width {
			idx.width = i + 1
		}
	}
	return idx
}

func parseRow(row []string, cols indices) (Posting, dropReason) {
	if len(row) < cols.width {
		return Posting{}, dropShort
	}

	cell := func(i int) string {
		return strings.TrimSpace(row[i])
	}

	salary, err := strconv.ParseFloat(cell(cols.salary), 64)
	if err != nil || salary < 0 {
		return Posting{}, dropSalary
	}

	posted, err := parseDate(cell(cols.postingDate))
	if err != nil {
		return Posting{}, dropDate
	}
	deadline, err := parseDate(cell(cols.deadline))
	if err != nil {
		return Posting{}, dropDate
	}

	return Posting{
		JobTitle:            cell(cols.jobTitle),
		SalaryUSD:           salary,
		ExperienceLevel:     cell(cols.experience),
		RemoteRatio:         parseLenientFloat(cell(cols.remoteRatio)),
		CompanyLocation:     cell(cols.location),
		EducationRequired:   cell(cols.education),
		RequiredSkills:      SplitSkills(cell(cols.skills)),
		Industry:            cell(cols.industry),
		YearsExperience:     parseLenientFloat(cell(cols.yearsExp)),
		CompanySize:         cell(cols.companySize),
		DescriptionLength:   parseLenientFloat(cell(cols.descLength)),
		PostingDate:         posted,
		ApplicationDeadline: deadline,
		EmploymentType:      cell(cols.empType),
		CompanyName:         cell(cols.company),
	}, dropNone
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseLenientFloat returns NaN for blank or non-numeric cells.
// Used for secondary measures where a bad cell should not drop the row.
func parseLenientFloat(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
