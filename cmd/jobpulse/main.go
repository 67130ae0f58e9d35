package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jobpulse-org/jobpulse/analytics"
	"github.com/jobpulse-org/jobpulse/config"
	"github.com/jobpulse-org/jobpulse/dashboard"
	"github.com/jobpulse-org/jobpulse/dataset"
)

// ============================================================================
// JOBPULSE CLI — AI job-market analytics from a postings CSV
// ============================================================================

const version = "0.1.0"

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fatalf("Failed to load config: %v", err)
	}

	// ── Flags ─────────────────────────────────────────────────────────────
	filePath := flag.String("file", cfg.DatasetPath, "Path to job postings CSV (required)")
	minSalary := flag.Float64("min-salary", cfg.MinSalary, "Minimum salary threshold (USD)")
	format := flag.String("format", cfg.Format, "Output format: json, pretty, text, csv")
	section := flag.String("section", "", "Snapshot section to emit as CSV (see --help)")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	bins := flag.Int("bins", cfg.HistogramBins, "Salary histogram bin count")
	validate := flag.Bool("validate", false, "Validate the CSV and print load stats, then exit")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `JobPulse — AI job-market analytics from a postings CSV

Usage:
  jobpulse --file jobs.csv --format pretty
  jobpulse --file jobs.csv --min-salary 120000 --format json --out snapshot.json
  jobpulse --file jobs.csv --format csv --section top_skills --out skills.csv
  jobpulse --file jobs.csv --validate

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  JOBPULSE_DATASET         Default CSV path
  JOBPULSE_MIN_SALARY      Default salary threshold
  JOBPULSE_FORMAT          Default output format
  JOBPULSE_LOG_LEVEL       Log level: debug, info, warn, error

Formats:
  json      Full snapshot as JSON (default: pretty)
  pretty    Pretty-printed JSON
  text      Human-readable summary only
  csv       One section as CSV (requires --section)

Sections (for --format csv):
  salary_histogram, top_skills, skill_salaries, top_titles, title_ranges,
  top_companies, top_industries, employment_types, country_map,
  monthly_trend, yearly_trend, summary
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("jobpulse %s\n", version)
		os.Exit(0)
	}

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		flag.Usage()
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Load dataset ──────────────────────────────────────────────────────
	table, err := dataset.Load(*filePath, dataset.WithLogger(logger))
	if err != nil {
		fatalf("Failed to load dataset: %v", err)
	}

	if *validate {
		fmt.Fprintf(writer, "rows: %d\nloaded: %d\ndropped: %d (salary %d, date %d, short %d)\n",
			table.Stats.Rows, table.Stats.Loaded, table.Stats.Dropped(),
			table.Stats.DroppedSalary, table.Stats.DroppedDate, table.Stats.DroppedShort)
		return
	}

	// ── Build snapshot ────────────────────────────────────────────────────
	view := analytics.NewView(table.Postings)
	filter := analytics.NewFilterState(view)
	if *minSalary > 0 {
		filter.Set(*minSalary)
	}

	snap := dashboard.Build(view, filter,
		dashboard.WithHistogramBins(*bins),
		dashboard.WithTopSkills(cfg.TopSkills),
		dashboard.WithTopCompanies(cfg.TopCompanies),
		dashboard.WithMapCountries(cfg.MapCountries),
		dashboard.WithLogger(logger),
	)

	// ── Render output ─────────────────────────────────────────────────────
	switch *format {
	case "csv":
		if *section == "" {
			fatalf("--format csv requires --section")
		}
		if !writeSectionCSV(writer, snap, *section) {
			fatalf("Unknown or empty section: %s", *section)
		}
	case "text":
		writeText(writer, snap)
	case "pretty", "json":
		writeJSON(writer, snap, *format)
	default:
		fatalf("Unknown format: %s", *format)
	}
}

// ============================================================================
// TEXT OUTPUT
// ============================================================================

func writeText(w *os.File, snap dashboard.Snapshot) {
	lines := []string{
		fmt.Sprintf("Postings: %d of %d (threshold %s USD)",
			snap.FilteredPostings, snap.TotalPostings, fmtNum(snap.Threshold)),
		fmt.Sprintf("Salary: mean %s, median %s, range %s–%s",
			fmtNum(snap.SalarySummary.Mean), fmtNum(snap.SalarySummary.Median),
			fmtNum(snap.SalarySummary.Min), fmtNum(snap.SalarySummary.Max)),
	}
	if snap.TopSkills != nil && len(snap.TopSkills.Series[0].Points) > 0 {
		top := snap.TopSkills.Series[0].Points[0]
		lines = append(lines, fmt.Sprintf("Top skill: %s (%s postings)", top.Label, fmtNum(top.Value)))
	}
	if snap.TopCompanies != nil && len(snap.TopCompanies.Rows) > 0 {
		row := snap.TopCompanies.Rows[0]
		lines = append(lines, fmt.Sprintf("Top paying company: %s (%s USD avg)", row[0], row[1]))
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}

// ============================================================================
// CSV OUTPUT — One snapshot section, Sheets-ready
// ============================================================================

func writeSectionCSV(w *os.File, snap dashboard.Snapshot, section string) bool {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	switch section {
	case "salary_histogram":
		return writeChartCSV(cw, snap.SalaryHistogram)
	case "top_skills":
		return writeChartCSV(cw, snap.TopSkills)
	case "skill_salaries":
		return writeChartCSV(cw, snap.SalaryByTopSkills)
	case "top_titles":
		return writeChartCSV(cw, snap.TopTitles)
	case "title_ranges":
		return writeTableCSV(cw, snap.TitleSalaryRanges)
	case "top_companies":
		return writeTableCSV(cw, snap.TopCompanies)
	case "top_industries":
		return writeChartCSV(cw, snap.TopIndustries)
	case "employment_types":
		return writeChartCSV(cw, snap.EmploymentTypes)
	case "country_map":
		cw.Write([]string{"Country", "Avg Salary (USD)", "Postings"})
		for _, c := range snap.CountrySalaryMap {
			cw.Write([]string{c.Country, fmtNum(c.MeanSalary), fmt.Sprintf("%d", c.Postings)})
		}
		return len(snap.CountrySalaryMap) > 0
	case "monthly_trend":
		return writeChartCSV(cw, snap.MonthlyHiringTrend)
	case "yearly_trend":
		return writeChartCSV(cw, snap.YearlySalaryTrend)
	case "summary":
		cw.Write([]string{"Statistic", "Value"})
		s := snap.SalarySummary
		for _, row := range [][2]string{
			{"count", fmt.Sprintf("%d", s.Count)},
			{"mean", fmtNum(s.Mean)},
			{"std", fmtNum(s.StdDev)},
			{"min", fmtNum(s.Min)},
			{"25%", fmtNum(s.Q1)},
			{"50%", fmtNum(s.Median)},
			{"75%", fmtNum(s.Q3)},
			{"max", fmtNum(s.Max)},
		} {
			cw.Write(row[:])
		}
		return true
	}
	return false
}

func writeChartCSV(cw *csv.Writer, chart *dashboard.Chart) bool {
	if chart == nil || len(chart.Series) == 0 {
		return false
	}

	xLabel := chart.XAxis
	yLabel := chart.YAxis
	if xLabel == "" {
		xLabel = "Label"
	}
	if yLabel == "" {
		yLabel = "Value"
	}

	// Single series → two columns
	if len(chart.Series) == 1 {
		cw.Write([]string{xLabel, yLabel})
		for _, p := range chart.Series[0].Points {
			cw.Write([]string{p.Label, fmtNum(p.Value)})
		}
		return true
	}

	// Multi-series → label + one column per series
	headers := []string{xLabel}
	for _, s := range chart.Series {
		headers = append(headers, s.Name)
	}
	cw.Write(headers)

	for i, p := range chart.Series[0].Points {
		row := []string{p.Label}
		for _, s := range chart.Series {
			if i < len(s.Points) {
				row = append(row, fmtNum(s.Points[i].Value))
			} else {
				row = append(row, "")
			}
		}
		cw.Write(row)
	}
	return true
}

func writeTableCSV(cw *csv.Writer, table *dashboard.Table) bool {
	if table == nil || len(table.Columns) == 0 {
		return false
	}

	headers := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		headers[i] = c.Label
	}
	cw.Write(headers)
	for _, row := range table.Rows {
		cw.Write(row)
	}
	return true
}

// ============================================================================
// JSON OUTPUT
// ============================================================================

func writeJSON(w *os.File, v interface{}, format string) {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

// ============================================================================
// HELPERS
// ============================================================================

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func fmtNum(v float64) string {
	// Whole numbers → no decimals, fractional → 2 decimals
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
