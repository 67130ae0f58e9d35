package dashboard

// ============================================================================
// RENDER TYPES — What the presentation layer consumes
// ============================================================================
// Flat chart/table descriptions. The shapes mirror what charting front ends
// expect, so consumers render them without translation.
// ============================================================================

// Chart describes one renderable chart.
type Chart struct {
	Kind   string   `json:"kind"` // "bar", "line", "pie", "histogram", "stacked_bar", "grouped_bar"
	Title  string   `json:"title"`
	XAxis  string   `json:"xAxis,omitempty"`
	YAxis  string   `json:"yAxis,omitempty"`
	Series []Series `json:"series"`
}

// Series is one data series in a chart.
type Series struct {
	Name   string  `json:"name,omitempty"`
	Points []Point `json:"points"`
}

// Point is a single labelled value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Table describes one renderable table.
type Table struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Align string `json:"align"` // "left", "right"
}
