// Package jobpulse provides an analytics pipeline for AI job-market data.
// Aggregate views for any dashboard front end.
//
// Usage:
//
//	import (
//	    "github.com/jobpulse-org/jobpulse/analytics"
//	    "github.com/jobpulse-org/jobpulse/dashboard"
//	    "github.com/jobpulse-org/jobpulse/dataset"
//	)
//
//	table, err := dataset.Load("ai_job_dataset.csv")
//	view := analytics.NewView(table.Postings)
//	filter := analytics.NewFilterState(view)
//	snapshot := dashboard.Build(view, filter)
//
// The pipeline takes an immutable snapshot of job postings and a
// caller-owned FilterState, and returns render-ready output (chart
// configs, tables, and scalar summaries). Every aggregate is a pure
// function of its inputs — the pipeline holds no state between calls
// and never talks to any external service.
//
// Rendering is handled separately by the consumer's presentation layer.
package jobpulse
