// Package profile computes informational per-column summaries of a
// transformed table for the success log. Reporting only, never part of the
// data contract.
package profile

import (
	"fmt"

	"milagros/domain/table"

	"github.com/montanaflynn/stats"
)

// ColumnSummary describes one column of the silver table.
type ColumnSummary struct {
	Name       string
	Kind       table.ValueKind
	NonMissing int
	Missing    int

	// Integer columns only
	Min  *float64
	Max  *float64
	Mean *float64

	// Text columns only
	Distinct int
}

// Summarize profiles every column in order.
func Summarize(t *table.Table) []ColumnSummary {
	summaries := make([]ColumnSummary, 0, t.NumCols())
	t.Columns(func(c *table.Column) {
		summaries = append(summaries, summarizeColumn(c))
	})
	return summaries
}

func summarizeColumn(c *table.Column) ColumnSummary {
	s := ColumnSummary{Name: c.Name, Kind: table.KindText}

	var numbers []float64
	distinct := make(map[string]struct{})
	for _, v := range c.Values {
		if v.IsMissing() {
			s.Missing++
			continue
		}
		s.NonMissing++
		if n, ok := v.Int(); ok {
			s.Kind = table.KindInteger
			numbers = append(numbers, float64(n))
		} else if text, ok := v.Text(); ok {
			distinct[text] = struct{}{}
		}
	}
	s.Distinct = len(distinct)

	if len(numbers) > 0 {
		if min, err := stats.Min(numbers); err == nil {
			s.Min = &min
		}
		if max, err := stats.Max(numbers); err == nil {
			s.Max = &max
		}
		if mean, err := stats.Mean(numbers); err == nil {
			s.Mean = &mean
		}
	}
	return s
}

// String renders a one-line log form of the summary.
func (s ColumnSummary) String() string {
	if s.Kind == table.KindInteger && s.Min != nil && s.Max != nil && s.Mean != nil {
		return fmt.Sprintf("%s (integer): n=%d missing=%d min=%.0f max=%.0f mean=%.1f",
			s.Name, s.NonMissing, s.Missing, *s.Min, *s.Max, *s.Mean)
	}
	return fmt.Sprintf("%s (%s): n=%d missing=%d distinct=%d",
		s.Name, s.Kind, s.NonMissing, s.Missing, s.Distinct)
}
