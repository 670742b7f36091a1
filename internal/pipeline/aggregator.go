// Package pipeline derives dashboard and chart data from the record tables.
package pipeline

import "github.com/theirongolddev/bizplan/internal/model"

// Aggregate sums revenue and expenses over all rows currently in the
// financial table. Net profit is always Revenue - Expenses.
func Aggregate(rows []model.Projection) model.Summary {
	var s model.Summary
	for _, r := range rows {
		s.Rows++
		s.Revenue += r.Revenue
		s.Expenses += r.Expenses
	}
	s.NetProfit = s.Revenue - s.Expenses
	return s
}

// Series is the chart input for the financial projections page.
// Points keep insertion order; Labels[i] is the period of point i.
type Series struct {
	Labels   []string
	Revenue  []float64
	Expenses []float64
}

// Len returns the number of points in the series.
func (s Series) Len() int { return len(s.Labels) }

// Peak returns the largest value across both lines.
func (s Series) Peak() float64 {
	var peak float64
	for i := range s.Labels {
		if s.Revenue[i] > peak {
			peak = s.Revenue[i]
		}
		if s.Expenses[i] > peak {
			peak = s.Expenses[i]
		}
	}
	return peak
}

// BuildSeries converts rows into chart series in insertion order.
// Periods are not sorted or deduplicated.
func BuildSeries(rows []model.Projection) Series {
	s := Series{
		Labels:   make([]string, len(rows)),
		Revenue:  make([]float64, len(rows)),
		Expenses: make([]float64, len(rows)),
	}
	for i, r := range rows {
		s.Labels[i] = r.Period
		s.Revenue[i] = r.Revenue
		s.Expenses[i] = r.Expenses
	}
	return s
}
