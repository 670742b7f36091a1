package model

import "fmt"

const (
	MinYear     = 2025
	DefaultYear = 2025
	MinMonth    = 1
	MaxMonth    = 12
)

// Projection is one row of the financial projections table.
type Projection struct {
	Period   string // "YYYY-MM"
	Revenue  float64
	Expenses float64
}

// Competitor is one row of the market analysis table.
type Competitor struct {
	Name       string
	Strengths  string
	Weaknesses string
}

// Summary holds the totals shown on the dashboard.
type Summary struct {
	Rows      int
	Revenue   float64
	Expenses  float64
	NetProfit float64
}

// FormatPeriod renders a year and month as "YYYY-MM".
func FormatPeriod(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// NewProjection builds a projection row, clamping every input to its
// declared range before formatting the period.
func NewProjection(year, month int, revenue, expenses float64) Projection {
	if month < MinMonth {
		month = MinMonth
	}
	if month > MaxMonth {
		month = MaxMonth
	}
	if year < MinYear {
		year = MinYear
	}
	return Projection{
		Period:   FormatPeriod(year, month),
		Revenue:  ClampNonNegative(revenue),
		Expenses: ClampNonNegative(expenses),
	}
}

// ClampNonNegative returns v, or 0 when v is negative or NaN.
func ClampNonNegative(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	return v
}
