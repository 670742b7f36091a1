// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatMoney formats a USD amount with thousands separators and cents.
// e.g., 2500 -> "$2,500.00", -1000 -> "-$1,000.00"
func FormatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "$0.00"
	}
	if v < 0 && math.Round(v*100) != 0 {
		return "-" + printer.Sprintf("$%.2f", -v)
	}
	return printer.Sprintf("$%.2f", math.Abs(v))
}

// FormatAmount formats a number with two decimals and no currency symbol,
// as used in data tables. e.g., 1500 -> "1500.00"
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatPercent formats a percentage value that is already scaled to 0-100.
func FormatPercent(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64) + "%"
}
