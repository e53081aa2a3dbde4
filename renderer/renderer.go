// Package renderer turns report structs into markdown. It is a pure
// formatting layer: no store or network access, so every function is a plain
// data to string transformation.
package renderer

import (
	"divtrack"
	"divtrack/date"

	"github.com/shopspring/decimal"
)

// amount formats a payment value in the instrument's currency, or "-" when
// absent.
func amount(value decimal.Decimal, currency string) string {
	if value.IsZero() {
		return "-"
	}
	return divtrack.M(value, currency).String()
}

// percent formats a yield ratio as a percentage, or "-" when absent.
func percent(ratio decimal.Decimal) string {
	if ratio.IsZero() {
		return "-"
	}
	return ratio.Shift(2).StringFixed(2) + "%"
}

// day formats a date, or "-" for the zero date.
func day(d date.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}
