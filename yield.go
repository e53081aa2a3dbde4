package divtrack

import (
	"divtrack/date"

	"github.com/shopspring/decimal"
)

// Annotate computes the trailing 12-month yield of every confirmed payment in
// the sequence and returns a new, annotated sequence of the same length.
//
// For an event with a confirmed payment and a usable reference price, the
// yield is the sum of all confirmed payments in the trailing 365 days (the
// event's own date included) divided by the reference price. The 365-day
// window already approximates annualization, so the ratio is not scaled
// further. Events without a usable price keep no yield at all: absence is
// distinct from a computed zero.
func Annotate(seq Sequence) Sequence {
	out := make(Sequence, len(seq))
	copy(out, seq)

	for i := range out {
		// Recomputed from scratch on every pass, so a stale value never survives.
		out[i].Yield = decimal.Decimal{}

		if !out[i].Confirmed() {
			continue
		}
		price, ok := out[i].RefPrice()
		if !ok {
			continue
		}

		window := date.TrailingYear(out[i].Date)
		sum := decimal.Decimal{}
		for j := i; j >= 0; j-- {
			if out[j].Date.Before(window.From) {
				break // sorted ascending, nothing older can be in the window
			}
			if out[j].Confirmed() {
				sum = sum.Add(out[j].Payment())
			}
		}
		out[i].Yield = sum.Div(price)
	}
	return out
}
