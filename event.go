package divtrack

import (
	"slices"

	"divtrack/date"

	"github.com/shopspring/decimal"
)

// Event is a single dated fact about an instrument: a payment, a price bar, or
// a projected payment date.
//
// Optional decimal fields use the zero value to mean "absent": a real payment
// or price of exactly zero carries no information, so absence and zero collapse
// into one state on purpose.
type Event struct {
	Date date.Date

	// Open and Close are reference prices supplied by the price feed.
	// They are consumed read-only by the yield calculation.
	Open  decimal.Decimal
	Close decimal.Decimal

	// Amount is the auto-collected payment value for that date.
	Amount decimal.Decimal

	// AmountFixed is a manually-entered override. When present it takes
	// precedence over Amount for all downstream calculations, but both are
	// retained so discrepancies stay auditable.
	AmountFixed decimal.Decimal

	// Forecasted marks a projected, not yet confirmed, future payment date.
	// A forecasted event never carries a payment amount.
	Forecasted bool

	// Yield is the trailing 12-month yield ratio, computed by Annotate.
	Yield decimal.Decimal
}

// Confirmed reports whether the event carries a real payment.
func (e Event) Confirmed() bool { return !e.Amount.IsZero() || !e.AmountFixed.IsZero() }

// Payment returns the authoritative payment value: the manual override when
// present, the auto-collected amount otherwise.
func (e Event) Payment() decimal.Decimal {
	if !e.AmountFixed.IsZero() {
		return e.AmountFixed
	}
	return e.Amount
}

// RefPrice returns the reference price for yield computation, preferring the
// open. The second return is false when no usable (strictly positive) price
// exists.
func (e Event) RefPrice() (decimal.Decimal, bool) {
	if e.Open.IsPositive() {
		return e.Open, true
	}
	if e.Close.IsPositive() {
		return e.Close, true
	}
	return decimal.Decimal{}, false
}

// Sequence is the canonical, date-sorted event list for one instrument.
//
// Invariants: strictly increasing dates, at most one event per date, and
// forecasted events never precede the latest confirmed event.
type Sequence []Event

// sort orders the sequence ascending by date.
func (s Sequence) sort() {
	slices.SortFunc(s, func(a, b Event) int { return a.Date.Sub(b.Date) })
}

// Dates returns the set of all dates present in the sequence.
func (s Sequence) Dates() map[date.Date]bool {
	set := make(map[date.Date]bool, len(s))
	for _, e := range s {
		set[e.Date] = true
	}
	return set
}

// Find returns the event at the given date and true, or a zero event and false.
func (s Sequence) Find(on date.Date) (Event, bool) {
	for _, e := range s {
		if e.Date == on {
			return e, true
		}
	}
	return Event{}, false
}

// ConfirmedDates returns the dates of all confirmed payments, in order.
func (s Sequence) ConfirmedDates() []date.Date {
	var dates []date.Date
	for _, e := range s {
		if e.Confirmed() {
			dates = append(dates, e.Date)
		}
	}
	return dates
}

// LastConfirmed returns the date of the latest confirmed payment.
// The second return is false when the sequence holds no confirmed payment.
func (s Sequence) LastConfirmed() (date.Date, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Confirmed() {
			return s[i].Date, true
		}
	}
	return date.Date{}, false
}

// DropForecasts returns a copy of the sequence with all forecasted events
// removed. Forecasts are always regenerated from fresh canonical state, never
// patched incrementally.
func (s Sequence) DropForecasts() Sequence {
	kept := make(Sequence, 0, len(s))
	for _, e := range s {
		if !e.Forecasted {
			kept = append(kept, e)
		}
	}
	return kept
}
