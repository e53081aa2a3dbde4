package divtrack

import (
	"divtrack/date"

	"github.com/shopspring/decimal"
)

// Record is a raw date-keyed tuple from a source at the ingestion boundary:
// either a payment ({date, amount}) or a price bar ({date, open, close}).
// The date is kept as a string because sources do produce malformed ones.
type Record struct {
	Date   string
	Amount decimal.Decimal
	Open   decimal.Decimal
	Close  decimal.Decimal
}

// MergeStats reports the non-fatal incidents of one merge pass.
type MergeStats struct {
	// Skipped counts source records dropped for an unparseable date.
	Skipped int
}

// Merge combines the existing canonical sequence with auto-collected and
// manually-entered source records into a new canonical sequence.
//
// Rules:
//   - existing forecasted events are dropped unconditionally first; forecasts
//     are regenerated from the merged state by Project, never patched.
//   - records are grouped by calendar date; within one source the
//     later-processed record overwrites fields of the earlier one for the same
//     date (last-write-wins per field, not per record).
//   - auto records only ever write Amount, Open and Close. A manual
//     AmountFixed is retained verbatim and never overwritten by auto data;
//     the auto Amount for the same date is still recorded alongside it.
//   - a record with an unparseable date is dropped and counted, never fatal.
//
// Merge is idempotent: merging the same inputs twice yields the same output.
func Merge(existing Sequence, auto, manual []Record) (Sequence, MergeStats) {
	var stats MergeStats

	byDate := make(map[date.Date]Event)
	var order []date.Date
	upsert := func(on date.Date, apply func(*Event)) {
		e, ok := byDate[on]
		if !ok {
			e = Event{Date: on}
			order = append(order, on)
		}
		apply(&e)
		byDate[on] = e
	}

	for _, e := range existing.DropForecasts() {
		ev := e
		upsert(e.Date, func(dst *Event) { *dst = ev })
	}

	for _, r := range auto {
		on, err := date.Parse(r.Date)
		if err != nil {
			stats.Skipped++
			continue
		}
		rec := r
		upsert(on, func(dst *Event) {
			if !rec.Amount.IsZero() {
				dst.Amount = rec.Amount
			}
			if !rec.Open.IsZero() {
				dst.Open = rec.Open
			}
			if !rec.Close.IsZero() {
				dst.Close = rec.Close
			}
		})
	}

	for _, r := range manual {
		on, err := date.Parse(r.Date)
		if err != nil {
			stats.Skipped++
			continue
		}
		amount := r.Amount
		upsert(on, func(dst *Event) {
			if !amount.IsZero() {
				dst.AmountFixed = amount
			}
		})
	}

	merged := make(Sequence, 0, len(order))
	for _, on := range order {
		merged = append(merged, byDate[on])
	}
	merged.sort()
	return merged, stats
}

// PaymentRecords converts a raw date→value series from the feed boundary into
// payment records.
func PaymentRecords(series *date.History[float64]) []Record {
	var records []Record
	for on, amount := range series.Values() {
		records = append(records, Record{Date: on.String(), Amount: decimal.NewFromFloat(amount)})
	}
	return records
}
