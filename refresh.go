package divtrack

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"divtrack/date"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// projectionHorizonDays is the forward window projected ahead of "now".
const projectionHorizonDays = 365

// Feed is the black-box retrieval boundary: it returns raw date→value series
// for one instrument. Network, scraping and provider quirks live behind it.
type Feed interface {
	// Dividends returns the auto-collected payment series.
	Dividends(symbol string) (*date.History[float64], error)
	// Prices returns the daily open and close price series.
	Prices(symbol string) (open, close *date.History[float64], err error)
}

// Refresh runs the full per-instrument pipeline on one canonical sequence:
// merge, classify, project, annotate. It is a pure transformation — the input
// sequence is not mutated — so it is deterministic for a fixed now.
func Refresh(seq Sequence, auto, manual []Record, cal *Calendar, now date.Date) (Sequence, Profile, MergeStats) {
	merged, stats := Merge(seq, auto, manual)
	profile := ClassifyRecent(merged)

	if last, ok := merged.LastConfirmed(); ok {
		horizon := now.Add(projectionHorizonDays)
		forecasts := Project(last, profile, cal, horizon, merged.Dates())
		merged = append(merged, forecasts...)
		merged.sort()
	}

	return Annotate(merged), profile, stats
}

// Summary aggregates the outcome of one batch run.
type Summary struct {
	Updated        int   // instruments whose file changed on disk
	Unchanged      int   // instruments processed with byte-identical output
	Failed         int   // instruments that could not be processed
	RecordsSkipped int   // source records dropped for parse failures
	Errs           error // joined per-instrument errors
}

// UpdateAll refreshes every instrument of the store against the feed.
//
// Instruments are independent units of state, so the fan-out is an unordered
// worker pool at instrument granularity; there is no concurrency within one
// instrument's pass. One instrument failing never aborts the others: failures
// are isolated, counted, and joined into Summary.Errs.
func UpdateAll(store *Store, feed Feed, cals Calendars, now date.Date, workers int) Summary {
	var summary Summary

	instruments, err := store.Instruments()
	if err != nil {
		summary.Failed++
		summary.Errs = err
		return summary
	}

	if workers < 1 {
		workers = 1
	}
	var g errgroup.Group
	g.SetLimit(workers)

	var mu sync.Mutex // guards summary and instruments profile writes

	for i := range instruments {
		inst := &instruments[i]
		if inst.Upcoming() {
			continue
		}
		g.Go(func() error {
			seq, profile, skipped, err := refreshInstrument(store, feed, cals, *inst, now)

			mu.Lock()
			defer mu.Unlock()
			summary.RecordsSkipped += skipped
			if err != nil {
				summary.Failed++
				summary.Errs = errors.Join(summary.Errs, fmt.Errorf("%s: %w", inst.Symbol(), err))
				return nil // continue-on-error: the pool keeps draining
			}
			inst.SetProfile(profile)
			written, err := store.Save(*inst, seq)
			if err != nil {
				summary.Failed++
				summary.Errs = errors.Join(summary.Errs, fmt.Errorf("%s: %w", inst.Symbol(), err))
				return nil
			}
			if written {
				summary.Updated++
			} else {
				summary.Unchanged++
			}
			return nil
		})
	}
	g.Wait()

	if err := store.SaveInstruments(instruments); err != nil {
		summary.Errs = errors.Join(summary.Errs, err)
	}
	return summary
}

// refreshInstrument loads, fetches and refreshes a single instrument.
func refreshInstrument(store *Store, feed Feed, cals Calendars, inst Instrument, now date.Date) (Sequence, Profile, int, error) {
	seq, skipped, err := store.Load(inst)
	if err != nil {
		return nil, Profile{}, 0, err
	}

	dividends, err := feed.Dividends(inst.Symbol())
	if err != nil {
		return nil, Profile{}, skipped, fmt.Errorf("cannot fetch dividends: %w", err)
	}
	open, close, err := feed.Prices(inst.Symbol())
	if err != nil {
		return nil, Profile{}, skipped, fmt.Errorf("cannot fetch prices: %w", err)
	}

	auto := PaymentRecords(dividends)
	for on, value := range open.Values() {
		auto = append(auto, Record{Date: on.String(), Open: decimal.NewFromFloat(value)})
	}
	for on, value := range close.Values() {
		auto = append(auto, Record{Date: on.String(), Close: decimal.NewFromFloat(value)})
	}

	if dividends.Len() == 0 {
		log.Printf("no dividends found for instrument %q", inst.Symbol())
	}

	refreshed, profile, stats := Refresh(seq, auto, nil, cals.ForCurrency(inst.Currency()), now)
	return refreshed, profile, skipped + stats.Skipped, nil
}
