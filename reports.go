package divtrack

import (
	"fmt"

	"divtrack/date"

	"github.com/shopspring/decimal"
)

// This file builds the report structs consumed by the renderer package. The
// renderer stays a pure formatting layer; all store access happens here.

// HistoryReport is the full event history of one instrument.
type HistoryReport struct {
	Symbol   string
	Currency string
	Events   Sequence
}

// NewHistoryReport loads the canonical sequence of one instrument.
func NewHistoryReport(store *Store, symbol string) (*HistoryReport, error) {
	inst, err := findInstrument(store, symbol)
	if err != nil {
		return nil, err
	}
	seq, _, err := store.Load(inst)
	if err != nil {
		return nil, err
	}
	return &HistoryReport{Symbol: inst.Symbol(), Currency: inst.Currency(), Events: seq}, nil
}

// ProjectionReport is the list of projected payment dates of one instrument.
type ProjectionReport struct {
	Symbol    string
	Frequency date.Period
	Group     string
	Dates     []date.Date
}

// NewProjectionReport loads one instrument and keeps only its forecasts.
func NewProjectionReport(store *Store, symbol string) (*ProjectionReport, error) {
	inst, err := findInstrument(store, symbol)
	if err != nil {
		return nil, err
	}
	seq, _, err := store.Load(inst)
	if err != nil {
		return nil, err
	}
	profile := inst.Profile()
	r := &ProjectionReport{Symbol: inst.Symbol(), Frequency: profile.Period, Group: profile.Group}
	for _, e := range seq {
		if e.Forecasted {
			r.Dates = append(r.Dates, e.Date)
		}
	}
	return r, nil
}

// SummaryRow is the one-line digest of one instrument.
type SummaryRow struct {
	Symbol       string
	Name         string
	Currency     string
	Frequency    date.Period
	Group        string
	LastPayment  date.Date
	LastAmount   decimal.Decimal
	NextForecast date.Date
	Yield        decimal.Decimal
}

// SummaryReport is the digest of the whole data directory.
type SummaryReport struct {
	Rows []SummaryRow
}

// NewSummaryReport builds the digest of every non-upcoming instrument.
func NewSummaryReport(store *Store) (*SummaryReport, error) {
	instruments, err := store.Instruments()
	if err != nil {
		return nil, err
	}

	report := &SummaryReport{}
	for _, inst := range instruments {
		if inst.Upcoming() {
			continue
		}
		seq, _, err := store.Load(inst)
		if err != nil {
			return nil, err
		}

		profile := inst.Profile()
		row := SummaryRow{
			Symbol:    inst.Symbol(),
			Name:      inst.Name(),
			Currency:  inst.Currency(),
			Frequency: profile.Period,
			Group:     profile.Group,
		}
		if last, ok := seq.LastConfirmed(); ok {
			row.LastPayment = last
			if e, ok := seq.Find(last); ok {
				row.LastAmount = e.Payment()
				row.Yield = e.Yield
			}
		}
		for _, e := range seq {
			if e.Forecasted {
				row.NextForecast = e.Date
				break
			}
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}

// findInstrument resolves a symbol against the navigation file.
func findInstrument(store *Store, symbol string) (Instrument, error) {
	instruments, err := store.Instruments()
	if err != nil {
		return Instrument{}, err
	}
	for _, inst := range instruments {
		if inst.Symbol() == symbol {
			return inst, nil
		}
	}
	return Instrument{}, fmt.Errorf("unknown instrument %q", symbol)
}
