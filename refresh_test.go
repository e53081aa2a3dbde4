package divtrack

import (
	"fmt"
	"strings"
	"testing"

	"divtrack/date"
)

// stubFeed serves canned series per symbol and fails on unknown symbols.
type stubFeed struct {
	dividends map[string]*date.History[float64]
	prices    map[string]*date.History[float64]
}

func (f *stubFeed) Dividends(symbol string) (*date.History[float64], error) {
	h, ok := f.dividends[symbol]
	if !ok {
		return nil, fmt.Errorf("unknown symbol %q", symbol)
	}
	return h, nil
}

func (f *stubFeed) Prices(symbol string) (*date.History[float64], *date.History[float64], error) {
	h, ok := f.prices[symbol]
	if !ok {
		return nil, nil, fmt.Errorf("unknown symbol %q", symbol)
	}
	return &date.History[float64]{}, h, nil
}

func quarterlyFeed(symbol string) *stubFeed {
	dividends := &date.History[float64]{}
	prices := &date.History[float64]{}
	for _, day := range []string{"2024-03-15", "2024-06-14", "2024-09-13", "2024-12-13"} {
		on := date.MustParse(day)
		dividends.Append(on, 0.25)
		prices.Append(on, 10)
	}
	return &stubFeed{
		dividends: map[string]*date.History[float64]{symbol: dividends},
		prices:    map[string]*date.History[float64]{symbol: prices},
	}
}

func TestRefresh(t *testing.T) {
	auto := []Record{
		{Date: "2024-03-15", Amount: d(0.25), Close: d(10)},
		{Date: "2024-06-14", Amount: d(0.25), Close: d(10)},
		{Date: "2024-09-13", Amount: d(0.25), Close: d(10)},
		{Date: "2024-12-13", Amount: d(0.25), Close: d(10)},
	}
	now := date.MustParse("2024-12-20")
	seq, profile, stats := Refresh(nil, auto, nil, nil, now)

	if profile.Period != date.Quarterly {
		t.Errorf("profile.Period = %s want quarterly", profile.Period)
	}
	if stats.Skipped != 0 {
		t.Errorf("stats.Skipped = %d want 0", stats.Skipped)
	}

	var confirmed, forecasted int
	for _, e := range seq {
		if e.Forecasted {
			forecasted++
			if !e.Date.After(date.MustParse("2024-12-13")) {
				t.Errorf("forecast %s not after the last confirmed payment", e.Date)
			}
		} else {
			confirmed++
			if e.Yield.IsZero() {
				t.Errorf("confirmed event %s has no yield", e.Date)
			}
		}
	}
	if confirmed != 4 {
		t.Errorf("confirmed = %d want 4", confirmed)
	}
	if forecasted == 0 {
		t.Error("no forecasts were generated")
	}

	// A second pass over its own output is a no-op.
	again, _, _ := Refresh(seq, auto, nil, nil, now)
	if len(again) != len(seq) {
		t.Fatalf("second pass changed the length: %d then %d", len(seq), len(again))
	}
	for i := range seq {
		if seq[i].Date != again[i].Date || seq[i].Forecasted != again[i].Forecasted {
			t.Errorf("second pass changed event %d: %+v then %+v", i, seq[i], again[i])
		}
	}
}

func TestUpdateAll(t *testing.T) {
	store := newTestStore(t)
	good, _ := NewInstrument("MSFT", "", "USD")
	bad, _ := NewInstrument("BOGUS", "", "USD")
	if err := store.SaveInstruments([]Instrument{good, bad}); err != nil {
		t.Fatal(err)
	}

	feed := quarterlyFeed("MSFT")
	now := date.MustParse("2024-12-20")

	summary := UpdateAll(store, feed, nil, now, 2)
	if summary.Updated != 1 {
		t.Errorf("Updated = %d want 1", summary.Updated)
	}
	if summary.Failed != 1 {
		t.Errorf("Failed = %d want 1", summary.Failed)
	}
	if summary.Errs == nil || !strings.Contains(summary.Errs.Error(), "BOGUS") {
		t.Errorf("Errs = %v want a BOGUS error", summary.Errs)
	}

	// The classified profile is persisted back to the navigation file.
	instruments, err := store.Instruments()
	if err != nil {
		t.Fatal(err)
	}
	if got := instruments[0].Profile().Period; got != date.Quarterly {
		t.Errorf("persisted profile = %s want quarterly", got)
	}

	// Same feed, same now: the second run rewrites nothing.
	summary = UpdateAll(store, feed, nil, now, 2)
	if summary.Updated != 0 || summary.Unchanged != 1 {
		t.Errorf("second run Updated = %d Unchanged = %d, want 0 and 1", summary.Updated, summary.Unchanged)
	}
}

func TestUpdateAllSkipsUpcoming(t *testing.T) {
	store := newTestStore(t)
	inst, _ := NewInstrument("SOON", "", "USD")
	inst.upcoming = true
	if err := store.SaveInstruments([]Instrument{inst}); err != nil {
		t.Fatal(err)
	}

	summary := UpdateAll(store, &stubFeed{}, nil, date.MustParse("2024-12-20"), 1)
	if summary.Updated+summary.Unchanged+summary.Failed != 0 {
		t.Errorf("upcoming instrument was processed: %+v", summary)
	}
}
