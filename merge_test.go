package divtrack

import (
	"testing"

	"divtrack/date"

	"github.com/shopspring/decimal"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func TestMergeManualNeverOverwritten(t *testing.T) {
	existing := Sequence{
		{Date: date.MustParse("2024-01-15"), AmountFixed: d(0.30)},
	}
	auto := []Record{{Date: "2024-01-15", Amount: d(0.28)}}

	merged, _ := Merge(existing, auto, nil)
	if len(merged) != 1 {
		t.Fatalf("Merge() len = %d want 1", len(merged))
	}
	e := merged[0]
	if !e.AmountFixed.Equal(d(0.30)) {
		t.Errorf("AmountFixed = %v want 0.3: manual value must be retained verbatim", e.AmountFixed)
	}
	if !e.Amount.Equal(d(0.28)) {
		t.Errorf("Amount = %v want 0.28: auto value must coexist for audit", e.Amount)
	}
	if !e.Payment().Equal(d(0.30)) {
		t.Errorf("Payment() = %v want the manual 0.3", e.Payment())
	}
}

func TestMergeIdempotent(t *testing.T) {
	existing := Sequence{
		{Date: date.MustParse("2024-01-15"), Amount: d(0.25)},
		{Date: date.MustParse("2024-04-15"), Forecasted: true},
	}
	auto := []Record{
		{Date: "2024-02-15", Amount: d(0.25)},
		{Date: "2024-02-15", Open: d(10.5), Close: d(10.8)},
	}
	manual := []Record{{Date: "2024-01-15", Amount: d(0.26)}}

	once, _ := Merge(existing, auto, manual)
	twice, _ := Merge(once, auto, manual)

	if len(once) != len(twice) {
		t.Fatalf("Merge() not idempotent: len %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("Merge() not idempotent at %d: %+v != %+v", i, once[i], twice[i])
		}
	}
}

func TestMergeDropsForecasts(t *testing.T) {
	existing := Sequence{
		{Date: date.MustParse("2024-01-15"), Amount: d(0.25)},
		{Date: date.MustParse("2024-04-15"), Forecasted: true},
		{Date: date.MustParse("2024-07-15"), Forecasted: true},
	}
	merged, _ := Merge(existing, nil, nil)
	if len(merged) != 1 {
		t.Fatalf("Merge() len = %d want 1: stale forecasts must be dropped", len(merged))
	}
	if merged[0].Forecasted {
		t.Errorf("Merge() kept a forecasted event")
	}
}

func TestMergeLastWriteWinsPerField(t *testing.T) {
	// Two auto records normalize to the same date (timezone artifact): the
	// later one overwrites per field, it does not erase the earlier fields.
	auto := []Record{
		{Date: "2024-01-15", Amount: d(0.25), Open: d(10.0)},
		{Date: "2024-1-15", Amount: d(0.26)},
	}
	merged, _ := Merge(nil, auto, nil)
	if len(merged) != 1 {
		t.Fatalf("Merge() len = %d want 1", len(merged))
	}
	if !merged[0].Amount.Equal(d(0.26)) {
		t.Errorf("Amount = %v want the later 0.26", merged[0].Amount)
	}
	if !merged[0].Open.Equal(d(10.0)) {
		t.Errorf("Open = %v want 10: earlier field must survive", merged[0].Open)
	}
}

func TestMergeSkipsUnparseableDates(t *testing.T) {
	auto := []Record{
		{Date: "2024-01-15", Amount: d(0.25)},
		{Date: "garbage", Amount: d(0.25)},
		{Date: "2024-13-45", Amount: d(0.25)},
	}
	merged, stats := Merge(nil, auto, nil)
	if len(merged) != 1 {
		t.Errorf("Merge() len = %d want 1", len(merged))
	}
	if stats.Skipped != 2 {
		t.Errorf("Merge() skipped = %d want 2", stats.Skipped)
	}
}

func TestMergeSortsAscending(t *testing.T) {
	auto := []Record{
		{Date: "2024-06-14", Amount: d(0.25)},
		{Date: "2024-03-15", Amount: d(0.25)},
		{Date: "2024-12-13", Amount: d(0.25)},
	}
	merged, _ := Merge(nil, auto, nil)
	for i := 1; i < len(merged); i++ {
		if !merged[i-1].Date.Before(merged[i].Date) {
			t.Errorf("Merge() not sorted at %d: %s then %s", i, merged[i-1].Date, merged[i].Date)
		}
	}
}
