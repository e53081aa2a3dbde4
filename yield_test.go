package divtrack

import (
	"testing"

	"divtrack/date"
)

func TestAnnotateTrailingYear(t *testing.T) {
	seq := Sequence{
		{Date: date.MustParse("2023-12-15"), Amount: d(0.20), Close: d(10)},
		{Date: date.MustParse("2024-03-15"), Amount: d(0.25), Close: d(10)},
		{Date: date.MustParse("2024-06-14"), Amount: d(0.25), Close: d(10)},
		{Date: date.MustParse("2024-09-13"), Amount: d(0.25), Close: d(10)},
		{Date: date.MustParse("2024-12-13"), Amount: d(0.25), Close: d(10)},
	}
	out := Annotate(seq)

	// 2024-12-13 window starts 2023-12-14: the 2023-12-15 payment is inside.
	got := out[4].Yield
	if want := d(0.12); !got.Equal(want) {
		t.Errorf("Yield = %s want %s", got, want)
	}
	// 2024-03-15 only sees itself and the 2023-12-15 payment.
	if got, want := out[1].Yield, d(0.045); !got.Equal(want) {
		t.Errorf("Yield = %s want %s", got, want)
	}
}

func TestAnnotateExcludesPaymentsOutsideWindow(t *testing.T) {
	seq := Sequence{
		{Date: date.MustParse("2023-06-15"), Amount: d(1.00), Close: d(10)},
		{Date: date.MustParse("2024-12-13"), Amount: d(0.25), Close: d(10)},
	}
	out := Annotate(seq)
	if got, want := out[1].Yield, d(0.025); !got.Equal(want) {
		t.Errorf("Yield = %s want %s: the 18-month-old payment must not count", got, want)
	}
}

func TestAnnotateAbsentWithoutPrice(t *testing.T) {
	seq := Sequence{
		{Date: date.MustParse("2024-12-13"), Amount: d(0.25)},
	}
	out := Annotate(seq)
	if !out[0].Yield.IsZero() {
		t.Errorf("Yield = %s want absent when no reference price exists", out[0].Yield)
	}
}

func TestAnnotateSkipsForecasts(t *testing.T) {
	seq := Sequence{
		{Date: date.MustParse("2024-12-13"), Amount: d(0.25), Close: d(10)},
		{Date: date.MustParse("2025-03-13"), Forecasted: true, Close: d(10)},
	}
	out := Annotate(seq)
	if !out[1].Yield.IsZero() {
		t.Errorf("forecasted event got a yield: %s", out[1].Yield)
	}
	if out[0].Yield.IsZero() {
		t.Errorf("confirmed event lost its yield")
	}
}

func TestAnnotatePrefersOpenAndFixedAmount(t *testing.T) {
	seq := Sequence{
		{Date: date.MustParse("2024-12-13"), Amount: d(0.25), AmountFixed: d(0.30), Open: d(10), Close: d(20)},
	}
	out := Annotate(seq)
	if got, want := out[0].Yield, d(0.03); !got.Equal(want) {
		t.Errorf("Yield = %s want %s: fixed amount over open price", got, want)
	}
}

func TestAnnotateClearsStaleYield(t *testing.T) {
	seq := Sequence{
		{Date: date.MustParse("2024-12-13"), Amount: d(0.25), Yield: d(0.9)},
	}
	out := Annotate(seq)
	if !out[0].Yield.IsZero() {
		t.Errorf("stale yield survived without a price: %s", out[0].Yield)
	}
}
