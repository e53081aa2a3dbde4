package divtrack

import (
	"testing"

	"divtrack/date"
)

func TestEventPayment(t *testing.T) {
	e := Event{Amount: d(0.25)}
	if got := e.Payment(); !got.Equal(d(0.25)) {
		t.Errorf("Payment() = %s want 0.25", got)
	}
	e.AmountFixed = d(0.30)
	if got := e.Payment(); !got.Equal(d(0.30)) {
		t.Errorf("Payment() = %s want the fixed 0.3", got)
	}
}

func TestEventRefPrice(t *testing.T) {
	if _, ok := (Event{}).RefPrice(); ok {
		t.Error("RefPrice() ok on an event without prices")
	}
	if p, ok := (Event{Close: d(10.9)}).RefPrice(); !ok || !p.Equal(d(10.9)) {
		t.Errorf("RefPrice() = %s, %t want close 10.9", p, ok)
	}
	if p, ok := (Event{Open: d(10.5), Close: d(10.9)}).RefPrice(); !ok || !p.Equal(d(10.5)) {
		t.Errorf("RefPrice() = %s, %t want open 10.5", p, ok)
	}
}

func TestSequenceLastConfirmed(t *testing.T) {
	seq := Sequence{
		{Date: date.MustParse("2024-09-13"), Amount: d(0.25)},
		{Date: date.MustParse("2024-12-13"), Amount: d(0.25)},
		{Date: date.MustParse("2025-03-13"), Forecasted: true},
	}
	last, ok := seq.LastConfirmed()
	if !ok || last.String() != "2024-12-13" {
		t.Errorf("LastConfirmed() = %s, %t want 2024-12-13", last, ok)
	}

	if _, ok := (Sequence{{Date: date.MustParse("2025-03-13"), Forecasted: true}}).LastConfirmed(); ok {
		t.Error("LastConfirmed() ok on a forecast-only sequence")
	}
}
