package divtrack

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestJsonObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("symbol", "MSFT")
	w.Optional("name", "")
	w.Optional("upcoming", true)
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"symbol":"MSFT","upcoming":true}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s want %s", got, want)
	}
}

func TestJsonObjectWriterEmpty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{}" {
		t.Errorf("MarshalJSON() = %s want {}", got)
	}
}

func TestJsonObjectWriterOmitsZeroDecimals(t *testing.T) {
	var w jsonObjectWriter
	w.Append("date", "2024-12-13")
	w.Optional("amount", d(0.25))
	w.Optional("yield", decimal.Decimal{})
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"date":"2024-12-13","amount":0.25}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s want %s", got, want)
	}
}
