package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-03-15")
	if err != nil {
		t.Fatalf("Parse(2024-03-15) unexpected error: %v", err)
	}
	if d != New(2024, time.March, 15) {
		t.Errorf("Parse(2024-03-15) = %v want 2024-03-15", d)
	}

	// Permissive format.
	d, err = Parse("2024-3-5")
	if err != nil {
		t.Fatalf("Parse(2024-3-5) unexpected error: %v", err)
	}
	if got := d.String(); got != "2024-03-05" {
		t.Errorf("Parse(2024-3-5).String() = %q want %q", got, "2024-03-05")
	}

	if _, err := Parse("not-a-date"); err == nil {
		t.Errorf("Parse(not-a-date) expected an error")
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		start  string
		months int
		want   string
	}{
		{"2024-12-13", 3, "2025-03-13"},
		{"2024-01-15", 1, "2024-02-15"},
		// Jan-31 +1 month normalizes through time.Date, not 30-day blocks.
		{"2024-01-31", 1, "2024-03-02"},
		{"2024-11-30", 3, "2025-03-02"},
	}
	for _, tc := range tests {
		got := MustParse(tc.start).AddMonths(tc.months)
		if got.String() != tc.want {
			t.Errorf("%s.AddMonths(%d) = %s want %s", tc.start, tc.months, got, tc.want)
		}
	}
}

func TestSub(t *testing.T) {
	a := MustParse("2024-06-14")
	b := MustParse("2024-03-15")
	if got := a.Sub(b); got != 91 {
		t.Errorf("%s.Sub(%s) = %d want 91", a, b, got)
	}
	if got := b.Sub(a); got != -91 {
		t.Errorf("%s.Sub(%s) = %d want -91", b, a, got)
	}
}

func TestWeekday(t *testing.T) {
	// 2024-12-13 is a Friday.
	if got := MustParse("2024-12-13").Weekday(); got != time.Friday {
		t.Errorf("Weekday(2024-12-13) = %v want Friday", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := MustParse("2025-03-13")
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(b) != `"2025-03-13"` {
		t.Errorf("MarshalJSON = %s want %q", b, `"2025-03-13"`)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v want %v", back, d)
	}
}
