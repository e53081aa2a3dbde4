package date

import "testing"

func TestPeriodNext(t *testing.T) {
	tests := []struct {
		period Period
		start  string
		want   string
	}{
		{Weekly, "2024-12-13", "2024-12-20"},
		{Monthly, "2024-12-13", "2025-01-13"},
		{Quarterly, "2024-12-13", "2025-03-13"},
		{Annual, "2024-12-13", "2025-12-13"},
		{None, "2024-12-13", "2024-12-13"},
	}
	for _, tc := range tests {
		got := tc.period.Next(MustParse(tc.start))
		if got.String() != tc.want {
			t.Errorf("%s.Next(%s) = %s want %s", tc.period, tc.start, got, tc.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	for _, p := range []Period{None, Weekly, Monthly, Quarterly, Annual} {
		got, err := ParsePeriod(p.String())
		if err != nil {
			t.Fatalf("ParsePeriod(%q) unexpected error: %v", p, err)
		}
		if got != p {
			t.Errorf("ParsePeriod(%q) = %v want %v", p, got, p)
		}
	}
	if _, err := ParsePeriod("fortnightly"); err == nil {
		t.Errorf("ParsePeriod(fortnightly) expected an error")
	}
}
