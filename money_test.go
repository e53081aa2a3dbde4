package divtrack

import "testing"

func TestMoneyString(t *testing.T) {
	cases := []struct {
		value    float64
		currency string
		want     string
	}{
		{0.25, "USD", "$0.25"},
		{1234.5, "USD", "$1,234.50"},
		{0.250125, "USD", "$0.250125"},
		{361, "KRW", "₩361"},
	}
	for _, c := range cases {
		if got := M(d(c.value), c.currency).String(); got != c.want {
			t.Errorf("M(%v, %s).String() = %q want %q", c.value, c.currency, got, c.want)
		}
	}
}
