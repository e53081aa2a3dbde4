package divtrack

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money pairs an exact decimal value with its currency for display.
// All engine arithmetic stays on bare decimals; Money exists only at the
// presentation boundary.
type Money struct {
	value decimal.Decimal
	cur   string
}

func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// the Money constructor is the only way to get a never nil currency
	return *money.New(0, m.cur).Currency()
}

// String formats the value with the currency's symbol and grouping rules.
// Dividend per-share values can be fractional below the currency's minor
// unit, so sub-cent digits are appended rather than rounded away.
func (m Money) String() string {
	cur := m.currency()
	shifted := m.value.Shift(int32(cur.Fraction))
	formatted := cur.Formatter().Format(shifted.IntPart())

	// Remainder below the minor unit, e.g. the "125" of $0.250125 per share.
	frac := shifted.Sub(shifted.Truncate(0))
	if frac.IsZero() {
		return formatted
	}
	// frac is strictly below 1, so its string form always starts with "0.".
	return formatted + frac.Abs().String()[2:]
}

func (m Money) IsZero() bool { return m.value.IsZero() }
