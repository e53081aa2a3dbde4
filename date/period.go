package date

import (
	"fmt"
	"strings"
)

// Period is a payment cadence.
type Period int

const (
	// None means no cadence could be established.
	None Period = iota
	Weekly
	Monthly
	Quarterly
	Annual
)

func (p Period) String() string {
	switch p {
	case None:
		return "none"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Annual:
		return "annual"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Days returns the canonical day count of the period (0 for None).
func (p Period) Days() int {
	switch p {
	case Weekly:
		return 7
	case Monthly:
		return 30
	case Quarterly:
		return 91
	case Annual:
		return 365
	default:
		return 0
	}
}

// Next advances d by one canonical increment of the period.
//
// Weekly moves by exactly 7 days. Monthly, Quarterly and Annual use calendar
// arithmetic so the day of month is preserved whenever the target month has it.
// For None, d is returned unchanged.
func (p Period) Next(d Date) Date {
	switch p {
	case Weekly:
		return d.Add(7)
	case Monthly:
		return d.AddMonths(1)
	case Quarterly:
		return d.AddMonths(3)
	case Annual:
		return d.AddYears(1)
	default:
		return d
	}
}

func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "none", "":
		return None, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "annual", "annually", "year", "yearly":
		return Annual, nil
	default:
		return None, fmt.Errorf("unknown period %s", p)
	}
}
