package divtrack

import (
	"sort"
	"time"

	"divtrack/date"
)

// Profile is the derived payment cadence of an instrument.
type Profile struct {
	// Period is the dominant payment period, or date.None when no cadence
	// could be established.
	Period date.Period

	// Group qualifies the period. For quarterly cadences it is a 4-letter
	// fingerprint of the calendar months the last 4 payments fell in
	// ("MJSD" for March, June, September, December). For weekly cadences it
	// may hold an explicit weekday hint ("Friday") used by the projector.
	Group string
}

// monthInitials maps a month number to its fingerprint initial.
var monthInitials = [13]string{
	"", "J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D",
}

// bandOf maps a gap in days to its canonical period.
// Gaps outside every tolerance band are uninformative, not an error.
func bandOf(days int) date.Period {
	switch {
	case days >= 4 && days <= 10:
		return date.Weekly
	case days >= 25 && days <= 35:
		return date.Monthly
	case days >= 81 && days <= 101:
		return date.Quarterly
	case days >= 335 && days <= 395:
		return date.Annual
	default:
		return date.None
	}
}

// Classify derives the payment cadence from an ordered list of payment dates.
//
// Consecutive gaps are bucketed into tolerance bands and the most frequent
// band wins, ties broken by first-seen order. When no gap falls into any band
// the result is Profile{Period: date.None}: unclassifiable is a valid, silent
// outcome, never a default guess.
func Classify(dates []date.Date) Profile {
	if len(dates) < 2 {
		return Profile{Period: date.None}
	}

	counts := make(map[date.Period]int)
	var seen []date.Period // bands in first-seen order, for deterministic tie-break
	for i := 1; i < len(dates); i++ {
		band := bandOf(dates[i].Sub(dates[i-1]))
		if band == date.None {
			continue
		}
		if counts[band] == 0 {
			seen = append(seen, band)
		}
		counts[band]++
	}
	if len(seen) == 0 {
		return Profile{Period: date.None}
	}

	mode := seen[0]
	for _, band := range seen[1:] {
		if counts[band] > counts[mode] {
			mode = band
		}
	}

	p := Profile{Period: mode}
	if mode == date.Quarterly {
		p.Group = quarterGroup(dates)
	}
	return p
}

// quarterGroup computes the month fingerprint of the last 4 payment dates.
// When two of them share a month the fingerprint is omitted rather than guessed.
func quarterGroup(dates []date.Date) string {
	if len(dates) < 4 {
		return ""
	}
	distinct := make(map[time.Month]bool)
	for _, d := range dates[len(dates)-4:] {
		distinct[d.Month()] = true
	}
	if len(distinct) != 4 {
		return ""
	}
	months := make([]int, 0, 4)
	for m := range distinct {
		months = append(months, int(m))
	}
	sort.Ints(months)
	var group string
	for _, m := range months {
		group += monthInitials[m]
	}
	return group
}

// recentPayouts is the window of confirmed payments the cadence is derived
// from. Older payments only describe what the cadence used to be.
const recentPayouts = 5

// ClassifyRecent derives the cadence of a canonical sequence from its most
// recent confirmed payments.
func ClassifyRecent(seq Sequence) Profile {
	dates := seq.ConfirmedDates()
	if len(dates) > recentPayouts {
		dates = dates[len(dates)-recentPayouts:]
	}
	return Classify(dates)
}
