package divtrack

import (
	"strings"
	"time"

	"divtrack/date"
)

// Project extrapolates future payment dates from the last confirmed payment.
//
// A cursor starts at last and advances by the profile's canonical increment.
// Every candidate is adjusted backward to the nearest business day of the
// calendar, so a projected date never falls on a weekend or holiday. A
// candidate whose adjusted date is already taken is silently skipped; the
// cursor keeps its cadence. The cursor stops once it passes the horizon,
// which is a fixed forward window from "now" — not from last — so a stale
// instrument does not generate a backlog of synthetic near-term dates.
//
// A Profile with period None yields an empty list; that is not an error.
// Project is deterministic: same inputs, same output.
func Project(last date.Date, p Profile, cal *Calendar, horizon date.Date, existing map[date.Date]bool) []Event {
	if p.Period == date.None {
		return nil
	}

	taken := make(map[date.Date]bool, len(existing))
	for d := range existing {
		taken[d] = true
	}

	pin, pinned := weekdayHint(p)

	var events []Event
	cursor := last
	for {
		cursor = p.Period.Next(cursor)
		if pinned {
			cursor = snapToWeekday(cursor, pin)
		}
		if cursor.After(horizon) {
			break
		}
		adjusted := cal.PreviousBusinessDay(cursor)
		if !adjusted.After(last) || taken[adjusted] {
			continue
		}
		taken[adjusted] = true
		events = append(events, Event{Date: adjusted, Forecasted: true})
	}
	return events
}

// weekdayHint reads an explicit weekday from a weekly profile's group field.
// The hint is optional: weekly cadences without one track a plain 7-day gap.
func weekdayHint(p Profile) (time.Weekday, bool) {
	if p.Period != date.Weekly || p.Group == "" {
		return 0, false
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := wd.String()
		if strings.EqualFold(p.Group, name) || strings.EqualFold(p.Group, name[:3]) {
			return wd, true
		}
	}
	return 0, false
}

// snapToWeekday moves d to the occurrence of the target weekday nearest to it,
// staying within the same week window (at most 3 days in either direction).
func snapToWeekday(d date.Date, target time.Weekday) date.Date {
	diff := int(target) - int(d.Weekday())
	if diff > 3 {
		diff -= 7
	}
	if diff < -3 {
		diff += 7
	}
	return d.Add(diff)
}
