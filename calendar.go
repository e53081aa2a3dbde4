package divtrack

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"divtrack/date"
)

// Calendar holds the set of non-trading dates for one market.
// A nil Calendar behaves as a calendar with no holidays.
type Calendar struct {
	holidays map[date.Date]bool
}

// NewCalendar returns a calendar with the given holiday dates.
func NewCalendar(holidays ...date.Date) *Calendar {
	c := &Calendar{holidays: make(map[date.Date]bool, len(holidays))}
	for _, d := range holidays {
		c.holidays[d] = true
	}
	return c
}

// IsHoliday reports whether d is listed as a non-trading date.
func (c *Calendar) IsHoliday(d date.Date) bool {
	if c == nil {
		return false
	}
	return c.holidays[d]
}

// IsBusinessDay reports whether d is a weekday and not a holiday.
func (c *Calendar) IsBusinessDay(d date.Date) bool {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !c.IsHoliday(d)
}

// PreviousBusinessDay returns d itself when it is a business day, otherwise
// the nearest business day strictly before it. The adjustment always moves
// backward, never forward.
func (c *Calendar) PreviousBusinessDay(d date.Date) date.Date {
	for !c.IsBusinessDay(d) {
		d = d.Add(-1)
	}
	return d
}

// Calendars is the per-market collection of holiday calendars, keyed by a
// lowercase market code ("us", "kr").
type Calendars map[string]*Calendar

// ForCurrency returns the calendar of the market trading in the given
// currency. Unknown currencies fall back to the US calendar, which may be nil.
func (cs Calendars) ForCurrency(currency string) *Calendar {
	if currency == "KRW" {
		return cs["kr"]
	}
	return cs["us"]
}

// LoadCalendars loads every "<market>_holidays.json" file found under path.
// Each file is a JSON array of {"date": "YYYY-MM-DD"} objects. Calendars are
// loaded once per batch run.
func LoadCalendars(path string) (Calendars, error) {
	calendars := make(Calendars)

	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No holiday data is a valid setup: projection still adjusts for weekends.
			return calendars, nil
		}
		return nil, fmt.Errorf("cannot read holidays directory %q: %w", path, err)
	}

	for _, entry := range entries {
		market, ok := strings.CutSuffix(entry.Name(), "_holidays.json")
		if !ok || entry.IsDir() {
			continue
		}
		cal, err := loadCalendarFile(filepath.Join(path, entry.Name()))
		if err != nil {
			return nil, err
		}
		calendars[market] = cal
	}
	return calendars, nil
}

func loadCalendarFile(filename string) (*Calendar, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read holiday file %q: %w", filename, err)
	}
	var entries []struct {
		Date date.Date `json:"date"`
	}
	if err := json.Unmarshal(content, &entries); err != nil {
		return nil, fmt.Errorf("format error in %q: %w", filename, err)
	}
	cal := NewCalendar()
	for _, e := range entries {
		cal.holidays[e.Date] = true
	}
	return cal, nil
}
