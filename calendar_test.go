package divtrack

import (
	"os"
	"path/filepath"
	"testing"

	"divtrack/date"
)

func TestPreviousBusinessDay(t *testing.T) {
	cal := NewCalendar(date.MustParse("2024-12-25"))
	cases := []struct{ in, want string }{
		{"2024-12-13", "2024-12-13"}, // Friday stays
		{"2024-12-14", "2024-12-13"}, // Saturday back to Friday
		{"2024-12-15", "2024-12-13"}, // Sunday back to Friday
		{"2024-12-25", "2024-12-24"}, // holiday back one
	}
	for _, c := range cases {
		got := cal.PreviousBusinessDay(date.MustParse(c.in))
		if got.String() != c.want {
			t.Errorf("PreviousBusinessDay(%s) = %s want %s", c.in, got, c.want)
		}
	}
}

func TestPreviousBusinessDayChainsBackward(t *testing.T) {
	// Friday holiday: Saturday adjusts back over it to Thursday.
	cal := NewCalendar(date.MustParse("2024-12-13"))
	got := cal.PreviousBusinessDay(date.MustParse("2024-12-14"))
	if got.String() != "2024-12-12" {
		t.Errorf("PreviousBusinessDay(2024-12-14) = %s want 2024-12-12", got)
	}
}

func TestNilCalendar(t *testing.T) {
	var cal *Calendar
	if cal.IsHoliday(date.MustParse("2024-12-25")) {
		t.Error("nil calendar reported a holiday")
	}
	if !cal.IsBusinessDay(date.MustParse("2024-12-13")) {
		t.Error("nil calendar rejected a weekday")
	}
	if cal.IsBusinessDay(date.MustParse("2024-12-14")) {
		t.Error("nil calendar accepted a Saturday")
	}
}

func TestCalendarsForCurrency(t *testing.T) {
	us, kr := NewCalendar(), NewCalendar()
	cals := Calendars{"us": us, "kr": kr}
	if cals.ForCurrency("KRW") != kr {
		t.Error("ForCurrency(KRW) did not pick the kr calendar")
	}
	if cals.ForCurrency("USD") != us {
		t.Error("ForCurrency(USD) did not pick the us calendar")
	}
	if cals.ForCurrency("EUR") != us {
		t.Error("ForCurrency(EUR) did not fall back to the us calendar")
	}
}

func TestLoadCalendars(t *testing.T) {
	dir := t.TempDir()
	content := `[{"date":"2025-01-01"},{"date":"2025-07-04"}]`
	if err := os.WriteFile(filepath.Join(dir, "us_holidays.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}

	cals, err := LoadCalendars(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(cals) != 1 {
		t.Fatalf("LoadCalendars() = %d calendars, want 1", len(cals))
	}
	if !cals["us"].IsHoliday(date.MustParse("2025-07-04")) {
		t.Error("2025-07-04 not loaded as a holiday")
	}
}

func TestLoadCalendarsMissingDir(t *testing.T) {
	cals, err := LoadCalendars(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("LoadCalendars() on a missing directory = %v want nil", err)
	}
	if len(cals) != 0 {
		t.Errorf("LoadCalendars() = %d calendars, want 0", len(cals))
	}
}
