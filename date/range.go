package date

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// Contains return true when the date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// TrailingYear returns the 365-day window ending at (and including) d.
func TrailingYear(d Date) Range { return Range{From: d.Add(-365), To: d} }
