package domain

import "time"

// MonthWindow returns the first instant of now's month in loc and the first instant of the next month.
func MonthWindow(now time.Time, loc *time.Location) (start, next time.Time) {
	local := now.In(loc)
	start = time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	next = start.AddDate(0, 1, 0)
	return start, next
}

// CurrentMonth is the inclusive range covering now's calendar month in loc.
func CurrentMonth(now time.Time, loc *time.Location) DateRange {
	start, next := MonthWindow(now, loc)
	return DateRange{From: start, To: next.Add(-time.Nanosecond)}
}

// MonthToDate runs from the first instant of now's month in loc up to now.
func MonthToDate(now time.Time, loc *time.Location) DateRange {
	start, _ := MonthWindow(now, loc)
	return DateRange{From: start, To: now}
}

// InCurrentMonth reports whether date falls in now's calendar month, judged in loc.
func InCurrentMonth(date, now time.Time, loc *time.Location) bool {
	start, next := MonthWindow(now, loc)
	return !date.Before(start) && date.Before(next)
}

// ClampToMonthEnd caps r.To at the last instant of now's month in loc.
func ClampToMonthEnd(r DateRange, now time.Time, loc *time.Location) DateRange {
	end := CurrentMonth(now, loc).To
	if r.To.After(end) {
		r.To = end
	}
	return r
}
