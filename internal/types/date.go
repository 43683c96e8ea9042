package types

import "time"

// CalendarDateFormat is the wire format for calendar dates (ISO-8601 date)
const CalendarDateFormat = "2006-01-02"

// ParseCalendarDate parses an ISO-8601 calendar date (YYYY-MM-DD) into a
// UTC midnight time.Time. Calendar dates carry no timezone information;
// all date comparisons in the rate engine are by calendar date only.
func ParseCalendarDate(value string) (time.Time, error) {
	return time.Parse(CalendarDateFormat, value)
}

// FormatCalendarDate formats a time as an ISO-8601 calendar date
func FormatCalendarDate(t time.Time) string {
	return t.Format(CalendarDateFormat)
}

// TruncateToDate drops the clock portion of a time, keeping the calendar
// date at UTC midnight
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NightsBetween returns the number of calendar nights between check-in and
// check-out. Check-in is inclusive, check-out exclusive, so a 2025-06-20 to
// 2025-06-23 stay is 3 nights. Returns 0 or a negative count for inverted
// or same-day ranges; the caller decides whether that is an error.
func NightsBetween(checkIn, checkOut time.Time) int {
	in := TruncateToDate(checkIn)
	out := TruncateToDate(checkOut)
	return int(out.Sub(in).Hours() / 24)
}

// DaysUntil returns the number of whole calendar days from `from` until
// `until`. Used to derive advance-booking days from the booking time and
// the check-in date.
func DaysUntil(from, until time.Time) int {
	return NightsBetween(from, until)
}

// SameCalendarDate reports whether two times fall on the same calendar date
func SameCalendarDate(a, b time.Time) bool {
	return TruncateToDate(a).Equal(TruncateToDate(b))
}

// DateWithinRange reports whether the date is within [start, end] inclusive,
// comparing by calendar date only
func DateWithinRange(date, start, end time.Time) bool {
	d := TruncateToDate(date)
	return !d.Before(TruncateToDate(start)) && !d.After(TruncateToDate(end))
}
