package model

import "time"

// FormatoFecha is the wire format for calendar dates.
const FormatoFecha = "2006-01-02"

// SoloFecha drops the clock part and pins the date to UTC midnight so that
// range filters compare calendar days only.
func SoloFecha(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseFecha parses a YYYY-MM-DD string into a UTC calendar date.
func ParseFecha(s string) (time.Time, error) {
	return time.Parse(FormatoFecha, s)
}
