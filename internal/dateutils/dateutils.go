// Package dateutils provides common date operations used throughout the
// application. The store historically mixes two date shapes, day-first
// (DD/MM/YYYY) and ISO (YYYY-MM-DD); everything here accepts both.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants used throughout the application.
const (
	LayoutISO     = "2006-01-02"
	LayoutItalian = "02/01/2006"
	LayoutCompact = "02012006"
)

// ParseFlexibleDate parses a date string in either the Italian day-first
// form or the ISO form, trying the day-first form first.
func ParseFlexibleDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if t, err := time.Parse(LayoutItalian, dateStr); err == nil {
		return t, nil
	}
	if t, err := time.Parse(LayoutISO, dateStr); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToItalian formats a time value in the day-first form.
func ToItalian(t time.Time) string {
	return t.Format(LayoutItalian)
}

// ToCompact formats a time value as DDMMYYYY, the form the download
// window is persisted in.
func ToCompact(t time.Time) string {
	return t.Format(LayoutCompact)
}

