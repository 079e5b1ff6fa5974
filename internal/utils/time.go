package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

var dateLayouts = []string{layoutDate, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "02/01/2006"}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// NormalizeDate accepts the date spellings the forms and query strings send
// and canonicalizes to YYYY-MM-DD. Anything unparseable comes back empty: an
// invalid range bound means "unbounded", never an error.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Format(layoutDate)
		}
	}
	return ""
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateBR turns a canonical YYYY-MM-DD string into DD/MM/YYYY for
// display; unparseable input is passed through untouched.
func FormatDateBR(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

// FormatDateTimeBR renders "YYYY-MM-DD HH:MM[:SS]" as "DD/MM/YYYY HH:MM".
func FormatDateTimeBR(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range []string{layoutDateTime, "2006-01-02 15:04", "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Format("02/01/2006 15:04")
		}
	}
	return s
}
