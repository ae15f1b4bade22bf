package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseDateTime parses "YYYY-MM-DD HH:MM:SS" in local timezone.
func ParseDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDateTime, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// InRange reports whether date falls within [from, to]. The upper bound is
// inclusive through the end of its calendar day, so a report window ending
// 2026-01-11 still contains bookings created that afternoon. Zero dates never
// match; a zero bound means the range is open on that side.
func InRange(date, from, to time.Time) bool {
	if date.IsZero() {
		return false
	}
	if !from.IsZero() && date.Before(startOfDay(from)) {
		return false
	}
	if !to.IsZero() && !date.Before(startOfDay(to).AddDate(0, 0, 1)) {
		return false
	}
	return true
}

// WeekBucketKey maps a date to the Sunday starting its week, as YYYY-MM-DD.
// Dates in the same Sun-Sat week share a key.
func WeekBucketKey(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	sunday := startOfDay(date).AddDate(0, 0, -int(date.Weekday()))
	return sunday.Format(layoutDate)
}

// WeekStarts returns n consecutive Sunday keys ending with the week that
// contains ref, oldest first.
func WeekStarts(ref time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	sunday := startOfDay(ref).AddDate(0, 0, -int(ref.Weekday()))
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, sunday.AddDate(0, 0, -7*i).Format(layoutDate))
	}
	return keys
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
