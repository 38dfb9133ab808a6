// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const (
	HoursInADay      = 24
	MaxHoursInAMonth = 744  // 31 day months
	MaxHoursInAYear  = 8784 // Leap years
)

type Period string

const (
	PeriodAllTime   Period = "all-time"
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	Period7Days     Period = "7days"
	Period14Days    Period = "14days"
	Period30Days    Period = "30days"
	Period90Days    Period = "90days"
	Period180Days   Period = "180days"
	Period365Days   Period = "365days"
	PeriodThisWeek  Period = "this-week"
	PeriodThisMonth Period = "this-month"
)

var Range = map[Period]int{
	PeriodAllTime:   0,
	PeriodToday:     0,
	PeriodYesterday: -1,
	Period7Days:     -6,
	Period14Days:    -13,
	Period30Days:    -29,
	Period90Days:    -89,
	Period180Days:   -179,
	Period365Days:   -364,
}

var PeriodCollection = []Period{
	PeriodAllTime,
	PeriodToday,
	PeriodYesterday,
	Period7Days,
	Period14Days,
	Period30Days,
	Period90Days,
	Period180Days,
	Period365Days,
	PeriodThisWeek,
	PeriodThisMonth,
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// WeekStart resets the given time to local midnight on the Sunday of its
// week (day index 0).
func WeekStart(t time.Time) time.Time {
	return RoundToStart(t.AddDate(0, 0, -int(t.Weekday())))
}

// MonthStart resets the given time to local midnight on the first of its
// month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same local calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DayKey buckets a time by its local calendar date.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ToKey converts a time value to a database key for Bolt. Keys are UTC at
// second precision so that lexical and chronological order agree.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(time.RFC3339))
}

// FormatSeconds expresses a seconds value as hours and minutes, e.g.
// "2h 30m". Values under an hour render as minutes only, and under a minute
// as seconds.
func FormatSeconds(secs int64) string {
	if secs < 0 {
		secs = 0
	}

	hrs := secs / 3600
	mins := (secs % 3600) / 60

	if hrs > 0 {
		return fmt.Sprintf("%dh %dm", hrs, mins)
	}

	if mins > 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%ds", secs)
}

// FormatDuration is FormatSeconds for a time.Duration value.
func FormatDuration(d time.Duration) string {
	return FormatSeconds(int64(d.Seconds()))
}
