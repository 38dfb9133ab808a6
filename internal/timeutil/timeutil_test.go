package timeutil

import (
	"bytes"
	"testing"
	"time"
)

func TestWeekStartsOnSunday(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "midweek",
			in:   time.Date(2026, time.March, 10, 15, 30, 0, 0, time.Local),
			want: time.Date(2026, time.March, 8, 0, 0, 0, 0, time.Local),
		},
		{
			name: "sunday maps to itself",
			in:   time.Date(2026, time.March, 8, 9, 0, 0, 0, time.Local),
			want: time.Date(2026, time.March, 8, 0, 0, 0, 0, time.Local),
		},
		{
			name: "saturday maps back six days",
			in:   time.Date(2026, time.March, 14, 23, 0, 0, 0, time.Local),
			want: time.Date(2026, time.March, 8, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekStart(tc.in); !got.Equal(tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestToKeyOrderMatchesChronology(t *testing.T) {
	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	times := []time.Time{
		base,
		base.Add(time.Second),
		base.Add(time.Minute),
		// a different zone representing a later instant must still sort
		// after, since keys are normalized to UTC
		base.Add(2 * time.Hour).In(time.FixedZone("UTC+5", 5*3600)),
		base.AddDate(0, 0, 1),
	}

	for i := 1; i < len(times); i++ {
		prev, cur := ToKey(times[i-1]), ToKey(times[i])

		if bytes.Compare(prev, cur) >= 0 {
			t.Errorf(
				"key %q does not sort before %q",
				prev,
				cur,
			)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		secs int64
		want string
	}{
		{0, "0s"},
		{30, "30s"},
		{60, "1m"},
		{2700, "45m"},
		{3600, "1h 0m"},
		{9000, "2h 30m"},
		{86400, "24h 0m"},
	}

	for _, tc := range cases {
		if got := FormatSeconds(tc.secs); got != tc.want {
			t.Errorf("FormatSeconds(%d): expected %q, got %q", tc.secs, got, tc.want)
		}
	}
}

func TestDayKeyUsesLocalDate(t *testing.T) {
	in := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.Local)

	if got := DayKey(in); got != "2026-03-10" {
		t.Errorf("expected 2026-03-10, got %q", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.March, 10, 0, 0, 1, 0, time.Local)
	b := time.Date(2026, time.March, 10, 23, 59, 59, 0, time.Local)
	c := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.Local)

	if !SameDay(a, b) {
		t.Error("expected a and b on the same day")
	}

	if SameDay(b, c) {
		t.Error("expected b and c on different days")
	}
}
