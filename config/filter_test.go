package config

import (
	"errors"
	"flag"
	"slices"
	"testing"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/scholar/internal/timeutil"
)

func makeContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("list", flag.PanicOnError)

	for k, v := range flags {
		_ = f.String(k, "", "")

		if err := f.Set(k, v); err != nil {
			t.Fatal(err)
		}
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestFilterDefaultsToSevenDays(t *testing.T) {
	cfg, err := Filter(makeContext(t, map[string]string{
		"tag": "exam,revision",
	}))
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(cfg.Tags, []string{"exam", "revision"}) {
		t.Errorf("unexpected tags: %v", cfg.Tags)
	}

	days := cfg.EndTime.Sub(cfg.StartTime).Hours() / 24
	if days < 6 || days > 8 {
		t.Errorf("expected a ~7 day window, got %.1f days", days)
	}
}

func TestFilterPeriods(t *testing.T) {
	cases := []struct {
		period timeutil.Period
	}{
		{timeutil.PeriodToday},
		{timeutil.PeriodYesterday},
		{timeutil.Period30Days},
		{timeutil.PeriodThisWeek},
		{timeutil.PeriodThisMonth},
	}

	for _, tc := range cases {
		t.Run(string(tc.period), func(t *testing.T) {
			cfg, err := Filter(makeContext(t, map[string]string{
				"period": string(tc.period),
			}))
			if err != nil {
				t.Fatal(err)
			}

			if !cfg.StartTime.Before(cfg.EndTime) {
				t.Errorf(
					"start %v is not before end %v",
					cfg.StartTime,
					cfg.EndTime,
				)
			}
		})
	}
}

func TestFilterAllTime(t *testing.T) {
	cfg, err := Filter(makeContext(t, map[string]string{
		"period": string(timeutil.PeriodAllTime),
	}))
	if err != nil {
		t.Fatal(err)
	}

	if !cfg.StartTime.IsZero() {
		t.Errorf("expected a zero start time, got %v", cfg.StartTime)
	}
}

func TestFilterRejectsUnknownPeriod(t *testing.T) {
	_, err := Filter(makeContext(t, map[string]string{
		"period": "fortnight",
	}))
	if !errors.Is(err, errInvalidPeriod) {
		t.Fatalf("expected errInvalidPeriod, got %v", err)
	}
}

func TestParseDateFlag(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)

	got, err := ParseDateFlag("2026-03-01", now)
	if err != nil {
		t.Fatal(err)
	}

	if got.Year() != 2026 || got.Month() != time.March || got.Day() != 1 {
		t.Errorf("unexpected date: %v", got)
	}

	if _, err := ParseDateFlag("not a date", now); !errors.Is(
		err,
		errUnparseableDate,
	) {
		t.Fatalf("expected errUnparseableDate, got %v", err)
	}
}
