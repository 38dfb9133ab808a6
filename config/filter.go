package config

import (
	"slices"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/scholar/internal/timeutil"
)

// FilterConfig represents a configuration to filter sessions in the database
// by their start time, end time, assigned tags, and owning subject.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
	Tags      []string
	Subject   string
}

// getTimeRange returns the start and end time according to the specified
// time period.
func getTimeRange(period timeutil.Period) (start, end time.Time) {
	now := time.Now()

	start = timeutil.RoundToStart(now)

	end = timeutil.RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case timeutil.PeriodToday:
		return
	case timeutil.PeriodYesterday:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
		end = timeutil.RoundToEnd(start)

		return
	case timeutil.PeriodAllTime:
		start = time.Time{}
		return
	case timeutil.PeriodThisWeek:
		start = timeutil.WeekStart(now)
		return
	case timeutil.PeriodThisMonth:
		start = timeutil.MonthStart(now)
		return
	default:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
	}

	return
}

// ParseDateFlag interprets a natural-language or formatted date string
// relative to now.
func ParseDateFlag(value string, now time.Time) (time.Time, error) {
	dt, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime: now,
	}, value)
	if err != nil {
		return time.Time{}, errUnparseableDate.Fmt(value)
	}

	return dt.Time, nil
}

// setFilterConfig updates the filter configuration from command-line
// arguments.
func setFilterConfig(ctx *cli.Context) (*FilterConfig, error) {
	filterCfg := &FilterConfig{
		Subject: ctx.String("subject"),
	}

	if ctx.String("tag") != "" {
		filterCfg.Tags = strings.Split(ctx.String("tag"), ",")
	}

	period := timeutil.Period(strings.TrimSpace(ctx.String("period")))

	if period != "" && !slices.Contains(timeutil.PeriodCollection, period) {
		return nil, errInvalidPeriod
	}

	if period != "" {
		filterCfg.StartTime, filterCfg.EndTime = getTimeRange(period)

		return filterCfg, nil
	}

	now := time.Now()

	start := ctx.String("start")
	if start != "" {
		dateTime, err := ParseDateFlag(start, now)
		if err != nil {
			return nil, err
		}

		filterCfg.StartTime = dateTime
	}

	if now.After(filterCfg.StartTime) {
		filterCfg.EndTime = now
	} else {
		filterCfg.EndTime = timeutil.RoundToEnd(filterCfg.StartTime)
	}

	end := ctx.String("end")
	if end != "" {
		dateTime, err := ParseDateFlag(end, now)
		if err != nil {
			return nil, err
		}

		filterCfg.EndTime = dateTime
	}

	if filterCfg.StartTime.IsZero() && start != "" {
		return nil, errInvalidStartDate
	}

	if filterCfg.EndTime.Before(filterCfg.StartTime) {
		return nil, errInvalidDateRange
	}

	return filterCfg, nil
}

// Filter initializes and returns a configuration to filter sessions from
// command-line arguments. The default reporting period is the last 7 days.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	if ctx.String("period") == "" && ctx.String("start") == "" &&
		ctx.String("end") == "" {
		cfg := &FilterConfig{
			Subject: ctx.String("subject"),
		}

		if ctx.String("tag") != "" {
			cfg.Tags = strings.Split(ctx.String("tag"), ",")
		}

		cfg.StartTime, cfg.EndTime = getTimeRange(timeutil.Period7Days)

		return cfg, nil
	}

	return setFilterConfig(ctx)
}
