package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/scholar/config"
	"github.com/ayoisaiah/scholar/internal/models"
	"github.com/ayoisaiah/scholar/internal/timeutil"
	"github.com/ayoisaiah/scholar/internal/ui"
	"github.com/ayoisaiah/scholar/store"
)

var (
	opts *config.FilterConfig
	db   store.DB
)

var jsonOutput bool

const (
	barChartChar  = "▇"
	noSessionsMsg = "No sessions found for the specified time range"
)

// Report is the complete set of figures for a reporting period.
type Report struct {
	StartTime     time.Time                  `json:"start_time"`
	EndTime       time.Time                  `json:"end_time"`
	TotalStudy    int64                      `json:"total_study"`
	TotalWasted   int64                      `json:"total_wasted"`
	SessionCount  int                        `json:"session_count"`
	AverageLength int64                      `json:"average_length"`
	Streak        int                        `json:"streak"`
	Subjects      []SubjectSummary           `json:"subjects"`
	Daily         []DayBucket                `json:"daily"`
	TypeCounts    map[models.SessionType]int `json:"type_counts"`
}

func compute(
	sessions, allSessions []models.Session,
	subjects []models.Subject,
	now time.Time,
) *Report {
	r := &Report{
		StartTime:    opts.StartTime,
		EndTime:      opts.EndTime,
		TotalStudy:   StudyForPeriod(sessions, opts.StartTime, opts.EndTime),
		TotalWasted:  WastedForPeriod(sessions, opts.StartTime, opts.EndTime),
		SessionCount: len(sessions),
		// the streak looks at the whole log, not just the reporting window
		Streak:     Streak(allSessions, now, false),
		Subjects:   SubjectBreakdown(sessions, subjects),
		Daily:      DailyBuckets(sessions, now),
		TypeCounts: TypeCounts(sessions),
	}

	if r.SessionCount > 0 {
		total := r.TotalStudy + r.TotalWasted
		r.AverageLength = total / int64(r.SessionCount)
	}

	return r
}

func getSummary(r *Report) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	studied := fmt.Sprintf(
		"Time studied: %s\n",
		ui.Green(timeutil.FormatSeconds(r.TotalStudy)),
	)

	wasted := fmt.Sprintf(
		"Time wasted: %s\n",
		ui.Red(timeutil.FormatSeconds(r.TotalWasted)),
	)

	count := fmt.Sprintln("Sessions logged:", ui.Green(r.SessionCount))

	avg := fmt.Sprintf(
		"Average session: %s\n",
		ui.Green(timeutil.FormatSeconds(r.AverageLength)),
	)

	streak := fmt.Sprintln("Current streak:", ui.Magenta(
		fmt.Sprintf("%d day(s)", r.Streak),
	))

	return header + studied + wasted + count + avg + streak
}

func getBreakdownTable(r *Report) string {
	if len(r.Subjects) == 0 {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("\n%s\n", ui.Blue("Subjects")))

	data := [][]string{
		{"#", "Subject", "Total", "Sessions", "Average"},
	}

	for i, s := range r.Subjects {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			s.Name,
			timeutil.FormatSeconds(s.Total),
			fmt.Sprintf("%d", s.Count),
			timeutil.FormatSeconds(s.Average),
		})
	}

	ui.PrintTable(data, &builder)

	return builder.String()
}

func getDailyChart(r *Report) string {
	var bars pterm.Bars

	var nonZero bool

	for _, b := range r.Daily {
		minutes := int((b.Study + b.Wasted) / 60)
		if minutes > 0 {
			nonZero = true
		}

		bars = append(bars, pterm.Bar{
			Value: minutes,
			Label: b.Date.Format("Mon Jan 02"),
		})
	}

	if !nonZero {
		return ""
	}

	header := ui.Blue("\nLast 7 days (minutes)")

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func getTypeChart(r *Report) string {
	var bars pterm.Bars

	for _, t := range models.SessionTypes {
		count := r.TypeCounts[t]
		if count == 0 {
			continue
		}

		bars = append(bars, pterm.Bar{
			Value: count,
			Label: string(t),
		})
	}

	if len(bars) == 0 {
		return ""
	}

	header := ui.Blue("\nSession types")

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

// Show computes and prints the statistics for the configured time period.
func Show(w io.Writer) error {
	defer db.Close()

	var subjectID string

	if opts.Subject != "" {
		sub, err := db.FindSubject(opts.Subject)
		if err != nil {
			return err
		}

		subjectID = sub.ID
	}

	sessions, err := db.GetSessions(
		opts.StartTime,
		opts.EndTime,
		opts.Tags,
		subjectID,
	)
	if err != nil {
		return err
	}

	subjects, err := db.ListSubjects()
	if err != nil {
		return err
	}

	allSessions, err := db.AllSessions()
	if err != nil {
		return err
	}

	// For all-time, set start time to the date of the first session
	if opts.StartTime.IsZero() && len(sessions) > 0 {
		opts.StartTime = timeutil.RoundToStart(sessions[0].StartTime)
	}

	report := compute(sessions, allSessions, subjects, time.Now())

	if jsonOutput {
		b, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(w, string(b))

		return nil
	}

	if len(sessions) == 0 {
		fmt.Fprintln(w, noSessionsMsg)
		return nil
	}

	reportingStart := report.StartTime.Format("January 02, 2006")
	reportingEnd := report.EndTime.Format("January 02, 2006")
	timePeriod := "Reporting period: " + reportingStart + " - " + reportingEnd

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("%s", timePeriod)

	output := fmt.Sprint(
		header,
		getSummary(report),
		getBreakdownTable(report),
		getDailyChart(report),
		getTypeChart(report),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))

	return nil
}

func Init(dbClient store.DB, cfg *config.FilterConfig, asJSON bool) {
	db = dbClient
	opts = cfg
	jsonOutput = asJSON
}
