package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/scholar/goal"
	"github.com/ayoisaiah/scholar/internal/apperr"
	"github.com/ayoisaiah/scholar/internal/timeutil"
	"github.com/ayoisaiah/scholar/internal/ui"
	"github.com/ayoisaiah/scholar/stats"
)

// showDashboard prints today's totals, the streak, and goal progress. When
// another scholar process holds the database, only the active-session line
// printed beforehand is available, so the dashboard is skipped quietly.
func showDashboard() error {
	if _, err := appConfig(); err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		var appErr *apperr.Error

		if errors.As(err, &appErr) && appErr.Kind == apperr.Persistence {
			return nil
		}

		return err
	}
	defer db.Close()

	now := time.Now()
	dayStart := timeutil.RoundToStart(now)
	weekStart := timeutil.WeekStart(now)

	sessions, err := db.GetSessions(
		weekStart,
		timeutil.RoundToEnd(now),
		nil,
		"",
	)
	if err != nil {
		return err
	}

	allSessions, err := db.AllSessions()
	if err != nil {
		return err
	}

	subjects, err := db.ListSubjects()
	if err != nil {
		return err
	}

	dayEnd := dayStart.AddDate(0, 0, 1)

	fmt.Fprintln(os.Stdout)
	pterm.Println(ui.Blue("Today"))
	pterm.Printfln(
		"Studied: %s",
		ui.Green(timeutil.FormatSeconds(
			stats.StudyForPeriod(sessions, dayStart, dayEnd),
		)),
	)
	pterm.Printfln(
		"Wasted: %s",
		ui.Red(timeutil.FormatSeconds(
			stats.WastedForPeriod(sessions, dayStart, dayEnd),
		)),
	)

	pterm.Printfln(
		"\n%s\nStudied: %s",
		ui.Blue("This week"),
		ui.Green(timeutil.FormatSeconds(
			stats.StudyForPeriod(sessions, weekStart, dayEnd),
		)),
	)

	pterm.Printfln(
		"\nStreak: %s",
		ui.Magenta(fmt.Sprintf(
			"%d day(s)",
			stats.Streak(allSessions, now, false),
		)),
	)

	if top := stats.MostStudiedSubject(subjects); top != nil {
		pterm.Printfln(
			"Most studied: %s (%s)",
			ui.Green(top.Name),
			timeutil.FormatSeconds(top.TotalTime),
		)
	}

	tracker := goal.NewTracker(db)

	goals, err := tracker.List()
	if err != nil {
		return err
	}

	if len(goals) == 0 {
		return nil
	}

	fmt.Fprintln(os.Stdout)
	pterm.Println(ui.Blue("Goals"))

	for i := range goals {
		g := &goals[i]

		progress, err := tracker.Progress(g, now, nil, 0)
		if err != nil {
			return err
		}

		subject := "all subjects"

		if g.SubjectID != "" {
			sub, err := db.GetSubject(g.SubjectID)
			if err == nil {
				subject = sub.Name
			} else {
				subject = g.SubjectID
			}
		}

		bar := renderProgressBar(progress)

		pterm.Printfln(
			"%s %s (%s, %s)",
			bar,
			fmt.Sprintf("%d%%", progress),
			g.Type,
			subject,
		)
	}

	return nil
}

// renderProgressBar draws a fixed-width textual progress bar.
func renderProgressBar(percent int) string {
	const width = 20

	filled := percent * width / 100
	if filled > width {
		filled = width
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}

	if percent >= 100 {
		return ui.Green(bar)
	}

	return ui.Yellow(bar)
}
