package app

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/scholar/goal"
	"github.com/ayoisaiah/scholar/internal/models"
	"github.com/ayoisaiah/scholar/internal/timeutil"
	"github.com/ayoisaiah/scholar/internal/ui"
	"github.com/ayoisaiah/scholar/store"
)

const (
	noSessionsMsg = "No sessions found for the specified time range"
	noSubjectsMsg = "No subjects yet: create one with 'scholar subject add'"
	noGoalsMsg    = "No goals yet: create one with 'scholar goal set'"
)

// confirm prints a warning and waits for ENTER. Any other input aborts.
func confirm(msg string) bool {
	warning := pterm.Warning.Sprint(msg)

	fmt.Fprint(os.Stdout, warning)

	reader := bufio.NewReader(os.Stdin)

	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(input) == ""
}

// subjectNames maps subject ids to display names, falling back to the raw
// id for subjects that have been deleted.
func subjectNames(
	db store.DB,
	sessions []models.Session,
) map[string]string {
	names := make(map[string]string)

	for i := range sessions {
		id := sessions[i].SubjectID

		if _, ok := names[id]; ok {
			continue
		}

		sub, err := db.GetSubject(id)
		if err != nil {
			names[id] = id
			continue
		}

		names[id] = sub.Name
	}

	return names
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(
	w io.Writer,
	db store.DB,
	sessions []models.Session,
) {
	names := subjectNames(db, sessions)

	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := &sessions[i]

		typeText := ui.Green(string(sess.Type))
		if sess.Type == models.Wasted {
			typeText = ui.Red(string(sess.Type))
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Format("Jan 02, 2006 03:04 PM"),
			timeutil.FormatSeconds(sess.Duration),
			names[sess.SubjectID],
			typeText,
			strings.Join(sess.Tags, " · "),
		}
	}

	tableBody = append([][]string{
		{"#", "START DATE", "DURATION", "SUBJECT", "TYPE", "TAGS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// listSessions prints out a table of sessions.
func listSessions(db store.DB, sessions []models.Session) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(os.Stdout, db, sessions)

	return nil
}

// listSubjects prints out a table of subjects sorted by name.
func listSubjects(subjects []models.Subject) error {
	if len(subjects) == 0 {
		pterm.Info.Println(noSubjectsMsg)
		return nil
	}

	sort.SliceStable(subjects, func(i, j int) bool {
		return natural.Less(subjects[i].Name, subjects[j].Name)
	})

	tableBody := make([][]string, len(subjects))

	for i := range subjects {
		sub := &subjects[i]

		goalText := "—"
		if p := sub.GoalProgress(); p >= 0 {
			goalText = fmt.Sprintf(
				"%s (%d%%)",
				timeutil.FormatSeconds(sub.GoalTime),
				p,
			)
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			sub.Name,
			timeutil.FormatSeconds(sub.TotalTime),
			fmt.Sprintf("%d", len(sub.Topics)),
			goalText,
		}
	}

	tableBody = append([][]string{
		{"#", "SUBJECT", "TOTAL", "TOPICS", "GOAL"},
	}, tableBody...)

	ui.PrintTable(tableBody, os.Stdout)

	return nil
}

type goalRow struct {
	Type     models.GoalType `json:"goal_type"`
	Subject  string          `json:"subject,omitempty"`
	Target   int64           `json:"target"`
	Progress int             `json:"progress"`
}

// listGoals prints goals along with their progress for the current period.
func listGoals(
	ctx *cli.Context,
	db store.DB,
	tracker *goal.Tracker,
	goals []models.Goal,
) error {
	if len(goals) == 0 {
		pterm.Info.Println(noGoalsMsg)
		return nil
	}

	now := time.Now()

	rows := make([]goalRow, len(goals))

	for i := range goals {
		g := &goals[i]

		progress, err := tracker.Progress(g, now, nil, 0)
		if err != nil {
			return err
		}

		row := goalRow{
			Type:     g.Type,
			Target:   g.Target,
			Progress: progress,
		}

		if g.SubjectID != "" {
			sub, err := db.GetSubject(g.SubjectID)
			if err != nil {
				row.Subject = g.SubjectID
			} else {
				row.Subject = sub.Name
			}
		}

		rows[i] = row
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(rows)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	tableBody := make([][]string, len(rows))

	for i, row := range rows {
		subject := row.Subject
		if subject == "" {
			subject = "all subjects"
		}

		progressText := ui.Yellow(fmt.Sprintf("%d%%", row.Progress))
		if row.Progress >= 100 {
			progressText = ui.Green("100%")
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			string(row.Type),
			subject,
			timeutil.FormatSeconds(row.Target),
			progressText,
		}
	}

	tableBody = append([][]string{
		{"#", "TYPE", "SUBJECT", "TARGET", "PROGRESS"},
	}, tableBody...)

	ui.PrintTable(tableBody, os.Stdout)

	return nil
}
