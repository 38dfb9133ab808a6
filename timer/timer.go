package timer

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/pterm/pterm"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/scholar/config"
	"github.com/ayoisaiah/scholar/internal/models"
	"github.com/ayoisaiah/scholar/internal/timeutil"
	"github.com/ayoisaiah/scholar/report"
	"github.com/ayoisaiah/scholar/stats"
	"github.com/ayoisaiah/scholar/store"
)

const (
	padding  = 2
	maxWidth = 80
)

// Timer drives the interactive session view. The embedded machine owns the
// lifecycle; the model only translates key presses and ticks into machine
// transitions.
type Timer struct {
	db          store.DB
	Opts        *config.Config
	machine     *Machine
	subject     *models.Subject
	topic       *models.Topic
	target      int64
	progress    progress.Model
	help        help.Model
	noteInput   textinput.Model
	editingNote bool
	notified    bool
	quitting    bool
}

// Status is the snapshot of the active session written to the status file
// for other processes to read.
type Status struct {
	StartTime time.Time          `json:"start_time"`
	Subject   string             `json:"subject"`
	Topic     string             `json:"topic,omitempty"`
	Tags      []string           `json:"tags,omitempty"`
	Type      models.SessionType `json:"session_type"`
	State     string             `json:"state"`
	Elapsed   int64              `json:"elapsed"`
	Target    int64              `json:"target,omitempty"`
}

func (t *Timer) writeStatusFile() error {
	sess := t.machine.Active()
	if sess == nil {
		return nil
	}

	s := Status{
		StartTime: sess.StartTime,
		Subject:   t.subject.Name,
		Tags:      sess.Tags,
		Type:      sess.Type,
		State:     t.machine.State().String(),
		Elapsed:   t.machine.Elapsed(),
		Target:    t.target,
	}

	if t.topic != nil {
		s.Topic = t.topic.Name
	}

	statusFile, err := os.Create(config.StatusFilePath())
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(statusFile)

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	return writer.Flush()
}

// notifyTargetReached sends a desktop notification once the focus target is
// reached.
func (t *Timer) notifyTargetReached() {
	if !t.Opts.Notifications.Enabled || t.notified {
		return
	}

	t.notified = true

	title := "Target reached"
	msg := fmt.Sprintf(
		"You have studied %s for %s. Keep going or take a break!",
		t.subject.Name,
		timeutil.FormatSeconds(t.target),
	)

	err := beeep.Notify(title, msg, "")
	if err != nil {
		pterm.Error.Printfln("unable to display notification: %v", err)
	}
}

// notifySessionLogged sends a desktop notification when a stopped session
// has been written to the log.
func (t *Timer) notifySessionLogged(sess *models.Session) {
	msg := fmt.Sprintf(
		"%s logged for %s",
		timeutil.FormatSeconds(sess.Duration),
		t.subject.Name,
	)

	err := beeep.Notify("Session logged", msg, "")
	if err != nil {
		pterm.Error.Printfln("unable to display notification: %v", err)
	}
}

// notifyCompletedGoals sends a desktop notification for every goal the
// stopped session pushed over its target.
func (t *Timer) notifyCompletedGoals(sess *models.Session) {
	goals, err := t.db.ListGoals()
	if err != nil {
		return
	}

	now := time.Now()

	for i := range goals {
		g := &goals[i]

		start, end := stats.GoalWindow(g.Type, now)

		sessions, err := t.db.GetSessions(start, end, nil, "")
		if err != nil {
			continue
		}

		if stats.GoalProgress(g, sessions, now, nil, 0) < 100 {
			continue
		}

		prior := make([]models.Session, 0, len(sessions))

		for _, s := range sessions {
			if s.ID != sess.ID {
				prior = append(prior, s)
			}
		}

		// only announce goals this session completed
		if stats.GoalProgress(g, prior, now, nil, 0) >= 100 {
			continue
		}

		msg := fmt.Sprintf(
			"You reached your %s goal of %s",
			g.Type,
			timeutil.FormatSeconds(g.Target),
		)

		err = beeep.Notify("Goal complete", msg, "")
		if err != nil {
			pterm.Error.Printfln("unable to display notification: %v", err)
		}
	}
}

// printSession writes the details of the starting session to stdout.
func (t *Timer) printSession(sess *models.Session) {
	var timeFormat string
	if t.Opts.Display.TwentyFourHour {
		timeFormat = "15:04:05"
	} else {
		timeFormat = "03:04:05 PM"
	}

	fmt.Fprintf(
		os.Stdout,
		"%s: studying %s (since %s)\n",
		sessionLabel(sess.Type),
		t.subject.Name,
		sess.StartTime.Format(timeFormat),
	)
}

// finish reports the outcome of a stopped session. A persistence failure
// does not roll back the stop: the session is printed so it can be re-added
// manually, and re-running the save is a no-op once it has gone through.
func (t *Timer) finish(sess *models.Session, saveErr error) {
	_ = os.Remove(config.StatusFilePath())

	if sess == nil {
		return
	}

	if saveErr != nil {
		report.Warn(saveErr)
	}

	report.Success(
		fmt.Sprintf(
			"%s logged for %s",
			timeutil.FormatSeconds(sess.Duration),
			t.subject.Name,
		),
	)

	if saveErr == nil && t.Opts.Notifications.Enabled {
		t.notifySessionLogged(sess)
		t.notifyCompletedGoals(sess)
	}
}

// Run starts a session and blocks inside the interactive view until the
// session is stopped.
func (t *Timer) Run(
	sessType models.SessionType,
	subjectID, topicID string,
	tags []string,
) error {
	sess, err := t.machine.Start(sessType, subjectID, topicID, tags)
	if err != nil {
		return err
	}

	t.subject, err = t.db.GetSubject(subjectID)
	if err != nil {
		return err
	}

	t.topic = t.subject.Topic(topicID)

	t.printSession(sess)

	_, err = tea.NewProgram(t).Run()

	return err
}

// ReportStatus prints the status of a timer running in another process, read
// from the status file.
func ReportStatus() error {
	dbFilePath := config.DBFilePath()
	statusFilePath := config.StatusFilePath()

	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(dbFilePath, fileMode, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	// an acquired lock means no other scholar process is running
	if err == nil {
		_ = db.Close()

		pterm.Println("No active session")

		return nil
	}

	if !errors.Is(err, bolt.ErrTimeout) {
		return err
	}

	fileBytes, err := os.ReadFile(statusFilePath)
	if err != nil {
		// missing file should not return an error
		return nil
	}

	var s Status

	err = json.Unmarshal(fileBytes, &s)
	if err != nil {
		return err
	}

	target := ""
	if s.Target > 0 {
		target = " / " + timeutil.FormatSeconds(s.Target)
	}

	pterm.Printfln(
		"%s %s: %s%s (%s)",
		sessionLabel(s.Type),
		s.Subject,
		timeutil.FormatSeconds(s.Elapsed),
		target,
		s.State,
	)

	return nil
}

// New creates a timer for the interactive session view.
func New(dbClient store.DB, cfg *config.Config) *Timer {
	var target int64

	if d := cfg.TargetDuration(); d > 0 {
		target = int64(d.Seconds())
	}

	noteInput := textinput.New()
	noteInput.Placeholder = "what did you work on?"
	noteInput.CharLimit = 280

	return &Timer{
		db:        dbClient,
		Opts:      cfg,
		machine:   NewMachine(dbClient, SystemClock),
		target:    target,
		progress:  progress.New(progress.WithDefaultGradient()),
		help:      help.New(),
		noteInput: noteInput,
	}
}
