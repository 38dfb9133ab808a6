package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/scholar/config"
	"github.com/ayoisaiah/scholar/export"
	"github.com/ayoisaiah/scholar/goal"
	"github.com/ayoisaiah/scholar/internal/models"
	"github.com/ayoisaiah/scholar/internal/timeutil"
	"github.com/ayoisaiah/scholar/internal/ui"
	"github.com/ayoisaiah/scholar/report"
	"github.com/ayoisaiah/scholar/stats"
	"github.com/ayoisaiah/scholar/store"
	"github.com/ayoisaiah/scholar/timer"
)

const (
	envNoColor        = "NO_COLOR"
	envScholarNoColor = "SCHOLAR_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// initLogging routes the default slog logger to a size-capped JSON log file.
func initLogging() {
	logger := slog.New(slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}, nil))

	slog.SetDefault(logger)
}

// appConfig loads the configuration, prompting for initial values when no
// config file exists yet.
func appConfig() (*config.Config, error) {
	cfg, err := config.New(
		config.WithPromptConfig(config.ConfigFilePath()),
		config.WithViperConfig(config.ConfigFilePath()),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

func openDB() (store.DB, error) {
	return store.NewClient(config.DBFilePath())
}

// sessionHelper retrieves sessions according to the command-line filters.
func sessionHelper(
	ctx *cli.Context,
) ([]models.Session, *config.FilterConfig, store.DB, error) {
	conf, err := config.Filter(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := openDB()
	if err != nil {
		return nil, nil, nil, err
	}

	var subjectID string

	if conf.Subject != "" {
		sub, err := db.FindSubject(conf.Subject)
		if err != nil {
			return nil, nil, nil, err
		}

		subjectID = sub.ID
	}

	sessions, err := db.GetSessions(
		conf.StartTime,
		conf.EndTime,
		conf.Tags,
		subjectID,
	)
	if err != nil {
		return nil, nil, nil, err
	}

	return sessions, conf, db, nil
}

// resolveTopic maps a topic name to its id within a subject. An empty name
// resolves to no topic.
func resolveTopic(sub *models.Subject, name string) (string, error) {
	if name == "" {
		return "", nil
	}

	for i := range sub.Topics {
		if sub.Topics[i].Name == name {
			return sub.Topics[i].ID, nil
		}
	}

	return "", store.ErrTopicNotFound.Fmt(name)
}

// startAction starts an interactive focus or break session.
func startAction(ctx *cli.Context) error {
	if ctx.Args().First() == "" {
		return errSubjectRequired
	}

	cfg, err := appConfig()
	if err != nil {
		return err
	}

	if target := ctx.String("target"); target != "" {
		cfg.Timer.DefaultTarget = target

		if err = cfg.Validate(); err != nil {
			return err
		}
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sub, err := db.FindSubject(ctx.Args().First())
	if err != nil {
		return err
	}

	topicID, err := resolveTopic(sub, ctx.String("topic"))
	if err != nil {
		return err
	}

	sessType := models.Focus
	if ctx.Bool("break") {
		sessType = models.Break
	}

	t := timer.New(db, cfg)

	return t.Run(sessType, sub.ID, topicID, models.SplitTags(ctx.String("tag")))
}

// wasteAction starts an interactive wasted-time session.
func wasteAction(ctx *cli.Context) error {
	cfg, err := appConfig()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	t := timer.New(db, cfg)

	return t.Run(
		models.Wasted,
		models.WastedSubjectID,
		"",
		models.SplitTags(ctx.String("tag")),
	)
}

// addAction logs a manual session without running a timer.
func addAction(ctx *cli.Context) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	duration, err := time.ParseDuration(ctx.String("duration"))
	if err != nil || duration <= 0 {
		return errInvalidDuration.Fmt(ctx.String("duration"))
	}

	sessType := models.SessionType(ctx.String("type"))

	subjectID := models.WastedSubjectID
	topicID := ""

	if sessType != models.Wasted {
		if ctx.Args().First() == "" {
			return errSubjectRequired
		}

		sub, err := db.FindSubject(ctx.Args().First())
		if err != nil {
			return err
		}

		subjectID = sub.ID

		topicID, err = resolveTopic(sub, ctx.String("topic"))
		if err != nil {
			return err
		}
	}

	start := time.Now().Add(-duration)

	if since := ctx.String("since"); since != "" {
		start, err = config.ParseDateFlag(since, time.Now())
		if err != nil {
			return err
		}
	}

	sess := &models.Session{
		SubjectID: subjectID,
		TopicID:   topicID,
		StartTime: start,
		EndTime:   start.Add(duration),
		Notes:     ctx.String("notes"),
		Tags:      models.SplitTags(ctx.String("tag")),
		Type:      sessType,
	}

	m := timer.NewMachine(db, timer.SystemClock)

	if err := m.AddManual(sess); err != nil {
		return err
	}

	report.Success(
		fmt.Sprintf(
			"%s logged (%s)",
			timeutil.FormatSeconds(sess.Duration),
			sess.Type,
		),
	)

	return nil
}

// subjectAddAction creates a new subject.
func subjectAddAction(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		return errSubjectRequired
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.FindSubject(name); err == nil {
		return errSubjectExists.Fmt(name)
	}

	sub := &models.Subject{
		ID:    uuid.NewString(),
		Name:  name,
		Color: ctx.String("color"),
	}

	if g := ctx.String("goal"); g != "" {
		d, err := time.ParseDuration(g)
		if err != nil || d <= 0 {
			return errInvalidDuration.Fmt(g)
		}

		sub.GoalTime = int64(d.Seconds())
	}

	if err := db.SaveSubject(sub); err != nil {
		return err
	}

	report.Success(fmt.Sprintf("created subject '%s'", sub.Name))

	return nil
}

// subjectListAction prints all subjects with their accumulated totals.
func subjectListAction(ctx *cli.Context) error {
	_, err := appConfig()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	subjects, err := db.ListSubjects()
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(subjects)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	return listSubjects(subjects)
}

// subjectEditAction updates a subject's name, colour, or goal.
func subjectEditAction(ctx *cli.Context) error {
	if ctx.Args().First() == "" {
		return errSubjectRequired
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sub, err := db.FindSubject(ctx.Args().First())
	if err != nil {
		return err
	}

	if name := ctx.String("name"); name != "" {
		sub.Name = name
	}

	if color := ctx.String("color"); color != "" {
		sub.Color = color
	}

	if g := ctx.String("goal"); g != "" {
		d, err := time.ParseDuration(g)
		if err != nil || d <= 0 {
			return errInvalidDuration.Fmt(g)
		}

		sub.GoalTime = int64(d.Seconds())
	}

	if err := db.SaveSubject(sub); err != nil {
		return err
	}

	report.Success(fmt.Sprintf("updated subject '%s'", sub.Name))

	return nil
}

// subjectDeleteAction removes a subject after confirmation. Its logged
// sessions remain in the session log.
func subjectDeleteAction(ctx *cli.Context) error {
	if ctx.Args().First() == "" {
		return errSubjectRequired
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sub, err := db.FindSubject(ctx.Args().First())
	if err != nil {
		return err
	}

	if !confirm(fmt.Sprintf(
		"Subject '%s' will be deleted permanently (its sessions remain)."+
			" Press ENTER to proceed",
		sub.Name,
	)) {
		return nil
	}

	if err := db.DeleteSubject(sub.ID); err != nil {
		return err
	}

	report.Success(fmt.Sprintf("deleted subject '%s'", sub.Name))

	return nil
}

// topicAddAction adds a topic to a subject.
func topicAddAction(ctx *cli.Context) error {
	subName, topicName := ctx.Args().Get(0), ctx.Args().Get(1)
	if subName == "" || topicName == "" {
		return errTopicArgs
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sub, err := db.FindSubject(subName)
	if err != nil {
		return err
	}

	if id, _ := resolveTopic(sub, topicName); id != "" {
		return errTopicExists.Fmt(topicName, sub.Name)
	}

	sub.Topics = append(sub.Topics, models.Topic{
		ID:   uuid.NewString(),
		Name: topicName,
	})

	if err := db.SaveSubject(sub); err != nil {
		return err
	}

	report.Success(
		fmt.Sprintf("added topic '%s' to '%s'", topicName, sub.Name),
	)

	return nil
}

// topicEditAction updates a topic's name or mastery value.
func topicEditAction(ctx *cli.Context) error {
	subName, topicName := ctx.Args().Get(0), ctx.Args().Get(1)
	if subName == "" || topicName == "" {
		return errTopicArgs
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sub, err := db.FindSubject(subName)
	if err != nil {
		return err
	}

	id, err := resolveTopic(sub, topicName)
	if err != nil {
		return err
	}

	topic := sub.Topic(id)

	if name := ctx.String("name"); name != "" {
		topic.Name = name
	}

	if p := ctx.Int("progress"); p >= 0 {
		if p > 100 {
			return errInvalidProgress.Fmt(p)
		}

		topic.Progress = p
	}

	if err := db.SaveSubject(sub); err != nil {
		return err
	}

	report.Success(fmt.Sprintf("updated topic '%s'", topic.Name))

	return nil
}

// goalSetAction creates or replaces a periodic study goal.
func goalSetAction(ctx *cli.Context) error {
	goalType := models.GoalType(ctx.Args().Get(0))

	target, err := time.ParseDuration(ctx.Args().Get(1))
	if err != nil || target <= 0 {
		return errInvalidDuration.Fmt(ctx.Args().Get(1))
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	var subjectID string

	if name := ctx.String("subject"); name != "" {
		sub, err := db.FindSubject(name)
		if err != nil {
			return err
		}

		subjectID = sub.ID
	}

	tracker := goal.NewTracker(db)

	g, err := tracker.Set(goalType, int64(target.Seconds()), subjectID)
	if err != nil {
		return err
	}

	report.Success(
		fmt.Sprintf(
			"%s goal set: %s",
			g.Type,
			timeutil.FormatSeconds(g.Target),
		),
	)

	return nil
}

// goalListAction prints goals with their derived progress.
func goalListAction(ctx *cli.Context) error {
	_, err := appConfig()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	tracker := goal.NewTracker(db)

	goals, err := tracker.List()
	if err != nil {
		return err
	}

	return listGoals(ctx, db, tracker, goals)
}

// goalDeleteAction removes a goal by its position in the goal list.
func goalDeleteAction(ctx *cli.Context) error {
	var num int

	if _, err := fmt.Sscanf(ctx.Args().First(), "%d", &num); err != nil {
		return errInvalidGoalNumber.Fmt(ctx.Args().First())
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	tracker := goal.NewTracker(db)

	goals, err := tracker.List()
	if err != nil {
		return err
	}

	if num < 1 || num > len(goals) {
		return errInvalidGoalNumber.Fmt(ctx.Args().First())
	}

	if err := tracker.Delete(goals[num-1].ID); err != nil {
		return err
	}

	report.Success("goal deleted")

	return nil
}

// listAction prints a table of the sessions started within a time period.
func listAction(ctx *cli.Context) error {
	_, err := appConfig()
	if err != nil {
		return err
	}

	sessions, _, db, err := sessionHelper(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if ctx.Bool("json") {
		b, err := json.Marshal(sessions)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	return listSessions(db, sessions)
}

// deleteAction deletes the sessions within a time period.
func deleteAction(ctx *cli.Context) error {
	sessions, _, db, err := sessionHelper(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return delSessions(db, sessions)
}

// statsAction computes the stats for the specified time period.
func statsAction(ctx *cli.Context) error {
	if _, err := appConfig(); err != nil {
		return err
	}

	conf, err := config.Filter(ctx)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}

	stats.Init(db, conf, ctx.Bool("json"))

	return stats.Show(os.Stdout)
}

// statusAction prints the dashboard and the status of any running timer.
func statusAction(_ *cli.Context) error {
	_ = timer.ReportStatus()

	return showDashboard()
}

// exportAction writes all data to a snapshot file.
func exportAction(ctx *cli.Context) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	path := ctx.String("output")

	if err := export.ToFile(db, path); err != nil {
		return err
	}

	report.Success(fmt.Sprintf("snapshot written to %s", path))

	return nil
}

// importAction loads a snapshot file into the database.
func importAction(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errImportFileRequired
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := export.FromFile(db, path)
	if err != nil {
		return err
	}

	report.Success(
		fmt.Sprintf(
			"imported %d subject(s), %d session(s), and %d goal(s)",
			len(snap.Subjects),
			len(snap.Sessions),
			len(snap.Goals),
		),
	)

	return nil
}

// reconcileAction recomputes cached totals from the session log.
func reconcileAction(_ *cli.Context) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ReconcileTotals(); err != nil {
		return err
	}

	report.Success("subject and topic totals reconciled with the session log")

	return nil
}

// editConfigAction opens the scholar config file in the user's default text
// editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	if _, err := appConfig(); err != nil {
		return err
	}

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	initLogging()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if SCHOLAR_NO_COLOR is set
	if _, exists := os.LookupEnv(envScholarNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting scholar")

	return nil
}
