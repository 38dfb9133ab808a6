package app

import "github.com/urfave/cli/v2"

var (
	topicFlag = &cli.StringFlag{
		Name:  "topic",
		Usage: "Attribute the session to a topic within the subject",
	}

	addTagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Add comma-delimited tags to a session",
	}

	breakFlag = &cli.BoolFlag{
		Name:  "break",
		Usage: "Record the session as a break instead of focused study",
	}

	targetFlag = &cli.StringFlag{
		Name:  "target",
		Usage: "Override the focus target for this session (e.g. '50m')",
	}

	durationFlag = &cli.StringFlag{
		Name:     "duration",
		Aliases:  []string{"d"},
		Usage:    "Length of the manual session (e.g. '45m', '1h30m')",
		Required: true,
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Backdate the session start (e.g. '2 hours ago', 'yesterday 9am')",
	}

	notesFlag = &cli.StringFlag{
		Name:  "notes",
		Usage: "Attach free-form notes to the session",
	}

	typeFlag = &cli.StringFlag{
		Name:  "type",
		Usage: "Session type for manual entries: focus, break, or wasted",
		Value: "manual",
	}

	colorFlag = &cli.StringFlag{
		Name:  "color",
		Usage: "Display colour for the subject (e.g. '#10B981')",
	}

	subjectGoalFlag = &cli.StringFlag{
		Name:  "goal",
		Usage: "Cumulative study goal for the subject (e.g. '20h')",
	}

	renameFlag = &cli.StringFlag{
		Name:  "name",
		Usage: "New name",
	}

	progressFlag = &cli.IntFlag{
		Name:  "progress",
		Usage: "Topic mastery from 0 to 100",
		Value: -1,
	}

	goalSubjectFlag = &cli.StringFlag{
		Name:  "subject",
		Usage: "Restrict the goal to a single subject",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage: "Reporting period: today, yesterday, 7days, 14days, 30days," +
			" 90days, 180days, 365days, this-week, this-month, all-time",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Start of the reporting period (e.g. '2026-08-01', '3 weeks ago')",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "End of the reporting period",
	}

	filterSubjectFlag = &cli.StringFlag{
		Name:  "subject",
		Usage: "Limit results to a single subject",
	}

	filterTagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Limit results to comma-delimited tags",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the results in JSON format",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the snapshot to the specified file",
		Value:   "scholar-export.json",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
