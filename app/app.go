// Package app defines the scholar command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/scholar/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the scholar app instance.
func Get() *cli.App {
	scholarApp := &cli.App{
		Name: "scholar",
		Usage: `
		Scholar is a study tracker for the command-line. Organize your studies
		into subjects and topics, run focus sessions, own up to wasted time,
		and watch your streaks and goals from the terminal.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "start",
				Usage:     "Start a timed study session for a subject",
				ArgsUsage: "<subject>",
				Flags: []cli.Flag{
					topicFlag,
					addTagFlag,
					breakFlag,
					targetFlag,
				},
				Action: startAction,
			},
			{
				Name:   "waste",
				Usage:  "Track time spent not studying",
				Flags:  []cli.Flag{addTagFlag},
				Action: wasteAction,
			},
			{
				Name:      "add",
				Usage:     "Log a study session that already happened",
				ArgsUsage: "<subject>",
				Flags: []cli.Flag{
					durationFlag,
					sinceFlag,
					topicFlag,
					typeFlag,
					notesFlag,
					addTagFlag,
				},
				Action: addAction,
			},
			{
				Name:  "subject",
				Usage: "Manage study subjects",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Create a new subject",
						ArgsUsage: "<name>",
						Flags:     []cli.Flag{colorFlag, subjectGoalFlag},
						Action:    subjectAddAction,
					},
					{
						Name:   "list",
						Usage:  "List all subjects and their totals",
						Flags:  []cli.Flag{jsonFlag},
						Action: subjectListAction,
					},
					{
						Name:      "edit",
						Usage:     "Update a subject's name, colour, or goal",
						ArgsUsage: "<name>",
						Flags: []cli.Flag{
							renameFlag,
							colorFlag,
							subjectGoalFlag,
						},
						Action: subjectEditAction,
					},
					{
						Name:      "delete",
						Usage:     "Delete a subject (its sessions remain)",
						ArgsUsage: "<name>",
						Action:    subjectDeleteAction,
					},
				},
			},
			{
				Name:  "topic",
				Usage: "Manage topics within a subject",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Add a topic to a subject",
						ArgsUsage: "<subject> <name>",
						Action:    topicAddAction,
					},
					{
						Name:      "edit",
						Usage:     "Update a topic's name or mastery",
						ArgsUsage: "<subject> <name>",
						Flags:     []cli.Flag{renameFlag, progressFlag},
						Action:    topicEditAction,
					},
				},
			},
			{
				Name:  "goal",
				Usage: "Manage periodic study goals",
				Subcommands: []*cli.Command{
					{
						Name:      "set",
						Usage:     "Set a daily, weekly, or monthly goal",
						ArgsUsage: "<daily|weekly|monthly> <target>",
						Flags:     []cli.Flag{goalSubjectFlag},
						Action:    goalSetAction,
					},
					{
						Name:   "list",
						Usage:  "List goals with their live progress",
						Flags:  []cli.Flag{jsonFlag},
						Action: goalListAction,
					},
					{
						Name:      "delete",
						Usage:     "Delete a goal by its list number",
						ArgsUsage: "<number>",
						Action:    goalDeleteAction,
					},
				},
			},
			{
				Name:  "list",
				Usage: "List sessions within a time period",
				Flags: []cli.Flag{
					periodFlag,
					startFlag,
					endFlag,
					filterSubjectFlag,
					filterTagFlag,
					jsonFlag,
				},
				Action: listAction,
			},
			{
				Name:  "delete",
				Usage: "Delete sessions within a time period",
				Flags: []cli.Flag{
					periodFlag,
					startFlag,
					endFlag,
					filterSubjectFlag,
					filterTagFlag,
				},
				Action: deleteAction,
			},
			{
				Name: "stats",
				Usage: `
				Track your progress with detailed statistics reporting. Defaults to a
				reporting period of 7 days`,
				Flags: []cli.Flag{
					periodFlag,
					startFlag,
					endFlag,
					filterSubjectFlag,
					filterTagFlag,
					jsonFlag,
				},
				Action: statsAction,
			},
			{
				Name:   "status",
				Usage:  "Print today's dashboard and the active session",
				Action: statusAction,
			},
			{
				Name:   "export",
				Usage:  "Export all data to a snapshot file",
				Flags:  []cli.Flag{outputFlag},
				Action: exportAction,
			},
			{
				Name:      "import",
				Usage:     "Import a previously exported snapshot file",
				ArgsUsage: "<file>",
				Action:    importAction,
			},
			{
				Name:   "reconcile",
				Usage:  "Recompute cached subject totals from the session log",
				Action: reconcileAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags:  []cli.Flag{noColorFlag},
		Before: beforeAction,
		After:  afterAction,
	}

	return scholarApp
}
