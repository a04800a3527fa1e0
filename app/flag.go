package app

import "github.com/urfave/cli/v2"

var (
	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Start a new session in the past (e.g. '20 mins ago'). Future times are rejected",
	}

	dateFlag = &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "The day to operate on (e.g. '2024-03-11' or 'yesterday'). Defaults to today",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Session start time in HH:MM",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "Session end time in HH:MM. An end before the start means the session crossed midnight",
	}

	descriptionFlag = &cli.StringFlag{
		Name:    "description",
		Aliases: []string{"m"},
		Usage:   "What was worked on during the session",
	}

	projectFlag = &cli.StringFlag{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "The project the session belongs to",
	}

	categoryFlag = &cli.StringFlag{
		Name:    "category",
		Aliases: []string{"c"},
		Usage:   "The category of work (e.g. 'Development', 'Design')",
	}

	blockedFlag = &cli.BoolFlag{
		Name:  "blocked",
		Usage: "Mark the session as blocked instead of completed",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the records as JSON",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	reminderFlag = &cli.StringFlag{
		Name:    "reminder",
		Aliases: []string{"r"},
		Usage:   "How often to check in during a session (e.g. '30m'). Bare numbers are minutes",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after a session is recorded",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"D"},
		Usage:   "Disable the system notification for session check-ins",
	}
)
