package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/worktrack-app/worktrack/config"
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

// Get retrieves the worktrack app instance.
func Get() *cli.App {
	worktrackApp := &cli.App{
		Name: "worktrack",
		Usage: `
		Worktrack is a personal time tracker for the command-line. It records
		your work sessions under your name and syncs them to a shared record
		store as they are completed.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "Print the work records for a day",
				Action: listAction,
				Flags: []cli.Flag{
					dateFlag,
					jsonFlag,
				},
			},
			{
				Name:   "add",
				Usage:  "Record a past work session",
				Action: addAction,
				Flags: []cli.Flag{
					dateFlag,
					startFlag,
					endFlag,
					descriptionFlag,
					projectFlag,
					categoryFlag,
					blockedFlag,
				},
			},
			{
				Name:      "edit",
				Usage:     "Update fields on an existing work record",
				ArgsUsage: "<recordId>",
				Action:    editAction,
				Flags: []cli.Flag{
					startFlag,
					endFlag,
					descriptionFlag,
					projectFlag,
					categoryFlag,
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete a work record",
				ArgsUsage: "<recordId>",
				Action:    deleteAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the current session",
				Action: statusAction,
			},
			{
				Name:      "set-user",
				Usage:     "Set the name work records are filed under",
				ArgsUsage: "<name>",
				Action:    setUserAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			sinceFlag,
			reminderFlag,
			sessionCmdFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return worktrackApp
}
