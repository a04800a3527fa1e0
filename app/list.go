package app

import (
	"fmt"
	"io"
	"sort"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/worktrack-app/worktrack/internal/duration"
	"github.com/worktrack-app/worktrack/internal/models"
	"github.com/worktrack-app/worktrack/internal/ui"
)

// listRecords prints a day's work records as a table followed by the
// daily and per-project totals.
func listRecords(w io.Writer, date string, records []models.Record) {
	if len(records) == 0 {
		pterm.Info.Printfln("No work records found for %s", date)
		return
	}

	ui.PrintRecordTable(records, w)

	printTotals(w, records)
}

// printTotals sums the recorded durations for the day and for each
// project, ordered naturally by project name.
func printTotals(w io.Writer, records []models.Record) {
	var totalSeconds int

	perProject := make(map[string]int)

	for i := range records {
		secs := duration.Parse(records[i].Duration)
		totalSeconds += secs

		project := records[i].Project
		if project == "" {
			project = "(none)"
		}

		perProject[project] += secs
	}

	fmt.Fprintf(
		w,
		"\n%s: %s\n",
		ui.Highlight("Total"),
		duration.Format(totalSeconds),
	)

	projects := make([]string, 0, len(perProject))
	for project := range perProject {
		projects = append(projects, project)
	}

	sort.Sort(natural.StringSlice(projects))

	for _, project := range projects {
		fmt.Fprintf(
			w,
			"  %s: %s\n",
			project,
			duration.Format(perProject[project]),
		)
	}
}
