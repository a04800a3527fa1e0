package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/worktrack-app/worktrack/internal/models"
)

// PrintTable renders rows (first row is the header) as a boxed table.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output record table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

// RecordRows converts work records into table rows, header first, with
// the status column colourised by state.
func RecordRows(records []models.Record) [][]string {
	rows := make([][]string, 0, len(records)+1)

	rows = append(rows, []string{
		"ID",
		"SESSION",
		"START",
		"END",
		"DURATION",
		"DESCRIPTION",
		"PROJECT",
		"CATEGORY",
		"STATUS",
	})

	for i := range records {
		rec := records[i]

		rows = append(rows, []string{
			rec.RecordID,
			fmt.Sprintf("%d", rec.SessionNo),
			rec.StartTime,
			rec.EndTime,
			rec.Duration,
			rec.WorkDescription,
			rec.Project,
			rec.Category,
			StatusBadge(rec.Status),
		})
	}

	return rows
}

// PrintRecordTable renders work records as a boxed table.
func PrintRecordTable(records []models.Record, writer io.Writer) {
	PrintTable(RecordRows(records), writer)
}
