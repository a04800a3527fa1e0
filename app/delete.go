package app

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/worktrack-app/worktrack/internal/models"
)

// confirmDelete prints the record about to be removed and requests
// confirmation before proceeding with the operation.
func confirmDelete(records []models.Record, recordID string) error {
	var target *models.Record

	for i := range records {
		if records[i].RecordID == recordID {
			target = &records[i]
			break
		}
	}

	if target == nil {
		return errRecordNotFound
	}

	listRecords(os.Stdout, target.Date, []models.Record{*target})

	warning := pterm.Warning.Sprint(
		"The above record will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(os.Stdout, warning)

	reader := bufio.NewReader(os.Stdin)

	_, _ = reader.ReadString('\n')

	return nil
}
