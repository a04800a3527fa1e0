package syncer

import "github.com/worktrack-app/worktrack/internal/models"

// renumber restores dense 1..N session numbering for one user and day,
// ordered by start time ascending with ties kept in their original
// order. It mutates records in place and returns the subset whose
// number changed.
func renumber(records []models.Record, userName, date string) []models.Record {
	var idx []int

	for i := range records {
		if records[i].UserName == userName && records[i].Date == date {
			idx = append(idx, i)
		}
	}

	// insertion sort keeps equal start times stable
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0; j-- {
			a, b := idx[j-1], idx[j]
			if records[a].StartTime <= records[b].StartTime {
				break
			}

			idx[j-1], idx[j] = idx[j], idx[j-1]
		}
	}

	var changed []models.Record

	for n, i := range idx {
		want := n + 1
		if records[i].SessionNo != want {
			records[i].SessionNo = want
			changed = append(changed, records[i])
		}
	}

	return changed
}
