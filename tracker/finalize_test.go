package tracker

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/worktrack-app/worktrack/internal/models"
)

// fixedNext returns session numbers from a per-date table, defaulting
// to 1.
func fixedNext(table map[string]int) nextNoFunc {
	return func(_, date string) int {
		if no, ok := table[date]; ok {
			return no
		}

		return 1
	}
}

func TestBuildRecordsSingleDay(t *testing.T) {
	sess := &models.ActiveSession{
		Date:          "2024-03-11",
		UserName:      "ada",
		SessionNo:     3,
		StartTime:     "09:00",
		StartTimeFull: at(t, "2024-03-11 09:00"),
		Status:        models.StatusInProgress,
	}

	got := buildRecords(sess, Annotation{
		WorkDescription: "sketching the onboarding flow",
		Project:         "Onboarding",
		Category:        "Design",
	}, at(t, "2024-03-11 10:30"), fixedNext(nil))

	want := []models.Record{
		{
			Date:            "2024-03-11",
			UserName:        "ada",
			SessionNo:       3,
			StartTime:       "09:00",
			EndTime:         "10:30",
			Duration:        "1 hr 30 mins",
			WorkDescription: "sketching the onboarding flow",
			Project:         "Onboarding",
			Category:        "Design",
			Status:          models.StatusCompleted,
			ApprovedState:   models.ApprovalPending,
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRecordsOvernightSplit(t *testing.T) {
	sess := &models.ActiveSession{
		Date:          "2024-03-11",
		UserName:      "ada",
		SessionNo:     4,
		StartTime:     "23:30",
		StartTimeFull: at(t, "2024-03-11 23:30"),
		Status:        models.StatusInProgress,
	}

	got := buildRecords(sess, Annotation{
		WorkDescription: "chasing a deadlock",
		Blocked:         true,
	}, at(t, "2024-03-12 00:20"), fixedNext(map[string]int{
		"2024-03-12": 1,
	}))

	if len(got) != 2 {
		t.Fatalf("expected 2 records, but got: %d", len(got))
	}

	first := got[0]

	if first.Date != "2024-03-11" || first.EndTime != "23:59" {
		t.Errorf(
			"expected first record to end at 23:59 on 2024-03-11, but got: %s at %s",
			first.EndTime,
			first.Date,
		)
	}

	// 23:30 to 23:59
	if first.Duration != "29 mins" {
		t.Errorf(
			"expected first duration to be '29 mins', but got: %s",
			first.Duration,
		)
	}

	if first.Status != models.StatusBlocked {
		t.Errorf(
			"expected first status to be %s, but got: %s",
			models.StatusBlocked,
			first.Status,
		)
	}

	second := got[1]

	if second.Date != "2024-03-12" || second.StartTime != "00:00" {
		t.Errorf(
			"expected second record to start at 00:00 on 2024-03-12, but got: %s at %s",
			second.StartTime,
			second.Date,
		)
	}

	if second.EndTime != "00:20" {
		t.Errorf(
			"expected second end time to be 00:20, but got: %s",
			second.EndTime,
		)
	}

	if second.Duration != "20 mins" {
		t.Errorf(
			"expected second duration to be '20 mins', but got: %s",
			second.Duration,
		)
	}

	if second.SessionNo != 1 {
		t.Errorf(
			"expected second session number to be 1, but got: %d",
			second.SessionNo,
		)
	}
}

func TestBuildRecordsOvernightNumbersFromEndDate(t *testing.T) {
	sess := &models.ActiveSession{
		Date:          "2024-03-11",
		UserName:      "ada",
		SessionNo:     2,
		StartTime:     "22:00",
		StartTimeFull: at(t, "2024-03-11 22:00"),
		Status:        models.StatusInProgress,
	}

	got := buildRecords(
		sess,
		Annotation{WorkDescription: "batch migration"},
		at(t, "2024-03-12 01:00"),
		fixedNext(map[string]int{"2024-03-12": 6}),
	)

	if got[1].SessionNo != 6 {
		t.Errorf(
			"expected second session number to be 6, but got: %d",
			got[1].SessionNo,
		)
	}
}

func TestSplitManual(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  []models.Record
	}{
		{
			name:  "same day",
			start: "13:00",
			end:   "14:45",
			want: []models.Record{
				{
					Date:          "2024-03-11",
					UserName:      "ada",
					SessionNo:     1,
					StartTime:     "13:00",
					EndTime:       "14:45",
					Duration:      "1 hr 45 mins",
					Status:        models.StatusCompleted,
					ApprovedState: models.ApprovalPending,
				},
			},
		},
		{
			name:  "crosses midnight",
			start: "23:00",
			end:   "01:30",
			want: []models.Record{
				{
					Date:          "2024-03-11",
					UserName:      "ada",
					SessionNo:     1,
					StartTime:     "23:00",
					EndTime:       "23:59",
					Duration:      "59 mins",
					Status:        models.StatusCompleted,
					ApprovedState: models.ApprovalPending,
				},
				{
					Date:          "2024-03-12",
					UserName:      "ada",
					SessionNo:     1,
					StartTime:     "00:00",
					EndTime:       "01:30",
					Duration:      "1 hr 30 mins",
					Status:        models.StatusCompleted,
					ApprovedState: models.ApprovalPending,
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SplitManual(
				"ada",
				"2024-03-11",
				tc.start,
				tc.end,
				Annotation{},
				fixedNext(nil),
			)
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitManualRejectsZeroDuration(t *testing.T) {
	_, err := SplitManual(
		"ada",
		"2024-03-11",
		"09:00",
		"09:00",
		Annotation{},
		fixedNext(nil),
	)
	if err != errZeroDuration {
		t.Fatalf("expected %v, but got: %v", errZeroDuration, err)
	}
}
