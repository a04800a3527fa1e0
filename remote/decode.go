package remote

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/worktrack-app/worktrack/internal/models"
)

// decodeRecords parses a List response. The sheet backing the store is
// edited by humans, so header aliases and mixed value types are decoded
// tolerantly rather than rejected.
func decodeRecords(body []byte) ([]models.Record, error) {
	var items []map[string]any

	if err := json.Unmarshal(body, &items); err != nil {
		return nil, &DecodeError{Excerpt: excerpt(body)}
	}

	records := make([]models.Record, 0, len(items))

	for _, item := range items {
		rec := models.Record{
			RecordID: asString(
				pick(item, "recordId", "Record ID", "record id"),
			),
			Date: asDate(pick(item, "date", "Date")),
			UserName: asString(
				pick(item, "userName", "User Name", "Name", "user name"),
			),
			SessionNo: asInt(
				pick(item, "sessionNo", "Session No", "Session", "session no"),
			),
			StartTime: asString(pick(item, "startTime", "Start Time")),
			EndTime:   asString(pick(item, "endTime", "End Time")),
			Duration:  asString(pick(item, "duration", "Duration")),
			WorkDescription: asString(
				pick(item, "workDescription", "Work Description"),
			),
			Project:  asString(pick(item, "project", "Project")),
			Category: asString(pick(item, "category", "Category")),
			Status: models.Status(
				asString(pick(item, "status", "Status")),
			),
			ApprovedState: models.ApprovalState(
				asString(pick(item, "approvedState", "Approved State")),
			),
			ApprovedBy: asString(pick(item, "approvedBy", "Approved By")),
		}

		records = append(records, rec)
	}

	return records, nil
}

func pick(item map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := item[k]; ok && v != nil {
			return v
		}
	}

	return nil
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}

		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(n))
		return i
	default:
		return 0
	}
}

// asDate truncates a date cell to its calendar day: the store returns
// either plain YYYY-MM-DD values or full ISO timestamps.
func asDate(v any) string {
	s := asString(v)
	if len(s) > 10 {
		s = s[:10]
	}

	return s
}
