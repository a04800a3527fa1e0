// Package duration converts between whole-second counts and the
// human-readable duration labels stored in the remote sheet
// (e.g. "1 hr 30 mins 45 sec").
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hourPattern   = regexp.MustCompile(`(\d+)\s*hr`)
	minutePattern = regexp.MustCompile(`(\d+)\s*mins?`)
	secondPattern = regexp.MustCompile(`(\d+)\s*sec`)
)

// Format renders a second count as space-joined "N hr", "N mins" and
// "N sec" tokens. Zero-valued hour and minute tokens are omitted, and the
// seconds token is always present when both are absent so that zero
// formats as "0 sec".
func Format(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	h := totalSeconds / 3600
	m := totalSeconds % 3600 / 60
	s := totalSeconds % 60

	var parts []string

	if h > 0 {
		parts = append(parts, fmt.Sprintf("%d hr", h))
	}

	if m > 0 {
		parts = append(parts, fmt.Sprintf("%d mins", m))
	}

	if s > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d sec", s))
	}

	return strings.Join(parts, " ")
}

// Parse extracts the hour, minute and second tokens from a duration label
// and sums them into seconds. Labels without any recognizable token that
// parse as a plain number are interpreted as minutes (older sheet rows
// stored numeric minute durations). Anything else yields 0.
func Parse(label string) int {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0
	}

	var secs int

	if m := hourPattern.FindStringSubmatch(label); m != nil {
		n, _ := strconv.Atoi(m[1])
		secs += n * 3600
	}

	if m := minutePattern.FindStringSubmatch(label); m != nil {
		n, _ := strconv.Atoi(m[1])
		secs += n * 60
	}

	if m := secondPattern.FindStringSubmatch(label); m != nil {
		n, _ := strconv.Atoi(m[1])
		secs += n
	}

	if secs == 0 {
		if f, err := strconv.ParseFloat(label, 64); err == nil && f > 0 {
			secs = int(f * 60)
		}
	}

	return secs
}
