// Package ui holds terminal rendering helpers shared by the CLI surface.
package ui

import (
	"github.com/pterm/pterm"

	"github.com/worktrack-app/worktrack/internal/models"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// StatusBadge colours a session status for table output.
func StatusBadge(s models.Status) string {
	switch s {
	case models.StatusCompleted:
		return Green(string(s))
	case models.StatusInProgress, models.StatusPaused:
		return Yellow(string(s))
	case models.StatusBlocked:
		return Red(string(s))
	default:
		return string(s)
	}
}
