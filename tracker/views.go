package tracker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/worktrack-app/worktrack/internal/duration"
	"github.com/worktrack-app/worktrack/internal/timeutil"
)

var (
	baseStyle   = lipgloss.NewStyle().Padding(1, 2)
	mainStyle   = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "208", Dark: "214"})
)

func (t *Tracker) startEndFormat() string {
	if t.Opts.TwentyFourHour {
		return "15:04"
	}

	return "03:04 PM"
}

// todayTotalSeconds sums the work already recorded today with the
// running session's clock.
func (t *Tracker) todayTotalSeconds() int {
	total := t.Current.ElapsedSeconds(t.clock())

	for _, rec := range t.sync.Records() {
		if rec.Date == t.Current.Date && rec.UserName == t.Current.UserName {
			total += duration.Parse(rec.Duration)
		}
	}

	return total
}

func (t *Tracker) sessionView() string {
	var s strings.Builder

	header := fmt.Sprintf(
		"[Session %d] %s",
		t.Current.SessionNo,
		t.Current.Date,
	)

	s.WriteString(mainStyle.Render(header))

	if t.Current.Paused() {
		s.WriteString(" " + pausedStyle.Render("[Paused]"))
	} else {
		s.WriteString(hintStyle.Render(fmt.Sprintf(
			" since %s",
			t.Current.StartTimeFull.Format(t.startEndFormat()),
		)))
	}

	s.WriteString("\n\n")
	s.WriteString(mainStyle.Render(
		timeutil.FormatHMS(t.Current.ElapsedSeconds(t.clock())),
	))

	s.WriteString("\n\n" + hintStyle.Render(fmt.Sprintf(
		"Today: %s",
		duration.Format(t.todayTotalSeconds()),
	)))

	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.stop,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Tracker) View() string {
	if t.quitting || t.Current == nil {
		return ""
	}

	if t.stopForm != nil {
		return baseStyle.Render(t.stopForm.View())
	}

	view := t.sessionView()

	if t.checkIn != nil {
		view += "\n\n" + t.checkIn.View()
	}

	return baseStyle.Render(view)
}
