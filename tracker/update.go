package tracker

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/gen2brain/beeep"
	"github.com/pterm/pterm"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(ts time.Time) tea.Msg {
		return tickMsg(ts)
	})
}

type keymap struct {
	togglePlay key.Binding
	stop       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause/resume"),
	),
	stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop session"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Init performs the first tick immediately so that a check-in interval
// that elapsed while the program was not running is caught right away.
func (t *Tracker) Init() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(time.Now())
	}
}

func (t *Tracker) newStopForm() *huh.Form {
	t.note = Annotation{}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What did you work on?").
				Validate(func(s string) error {
					if s == "" {
						return errDescriptionRequired
					}

					return nil
				}).
				Value(&t.note.WorkDescription),
			huh.NewInput().
				Title("Project").
				Value(&t.note.Project),
			huh.NewInput().
				Title("Category").
				Value(&t.note.Category),
			huh.NewConfirm().
				Title("Were you blocked?").
				Value(&t.note.Blocked),
		),
	)
}

func (t *Tracker) newCheckInForm() *huh.Form {
	t.stillOn = true

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Still working on this?").
				Affirmative("Yes").
				Negative("No, wrap up").
				Value(&t.stillOn),
		),
	)
}

// notify sends a desktop notification for the periodic check-in.
func (t *Tracker) notify() {
	if !t.Opts.Notify {
		return
	}

	go func() {
		err := beeep.Notify(
			"Still working?",
			"Confirm your session in the terminal to keep the clock honest.",
			"",
		)
		if err != nil {
			pterm.Error.Printfln("unable to display notification: %v", err)
		}
	}()
}

// handleTick refreshes the status file and raises the periodic check-in
// when it falls due.
func (t *Tracker) handleTick() (tea.Model, tea.Cmd) {
	_ = t.writeStatusFile()

	if t.stopForm == nil && t.checkIn == nil &&
		t.reminder.Due(t.Current, t.clock()) {
		t.checkIn = t.newCheckInForm()
		t.notify()

		return t, tea.Batch(tick(), t.checkIn.Init())
	}

	return t, tick()
}

func (t *Tracker) handleStopForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := t.stopForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.stopForm = f
	}

	if t.stopForm.State == huh.StateAborted {
		t.stopForm = nil

		return t, nil
	}

	if t.stopForm.State == huh.StateCompleted {
		t.stopForm = nil
		t.quitting = true

		err := t.StopSession(t.note, t.clock())
		if err != nil {
			pterm.Error.Printfln("unable to stop session: %v", err)
		}

		return t, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return t, cmd
}

func (t *Tracker) handleCheckIn(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := t.checkIn.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.checkIn = f
	}

	if t.checkIn.State != huh.StateCompleted {
		return t, cmd
	}

	t.checkIn = nil

	err := t.AckReminder(t.clock())
	if err != nil {
		pterm.Error.Printfln("unable to record check-in: %v", err)
	}

	if !t.stillOn {
		t.stopForm = t.newStopForm()

		return t, t.stopForm.Init()
	}

	return t, nil
}

func (t *Tracker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); ok {
		return t.handleTick()
	}

	if t.stopForm != nil {
		return t.handleStopForm(msg)
	}

	if t.checkIn != nil {
		return t.handleCheckIn(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.width = msg.Width

		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, defaultKeymap.togglePlay):
			var err error
			if t.Current.Paused() {
				err = t.ResumeSession(t.clock())
			} else {
				err = t.PauseSession(t.clock())
			}

			if err != nil {
				pterm.Error.Printfln("unable to toggle session: %v", err)
			}

			return t, nil

		case key.Matches(msg, defaultKeymap.stop):
			t.stopForm = t.newStopForm()

			return t, t.stopForm.Init()

		case key.Matches(msg, defaultKeymap.quit):
			// the session stays in the store and is picked up again on
			// the next launch
			t.quitting = true

			return t, tea.Batch(tea.ClearScreen, tea.Quit)
		}
	}

	return t, nil
}
