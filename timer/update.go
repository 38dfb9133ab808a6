package timer

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/scholar/config"
)

// tickMsg advances the elapsed display once per second.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (t *Timer) Init() tea.Cmd {
	return tick()
}

func (t *Timer) handleTick() (tea.Model, tea.Cmd) {
	_ = t.writeStatusFile()

	if t.target > 0 && t.machine.Elapsed() >= t.target {
		go t.notifyTargetReached()
	}

	return t, tick()
}

// stopAndQuit finalizes the active session and leaves the interactive view.
// Any note entered with the note key is attached to the logged session.
func (t *Timer) stopAndQuit() (tea.Model, tea.Cmd) {
	sess, err := t.machine.Stop(strings.TrimSpace(t.noteInput.Value()))

	slog.Debug(spew.Sdump(sess))

	t.quitting = true
	t.finish(sess, err)

	return t, tea.Batch(tea.ClearScreen, tea.Quit)
}

// discardAndQuit abandons the active session without logging it.
func (t *Timer) discardAndQuit() (tea.Model, tea.Cmd) {
	_ = t.machine.Discard()
	_ = os.Remove(config.StatusFilePath())

	t.quitting = true

	return t, tea.Batch(tea.ClearScreen, tea.Quit)
}

// handleNoteKey routes key presses to the note input while it is open.
func (t *Timer) handleNoteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		t.editingNote = false
		t.noteInput.Blur()

		return t, nil

	case tea.KeyEsc:
		t.editingNote = false
		t.noteInput.SetValue("")
		t.noteInput.Blur()

		return t, nil
	}

	var cmd tea.Cmd

	t.noteInput, cmd = t.noteInput.Update(msg)

	return t, cmd
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick()

	case tea.KeyMsg:
		if t.editingNote {
			return t.handleNoteKey(msg)
		}

		switch {
		case key.Matches(msg, defaultKeymap.note):
			t.editingNote = true

			return t, t.noteInput.Focus()

		case key.Matches(msg, defaultKeymap.togglePlay):
			switch t.machine.State() {
			case Running:
				_ = t.machine.Pause()
			case Paused:
				_ = t.machine.Resume()
			case Idle:
			}

			_ = t.writeStatusFile()

			return t, nil

		case key.Matches(msg, defaultKeymap.stop):
			return t.stopAndQuit()

		case key.Matches(msg, defaultKeymap.quit):
			if t.Opts.Timer.AutologOnQuit {
				return t.stopAndQuit()
			}

			return t.discardAndQuit()
		}

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd = t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
