package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/scholar/internal/models"
	"github.com/ayoisaiah/scholar/internal/timeutil"
)

var (
	baseStyle = lipgloss.NewStyle().Padding(1, padding)

	mainStyle = lipgloss.NewStyle().Bold(true)

	hintStyle = lipgloss.NewStyle().Faint(true)

	focusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2"))

	breakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("4"))

	wastedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1"))
)

func sessionLabel(sessType models.SessionType) string {
	switch sessType {
	case models.Break:
		return breakStyle.Render("[Break]")
	case models.Wasted:
		return wastedStyle.Render("[Wasted time]")
	case models.Manual:
		return hintStyle.Render("[Manual]")
	default:
		return focusStyle.Render("[Focus]")
	}
}

// formatElapsed renders accumulated time as "HH:MM:SS".
func formatElapsed(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func (t *Timer) headerView(sess *models.Session) string {
	var s strings.Builder

	s.WriteString(sessionLabel(sess.Type))
	s.WriteString(" " + mainStyle.Render(t.subject.Name))

	if t.topic != nil {
		s.WriteString(hintStyle.Render(" / " + t.topic.Name))
	}

	if t.machine.State() == Paused {
		s.WriteString(" " + hintStyle.Render("[Paused]"))
	}

	if len(sess.Tags) > 0 {
		s.WriteString(
			hintStyle.Render(" >>> " + strings.Join(sess.Tags, " | ")),
		)
	}

	return s.String()
}

func (t *Timer) timerView(sess *models.Session) string {
	var s strings.Builder

	elapsed := t.machine.Elapsed()

	s.WriteString(t.headerView(sess))
	s.WriteString("\n\n")
	s.WriteString(mainStyle.Render(formatElapsed(elapsed)))

	if t.target > 0 {
		percent := float64(elapsed) / float64(t.target)
		if percent > 1 {
			percent = 1
		}

		s.WriteString(
			hintStyle.Render(
				" of " + timeutil.FormatSeconds(t.target),
			),
		)
		s.WriteString("\n\n")
		s.WriteString(t.progress.ViewAs(percent))
	}

	if t.editingNote {
		s.WriteString("\n\n" + t.noteInput.View())
	} else if note := t.noteInput.Value(); note != "" {
		s.WriteString("\n\n" + hintStyle.Render("note: "+note))
	}

	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.note,
		defaultKeymap.stop,
		defaultKeymap.quit,
	}))

	return s.String()
}

func (t *Timer) View() string {
	if t.quitting {
		return ""
	}

	sess := t.machine.Active()
	if sess == nil {
		return ""
	}

	return baseStyle.Render(t.timerView(sess))
}
