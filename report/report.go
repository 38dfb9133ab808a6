// Package report funnels user-facing status messages through pterm
package report

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
)

func Info(msg string) {
	pterm.Info.Println(msg)
}

func Success(msg string) {
	pterm.Success.Println(msg)
}

// Warn prints a non-fatal warning. Persistence failures are routed here so
// that an already-stopped session is never silently reverted.
func Warn(err error) {
	pterm.Warning.Println(err)
}

func Error(err error) {
	pterm.Error.Println(err)
}

// Fatal reports an error from inside a bubbletea program and quits it.
func Fatal(err error) tea.Cmd {
	pterm.Error.Println(err)
	return tea.Quit
}

// Quit reports an error and exits the process.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
