package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	note       key.Binding
	stop       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause/resume"),
	),
	note: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "add note"),
	),
	stop: key.NewBinding(
		key.WithKeys("enter", "s"),
		key.WithHelp("enter", "stop & save"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "stop & quit"),
	),
}
