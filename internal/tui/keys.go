package tui

import "github.com/charmbracelet/bubbles/v2/key"

var (
	quitKey = key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	)

	pauseKey = key.NewBinding(
		key.WithKeys("space", " "),
		key.WithHelp("space", "pause/resume"),
	)

	helpKey = key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	)
)
