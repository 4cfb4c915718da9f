package tui

import (
	"github.com/charmbracelet/bubbles/v2/key"
)

// keyMap implements help.KeyMap
type keyMap struct{}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			pauseKey,
		},
		{
			quitKey,
			helpKey,
		},
	}
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		pauseKey,
		quitKey,
		helpKey,
	}
}

var keys = keyMap{}
