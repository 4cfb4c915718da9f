package tui

import (
	"github.com/charmbracelet/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

type styles struct {
	textStyle     lipgloss.Style
	cursorStyle   lipgloss.Style
	footerStyle   lipgloss.Style
	pausedStyle   lipgloss.Style
	helpKeyStyle  lipgloss.Style
	helpDescStyle lipgloss.Style
}

func makeStyles() styles {
	t := tint.Current()

	focusedColor := t.Blue
	faintColor := tint.Darken(focusedColor, 50)

	return styles{
		textStyle:     lipgloss.NewStyle().Bold(true).Foreground(t.Fg),
		cursorStyle:   lipgloss.NewStyle().Bold(true).Foreground(focusedColor),
		footerStyle:   lipgloss.NewStyle().PaddingLeft(1),
		pausedStyle:   lipgloss.NewStyle().Bold(true).PaddingLeft(1).PaddingRight(1).Foreground(t.Black).Background(focusedColor),
		helpKeyStyle:  lipgloss.NewStyle().Foreground(focusedColor),
		helpDescStyle: lipgloss.NewStyle().Foreground(faintColor),
	}
}
