package tui

import (
	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/log/v2"
	tint "github.com/lrstanley/bubbletint/v2"

	"github.com/dlvhdr/texttype/internal/tui/typer"
	"github.com/dlvhdr/texttype/internal/typewriter"
)

type ModelOpts struct {
	// ExitWhenDone quits the program once a non-looping animation shows its
	// last text.
	ExitWhenDone bool
}

type model struct {
	width    int
	height   int
	typer    typer.Model
	help     help.Model
	styles   styles
	opts     ModelOpts
	quitting bool
}

func NewModel(opts typewriter.Options, modelOpts ModelOpts) (model, error) {
	tint.NewDefaultRegistry()
	tint.SetTint(tint.TintTokyoNight)

	s := makeStyles()

	t, err := typer.New(opts)
	if err != nil {
		return model{}, err
	}
	t.Styles = typer.Styles{
		Text:   s.textStyle,
		Cursor: s.cursorStyle,
	}

	h := help.New()
	h.Styles.ShortKey = s.helpKeyStyle
	h.Styles.ShortDesc = s.helpDescStyle
	h.Styles.FullKey = s.helpKeyStyle
	h.Styles.FullDesc = s.helpDescStyle

	return model{
		typer:  t,
		help:   h,
		styles: s,
		opts:   modelOpts,
	}, nil
}

func (m model) Init() tea.Cmd {
	return m.typer.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		log.Debug("key pressed", "key", msg.String())
		switch {
		case key.Matches(msg, quitKey):
			m.quitting = true
			m.typer = m.typer.Stop()
			return m, tea.Quit

		case key.Matches(msg, pauseKey):
			if m.typer.Paused() {
				m.typer, cmd = m.typer.Resume()
			} else {
				m.typer = m.typer.Pause()
			}
			return m, cmd

		case key.Matches(msg, helpKey):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m, nil

	case typer.DoneMsg:
		if msg.ID == m.typer.ID() && m.opts.ExitWhenDone {
			log.Debug("animation done, exiting")
			m.quitting = true
			m.typer = m.typer.Stop()
			return m, tea.Quit
		}
		return m, nil
	}

	m.typer, cmd = m.typer.Update(msg)
	return m, cmd
}

func (m model) View() string {
	text := m.typer.View()
	if m.width == 0 || m.height == 0 || m.opts.ExitWhenDone {
		return text
	}

	footer := m.styles.footerStyle.Render(m.help.View(keys))
	if m.typer.Paused() {
		footer = lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.pausedStyle.Render(PausedLabel), " ", footer)
	}

	bodyHeight := max(0, m.height-lipgloss.Height(footer))
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, text)

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
