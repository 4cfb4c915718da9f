package typer

import (
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/log/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/dlvhdr/texttype/internal/typewriter"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// StepMsg advances the animation of the typer with the matching ID.
type StepMsg struct {
	ID  int
	tag int
}

// BlinkMsg toggles the cursor of the typer with the matching ID.
type BlinkMsg struct {
	ID  int
	tag int
}

// DoneMsg is sent once a non-looping animation shows its last text.
type DoneMsg struct {
	ID int
}

type Styles struct {
	Text   lipgloss.Style
	Cursor lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Text:   lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().Bold(true),
	}
}

// surface is the view state the animator writes to.
type surface struct {
	text   string
	cursor string
	hidden bool
}

func (s *surface) Mount(cursor string) {
	s.text = ""
	s.cursor = cursor
	s.hidden = false
}

func (s *surface) SetText(text string) {
	s.text = text
}

func (s *surface) SetCursorHidden(hidden bool) {
	s.hidden = hidden
}

type Model struct {
	Styles Styles

	id       int
	stepTag  int
	blinkTag int
	paused   bool

	animator *typewriter.Animator
	surface  *surface
}

func New(opts typewriter.Options) (Model, error) {
	s := &surface{}
	a, err := typewriter.New(s, opts)
	if err != nil {
		return Model{}, err
	}

	return Model{
		Styles:   DefaultStyles(),
		id:       nextID(),
		animator: a,
		surface:  s,
	}, nil
}

func (m Model) ID() int {
	return m.id
}

// Init starts both loops. The first step runs right away, the first blink
// after one interval.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.stepCmd(0), m.blinkCmd(typewriter.BlinkInterval))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StepMsg:
		if msg.ID != m.id || msg.tag != m.stepTag || m.paused {
			return m, nil
		}

		wasDeleting := m.animator.Deleting()
		delay, ok := m.animator.Step()
		if !ok {
			if m.animator.Done() {
				log.Debug("typer finished", "id", m.id, "text", m.surface.text)
				return m, m.doneCmd()
			}
			return m, nil
		}
		if wasDeleting != m.animator.Deleting() {
			log.Debug("typer phase changed",
				"id", m.id,
				"deleting", m.animator.Deleting(),
				"textIndex", m.animator.TextIndex(),
				"next", delay)
		}

		m.stepTag++
		return m, m.stepCmd(delay)

	case BlinkMsg:
		if msg.ID != m.id || msg.tag != m.blinkTag {
			return m, nil
		}

		delay, ok := m.animator.Blink()
		if !ok {
			return m, nil
		}

		m.blinkTag++
		return m, m.blinkCmd(delay)
	}

	return m, nil
}

// Stop disposes the animator. Pending step and blink messages are dropped.
func (m Model) Stop() Model {
	m.animator.Stop()
	m.stepTag++
	m.blinkTag++
	return m
}

func (m Model) Pause() Model {
	if m.paused {
		return m
	}
	m.paused = true
	m.stepTag++
	return m
}

// Resume restarts a paused animation; the next step comes after the typing
// speed.
func (m Model) Resume() (Model, tea.Cmd) {
	if !m.paused {
		return m, nil
	}
	m.paused = false
	if m.animator.Done() || m.animator.Stopped() {
		return m, nil
	}
	m.stepTag++
	return m, m.stepCmd(m.animator.Options().TypingSpeed)
}

func (m Model) Paused() bool {
	return m.paused
}

func (m Model) Done() bool {
	return m.animator.Done()
}

func (m Model) Stopped() bool {
	return m.animator.Stopped()
}

func (m Model) Text() string {
	return m.surface.text
}

func (m Model) Animator() *typewriter.Animator {
	return m.animator
}

func (m Model) View() string {
	if m.animator == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.Styles.Text.Render(m.surface.text))

	if m.surface.cursor != "" {
		if m.surface.hidden {
			b.WriteString(strings.Repeat(" ", ansi.StringWidth(m.surface.cursor)))
		} else {
			b.WriteString(m.Styles.Cursor.Render(m.surface.cursor))
		}
	}

	return b.String()
}

func (m Model) stepCmd(delay time.Duration) tea.Cmd {
	msg := StepMsg{ID: m.id, tag: m.stepTag}
	if delay <= 0 {
		return func() tea.Msg {
			return msg
		}
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return msg
	})
}

func (m Model) blinkCmd(delay time.Duration) tea.Cmd {
	if !m.animator.Options().ShowCursor {
		return nil
	}
	msg := BlinkMsg{ID: m.id, tag: m.blinkTag}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return msg
	})
}

func (m Model) doneCmd() tea.Cmd {
	id := m.id
	return func() tea.Msg {
		return DoneMsg{ID: id}
	}
}
