package typer

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlvhdr/texttype/internal/typewriter"
)

func newTestTyper(t *testing.T, texts ...string) Model {
	t.Helper()
	opts := typewriter.DefaultOptions()
	opts.Texts = texts
	opts.TypingSpeed = time.Millisecond
	opts.DeletingSpeed = time.Millisecond
	opts.PauseDuration = time.Millisecond
	m, err := New(opts)
	require.NoError(t, err)
	return m
}

func step(m Model) Model {
	m, _ = m.Update(StepMsg{ID: m.id, tag: m.stepTag})
	return m
}

func blink(m Model) Model {
	m, _ = m.Update(BlinkMsg{ID: m.id, tag: m.blinkTag})
	return m
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	opts := typewriter.DefaultOptions()
	opts.Texts = nil
	_, err := New(opts)
	assert.ErrorIs(t, err, typewriter.ErrInvalidConfig)
}

func TestInitialViewShowsOnlyCursor(t *testing.T) {
	m := newTestTyper(t, "Hi")
	assert.Equal(t, "|", ansi.Strip(m.View()))
	assert.NotNil(t, m.Init())
}

func TestStepRevealsText(t *testing.T) {
	m := newTestTyper(t, "Hi", "Go")

	m = step(m)
	assert.Equal(t, "H|", ansi.Strip(m.View()))
	m = step(m)
	assert.Equal(t, "Hi|", ansi.Strip(m.View()))
	m = step(m)
	assert.Equal(t, "H|", ansi.Strip(m.View()))
	m = step(m)
	assert.Equal(t, "|", ansi.Strip(m.View()))
	m = step(m)
	assert.Equal(t, "G|", ansi.Strip(m.View()))
}

func TestStaleStepIsIgnored(t *testing.T) {
	m := newTestTyper(t, "Hello")

	stale := StepMsg{ID: m.id, tag: m.stepTag}
	m = step(m)
	require.Equal(t, "H", m.Text())

	m, cmd := m.Update(stale)
	assert.Nil(t, cmd)
	assert.Equal(t, "H", m.Text())
}

func TestStepForOtherTyperIsIgnored(t *testing.T) {
	a := newTestTyper(t, "Hello")
	b := newTestTyper(t, "World")
	require.NotEqual(t, a.ID(), b.ID())

	a, cmd := a.Update(StepMsg{ID: b.id, tag: a.stepTag})
	assert.Nil(t, cmd)
	assert.Empty(t, a.Text())
}

func TestBlinkHidesCursorWithoutShiftingText(t *testing.T) {
	m := newTestTyper(t, "Hi")
	m = step(m)

	m = blink(m)
	assert.Equal(t, "H ", ansi.Strip(m.View()))
	m = blink(m)
	assert.Equal(t, "H|", ansi.Strip(m.View()))
}

func TestNoCursor(t *testing.T) {
	opts := typewriter.DefaultOptions()
	opts.Texts = []string{"Hi"}
	opts.ShowCursor = false
	m, err := New(opts)
	require.NoError(t, err)

	assert.Nil(t, m.blinkCmd(typewriter.BlinkInterval))
	m = step(m)
	assert.Equal(t, "H", ansi.Strip(m.View()))

	m, cmd := m.Update(BlinkMsg{ID: m.id, tag: m.blinkTag})
	assert.Nil(t, cmd)
	assert.Equal(t, "H", ansi.Strip(m.View()))
}

func TestDoneEmitsDoneMsg(t *testing.T) {
	opts := typewriter.DefaultOptions()
	opts.Texts = []string{"ok"}
	opts.Loop = false
	m, err := New(opts)
	require.NoError(t, err)

	m = step(m)
	m, cmd := m.Update(StepMsg{ID: m.id, tag: m.stepTag})
	require.NotNil(t, cmd)
	assert.True(t, m.Done())
	assert.Equal(t, DoneMsg{ID: m.id}, cmd())
	assert.Equal(t, "ok", m.Text())
}

func TestPauseAndResume(t *testing.T) {
	m := newTestTyper(t, "Hello")
	m = step(m)

	pending := StepMsg{ID: m.id, tag: m.stepTag}
	m = m.Pause()
	assert.True(t, m.Paused())

	m, cmd := m.Update(pending)
	assert.Nil(t, cmd)
	assert.Equal(t, "H", m.Text())

	// blinking keeps going while paused
	m = blink(m)
	assert.True(t, m.Animator().CursorHidden())

	m, cmd = m.Resume()
	require.NotNil(t, cmd)
	assert.False(t, m.Paused())

	m = step(m)
	assert.Equal(t, "He", m.Text())
}

func TestStopDropsPendingMessages(t *testing.T) {
	m := newTestTyper(t, "Hello")
	m = step(m)

	pendingStep := StepMsg{ID: m.id, tag: m.stepTag}
	pendingBlink := BlinkMsg{ID: m.id, tag: m.blinkTag}

	m = m.Stop()
	assert.True(t, m.Stopped())

	m, cmd := m.Update(pendingStep)
	assert.Nil(t, cmd)
	m, cmd = m.Update(pendingBlink)
	assert.Nil(t, cmd)

	// even with a current tag nothing moves
	m = step(m)
	m = blink(m)
	assert.Equal(t, "H", m.Text())
	assert.False(t, m.Animator().CursorHidden())

	_, cmd = m.Resume()
	assert.Nil(t, cmd)
}
