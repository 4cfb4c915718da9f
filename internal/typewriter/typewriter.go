// Package typewriter implements a looping typewriter animation: it types
// strings out one character at a time, pauses, deletes them and moves on to
// the next string, optionally with a blinking cursor.
//
// The Animator holds no timers of its own. Drivers call Step and Blink and
// reschedule them after the delay each call returns, so the animation runs on
// whatever loop owns the display (a Bubble Tea program, a tcell event loop).
package typewriter

import (
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

// Surface is the display the animation is written to.
type Surface interface {
	// Mount replaces the surface content with an empty text region and, when
	// cursor is not empty, a cursor holding that glyph.
	Mount(cursor string)
	SetText(text string)
	SetCursorHidden(hidden bool)
}

type Animator struct {
	opts    Options
	surface Surface

	// texts split into grapheme clusters
	texts [][]string

	textIndex int
	charIndex int
	deleting  bool

	done         bool
	stopped      bool
	cursorHidden bool
}

func New(surface Surface, opts Options) (*Animator, error) {
	if surface == nil {
		return nil, &ConfigError{Field: "surface", Reason: "display surface is required"}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	opts.Texts = append([]string(nil), opts.Texts...)
	a := &Animator{
		opts:    opts,
		surface: surface,
		texts:   make([][]string, len(opts.Texts)),
	}
	for i, text := range opts.Texts {
		a.texts[i] = splitGraphemes(text)
	}

	cursor := ""
	if opts.ShowCursor {
		cursor = opts.CursorCharacter
	}
	surface.Mount(cursor)

	return a, nil
}

func splitGraphemes(s string) []string {
	clusters := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}

// Step advances the animation by one character and returns the delay until
// the next step. It returns false once the animation reached its final state
// or the animator was stopped; no further steps should be scheduled then.
func (a *Animator) Step() (time.Duration, bool) {
	if a.done || a.stopped {
		return 0, false
	}

	current := a.texts[a.textIndex]

	if a.deleting {
		a.charIndex--
	} else {
		a.charIndex++
	}
	a.surface.SetText(strings.Join(current[:a.charIndex], ""))

	delay := a.opts.TypingSpeed
	if a.deleting {
		delay = a.opts.DeletingSpeed
	}

	switch {
	case !a.deleting && a.charIndex == len(current):
		if !a.opts.Loop && a.textIndex == len(a.texts)-1 {
			a.done = true
			return 0, false
		}
		a.deleting = true
		delay = a.opts.PauseDuration
	case a.deleting && a.charIndex == 0:
		a.deleting = false
		a.textIndex = (a.textIndex + 1) % len(a.texts)
		delay = RestartDelay
	}

	return delay, true
}

// Blink toggles the cursor visibility and returns the delay until the next
// toggle. It returns false when there is no cursor or the animator was
// stopped.
func (a *Animator) Blink() (time.Duration, bool) {
	if !a.opts.ShowCursor || a.stopped {
		return 0, false
	}

	a.cursorHidden = !a.cursorHidden
	a.surface.SetCursorHidden(a.cursorHidden)
	return BlinkInterval, true
}

// Stop disposes the animator. Step and Blink are no-ops afterwards.
func (a *Animator) Stop() {
	a.stopped = true
}

func (a *Animator) Text() string {
	return strings.Join(a.texts[a.textIndex][:a.charIndex], "")
}

func (a *Animator) Current() string {
	return a.opts.Texts[a.textIndex]
}

func (a *Animator) TextIndex() int {
	return a.textIndex
}

func (a *Animator) CharIndex() int {
	return a.charIndex
}

func (a *Animator) Deleting() bool {
	return a.deleting
}

func (a *Animator) Done() bool {
	return a.done
}

func (a *Animator) Stopped() bool {
	return a.stopped
}

func (a *Animator) CursorHidden() bool {
	return a.cursorHidden
}

func (a *Animator) Options() Options {
	opts := a.opts
	opts.Texts = append([]string(nil), a.opts.Texts...)
	return opts
}
