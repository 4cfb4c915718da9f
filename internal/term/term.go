// Package term runs the typewriter animation directly on a tcell screen.
package term

import (
	"context"
	"time"

	"github.com/charmbracelet/log/v2"
	"github.com/gdamore/tcell/v2"

	"github.com/dlvhdr/texttype/internal/typewriter"
	"github.com/dlvhdr/texttype/internal/utils"
)

type RunOpts struct {
	// ExitWhenDone returns from Run once a non-looping animation shows its
	// last text.
	ExitWhenDone bool
}

// Run drives the animation on screen until ctx is done, a quit key is
// pressed, or the animation finishes with ExitWhenDone set. Steps, blinks
// and screen events are all handled on the calling goroutine. The screen must
// be initialized; Run does not finalize it.
func Run(ctx context.Context, screen tcell.Screen, opts typewriter.Options, runOpts RunOpts) error {
	defer utils.TimeTrack(time.Now(), "typewriter loop")

	surface := NewSurface(screen)
	surface.Anchor(opts.Texts)

	animator, err := typewriter.New(surface, opts)
	if err != nil {
		return err
	}
	defer animator.Stop()

	stepTimer := time.NewTimer(0)
	defer stepTimer.Stop()

	var blinkC <-chan time.Time
	if opts.ShowCursor {
		blinkTicker := time.NewTicker(typewriter.BlinkInterval)
		defer blinkTicker.Stop()
		blinkC = blinkTicker.C
	}

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Debug("typewriter loop cancelled", "err", ctx.Err())
			return nil

		case <-stepTimer.C:
			delay, ok := animator.Step()
			if !ok {
				log.Debug("typewriter finished", "text", surface.Text())
				if runOpts.ExitWhenDone {
					return nil
				}
				continue
			}
			stepTimer.Reset(delay)

		case <-blinkC:
			animator.Blink()

		case ev := <-events:
			if quit := handleEvent(ev, surface); quit {
				return nil
			}
		}
	}
}

func handleEvent(ev tcell.Event, surface *Surface) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		log.Debug("key pressed", "key", ev.Name())
		switch ev.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			return true
		case tcell.KeyRune:
			return ev.Rune() == 'q'
		}
	case *tcell.EventResize:
		surface.screen.Clear()
		surface.draw()
	}
	return false
}
