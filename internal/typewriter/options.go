package typewriter

import (
	"errors"
	"fmt"
	"time"

	"github.com/rivo/uniseg"
)

const (
	DefaultTypingSpeed     = 60 * time.Millisecond
	DefaultDeletingSpeed   = 40 * time.Millisecond
	DefaultPauseDuration   = 1500 * time.Millisecond
	DefaultCursorCharacter = "|"

	// RestartDelay is the wait between a fully deleted string and typing the
	// next one.
	RestartDelay = 500 * time.Millisecond

	// BlinkInterval is the period of the cursor visibility toggle.
	BlinkInterval = 500 * time.Millisecond
)

var DefaultTexts = []string{"Welcome"}

// ErrInvalidConfig is wrapped by every error returned from New.
var ErrInvalidConfig = errors.New("invalid configuration")

type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

type Options struct {
	Texts           []string
	TypingSpeed     time.Duration
	DeletingSpeed   time.Duration
	PauseDuration   time.Duration
	Loop            bool
	ShowCursor      bool
	CursorCharacter string
}

func DefaultOptions() Options {
	return Options{
		Texts:           append([]string(nil), DefaultTexts...),
		TypingSpeed:     DefaultTypingSpeed,
		DeletingSpeed:   DefaultDeletingSpeed,
		PauseDuration:   DefaultPauseDuration,
		Loop:            true,
		ShowCursor:      true,
		CursorCharacter: DefaultCursorCharacter,
	}
}

// Validate reports the first problem found as a *ConfigError.
func (o Options) Validate() error {
	if len(o.Texts) == 0 {
		return &ConfigError{Field: "texts", Reason: "at least one text is required"}
	}
	for i, text := range o.Texts {
		if text == "" {
			return &ConfigError{Field: fmt.Sprintf("texts[%d]", i), Reason: "text is empty"}
		}
	}

	durations := []struct {
		field string
		d     time.Duration
	}{
		{"typingSpeed", o.TypingSpeed},
		{"deletingSpeed", o.DeletingSpeed},
		{"pauseDuration", o.PauseDuration},
	}
	for _, d := range durations {
		if d.d < 0 {
			return &ConfigError{Field: d.field, Reason: fmt.Sprintf("must not be negative, got %s", d.d)}
		}
	}

	if o.ShowCursor {
		if n := uniseg.GraphemeClusterCount(o.CursorCharacter); n != 1 {
			return &ConfigError{
				Field:  "cursorCharacter",
				Reason: fmt.Sprintf("must be a single character, got %q", o.CursorCharacter),
			}
		}
	}

	return nil
}
