package utils

import (
	"time"

	"github.com/charmbracelet/log/v2"
)

// TimeTrack logs how long name ran. Use it deferred:
//
//	defer utils.TimeTrack(time.Now(), "loop")
func TimeTrack(start time.Time, name string, keyvals ...any) {
	keyvals = append([]any{"elapsed", time.Since(start).Round(time.Millisecond)}, keyvals...)
	log.Debug("🕐 "+name+" finished", keyvals...)
}
