package tui

const (
	PausedLabel = "PAUSED"
)
