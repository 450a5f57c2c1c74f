package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconPlay  = "▶"
	IconPause = "⏸"
	IconError = "❌"
)

// Status overlay behavior
const (
	StatusOverlayAutoHide = 3 * time.Second
)
