package rotation

import "time"

// State represents the controller lifecycle state
type State string

const (
	// StateIdle means no assignment has been computed yet, or the controller
	// was stopped
	StateIdle State = "Idle"

	// StateRunning means rotation ticks are scheduled
	StateRunning State = "Running"

	// StatePaused means the tick clock is suspended with its remaining time
	// preserved
	StatePaused State = "Paused"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// EventType identifies a lifecycle event observable by collaborators
type EventType string

const (
	// EventLayoutChanged fires when a new assignment replaced the current one
	EventLayoutChanged EventType = "layout_changed"

	// EventSelectionRetry fires when a layout was rejected and another is tried
	EventSelectionRetry EventType = "selection_retry"

	// EventLayoutUnsupported fires when a fixed layout is ineligible for the
	// screen and the controller falls back to single_pane
	EventLayoutUnsupported EventType = "layout_unsupported"

	// EventPaused fires when the tick clock is suspended
	EventPaused EventType = "paused"

	// EventResumed fires when the tick clock resumes
	EventResumed EventType = "resumed"

	// EventManualAdvance fires when an immediate rotation was forced
	EventManualAdvance EventType = "manual_advance"

	// EventEmptyPool fires when rotation cannot start because no photos are
	// selectable
	EventEmptyPool EventType = "empty_pool"
)

// Event is a lifecycle notification for rendering and logging collaborators
type Event struct {
	Type   EventType
	Layout string
	Err    error
	At     time.Time
}
