package rotation

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/photopane/photo-saver/internal/layout"
	"github.com/photopane/photo-saver/internal/model"
	"github.com/photopane/photo-saver/internal/selector"
)

// Default rotation tuning
const (
	DefaultInterval      = 15 * time.Second
	DefaultLayoutRetries = 3
)

// ErrEmptyPool signals that rotation cannot start because the classified
// photo pool is empty. The controller reports it and remains Idle.
var ErrEmptyPool = errors.New("photo pool is empty")

// Config tunes the rotation controller
type Config struct {
	Interval      time.Duration      // rotation interval between ticks
	FixedLayout   string             // layout name, or layout.AutoLayout for weighted rotation
	Weights       map[string]float64 // per-layout weight overrides for auto mode
	LayoutRetries int                // layouts tried after a SelectionFailure before single_pane
}

// DefaultConfig returns the built-in rotation tuning
func DefaultConfig() Config {
	return Config{
		Interval:      DefaultInterval,
		FixedLayout:   layout.AutoLayout,
		LayoutRetries: DefaultLayoutRetries,
	}
}

// Controller owns the current assignment and the elapsed-time clock. All
// state lives behind one mutex; timer callbacks, manual controls, and reads
// serialize through it.
type Controller struct {
	catalog *layout.Catalog
	sel     *selector.Selector
	hist    *selector.History
	pool    *model.Pool
	cfg     Config
	clock   Clock
	logger  *log.Logger

	mu         sync.Mutex
	state      State
	current    *selector.Assignment
	timer      Timer
	timerGen   uint64 // invalidates stale fired timers
	nextTickAt time.Time
	remaining  time.Duration // time left before next tick while paused

	onAssignment func(*selector.Assignment)
	onEvent      func(Event)
}

// NewController creates a controller in the Idle state
func NewController(catalog *layout.Catalog, sel *selector.Selector, hist *selector.History, pool *model.Pool, cfg Config, clock Clock, logger *log.Logger) *Controller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.LayoutRetries <= 0 {
		cfg.LayoutRetries = DefaultLayoutRetries
	}
	if cfg.FixedLayout == "" {
		cfg.FixedLayout = layout.AutoLayout
	}
	if clock == nil {
		clock = NewClock()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		catalog: catalog,
		sel:     sel,
		hist:    hist,
		pool:    pool,
		cfg:     cfg,
		clock:   clock,
		logger:  logger,
		state:   StateIdle,
	}
}

// SetAssignmentCallback sets the callback invoked after every assignment swap
func (c *Controller) SetAssignmentCallback(callback func(*selector.Assignment)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onAssignment = callback
}

// SetEventCallback sets the callback invoked for lifecycle events
func (c *Controller) SetEventCallback(callback func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvent = callback
}

// State returns the current lifecycle state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current returns the assignment currently on screen. It is updated only at
// tick boundaries, never partially.
func (c *Controller) Current() *selector.Assignment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Start computes the first assignment and begins the tick schedule. An empty
// pool is reported and leaves the controller Idle. An ineligible fixed layout
// is reported and replaced by single_pane; rotation still starts.
func (c *Controller) Start() error {
	c.mu.Lock()

	if c.state != StateIdle {
		c.mu.Unlock()
		return nil
	}
	if c.pool.Len() == 0 {
		c.logger.Warn("no selectable photos, staying idle")
		notify := c.eventLocked(Event{Type: EventEmptyPool})
		c.mu.Unlock()
		notify()
		return ErrEmptyPool
	}

	var notifies []func()
	if c.cfg.FixedLayout != layout.AutoLayout {
		if _, err := c.catalog.Choose(nil, c.cfg.FixedLayout); err != nil {
			c.logger.Error("fixed layout unsupported, falling back to single pane",
				"layout", c.cfg.FixedLayout, "err", err)
			notifies = append(notifies, c.eventLocked(Event{
				Type: EventLayoutUnsupported, Layout: c.cfg.FixedLayout, Err: err,
			}))
			c.cfg.FixedLayout = layout.SinglePane
		}
	}

	c.state = StateRunning
	notifies = append(notifies, c.rotateLocked())
	c.scheduleLocked(c.cfg.Interval)
	c.mu.Unlock()

	for _, n := range notifies {
		n()
	}
	return nil
}

// Stop cancels the pending tick and returns to Idle. The last assignment
// remains readable.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelTimerLocked()
	c.state = StateIdle
}

// Advance forces an immediate rotation as if the interval elapsed. The
// pending tick is cancelled and rescheduled a full interval from now, so no
// double-advance occurs.
func (c *Controller) Advance() {
	c.mu.Lock()
	if c.state != StateRunning {
		c.mu.Unlock()
		return
	}

	c.cancelTimerLocked()
	notifies := []func(){
		c.eventLocked(Event{Type: EventManualAdvance}),
		c.rotateLocked(),
	}
	c.scheduleLocked(c.cfg.Interval)
	c.mu.Unlock()

	for _, n := range notifies {
		n()
	}
}

// Pause suspends the tick clock, preserving the time remaining before the
// next tick
func (c *Controller) Pause() {
	c.mu.Lock()
	if c.state != StateRunning {
		c.mu.Unlock()
		return
	}

	c.remaining = c.nextTickAt.Sub(c.clock.Now())
	if c.remaining < 0 {
		c.remaining = 0
	}
	c.cancelTimerLocked()
	c.state = StatePaused
	c.logger.Debug("paused", "remaining", c.remaining)
	notify := c.eventLocked(Event{Type: EventPaused})
	c.mu.Unlock()

	notify()
}

// Resume restarts the tick clock with the remaining time preserved by Pause,
// not a full interval
func (c *Controller) Resume() {
	c.mu.Lock()
	if c.state != StatePaused {
		c.mu.Unlock()
		return
	}

	c.state = StateRunning
	c.scheduleLocked(c.remaining)
	c.logger.Debug("resumed", "remaining", c.remaining)
	notify := c.eventLocked(Event{Type: EventResumed})
	c.mu.Unlock()

	notify()
}

// tick is the timer callback for one rotation boundary
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.timerGen || c.state != StateRunning {
		// A stale timer fired after being superseded; ignore it.
		c.mu.Unlock()
		return
	}

	notify := c.rotateLocked()
	c.scheduleLocked(c.cfg.Interval)
	c.mu.Unlock()

	notify()
}

// rotateLocked chooses a layout, assigns photos, and swaps the assignment in.
// On SelectionFailure it retries with other layouts, then with single_pane;
// if even that fails the current assignment stays on screen. Returns the
// deferred callback invocations; callers run them after unlocking.
func (c *Controller) rotateLocked() func() {
	var events []Event

	assignment := c.selectLocked(&events)
	if assignment == nil {
		c.logger.Warn("keeping current assignment after failed rotation")
		return c.eventsFunc(events)
	}

	c.current = assignment
	c.logger.Info("layout changed",
		"layout", assignment.Layout.Name,
		"assignment", assignment.ID,
		"panes", len(assignment.Placements))
	events = append(events, Event{Type: EventLayoutChanged, Layout: assignment.Layout.Name})

	onAssignment := c.onAssignment
	eventsFn := c.eventsFunc(events)
	return func() {
		eventsFn()
		if onAssignment != nil {
			onAssignment(assignment)
		}
	}
}

func (c *Controller) selectLocked(events *[]Event) *selector.Assignment {
	for attempt := 0; attempt < c.cfg.LayoutRetries; attempt++ {
		l, err := c.catalog.Choose(c.cfg.Weights, c.cfg.FixedLayout)
		if err != nil {
			// Unsupported fixed layout slipped through Start; use fallback.
			l = c.catalog.Fallback()
		}

		assignment, err := c.sel.SelectForLayout(l, c.pool, c.hist)
		if err == nil {
			return assignment
		}

		c.logger.Debug("selection failed, retrying with another layout",
			"layout", l.Name, "attempt", attempt+1, "err", err)
		*events = append(*events, Event{Type: EventSelectionRetry, Layout: l.Name, Err: err})
	}

	assignment, err := c.sel.SelectForLayout(c.catalog.Fallback(), c.pool, c.hist)
	if err != nil {
		c.logger.Error("fallback selection failed", "err", err)
		return nil
	}
	return assignment
}

// scheduleLocked arms the tick timer. Any previously pending tick is
// cancelled first, so at most one is ever outstanding.
func (c *Controller) scheduleLocked(d time.Duration) {
	c.cancelTimerLocked()
	c.timerGen++
	gen := c.timerGen
	c.nextTickAt = c.clock.Now().Add(d)
	c.timer = c.clock.AfterFunc(d, func() { c.tick(gen) })
}

// cancelTimerLocked stops the pending tick. Idempotent: a fired or already
// cancelled timer is a no-op.
func (c *Controller) cancelTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.timerGen++
}

func (c *Controller) eventLocked(e Event) func() {
	e.At = c.clock.Now()
	callback := c.onEvent
	return func() {
		if callback != nil {
			callback(e)
		}
	}
}

func (c *Controller) eventsFunc(events []Event) func() {
	now := c.clock.Now()
	callback := c.onEvent
	return func() {
		if callback == nil {
			return
		}
		for _, e := range events {
			if e.At.IsZero() {
				e.At = now
			}
			callback(e)
		}
	}
}
