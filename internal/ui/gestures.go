package ui

import (
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// GestureHandler classifies raw touch events into gestures
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position
	touchEndPos    fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	gh.touchEndPos = event.Position
	duration := time.Since(gh.touchStartTime)

	dx := gh.touchEndPos.X - gh.touchStartPos.X
	dy := gh.touchEndPos.Y - gh.touchStartPos.Y
	distance := float32(math.Sqrt(float64(dx*dx + dy*dy)))

	if duration < gh.longPressDuration && distance < gh.swipeThreshold {
		gh.triggerGesture(GestureTap)
	} else if duration >= gh.longPressDuration {
		gh.triggerGesture(GestureLongPress)
	} else if distance >= gh.swipeThreshold {
		gh.detectSwipeDirection(dx, dy)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// detectSwipeDirection determines the direction of a swipe gesture
func (gh *GestureHandler) detectSwipeDirection(dx, dy float32) {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			gh.triggerGesture(GestureSwipeRight)
		} else {
			gh.triggerGesture(GestureSwipeLeft)
		}
	} else {
		if dy > 0 {
			gh.triggerGesture(GestureSwipeDown)
		} else {
			gh.triggerGesture(GestureSwipeUp)
		}
	}
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// TouchOverlay is an invisible full-window widget that translates taps and
// touch gestures into gesture callbacks. It sits on top of the photo wall so
// a tap anywhere advances the slideshow on kiosk-style installs.
type TouchOverlay struct {
	widget.BaseWidget
	gestureHandler *GestureHandler
}

// NewTouchOverlay creates a transparent gesture capture overlay
func NewTouchOverlay(onGesture func(GestureType)) *TouchOverlay {
	to := &TouchOverlay{
		gestureHandler: NewGestureHandler(onGesture),
	}
	to.ExtendBaseWidget(to)
	return to
}

// CreateRenderer returns a renderer drawing nothing but claiming the area
func (to *TouchOverlay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

// Tapped handles desktop mouse clicks as taps
func (to *TouchOverlay) Tapped(event *fyne.PointEvent) {
	to.gestureHandler.triggerGesture(GestureTap)
}

// TappedSecondary handles right clicks as long presses
func (to *TouchOverlay) TappedSecondary(event *fyne.PointEvent) {
	to.gestureHandler.triggerGesture(GestureLongPress)
}

// TouchDown handles touch down events
func (to *TouchOverlay) TouchDown(event *mobile.TouchEvent) {
	to.gestureHandler.TouchDown(event)
}

// TouchUp handles touch up events
func (to *TouchOverlay) TouchUp(event *mobile.TouchEvent) {
	to.gestureHandler.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (to *TouchOverlay) TouchCancel(event *mobile.TouchEvent) {
	to.gestureHandler.TouchCancel(event)
}
