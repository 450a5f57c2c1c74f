package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/photopane/photo-saver/internal/config"
	"github.com/photopane/photo-saver/internal/rotation"
	"github.com/photopane/photo-saver/internal/selector"
)

// RootUI represents the main screensaver surface: the photo wall plus the
// transient status and debug overlays on top of it.
type RootUI struct {
	window     fyne.Window
	settings   *config.Settings
	controller *rotation.Controller
	renderer   *Renderer
	logger     *log.Logger

	// Photo wall, swapped whole on every assignment
	wallHolder *fyne.Container

	// Status overlay (pause indicator, transient messages)
	statusContainer *fyne.Container
	statusLabel     *widget.Label
	statusHide      *time.Timer

	// Debug overlay
	debugContainer *fyne.Container
	debugLabel     *widget.Label

	// Settings dialog, rebuilt on every open
	settingsDialog *SettingsDialog
}

// NewRootUI creates and initializes the screensaver UI
func NewRootUI(window fyne.Window, settings *config.Settings, controller *rotation.Controller, renderer *Renderer, logger *log.Logger) *RootUI {
	ui := &RootUI{
		window:     window,
		settings:   settings,
		controller: controller,
		renderer:   renderer,
		logger:     logger,
	}

	// Swap the wall on every new assignment, surface controller events
	ui.controller.SetAssignmentCallback(ui.onAssignment)
	ui.controller.SetEventCallback(ui.onRotationEvent)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.wallHolder = container.NewStack()

	// Transient status overlay, bottom-left
	ui.statusLabel = widget.NewLabel("")
	ui.statusContainer = container.NewVBox(ui.statusLabel)
	ui.statusContainer.Hide()

	// Debug overlay, top-left, only populated in debug mode
	ui.debugLabel = widget.NewLabel("")
	ui.debugLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.debugContainer = container.NewVBox(ui.debugLabel)
	if !ui.settings.GetDebugMode() {
		ui.debugContainer.Hide()
	}

	overlay := NewTouchOverlay(ui.onGesture)

	content := container.NewStack(
		ui.wallHolder,
		container.NewBorder(
			container.NewHBox(ui.debugContainer),
			container.NewHBox(ui.statusContainer),
			nil, nil,
		),
		overlay,
	)
	ui.window.SetContent(content)

	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)
}

// onTypedKey maps keyboard input to slideshow controls
func (ui *RootUI) onTypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyEscape, fyne.KeyQ:
		ui.controller.Stop()
		ui.window.Close()
	case fyne.KeySpace:
		ui.togglePause()
	case fyne.KeyRight, fyne.KeyReturn, fyne.KeyEnter:
		ui.controller.Advance()
	case fyne.KeyD:
		ui.toggleDebug()
	case fyne.KeyS, fyne.KeyC:
		ui.showSettings()
	}
}

// showSettings opens the settings dialog, holding rotation while it is up
func (ui *RootUI) showSettings() {
	resume := ui.controller.State() == rotation.StateRunning
	if resume {
		ui.controller.Pause()
	}

	sd := NewSettingsDialog(ui.settings, ui.window)
	sd.SetOnClosed(func() {
		if resume {
			ui.controller.Resume()
		}
	})
	ui.settingsDialog = sd
	sd.Show()
}

// onGesture maps touch gestures to slideshow controls
func (ui *RootUI) onGesture(gesture GestureType) {
	switch gesture {
	case GestureTap, GestureSwipeLeft, GestureSwipeRight:
		ui.controller.Advance()
	case GestureLongPress:
		ui.togglePause()
	}
}

// togglePause flips between paused and running
func (ui *RootUI) togglePause() {
	switch ui.controller.State() {
	case rotation.StateRunning:
		ui.controller.Pause()
	case rotation.StatePaused:
		ui.controller.Resume()
	}
}

// toggleDebug flips the debug overlay and persists the preference
func (ui *RootUI) toggleDebug() {
	debug := !ui.settings.GetDebugMode()
	ui.settings.SetDebugMode(debug)
	fyne.Do(func() {
		if debug {
			ui.debugContainer.Show()
		} else {
			ui.debugContainer.Hide()
		}
	})
}

// onAssignment renders a new assignment and swaps it into the wall. It runs
// on the controller's goroutine, so images are decoded here and only the
// cheap canvas swap crosses into the UI thread.
func (ui *RootUI) onAssignment(a *selector.Assignment) {
	canvasSize := ui.window.Canvas().Size()
	if canvasSize.Width <= 0 || canvasSize.Height <= 0 {
		canvasSize = fyne.NewSize(float32(ui.renderer.screenWidth), float32(ui.renderer.screenHeight))
	}

	wall := ui.renderer.Render(a, canvasSize)
	debugText := ui.debugText(a)

	fyne.Do(func() {
		ui.wallHolder.Objects = []fyne.CanvasObject{wall}
		ui.wallHolder.Refresh()
		ui.debugLabel.SetText(debugText)
	})
}

// onRotationEvent surfaces controller state changes in the overlays
func (ui *RootUI) onRotationEvent(event rotation.Event) {
	switch event.Type {
	case rotation.EventPaused:
		ui.showStatus(IconPause+" Paused", false)
	case rotation.EventResumed:
		ui.showStatus(IconPlay+" Resumed", true)
	case rotation.EventLayoutUnsupported:
		ui.logger.Warn("Layout not supported on this screen", "layout", event.Layout)
		ui.showStatus(fmt.Sprintf("%s Layout %q unavailable on this screen", IconError, event.Layout), true)
	case rotation.EventSelectionRetry:
		ui.logger.Debug("Layout retried", "layout", event.Layout, "error", event.Err)
	case rotation.EventEmptyPool:
		ui.showStatus(IconError+" No photos found", false)
	}
}

// showStatus shows a transient message; autoHide clears it after a delay.
// The pause indicator stays until the next event replaces it.
func (ui *RootUI) showStatus(message string, autoHide bool) {
	fyne.Do(func() {
		ui.statusLabel.SetText(message)
		ui.statusContainer.Show()

		if ui.statusHide != nil {
			ui.statusHide.Stop()
			ui.statusHide = nil
		}
		if autoHide {
			ui.statusHide = time.AfterFunc(StatusOverlayAutoHide, func() {
				fyne.Do(func() {
					ui.statusContainer.Hide()
				})
			})
		}
	})
}

// debugText formats the current assignment for the debug overlay
func (ui *RootUI) debugText(a *selector.Assignment) string {
	text := fmt.Sprintf("%s  layout=%s  panes=%d", a.ID, a.Layout.Name, len(a.Placements))
	for _, p := range a.Placements {
		text += fmt.Sprintf("\n%s: %s [%s] %dx%d %s %s crop=%.2f",
			p.Pane.Name, p.Photo.FileName(), p.Photo.Category,
			p.Photo.Width, p.Photo.Height, p.Photo.FormattedDate(), p.Mode, p.CropCost)
	}
	return text
}
