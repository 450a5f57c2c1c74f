package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/photopane/photo-saver/internal/config"
	"github.com/photopane/photo-saver/internal/layout"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	imageFolderEntry *widget.Entry
	intervalEntry    *widget.Entry
	layoutSelect     *widget.Select
	debugCheck       *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// Hide dismisses the settings dialog
func (sd *SettingsDialog) Hide() {
	sd.dialog.Hide()
}

// SetOnClosed registers a callback invoked when the dialog is dismissed,
// whether saved or cancelled
func (sd *SettingsDialog) SetOnClosed(callback func()) {
	sd.dialog.SetOnClosed(callback)
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Photo folder selection
	sd.imageFolderEntry = widget.NewEntry()
	sd.imageFolderEntry.SetPlaceHolder("Photo folder path")

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseFolder)
	imageFolderRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.imageFolderEntry)

	// Rotation interval in seconds
	sd.intervalEntry = widget.NewEntry()
	sd.intervalEntry.SetPlaceHolder("Seconds between changes")

	// Layout mode selection
	layoutOptions := []string{layout.AutoLayout}
	layoutOptions = append(layoutOptions, layout.Names()...)
	sd.layoutSelect = widget.NewSelect(layoutOptions, nil)

	// Debug overlay toggle
	sd.debugCheck = widget.NewCheck("Show debug overlay", nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Slideshow Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Photo Folder:"),
		imageFolderRow,

		widget.NewLabel("Change Interval (seconds):"),
		sd.intervalEntry,

		widget.NewLabel("Layout:"),
		sd.layoutSelect,

		widget.NewSeparator(),
		sd.debugCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 360))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.imageFolderEntry.SetText(sd.settings.GetImageFolder())
	sd.intervalEntry.SetText(strconv.Itoa(int(sd.settings.GetChangeInterval().Seconds())))
	sd.layoutSelect.SetSelected(sd.settings.GetLayoutType())
	sd.debugCheck.SetChecked(sd.settings.GetDebugMode())
}

// onBrowseFolder handles photo folder browsing
func (sd *SettingsDialog) onBrowseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.imageFolderEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if folder := sd.imageFolderEntry.Text; folder != "" {
		sd.settings.SetImageFolder(folder)
	}

	if intervalStr := sd.intervalEntry.Text; intervalStr != "" {
		if seconds, err := strconv.Atoi(intervalStr); err == nil {
			sd.settings.SetChangeIntervalMS(seconds * 1000)
		}
	}

	if sd.layoutSelect.Selected != "" {
		sd.settings.SetLayoutType(sd.layoutSelect.Selected)
	}

	sd.settings.SetDebugMode(sd.debugCheck.Checked)

	// Changes take effect on the next launch of the saver
	dialog.ShowInformation("Settings", "Settings saved successfully!", sd.window)
}
