package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/photopane/photo-saver/internal/layout"
	"github.com/photopane/photo-saver/internal/platform"
	"github.com/photopane/photo-saver/internal/rotation"
	"github.com/photopane/photo-saver/internal/selector"
)

// Settings keys for Fyne preferences
const (
	KeyImageFolder       = "image_folder"
	KeyChangeInterval    = "change_interval_ms"
	KeyLayoutType        = "layout_type"
	KeyDebugMode         = "debug_mode"
	KeyRecencyWindowDays = "recency_window_days"
	KeyRecencyMultiplier = "recency_multiplier"
	KeyCropThreshold     = "crop_threshold"
	KeyLayoutRetries     = "layout_retries"
)

// Default values
const (
	DefaultChangeIntervalMS = 15000
	DefaultLayoutType       = layout.AutoLayout
	DefaultDebugMode        = false

	MinChangeIntervalMS = 1000
	MaxChangeIntervalMS = 3600000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetImageFolder returns the configured photo folder
func (s *Settings) GetImageFolder() string {
	folder := s.app.Preferences().String(KeyImageFolder)
	if folder == "" {
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			defaultDir = "/tmp/photos"
		}
		s.SetImageFolder(defaultDir)
		return defaultDir
	}
	return folder
}

// SetImageFolder sets the photo folder
func (s *Settings) SetImageFolder(folder string) {
	s.app.Preferences().SetString(KeyImageFolder, folder)
}

// GetChangeInterval returns how often the layout and photos change
func (s *Settings) GetChangeInterval() time.Duration {
	ms := s.app.Preferences().Int(KeyChangeInterval)
	if ms <= 0 {
		s.SetChangeIntervalMS(DefaultChangeIntervalMS)
		return DefaultChangeIntervalMS * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

// SetChangeIntervalMS sets the change interval in milliseconds, clamped to a
// sane range
func (s *Settings) SetChangeIntervalMS(ms int) {
	if ms < MinChangeIntervalMS {
		ms = MinChangeIntervalMS
	}
	if ms > MaxChangeIntervalMS {
		ms = MaxChangeIntervalMS
	}
	s.app.Preferences().SetInt(KeyChangeInterval, ms)
}

// GetLayoutType returns the configured layout name, or "auto" for weighted
// rotation
func (s *Settings) GetLayoutType() string {
	layoutType := s.app.Preferences().String(KeyLayoutType)
	if layoutType == "" {
		s.SetLayoutType(DefaultLayoutType)
		return DefaultLayoutType
	}
	return layoutType
}

// SetLayoutType sets the layout type
func (s *Settings) SetLayoutType(layoutType string) {
	if layoutType == "" {
		layoutType = DefaultLayoutType
	}
	s.app.Preferences().SetString(KeyLayoutType, layoutType)
}

// GetDebugMode returns whether metadata overlays are shown on photos
func (s *Settings) GetDebugMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyDebugMode, DefaultDebugMode)
}

// SetDebugMode sets debug mode
func (s *Settings) SetDebugMode(debug bool) {
	s.app.Preferences().SetBool(KeyDebugMode, debug)
}

// GetRecencyWindowDays returns the capture-date window half-width in days
func (s *Settings) GetRecencyWindowDays() int {
	days := s.app.Preferences().IntWithFallback(KeyRecencyWindowDays, selector.DefaultRecencyWindowDays)
	if days <= 0 {
		return selector.DefaultRecencyWindowDays
	}
	return days
}

// SetRecencyWindowDays sets the recency window half-width
func (s *Settings) SetRecencyWindowDays(days int) {
	if days < 1 {
		days = 1
	}
	s.app.Preferences().SetInt(KeyRecencyWindowDays, days)
}

// GetRecencyMultiplier returns the selection weight for photos whose capture
// date falls inside the recency window
func (s *Settings) GetRecencyMultiplier() float64 {
	m := s.app.Preferences().FloatWithFallback(KeyRecencyMultiplier, selector.DefaultRecencyMultiplier)
	if m <= 0 {
		return selector.DefaultRecencyMultiplier
	}
	return m
}

// SetRecencyMultiplier sets the recency weight multiplier
func (s *Settings) SetRecencyMultiplier(m float64) {
	if m < 1 {
		m = 1
	}
	s.app.Preferences().SetFloat(KeyRecencyMultiplier, m)
}

// GetCropThreshold returns the maximum accepted crop cost for cover-fitted
// photos
func (s *Settings) GetCropThreshold() float64 {
	threshold := s.app.Preferences().FloatWithFallback(KeyCropThreshold, selector.DefaultCropThreshold)
	if threshold <= 0 || threshold > 1 {
		return selector.DefaultCropThreshold
	}
	return threshold
}

// SetCropThreshold sets the crop cost threshold, clamped to (0, 1]
func (s *Settings) SetCropThreshold(threshold float64) {
	if threshold <= 0 {
		threshold = selector.DefaultCropThreshold
	}
	if threshold > 1 {
		threshold = 1
	}
	s.app.Preferences().SetFloat(KeyCropThreshold, threshold)
}

// GetLayoutRetries returns how many layouts are tried after a selection
// failure before falling back to single pane
func (s *Settings) GetLayoutRetries() int {
	retries := s.app.Preferences().IntWithFallback(KeyLayoutRetries, rotation.DefaultLayoutRetries)
	if retries <= 0 {
		return rotation.DefaultLayoutRetries
	}
	return retries
}

// SetLayoutRetries sets the layout retry bound
func (s *Settings) SetLayoutRetries(retries int) {
	if retries < 1 {
		retries = 1
	}
	s.app.Preferences().SetInt(KeyLayoutRetries, retries)
}

// SelectorConfig assembles the selector tuning from preferences and the
// optional overrides file
func (s *Settings) SelectorConfig() selector.Config {
	return selector.Config{
		RecencyWindowDays: s.GetRecencyWindowDays(),
		RecencyMultiplier: s.GetRecencyMultiplier(),
		CropThreshold:     s.GetCropThreshold(),
	}
}

// RotationConfig assembles the rotation controller tuning from preferences
func (s *Settings) RotationConfig(weights map[string]float64) rotation.Config {
	return rotation.Config{
		Interval:      s.GetChangeInterval(),
		FixedLayout:   s.GetLayoutType(),
		Weights:       weights,
		LayoutRetries: s.GetLayoutRetries(),
	}
}
