package main

import (
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"

	"github.com/photopane/photo-saver/internal/config"
	"github.com/photopane/photo-saver/internal/layout"
	"github.com/photopane/photo-saver/internal/model"
	"github.com/photopane/photo-saver/internal/platform"
	"github.com/photopane/photo-saver/internal/rotation"
	"github.com/photopane/photo-saver/internal/scan"
	"github.com/photopane/photo-saver/internal/selector"
	"github.com/photopane/photo-saver/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.photopane.photo-saver"
	AppName = "Photo Saver"

	// Reference resolution for pane geometry. The renderer rescales pane
	// frames to the real canvas size, so this only anchors aspect math and
	// minimum-resolution eligibility.
	ScreenWidth  = 1920
	ScreenHeight = 1080
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "photo-saver",
	})
	logger.Info("Starting", "version", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewSaverTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.SetPadded(false)
	myWindow.SetFullScreen(true)

	// Initialize settings
	settings := config.NewSettings(myApp)
	if settings.GetDebugMode() {
		logger.SetLevel(log.DebugLevel)
	}

	// Resolve the photo folder, falling back to ~/Pictures/Screensaver
	imageFolder := settings.GetImageFolder()
	if err := platform.ValidateImageFolder(imageFolder); err != nil {
		logger.Warn("Configured photo folder not usable, falling back",
			"folder", imageFolder, "error", err)
		if fallback, ferr := platform.GetHomePicturesDir(); ferr == nil {
			platform.CreateDirectoryIfNotExists(fallback)
			imageFolder = fallback
		}
	}

	// Optional per-folder tuning file for weights and tolerances
	overrides, err := config.LoadOverrides(filepath.Join(imageFolder, config.OverridesFileName))
	if err != nil {
		logger.Warn("Ignoring malformed overrides file", "error", err)
		overrides = config.Overrides{}
	}

	// Scan and classify the photo library
	scanner := scan.NewScanner(model.RulesWithTolerances(overrides.Tolerances), logger)
	pool, err := scanner.Scan(imageFolder)
	if err != nil {
		logger.Error("Photo scan failed", "folder", imageFolder, "error", err)
		pool = model.NewPool()
	}
	logger.Info("Photo scan complete", "folder", imageFolder, "photos", pool.Len())

	// Independent RNG streams for layout choice and photo selection
	seed := uint64(time.Now().UnixNano())
	catalog := layout.NewCatalog(ScreenWidth, ScreenHeight, rand.NewSource(seed))
	sel := selector.New(settings.SelectorConfig(), rand.NewSource(seed+1))
	hist := selector.NewHistory(rand.NewSource(seed + 2))

	controller := rotation.NewController(catalog, sel, hist, pool,
		settings.RotationConfig(overrides.Weights), nil, logger)

	// Create and setup UI
	renderer := ui.NewRenderer(ScreenWidth, ScreenHeight, logger)
	ui.NewRootUI(myWindow, settings, controller, renderer, logger)

	if err := controller.Start(); err != nil {
		logger.Error("Rotation not started", "error", err)
	}

	// Show and run
	myWindow.ShowAndRun()
	controller.Stop()
}
