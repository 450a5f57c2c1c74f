package ui

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/charmbracelet/log"

	"github.com/photopane/photo-saver/internal/selector"
)

// Renderer turns assignments into positioned canvas images. Pane geometry is
// computed in screen pixel coordinates by the layout catalog; the renderer
// scales it into Fyne device-independent units for the current canvas size.
type Renderer struct {
	screenWidth  int
	screenHeight int
	logger       *log.Logger
}

// NewRenderer creates a renderer for the given screen resolution
func NewRenderer(screenWidth, screenHeight int, logger *log.Logger) *Renderer {
	return &Renderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		logger:       logger,
	}
}

// Render decodes each placement's photo and lays the images out according to
// the assignment's pane frames. Panes whose photo cannot be decoded are
// skipped; the black background shows through instead.
func (r *Renderer) Render(a *selector.Assignment, canvasSize fyne.Size) *fyne.Container {
	scaleX := canvasSize.Width / float32(r.screenWidth)
	scaleY := canvasSize.Height / float32(r.screenHeight)

	objects := make([]fyne.CanvasObject, 0, len(a.Placements))
	for _, p := range a.Placements {
		img, err := loadCropped(p)
		if err != nil {
			r.logger.Warn("Skipping pane, photo decode failed",
				"pane", p.Pane.Name, "path", p.Photo.Path, "error", err)
			continue
		}

		ci := canvas.NewImageFromImage(img)
		ci.FillMode = canvas.ImageFillStretch
		ci.ScaleMode = canvas.ImageScaleSmooth

		frame := p.Frame
		ci.Move(fyne.NewPos(float32(frame.Min.X)*scaleX, float32(frame.Min.Y)*scaleY))
		ci.Resize(fyne.NewSize(float32(frame.Dx())*scaleX, float32(frame.Dy())*scaleY))
		objects = append(objects, ci)
	}

	return container.NewWithoutLayout(objects...)
}

// subImager is implemented by the stdlib raster image types.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// loadCropped decodes a placement's photo and applies its source crop. The
// crop is taken at decode time because canvas images draw their full source.
func loadCropped(p selector.Placement) (image.Image, error) {
	f, err := os.Open(p.Photo.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open photo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode photo: %w", err)
	}

	crop := p.SourceCrop
	if crop == img.Bounds() || crop.Empty() {
		return img, nil
	}

	if si, ok := img.(subImager); ok {
		return si.SubImage(crop), nil
	}

	// Rare decoder types without SubImage get copied instead
	dst := image.NewRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	draw.Draw(dst, dst.Bounds(), img, crop.Min, draw.Src)
	return dst, nil
}
