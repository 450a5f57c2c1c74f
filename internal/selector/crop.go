package selector

import (
	"image"
	"math"

	"github.com/photopane/photo-saver/internal/layout"
	"github.com/photopane/photo-saver/internal/model"
)

// FitMode describes how a photo is fitted into a pane
type FitMode int

const (
	// FitCover scales the photo to cover the pane and center-crops the excess
	FitCover FitMode = iota

	// FitLetterbox keeps the full photo visible and pads the remainder
	FitLetterbox
)

// String returns the string representation of FitMode
func (m FitMode) String() string {
	if m == FitLetterbox {
		return "letterbox"
	}
	return "cover"
}

// CropCost returns the fraction of source pixels removed along the cropped
// axis when cover-fitting a photo of photoRatio into a pane of paneRatio.
// Degenerate ratios cost 1 so they never pass a threshold check.
func CropCost(photoRatio, paneRatio float64) float64 {
	if photoRatio <= 0 || paneRatio <= 0 {
		return 1
	}
	if photoRatio > paneRatio {
		return 1 - paneRatio/photoRatio
	}
	return 1 - photoRatio/paneRatio
}

// Placement is one pane's share of an assignment: the chosen photo plus the
// geometry the renderer needs to draw it.
type Placement struct {
	Pane     layout.Pane
	Photo    model.PhotoRecord
	Mode     FitMode
	CropCost float64

	// Frame is where the photo is drawn, in screen coordinates. For cover
	// mode it equals the pane rect; for letterbox mode it is the centered
	// sub-rect that preserves the photo's aspect ratio.
	Frame image.Rectangle

	// SourceCrop is the portion of the source image shown, in photo pixel
	// coordinates. For letterbox mode it is the full image.
	SourceCrop image.Rectangle
}

// makePlacement computes fit geometry for a photo in a pane. Categories that
// preserve aspect ratio are letterboxed at zero crop cost; everything else is
// cover-fitted with a centered crop.
func makePlacement(pane layout.Pane, photo model.PhotoRecord) Placement {
	paneRatio := float64(pane.Rect.Dx()) / float64(pane.Rect.Dy())
	photoRatio := photo.AspectRatio()

	if photo.Category.Preserve() {
		return Placement{
			Pane:       pane,
			Photo:      photo,
			Mode:       FitLetterbox,
			CropCost:   0,
			Frame:      letterboxFrame(pane.Rect, photoRatio),
			SourceCrop: image.Rect(0, 0, photo.Width, photo.Height),
		}
	}

	return Placement{
		Pane:       pane,
		Photo:      photo,
		Mode:       FitCover,
		CropCost:   CropCost(photoRatio, paneRatio),
		Frame:      pane.Rect,
		SourceCrop: coverCrop(photo.Width, photo.Height, paneRatio),
	}
}

// letterboxFrame returns the largest rect of the photo's aspect ratio that
// fits inside the pane, centered
func letterboxFrame(pane image.Rectangle, photoRatio float64) image.Rectangle {
	if photoRatio <= 0 {
		return pane
	}
	paneW, paneH := pane.Dx(), pane.Dy()
	w, h := paneW, int(math.Round(float64(paneW)/photoRatio))
	if h > paneH {
		h = paneH
		w = int(math.Round(float64(paneH) * photoRatio))
	}
	x0 := pane.Min.X + (paneW-w)/2
	y0 := pane.Min.Y + (paneH-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}

// coverCrop returns the centered source rect of paneRatio cut from a
// photoW x photoH image
func coverCrop(photoW, photoH int, paneRatio float64) image.Rectangle {
	if photoW <= 0 || photoH <= 0 || paneRatio <= 0 {
		return image.Rect(0, 0, photoW, photoH)
	}
	photoRatio := float64(photoW) / float64(photoH)
	if photoRatio > paneRatio {
		w := int(math.Round(float64(photoH) * paneRatio))
		x0 := (photoW - w) / 2
		return image.Rect(x0, 0, x0+w, photoH)
	}
	h := int(math.Round(float64(photoW) / paneRatio))
	y0 := (photoH - h) / 2
	return image.Rect(0, y0, photoW, y0+h)
}
