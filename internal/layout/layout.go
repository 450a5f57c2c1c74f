package layout

import (
	"image"
	"math"
	"time"

	"github.com/photopane/photo-saver/internal/model"
)

// Layout names
const (
	SinglePane = "single_pane"
	DualPane   = "dual_pane"
	TriplePane = "triple_pane"
	QuadPane   = "quad_pane"
)

// Default display duration hint for every built-in layout
const DefaultDisplayDuration = 30 * time.Second

// Pane is a rectangular region of a layout assigned to show one photo.
// Geometry is defined as fractions of the screen so the same definition
// scales to any resolution; Rect holds the resolved pixel rectangle.
type Pane struct {
	Name       string
	FracX      float64
	FracY      float64
	FracW      float64
	FracH      float64
	Rect       image.Rectangle
	Categories []model.Category // fallback order, first tried first
	AcceptAny  bool             // pane takes any photo when every category fails
}

// Layout is a named set of panes with eligibility rules and a selection weight
type Layout struct {
	Name            string
	Panes           []Pane
	MinWidth        int
	MinHeight       int
	DisplayDuration time.Duration
	Weight          float64
}

// EligibleFor reports whether the layout fits the given screen size
func (l *Layout) EligibleFor(screenWidth, screenHeight int) bool {
	return screenWidth >= l.MinWidth && screenHeight >= l.MinHeight
}

// resolve computes pixel rectangles for all panes. Shared fractional
// boundaries round identically, so adjacent panes meet without overlapping.
func (l *Layout) resolve(screenWidth, screenHeight int) {
	for i := range l.Panes {
		p := &l.Panes[i]
		x0 := int(math.Round(p.FracX * float64(screenWidth)))
		y0 := int(math.Round(p.FracY * float64(screenHeight)))
		x1 := int(math.Round((p.FracX + p.FracW) * float64(screenWidth)))
		y1 := int(math.Round((p.FracY + p.FracH) * float64(screenHeight)))
		p.Rect = image.Rect(x0, y0, x1, y1)
	}
}

// builtinLayouts returns the layout definitions before pixel resolution
func builtinLayouts() []*Layout {
	return []*Layout{
		{
			Name: SinglePane,
			Panes: []Pane{
				{
					Name: "main", FracX: 0, FracY: 0, FracW: 1, FracH: 1,
					Categories: model.AllCategories(),
					AcceptAny:  true,
				},
			},
			MinWidth: 0, MinHeight: 0,
			DisplayDuration: DefaultDisplayDuration,
			Weight:          1.0,
		},
		{
			Name: DualPane,
			Panes: []Pane{
				{
					Name: "left", FracX: 0, FracY: 0, FracW: 0.6, FracH: 1,
					Categories: []model.Category{model.CategoryVertical4x3, model.CategorySquare},
				},
				{
					Name: "right", FracX: 0.6, FracY: 0, FracW: 0.4, FracH: 1,
					Categories: []model.Category{model.CategoryVertical4x3, model.CategoryVertical16x9},
				},
			},
			MinWidth: 1920, MinHeight: 1080,
			DisplayDuration: DefaultDisplayDuration,
			Weight:          2.0,
		},
		{
			Name: TriplePane,
			Panes: []Pane{
				{
					Name: "left", FracX: 0, FracY: 0, FracW: 1.0 / 3, FracH: 1,
					Categories: []model.Category{model.CategoryVertical4x3, model.CategorySquare},
				},
				{
					Name: "center", FracX: 1.0 / 3, FracY: 0, FracW: 1.0 / 3, FracH: 1,
					Categories: []model.Category{model.CategoryVertical16x9, model.CategoryVertical4x3},
				},
				{
					Name: "right", FracX: 2.0 / 3, FracY: 0, FracW: 1.0 / 3, FracH: 1,
					Categories: []model.Category{model.CategoryVertical16x9, model.CategoryVertical4x3},
				},
			},
			MinWidth: 1920, MinHeight: 1080,
			DisplayDuration: DefaultDisplayDuration,
			Weight:          2.0,
		},
		{
			Name: QuadPane,
			Panes: []Pane{
				{
					Name: "top_left", FracX: 0, FracY: 0, FracW: 0.5, FracH: 0.5,
					Categories: []model.Category{model.CategorySquare},
				},
				{
					Name: "top_right", FracX: 0.5, FracY: 0, FracW: 0.5, FracH: 0.5,
					Categories: []model.Category{model.CategoryLandscape16x9},
				},
				{
					Name: "bottom_left", FracX: 0, FracY: 0.5, FracW: 0.5, FracH: 0.5,
					Categories: []model.Category{model.CategoryVertical4x3},
				},
				{
					Name: "bottom_right", FracX: 0.5, FracY: 0.5, FracW: 0.5, FracH: 0.5,
					Categories: []model.Category{model.CategoryVertical16x9},
				},
			},
			MinWidth: 1920, MinHeight: 1080,
			DisplayDuration: DefaultDisplayDuration,
			Weight:          1.0,
		},
	}
}

// DefaultWeights returns the built-in selection weight for every layout name
func DefaultWeights() map[string]float64 {
	weights := make(map[string]float64)
	for _, l := range builtinLayouts() {
		weights[l.Name] = l.Weight
	}
	return weights
}

// Names returns the built-in layout names in declaration order
func Names() []string {
	layouts := builtinLayouts()
	names := make([]string, 0, len(layouts))
	for _, l := range layouts {
		names = append(names, l.Name)
	}
	return names
}
