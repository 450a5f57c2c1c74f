package layout

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// AutoLayout selects layouts by weighted random rotation instead of pinning one
const AutoLayout = "auto"

// UnsupportedLayoutError reports a fixed layout that is not eligible for the
// current screen (or does not exist at all)
type UnsupportedLayoutError struct {
	Name         string
	ScreenWidth  int
	ScreenHeight int
}

func (e *UnsupportedLayoutError) Error() string {
	return fmt.Sprintf("layout %q not supported for screen %dx%d",
		e.Name, e.ScreenWidth, e.ScreenHeight)
}

// Catalog holds every layout resolved against one screen size
type Catalog struct {
	screenWidth  int
	screenHeight int
	layouts      []*Layout
	src          rand.Source
}

// NewCatalog builds the catalog for a screen size. Pane rectangles are
// computed here, once, not per tick. src seeds weighted selection; nil uses
// the global source.
func NewCatalog(screenWidth, screenHeight int, src rand.Source) *Catalog {
	layouts := builtinLayouts()
	for _, l := range layouts {
		l.resolve(screenWidth, screenHeight)
	}
	return &Catalog{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		layouts:      layouts,
		src:          src,
	}
}

// Layouts returns every defined layout, eligible or not
func (c *Catalog) Layouts() []*Layout {
	return c.layouts
}

// Eligible returns the layouts whose minimum resolution fits the screen
func (c *Catalog) Eligible() []*Layout {
	var out []*Layout
	for _, l := range c.layouts {
		if l.EligibleFor(c.screenWidth, c.screenHeight) {
			out = append(out, l)
		}
	}
	return out
}

// Lookup returns a layout by name
func (c *Catalog) Lookup(name string) (*Layout, bool) {
	for _, l := range c.layouts {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// Fallback returns the single-pane layout, which is eligible for every
// screen, accepts every category, and therefore cannot fail selection
func (c *Catalog) Fallback() *Layout {
	l, _ := c.Lookup(SinglePane)
	return l
}

// Choose picks the next layout. A fixed name other than "auto" returns that
// layout, or UnsupportedLayoutError when it is missing or ineligible.
// Otherwise a weighted random selection is made over the eligible layouts:
// overrides replace built-in weights per key, unknown names are ignored, and
// weights are normalized before sampling.
func (c *Catalog) Choose(overrides map[string]float64, fixed string) (*Layout, error) {
	if fixed != "" && fixed != AutoLayout {
		l, ok := c.Lookup(fixed)
		if !ok || !l.EligibleFor(c.screenWidth, c.screenHeight) {
			return nil, &UnsupportedLayoutError{
				Name:         fixed,
				ScreenWidth:  c.screenWidth,
				ScreenHeight: c.screenHeight,
			}
		}
		return l, nil
	}

	eligible := c.Eligible()
	if len(eligible) == 0 {
		return c.Fallback(), nil
	}
	if len(eligible) == 1 {
		return eligible[0], nil
	}

	weights := make([]float64, len(eligible))
	var total float64
	for i, l := range eligible {
		w := l.Weight
		if ov, ok := overrides[l.Name]; ok && ov >= 0 {
			w = ov
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		// Every weight overridden to zero; fall back to uniform.
		for i := range weights {
			weights[i] = 1
		}
		total = float64(len(weights))
	}
	for i := range weights {
		weights[i] /= total
	}

	idx, ok := sampleuv.NewWeighted(weights, c.src).Take()
	if !ok {
		return c.Fallback(), nil
	}
	return eligible[idx], nil
}
