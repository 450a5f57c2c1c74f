package selector

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/photopane/photo-saver/internal/layout"
	"github.com/photopane/photo-saver/internal/model"
)

// Default selection tuning
const (
	DefaultRecencyWindowDays = 7
	DefaultRecencyMultiplier = 3.0
	DefaultCropThreshold     = 0.20
)

// Config tunes photo selection
type Config struct {
	RecencyWindowDays int     // half-width of the capture-date window around today
	RecencyMultiplier float64 // selection weight for photos inside the window
	CropThreshold     float64 // maximum crop cost accepted for cover-fitted photos
}

// DefaultConfig returns the built-in selection tuning
func DefaultConfig() Config {
	return Config{
		RecencyWindowDays: DefaultRecencyWindowDays,
		RecencyMultiplier: DefaultRecencyMultiplier,
		CropThreshold:     DefaultCropThreshold,
	}
}

// Selector assigns photos to layout panes
type Selector struct {
	cfg Config
	src rand.Source

	// Now is the clock used for recency weighting; overridable in tests
	Now func() time.Time
}

// New creates a selector. src seeds weighted sampling; nil uses the global
// source (tests inject a seeded one for reproducibility).
func New(cfg Config, src rand.Source) *Selector {
	if cfg.RecencyWindowDays <= 0 {
		cfg.RecencyWindowDays = DefaultRecencyWindowDays
	}
	if cfg.RecencyMultiplier <= 0 {
		cfg.RecencyMultiplier = DefaultRecencyMultiplier
	}
	if cfg.CropThreshold <= 0 {
		cfg.CropThreshold = DefaultCropThreshold
	}
	return &Selector{cfg: cfg, src: src, Now: time.Now}
}

// SelectForLayout assigns one photo to every pane of the layout. Panes are
// filled in order, each walking its category fallback list. On success the
// chosen identities are consumed from their category queues; on failure the
// queues are left untouched and a SelectionFailure names the pane that could
// not be filled.
func (s *Selector) SelectForLayout(l *layout.Layout, pool *model.Pool, hist *History) (*Assignment, error) {
	hist.BeginLayout()

	placements := make([]Placement, 0, len(l.Panes))
	for _, pane := range l.Panes {
		photo, ok := s.selectForPane(pane, pool, hist)
		if !ok {
			return nil, &SelectionFailure{Layout: l.Name, Pane: pane.Name}
		}
		hist.MarkInLayout(photo.Path)
		placements = append(placements, makePlacement(pane, photo))
	}

	for _, p := range placements {
		hist.Consume(p.Photo)
	}

	return &Assignment{
		ID:         generateAssignmentID(),
		Layout:     l,
		Placements: placements,
		CreatedAt:  s.Now(),
	}, nil
}

// selectForPane walks the pane's category priority list. AcceptAny panes fall
// back to the lowest-crop candidate across the whole pool, ignoring the
// threshold, so they cannot fail while any photo remains unused.
func (s *Selector) selectForPane(pane layout.Pane, pool *model.Pool, hist *History) (model.PhotoRecord, bool) {
	paneRatio := float64(pane.Rect.Dx()) / float64(pane.Rect.Dy())

	for _, c := range pane.Categories {
		photo, ok := s.pickFromCategory(c, paneRatio, pool, hist)
		if ok {
			return photo, true
		}
	}

	if pane.AcceptAny {
		return s.pickBestEffort(paneRatio, pool, hist)
	}
	return model.PhotoRecord{}, false
}

// pickFromCategory samples one photo from a category's not-yet-shown
// candidates whose crop cost fits the threshold, weighted by recency
func (s *Selector) pickFromCategory(c model.Category, paneRatio float64, pool *model.Pool, hist *History) (model.PhotoRecord, bool) {
	candidates := hist.Candidates(c, pool)
	if len(candidates) == 0 {
		return model.PhotoRecord{}, false
	}

	var eligible []model.PhotoRecord
	for _, photo := range candidates {
		if c.Preserve() || CropCost(photo.AspectRatio(), paneRatio) <= s.cfg.CropThreshold {
			eligible = append(eligible, photo)
		}
	}
	if len(eligible) == 0 {
		return model.PhotoRecord{}, false
	}

	now := s.Now()
	weights := make([]float64, len(eligible))
	for i, photo := range eligible {
		weights[i] = 1
		if InRecencyWindow(photo.TakenAt, now, s.cfg.RecencyWindowDays) {
			weights[i] = s.cfg.RecencyMultiplier
		}
	}

	idx, ok := sampleuv.NewWeighted(weights, s.src).Take()
	if !ok {
		return model.PhotoRecord{}, false
	}
	return eligible[idx], true
}

// pickBestEffort returns the unused photo with the lowest crop cost for the
// pane, across every category
func (s *Selector) pickBestEffort(paneRatio float64, pool *model.Pool, hist *History) (model.PhotoRecord, bool) {
	var (
		best     model.PhotoRecord
		bestCost float64
		found    bool
	)
	for _, c := range pool.Categories() {
		for _, photo := range hist.Candidates(c, pool) {
			cost := CropCost(photo.AspectRatio(), paneRatio)
			if c.Preserve() {
				cost = 0
			}
			if !found || cost < bestCost {
				best, bestCost, found = photo, cost, true
			}
		}
	}
	return best, found
}

// InRecencyWindow reports whether a capture date falls within windowDays of
// now, compared by month and day only. The window wraps across the year
// boundary, so late December photos match early January dates.
func InRecencyWindow(taken, now time.Time, windowDays int) bool {
	if taken.IsZero() {
		return false
	}

	monthDay := func(t time.Time) int {
		return int(t.Month())*100 + t.Day()
	}

	start := monthDay(now.AddDate(0, 0, -windowDays))
	end := monthDay(now.AddDate(0, 0, windowDays))
	md := monthDay(taken)

	if start > end {
		// Window wraps the year boundary.
		return md >= start || md <= end
	}
	return md >= start && md <= end
}
