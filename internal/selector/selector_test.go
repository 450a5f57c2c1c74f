package selector

import (
	"errors"
	"fmt"
	"image"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/photopane/photo-saver/internal/layout"
	"github.com/photopane/photo-saver/internal/model"
)

func addPhotos(pool *model.Pool, prefix string, n, w, h int, c model.Category) {
	for i := 0; i < n; i++ {
		pool.Add(model.PhotoRecord{
			Path:     fmt.Sprintf("%s-%02d.jpg", prefix, i),
			Width:    w,
			Height:   h,
			Category: c,
		})
	}
}

func newTestSelector(seed uint64) (*Selector, *History) {
	s := New(DefaultConfig(), rand.NewSource(seed))
	s.Now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	return s, NewHistory(rand.NewSource(seed + 1))
}

func TestSelectForLayoutUniqueAcrossPanes(t *testing.T) {
	pool := model.NewPool()
	addPhotos(pool, "v", 8, 750, 1000, model.CategoryVertical4x3)

	l := &layout.Layout{
		Name: "test_pair",
		Panes: []layout.Pane{
			{Name: "left", Rect: image.Rect(0, 0, 768, 1080),
				Categories: []model.Category{model.CategoryVertical4x3}},
			{Name: "right", Rect: image.Rect(768, 0, 1536, 1080),
				Categories: []model.Category{model.CategoryVertical4x3}},
		},
	}

	s, hist := newTestSelector(3)
	hist.Seed(pool)

	for i := 0; i < 4; i++ {
		a, err := s.SelectForLayout(l, pool, hist)
		if err != nil {
			t.Fatalf("tick %d: unexpected error: %v", i, err)
		}
		if len(a.Placements) != 2 {
			t.Fatalf("tick %d: got %d placements, expected 2", i, len(a.Placements))
		}
		if a.Placements[0].Photo.Path == a.Placements[1].Photo.Path {
			t.Errorf("tick %d: photo %s assigned to both panes", i, a.Placements[0].Photo.Path)
		}
	}
}

func TestSelectForLayoutCategoryFallback(t *testing.T) {
	// Screen 2560x1440, pane accepts [square, vertical_4x3]; the pool has 5
	// vertical_4x3 photos and no squares, so the pane falls back and succeeds.
	pool := model.NewPool()
	addPhotos(pool, "v43", 5, 750, 1000, model.CategoryVertical4x3)

	l := &layout.Layout{
		Name: "dual_pane_left_only",
		Panes: []layout.Pane{
			{Name: "a", Rect: image.Rect(0, 0, 1080, 1440),
				Categories: []model.Category{model.CategorySquare, model.CategoryVertical4x3}},
		},
	}

	s, hist := newTestSelector(5)
	hist.Seed(pool)

	a, err := s.SelectForLayout(l, pool, hist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Placements[0].Photo.Category != model.CategoryVertical4x3 {
		t.Errorf("selected category = %s, expected vertical_4x3 fallback",
			a.Placements[0].Photo.Category)
	}
}

func TestSelectForLayoutCropThreshold(t *testing.T) {
	// Square pane: the 16:9 landscape photos cost 1-1/1.78 = 0.44 > 0.20 and
	// must be rejected, so selection falls through to the square photos.
	pool := model.NewPool()
	addPhotos(pool, "wide", 5, 1920, 1080, model.CategoryLandscape16x9)
	addPhotos(pool, "sq", 5, 1000, 1000, model.CategorySquare)

	l := &layout.Layout{
		Name: "square_pane",
		Panes: []layout.Pane{
			{Name: "main", Rect: image.Rect(0, 0, 1000, 1000),
				Categories: []model.Category{model.CategoryLandscape16x9, model.CategorySquare}},
		},
	}

	s, hist := newTestSelector(9)
	hist.Seed(pool)

	for i := 0; i < 5; i++ {
		a, err := s.SelectForLayout(l, pool, hist)
		if err != nil {
			t.Fatalf("tick %d: unexpected error: %v", i, err)
		}
		p := a.Placements[0]
		if p.Photo.Category != model.CategorySquare {
			t.Errorf("tick %d: selected %s photo, expected square", i, p.Photo.Category)
		}
		if p.Mode == FitCover && p.CropCost > DefaultCropThreshold {
			t.Errorf("tick %d: crop cost %v exceeds threshold", i, p.CropCost)
		}
	}
}

func TestSelectForLayoutFailure(t *testing.T) {
	// Only ultra-wide photos, pane only takes squares.
	pool := model.NewPool()
	addPhotos(pool, "pano", 3, 2800, 1000, model.CategoryUltraWide)

	l := &layout.Layout{
		Name: "square_only",
		Panes: []layout.Pane{
			{Name: "main", Rect: image.Rect(0, 0, 1000, 1000),
				Categories: []model.Category{model.CategorySquare}},
		},
	}

	s, hist := newTestSelector(11)
	hist.Seed(pool)

	_, err := s.SelectForLayout(l, pool, hist)
	var failure *SelectionFailure
	if !errors.As(err, &failure) {
		t.Fatalf("error = %v, expected SelectionFailure", err)
	}
	if failure.Pane != "main" || failure.Layout != "square_only" {
		t.Errorf("failure names pane %q layout %q, expected main/square_only",
			failure.Pane, failure.Layout)
	}

	// Queues stay untouched on failure.
	if hist.QueueLen(model.CategoryUltraWide) != 3 {
		t.Errorf("queue consumed on failure: %d left, expected 3",
			hist.QueueLen(model.CategoryUltraWide))
	}
}

func TestSelectForLayoutAcceptAnyCannotFail(t *testing.T) {
	// AcceptAny pane with photos that all blow past the crop threshold.
	pool := model.NewPool()
	addPhotos(pool, "wide", 3, 1920, 1080, model.CategoryLandscape16x9)

	l := &layout.Layout{
		Name: "fallback_single",
		Panes: []layout.Pane{
			{Name: "main", Rect: image.Rect(0, 0, 1000, 1000),
				Categories: model.AllCategories(), AcceptAny: true},
		},
	}

	s, hist := newTestSelector(13)
	hist.Seed(pool)

	a, err := s.SelectForLayout(l, pool, hist)
	if err != nil {
		t.Fatalf("AcceptAny pane failed: %v", err)
	}
	if len(a.Placements) != 1 {
		t.Fatalf("got %d placements, expected 1", len(a.Placements))
	}
}

func TestSelectForLayoutLetterboxZeroCost(t *testing.T) {
	pool := model.NewPool()
	addPhotos(pool, "pano", 3, 2800, 1000, model.CategoryUltraWide)

	l := &layout.Layout{
		Name: "pano_pane",
		Panes: []layout.Pane{
			{Name: "main", Rect: image.Rect(0, 0, 1000, 1000),
				Categories: []model.Category{model.CategoryUltraWide}},
		},
	}

	s, hist := newTestSelector(17)
	hist.Seed(pool)

	a, err := s.SelectForLayout(l, pool, hist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := a.Placements[0]
	if p.Mode != FitLetterbox || p.CropCost != 0 {
		t.Errorf("ultra_wide placement mode=%s cost=%v, expected letterbox at zero cost",
			p.Mode, p.CropCost)
	}
}

func TestSelectForLayoutReproducible(t *testing.T) {
	run := func() []string {
		pool := model.NewPool()
		addPhotos(pool, "sq", 10, 1000, 1000, model.CategorySquare)

		l := &layout.Layout{
			Name: "single",
			Panes: []layout.Pane{
				{Name: "main", Rect: image.Rect(0, 0, 1000, 1000),
					Categories: []model.Category{model.CategorySquare}},
			},
		}

		s, hist := newTestSelector(23)
		hist.Seed(pool)

		var picks []string
		for i := 0; i < 10; i++ {
			a, err := s.SelectForLayout(l, pool, hist)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			picks = append(picks, a.Placements[0].Photo.Path)
		}
		return picks
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at pick %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestInRecencyWindow(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		taken    time.Time
		expected bool
	}{
		{"same day other year", time.Date(2019, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"window edge before", time.Date(2021, 6, 8, 0, 0, 0, 0, time.UTC), true},
		{"window edge after", time.Date(2021, 6, 22, 0, 0, 0, 0, time.UTC), true},
		{"just outside before", time.Date(2021, 6, 7, 0, 0, 0, 0, time.UTC), false},
		{"just outside after", time.Date(2021, 6, 23, 0, 0, 0, 0, time.UTC), false},
		{"far away", time.Date(2021, 12, 25, 0, 0, 0, 0, time.UTC), false},
		{"zero time", time.Time{}, false},
	}

	for _, test := range tests {
		if got := InRecencyWindow(test.taken, now, 7); got != test.expected {
			t.Errorf("%s: InRecencyWindow = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestInRecencyWindowYearBoundary(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	if !InRecencyWindow(time.Date(2018, 12, 28, 0, 0, 0, 0, time.UTC), now, 7) {
		t.Error("late December photo should match an early January window")
	}
	if !InRecencyWindow(time.Date(2018, 1, 8, 0, 0, 0, 0, time.UTC), now, 7) {
		t.Error("early January photo should match")
	}
	if InRecencyWindow(time.Date(2018, 12, 20, 0, 0, 0, 0, time.UTC), now, 7) {
		t.Error("photo before the wrapped window should not match")
	}
}

func TestRecencyWeighting(t *testing.T) {
	// One photo in the window, one outside; over many draws the windowed
	// photo should be picked roughly three times as often.
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	pool := model.NewPool()
	pool.Add(model.PhotoRecord{Path: "recent.jpg", Width: 1000, Height: 1000,
		Category: model.CategorySquare,
		TakenAt:  time.Date(2020, 6, 14, 0, 0, 0, 0, time.UTC)})
	pool.Add(model.PhotoRecord{Path: "old.jpg", Width: 1000, Height: 1000,
		Category: model.CategorySquare,
		TakenAt:  time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)})

	l := &layout.Layout{
		Name: "single",
		Panes: []layout.Pane{
			{Name: "main", Rect: image.Rect(0, 0, 1000, 1000),
				Categories: []model.Category{model.CategorySquare}},
		},
	}

	s := New(DefaultConfig(), rand.NewSource(29))
	s.Now = func() time.Time { return now }

	recent := 0
	const draws = 3000
	for i := 0; i < draws; i++ {
		// Fresh history each draw so both photos are always candidates.
		hist := NewHistory(rand.NewSource(uint64(i)))
		hist.Seed(pool)
		a, err := s.SelectForLayout(l, pool, hist)
		if err != nil {
			t.Fatalf("draw %d: unexpected error: %v", i, err)
		}
		if a.Placements[0].Photo.Path == "recent.jpg" {
			recent++
		}
	}

	ratio := float64(recent) / float64(draws)
	// Expected 3/(3+1) = 0.75 share; allow generous slack for randomness.
	if ratio < 0.68 || ratio > 0.82 {
		t.Errorf("windowed photo share = %.3f, expected near 0.75", ratio)
	}
}
