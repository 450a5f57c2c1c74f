package model

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name     string
		width    int
		height   int
		expected Category
		ok       bool
	}{
		{"ultra wide 21:9", 2560, 1080, CategoryUltraWide, true},
		{"landscape 16:9", 1920, 1080, CategoryLandscape16x9, true},
		{"vertical 16:9", 1080, 1920, CategoryVertical16x9, true},
		{"landscape 4:3", 1600, 1200, CategoryLandscape4x3, true},
		{"vertical 4:3", 1200, 1600, CategoryVertical4x3, true},
		{"square", 1000, 1000, CategorySquare, true},
		{"near square", 1100, 1000, CategorySquare, true},
		{"extreme panorama outside every band", 4000, 1000, "", false},
		{"extreme vertical outside every band", 1000, 4000, "", false},
	}

	for _, test := range tests {
		category, ok, err := Classify(test.width, test.height, rules)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if ok != test.ok {
			t.Errorf("%s: Classify(%d, %d) ok = %v, expected %v",
				test.name, test.width, test.height, ok, test.ok)
			continue
		}
		if category != test.expected {
			t.Errorf("%s: Classify(%d, %d) = %s, expected %s",
				test.name, test.width, test.height, category, test.expected)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	rules := DefaultRules()

	// 1.53 sits inside both the landscape_16x9 band [1.528, 2.028] and the
	// landscape_4x3 band [1.133, 1.533]; the earlier rule must win.
	category, ok, err := Classify(1530, 1000, rules)
	if err != nil || !ok {
		t.Fatalf("Classify(1530, 1000) ok=%v err=%v, expected a match", ok, err)
	}
	if category != CategoryLandscape16x9 {
		t.Errorf("Classify(1530, 1000) = %s, expected %s", category, CategoryLandscape16x9)
	}

	// 0.9 sits inside both vertical_4x3 [0.55, 0.95] and square [0.8, 1.2].
	category, ok, err = Classify(900, 1000, rules)
	if err != nil || !ok {
		t.Fatalf("Classify(900, 1000) ok=%v err=%v, expected a match", ok, err)
	}
	if category != CategoryVertical4x3 {
		t.Errorf("Classify(900, 1000) = %s, expected %s", category, CategoryVertical4x3)
	}
}

func TestClassifyExactTargets(t *testing.T) {
	rules := DefaultRules()

	// An earlier band must never capture another category's exact target
	// ratio; in particular the vertical_16x9 band has to stop short of 3:4.
	tests := []struct {
		width    int
		height   int
		expected Category
	}{
		{2100, 900, CategoryUltraWide},
		{1600, 900, CategoryLandscape16x9},
		{900, 1600, CategoryVertical16x9},
		{1200, 900, CategoryLandscape4x3},
		{900, 1200, CategoryVertical4x3},
		{1000, 1000, CategorySquare},
	}

	for _, test := range tests {
		category, ok, err := Classify(test.width, test.height, rules)
		if err != nil || !ok {
			t.Errorf("Classify(%d, %d) ok=%v err=%v, expected a match",
				test.width, test.height, ok, err)
			continue
		}
		if category != test.expected {
			t.Errorf("Classify(%d, %d) = %s, expected %s",
				test.width, test.height, category, test.expected)
		}
	}
}

func TestClassifyInvalidDimensions(t *testing.T) {
	rules := DefaultRules()

	for _, dims := range [][2]int{{0, 100}, {100, 0}, {-1, 100}, {100, -1}, {0, 0}} {
		_, _, err := Classify(dims[0], dims[1], rules)
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("Classify(%d, %d) error = %v, expected ErrInvalidDimensions",
				dims[0], dims[1], err)
		}
	}
}

func TestRulesWithTolerances(t *testing.T) {
	overrides := map[string]float64{
		"square":    0.35,
		"not_a_cat": 0.99, // unknown names are ignored
		"ultra_wide": -1,  // non-positive values are ignored
	}

	rules := RulesWithTolerances(overrides)
	for _, r := range rules {
		switch r.Category {
		case CategorySquare:
			if r.Tolerance != 0.35 {
				t.Errorf("square tolerance = %v, expected 0.35", r.Tolerance)
			}
		case CategoryUltraWide:
			if r.Tolerance != 0.30 {
				t.Errorf("ultra_wide tolerance = %v, expected default 0.30", r.Tolerance)
			}
		}
	}

	// A 1.34:1 photo is square only under the widened tolerance.
	category, ok, _ := Classify(1340, 1000, RulesWithTolerances(map[string]float64{}))
	if !ok || category != CategoryLandscape4x3 {
		t.Errorf("default rules: Classify(1340, 1000) = %s ok=%v, expected landscape_4x3", category, ok)
	}
}

func TestPool(t *testing.T) {
	pool := NewPool()
	if pool.Len() != 0 {
		t.Errorf("Expected empty pool, got %d photos", pool.Len())
	}

	pool.Add(PhotoRecord{Path: "a.jpg", Category: CategorySquare})
	pool.Add(PhotoRecord{Path: "b.jpg", Category: CategorySquare})
	pool.Add(PhotoRecord{Path: "c.jpg", Category: CategoryUltraWide})

	if pool.Len() != 3 {
		t.Errorf("Expected pool length 3, got %d", pool.Len())
	}
	if pool.CategoryCount(CategorySquare) != 2 {
		t.Errorf("Expected 2 square photos, got %d", pool.CategoryCount(CategorySquare))
	}
	if pool.CategoryCount(CategoryVertical4x3) != 0 {
		t.Errorf("Expected 0 vertical_4x3 photos, got %d", pool.CategoryCount(CategoryVertical4x3))
	}

	categories := pool.Categories()
	if len(categories) != 2 {
		t.Fatalf("Expected 2 non-empty categories, got %d", len(categories))
	}
	if categories[0] != CategoryUltraWide || categories[1] != CategorySquare {
		t.Errorf("Categories not in priority order: %v", categories)
	}
}
