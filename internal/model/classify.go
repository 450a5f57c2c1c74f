package model

import (
	"errors"
	"math"
)

// ErrInvalidDimensions signals non-positive photo dimensions. Photos carrying
// such metadata are excluded from the pool; the error is never fatal.
var ErrInvalidDimensions = errors.New("invalid photo dimensions")

// Rule maps an aspect-ratio band to a category. Ratio is the target
// width/height value and Tolerance the allowed absolute deviation from it.
type Rule struct {
	Category  Category
	Ratio     float64
	Tolerance float64
}

// DefaultRules returns the built-in classification rules in priority order.
// Bands may overlap at the edges; ties are broken by taking the first match.
// The vertical_16x9 tolerance stops short of 0.1875 so the band excludes the
// exact 3:4 ratio; every exact target classifies to its own category.
func DefaultRules() []Rule {
	return []Rule{
		{CategoryUltraWide, 21.0 / 9.0, 0.30},
		{CategoryLandscape16x9, 16.0 / 9.0, 0.25},
		{CategoryVertical16x9, 9.0 / 16.0, 0.18},
		{CategoryLandscape4x3, 4.0 / 3.0, 0.20},
		{CategoryVertical4x3, 3.0 / 4.0, 0.20},
		{CategorySquare, 1.0, 0.20},
	}
}

// RulesWithTolerances returns the default rules with per-category tolerance
// overrides applied. Unknown category names in the overrides are ignored.
func RulesWithTolerances(overrides map[string]float64) []Rule {
	rules := DefaultRules()
	for i, r := range rules {
		if tol, ok := overrides[string(r.Category)]; ok && tol > 0 {
			rules[i].Tolerance = tol
		}
	}
	return rules
}

// Classify maps pixel dimensions to an aspect-ratio category. It evaluates
// rules in order and returns the first category whose tolerance band contains
// the width/height ratio. The second return value is false when no band
// matches; such photos are dropped from the selectable pool. Non-positive
// dimensions yield ErrInvalidDimensions.
func Classify(width, height int, rules []Rule) (Category, bool, error) {
	if width <= 0 || height <= 0 {
		return "", false, ErrInvalidDimensions
	}

	ratio := float64(width) / float64(height)
	for _, r := range rules {
		if math.Abs(ratio-r.Ratio) <= r.Tolerance {
			return r.Category, true, nil
		}
	}
	return "", false, nil
}
