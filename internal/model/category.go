package model

// Category represents an aspect-ratio classification bucket
type Category string

const (
	// CategoryUltraWide covers panoramic photos around 21:9
	CategoryUltraWide Category = "ultra_wide"

	// CategoryLandscape16x9 covers standard widescreen landscape photos
	CategoryLandscape16x9 Category = "landscape_16x9"

	// CategoryVertical16x9 covers widescreen photos shot in portrait orientation
	CategoryVertical16x9 Category = "vertical_16x9"

	// CategoryLandscape4x3 covers classic landscape photos
	CategoryLandscape4x3 Category = "landscape_4x3"

	// CategoryVertical4x3 covers classic portrait photos
	CategoryVertical4x3 Category = "vertical_4x3"

	// CategorySquare covers photos close to 1:1
	CategorySquare Category = "square"
)

// String returns the string representation of Category
func (c Category) String() string {
	return string(c)
}

// DisplayName returns a human-readable name for the category
func (c Category) DisplayName() string {
	switch c {
	case CategoryUltraWide:
		return "Ultra-Wide/Panoramic"
	case CategoryLandscape16x9:
		return "16:9 Landscape"
	case CategoryVertical16x9:
		return "16:9 Vertical"
	case CategoryLandscape4x3:
		return "4:3 Landscape"
	case CategoryVertical4x3:
		return "4:3 Vertical"
	case CategorySquare:
		return "Square"
	default:
		return string(c)
	}
}

// Preserve reports whether photos in this category keep their full aspect
// ratio when fitted into a pane (letterboxed instead of cropped)
func (c Category) Preserve() bool {
	return c == CategoryUltraWide
}

// AllCategories returns every category in classification priority order
func AllCategories() []Category {
	return []Category{
		CategoryUltraWide,
		CategoryLandscape16x9,
		CategoryVertical16x9,
		CategoryLandscape4x3,
		CategoryVertical4x3,
		CategorySquare,
	}
}
