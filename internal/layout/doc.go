package layout

// Package layout defines the pane geometries shown on screen. A Catalog is
// built once per screen size: every layout's fractional pane definitions are
// resolved to pixel rectangles at construction, then layouts are only
// selected, never mutated. Automatic selection is weighted random over the
// layouts eligible for the screen, with per-layout weight overrides merged
// onto built-in defaults.
