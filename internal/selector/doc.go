package selector

// Package selector assigns photos to the panes of a chosen layout. Selection
// walks each pane's category fallback list, draws from per-category
// not-yet-shown queues, weights candidates whose capture date lands near
// today's month/day, and enforces a crop-cost ceiling for cover-fitted
// photos. The random source is injectable so runs with the same seed are
// reproducible.
