package model

// Package model defines domain data structures used across the app: photo
// records, aspect-ratio categories, classification rules, and the classified
// photo pool. Values are treated as immutable after construction and are safe
// to share between the scanner, selector, and UI.
