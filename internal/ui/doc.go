package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders layout assignments produced by the rotation controller as a
// fullscreen photo wall, handles keyboard and gesture input, and hosts the
// settings dialog.
