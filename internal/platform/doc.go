package platform

// Package platform contains OS/platform integration: filesystem helpers,
// supported image formats, and the default photo folder location.
