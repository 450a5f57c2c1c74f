package model

import (
	"fmt"
	"path/filepath"
	"time"
)

// PhotoRecord represents a single discovered image
type PhotoRecord struct {
	Path     string
	Width    int
	Height   int
	TakenAt  time.Time // EXIF capture date, or file modification time as fallback
	FileSize int64     // file size in bytes
	Category Category  // assigned once at classification time
}

// AspectRatio returns width/height, or 0 for degenerate dimensions
func (p PhotoRecord) AspectRatio() float64 {
	if p.Height <= 0 {
		return 0
	}
	return float64(p.Width) / float64(p.Height)
}

// FileName returns the base name of the photo path
func (p PhotoRecord) FileName() string {
	return filepath.Base(p.Path)
}

// FileSizeMB returns the file size in megabytes
func (p PhotoRecord) FileSizeMB() float64 {
	return float64(p.FileSize) / (1024 * 1024)
}

// FormattedDate returns the capture date in a readable format, or "Unknown"
func (p PhotoRecord) FormattedDate() string {
	if p.TakenAt.IsZero() {
		return "Unknown"
	}
	return p.TakenAt.Format("2006-01-02 15:04:05")
}

func (p PhotoRecord) String() string {
	return fmt.Sprintf("%s (%dx%d) - %s", p.FileName(), p.Width, p.Height, p.Category)
}
