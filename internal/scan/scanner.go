package scan

import (
	"image"
	"io/fs"
	"os"
	"path/filepath"

	// Standard decoders for image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// Extra formats via x/image.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/charmbracelet/log"
	"github.com/rwcarlsen/goexif/exif"

	"github.com/photopane/photo-saver/internal/model"
	"github.com/photopane/photo-saver/internal/platform"
)

// Scanner discovers and classifies photos under a folder. Unreadable files
// and photos outside every aspect-ratio band are logged and skipped; the scan
// itself only fails when the folder cannot be walked.
type Scanner struct {
	rules  []model.Rule
	logger *log.Logger
}

// NewScanner creates a scanner using the given classification rules
func NewScanner(rules []model.Rule, logger *log.Logger) *Scanner {
	return &Scanner{rules: rules, logger: logger}
}

// Scan walks the folder tree and returns the classified photo pool
func (s *Scanner) Scan(root string) (*model.Pool, error) {
	if err := platform.ValidateImageFolder(root); err != nil {
		return nil, err
	}

	pool := model.NewPool()
	skipped := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn("cannot access path", "path", path, "err", err)
			return nil
		}
		if d.IsDir() || !platform.IsImageFile(path) {
			return nil
		}

		photo, ok := s.readPhoto(path)
		if !ok {
			skipped++
			return nil
		}
		pool.Add(photo)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("scan complete",
		"folder", root,
		"photos", pool.Len(),
		"skipped", skipped)
	for _, c := range pool.Categories() {
		s.logger.Debug("category count", "category", c, "photos", pool.CategoryCount(c))
	}
	return pool, nil
}

// readPhoto extracts dimensions, capture date, and size, then classifies
func (s *Scanner) readPhoto(path string) (model.PhotoRecord, bool) {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Warn("cannot open photo", "path", path, "err", err)
		return model.PhotoRecord{}, false
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		s.logger.Warn("cannot decode photo", "path", path, "err", err)
		return model.PhotoRecord{}, false
	}

	category, ok, err := model.Classify(cfg.Width, cfg.Height, s.rules)
	if err != nil {
		s.logger.Warn("invalid photo dimensions", "path", path, "err", err)
		return model.PhotoRecord{}, false
	}
	if !ok {
		s.logger.Debug("photo outside every aspect-ratio band",
			"path", path, "width", cfg.Width, "height", cfg.Height)
		return model.PhotoRecord{}, false
	}

	info, err := f.Stat()
	if err != nil {
		s.logger.Warn("cannot stat photo", "path", path, "err", err)
		return model.PhotoRecord{}, false
	}

	photo := model.PhotoRecord{
		Path:     path,
		Width:    cfg.Width,
		Height:   cfg.Height,
		TakenAt:  info.ModTime(),
		FileSize: info.Size(),
		Category: category,
	}

	// EXIF capture date wins over the mtime fallback when present.
	if _, err := f.Seek(0, 0); err == nil {
		if x, err := exif.Decode(f); err == nil {
			if taken, err := x.DateTime(); err == nil {
				photo.TakenAt = taken
			}
		}
	}

	return photo, true
}
