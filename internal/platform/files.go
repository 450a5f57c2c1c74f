package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Default photo folder, relative to the user's home directory
const (
	PicturesDirName    = "Pictures"
	ScreensaverDirName = "Screensaver"
)

// Supported image file extensions (lowercase, with dot)
var ImageExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp",
}

// IsImageFile reports whether a path has a supported image extension
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range ImageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// CreateDirectoryIfNotExists creates a directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomePicturesDir returns the default photo folder
// (~/Pictures/Screensaver)
func GetHomePicturesDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, PicturesDirName, ScreensaverDirName), nil
}

// ValidateImageFolder checks that a configured photo folder exists and is a
// directory
func ValidateImageFolder(folder string) error {
	if folder == "" {
		return fmt.Errorf("no image folder configured")
	}
	info, err := os.Stat(folder)
	if os.IsNotExist(err) {
		return fmt.Errorf("image folder not found: %s", folder)
	}
	if err != nil {
		return fmt.Errorf("failed to access image folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", folder)
	}
	return nil
}
