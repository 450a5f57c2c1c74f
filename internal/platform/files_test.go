package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomePicturesDir(t *testing.T) {
	picturesDir, err := GetHomePicturesDir()
	if err != nil {
		t.Fatalf("Failed to get pictures dir: %v", err)
	}
	if picturesDir == "" {
		t.Fatal("Pictures dir should not be empty")
	}
	if !strings.HasSuffix(picturesDir, filepath.Join(PicturesDirName, ScreensaverDirName)) {
		t.Errorf("Pictures dir %s should end with %s/%s",
			picturesDir, PicturesDirName, ScreensaverDirName)
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"photo.jpg", true},
		{"photo.JPG", true},
		{"photo.jpeg", true},
		{"photo.png", true},
		{"photo.webp", true},
		{"photo.tiff", true},
		{"document.pdf", false},
		{"notes.txt", false},
		{"archive.tar.gz", false},
		{"noextension", false},
	}

	for _, test := range tests {
		if got := IsImageFile(test.path); got != test.expected {
			t.Errorf("IsImageFile(%q) = %v, expected %v", test.path, got, test.expected)
		}
	}
}

func TestValidateImageFolder(t *testing.T) {
	if err := ValidateImageFolder(""); err == nil {
		t.Error("Expected error for empty folder")
	}

	if err := ValidateImageFolder("/no/such/folder/exists/here"); err == nil {
		t.Error("Expected error for missing folder")
	}

	tempDir := t.TempDir()
	if err := ValidateImageFolder(tempDir); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}

	file := filepath.Join(tempDir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateImageFolder(file); err == nil {
		t.Error("Expected error for non-directory path")
	}
}
