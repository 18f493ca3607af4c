package imageio

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

type warningRecorder struct {
	warnings []string
}

func (w *warningRecorder) Debugf(string, ...interface{})  {}
func (w *warningRecorder) Infof(string, ...interface{})   {}
func (w *warningRecorder) Noticef(string, ...interface{}) {}
func (w *warningRecorder) Warningf(format string, args ...interface{}) {
	w.warnings = append(w.warnings, format)
}

// testImage is a 2x2 image with white, red, green and blue pixels
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"render.png", PNG, false},
		{"out/render.PNG", PNG, false},
		{"render.jpg", JPEG, false},
		{"render.jpeg", JPEG, false},
		{"render.bmp", BMP, false},
		{"render.tif", TIFF, false},
		{"render.tiff", TIFF, false},
		{"render.gif", "", true},
		{"render", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if format != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, format)
			}
		})
	}
}

func TestSaveAndLoad_Lossless(t *testing.T) {
	for _, name := range []string{"test.png", "test.bmp", "test.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			src := testImage()

			if err := Save(path, src, SaveOptions{}); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			img, _, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
				t.Fatalf("Expected 2x2 image, got %v", img.Bounds())
			}

			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					r1, g1, b1, _ := src.At(x, y).RGBA()
					r2, g2, b2, _ := img.At(x, y).RGBA()
					if r1 != r2 || g1 != g2 || b1 != b2 {
						t.Errorf("Pixel (%d,%d): expected (%d,%d,%d), got (%d,%d,%d)", x, y, r1, g1, b1, r2, g2, b2)
					}
				}
			}
		})
	}
}

func TestSave_JPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.jpg")
	if err := Save(path, testImage(), SaveOptions{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	_, format, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if format != JPEG {
		t.Errorf("Expected jpeg, got %q", format)
	}
}

func TestSave_RetriesAndFails(t *testing.T) {
	// A regular file where a directory is expected makes every attempt fail
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create blocker file: %v", err)
	}

	recorder := &warningRecorder{}
	err := Save(filepath.Join(blocker, "render.png"), testImage(), SaveOptions{Attempts: 3, Logger: recorder})
	if err == nil {
		t.Fatal("Expected Save to fail")
	}
	if len(recorder.warnings) != 3 {
		t.Errorf("Expected 3 warnings, got %d", len(recorder.warnings))
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "render.gif"), testImage(), SaveOptions{Attempts: 5})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}
