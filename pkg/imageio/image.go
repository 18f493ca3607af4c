package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an image file encoding
type Format string

// The supported output formats
const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ErrUnsupportedFormat is returned for file extensions with no known encoder
var ErrUnsupportedFormat = errors.New("unsupported image format")

// jpegQuality is used for every JPEG written
const jpegQuality = 95

// FormatFromPath picks the encoding from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// SaveOptions controls how Save retries
type SaveOptions struct {
	Attempts   int           // Maximum number of attempts (<= 0 means one)
	RetryDelay time.Duration // Pause between attempts
	Logger     core.Logger   // Receives a warning per failed attempt; may be nil
}

// Save writes img to path, choosing the encoder from the extension. Failed
// attempts are logged and retried up to opts.Attempts times; the last error
// is returned if none succeed. A partially written file is removed.
func Save(path string, img image.Image, opts SaveOptions) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	attempts := max(opts.Attempts, 1)
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = writeFile(path, img, format); err == nil {
			return nil
		}

		if opts.Logger != nil {
			opts.Logger.Warningf("saving %s failed (attempt %d/%d): %v", path, attempt, attempts, err)
		}
		if attempt < attempts && opts.RetryDelay > 0 {
			time.Sleep(opts.RetryDelay)
		}
	}

	return fmt.Errorf("failed to save image after %d attempts: %w", attempts, err)
}

func writeFile(path string, img image.Image, format Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := Encode(file, img, format); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}

	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close image file: %w", err)
	}
	return nil
}

// Load decodes a PNG, JPEG, BMP or TIFF file
func Load(path string) (image.Image, Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decoders registered by the imports above are picked from the file header
	img, name, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	return img, Format(name), nil
}
