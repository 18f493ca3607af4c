package renderer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
)

// ErrInvalidConfig is wrapped by every configuration validation failure
var ErrInvalidConfig = errors.New("invalid render configuration")

// ImageConfig describes the image to produce. It is read by every worker and never mutated.
type ImageConfig struct {
	AspectRatio     float64 // Width / height
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
}

// NewImageConfig derives the image height from the width and aspect ratio
func NewImageConfig(aspectRatio float64, width, samplesPerPixel, maxDepth int) ImageConfig {
	height := 0
	if aspectRatio > 0 {
		height = int(float64(width) / aspectRatio)
	}
	return ImageConfig{
		AspectRatio:     aspectRatio,
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	}
}

// DefaultImageConfig returns sensible default values
func DefaultImageConfig() ImageConfig {
	return NewImageConfig(16.0/9.0, 400, 100, 50)
}

// Validate checks that the configuration can be rendered
func (c ImageConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d must be positive", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

// Options controls how the render is scheduled
type Options struct {
	NumWorkers int                   // Number of parallel workers (0 = use CPU count)
	BandHeight int                   // Rows per unit of work (0 = one row)
	Seed       int64                 // Base random seed (0 = draw a fresh high-entropy seed)
	Integrator integrator.Integrator // Light transport algorithm (nil = recursive path tracing)
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		NumWorkers: 0,
		BandHeight: 1,
	}
}

// withDefaults resolves zero values
func (o Options) withDefaults() Options {
	if o.NumWorkers <= 0 {
		o.NumWorkers = runtime.NumCPU()
	}
	if o.BandHeight <= 0 {
		o.BandHeight = 1
	}
	if o.Integrator == nil {
		o.Integrator = integrator.NewPathTracingIntegrator()
	}
	return o
}
