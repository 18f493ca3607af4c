package renderer

import (
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
)

func TestNewBands(t *testing.T) {
	tests := []struct {
		name       string
		height     int
		bandHeight int
		expected   []Band
	}{
		{"one row per band", 3, 1, []Band{{0, 0, 1}, {1, 1, 2}, {2, 2, 3}}},
		{"uneven last band", 5, 2, []Band{{0, 0, 2}, {1, 2, 4}, {2, 4, 5}}},
		{"band taller than image", 2, 8, []Band{{0, 0, 2}}},
		{"zero band height means one row", 2, 0, []Band{{0, 0, 1}, {1, 1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := NewBands(tt.height, tt.bandHeight)
			if len(bands) != len(tt.expected) {
				t.Fatalf("Expected %d bands, got %d: %v", len(tt.expected), len(bands), bands)
			}
			covered := 0
			for i, band := range bands {
				if band != tt.expected[i] {
					t.Errorf("Band %d: expected %v, got %v", i, tt.expected[i], band)
				}
				covered += band.Height()
			}
			if covered != tt.height {
				t.Errorf("Bands cover %d rows, expected %d", covered, tt.height)
			}
		})
	}
}

func TestBandRenderer_RenderBandSize(t *testing.T) {
	config := ImageConfig{AspectRatio: 2, Width: 8, Height: 4, SamplesPerPixel: 2, MaxDepth: 3}
	br := NewBandRenderer(groundWorld(), groundCamera(2), integrator.NewPathTracingIntegrator(), config)

	pixels := br.RenderBand(Band{Index: 0, Y0: 1, Y1: 3}, core.NewSeededSampler(1))
	if len(pixels) != 2*8*3 {
		t.Errorf("Expected %d bytes, got %d", 2*8*3, len(pixels))
	}
}

func TestBandRenderer_SamplePixelSumsSamples(t *testing.T) {
	// With nothing in the world every sample is sky, so the sum grows with sample count
	config := ImageConfig{AspectRatio: 1, Width: 4, Height: 4, SamplesPerPixel: 10, MaxDepth: 3}
	empty := groundWorld()
	empty.Clear()
	br := NewBandRenderer(empty, groundCamera(1), integrator.NewPathTracingIntegrator(), config)

	sum := br.SamplePixel(1, 1, core.NewSeededSampler(1))
	mean := sum.Divide(float64(config.SamplesPerPixel))

	// Sky blue channel is always 1
	if mean.Z < 1-1e-12 || mean.Z > 1+1e-12 {
		t.Errorf("Expected mean blue channel 1, got %f", mean.Z)
	}
	if mean.X < 0.5 || mean.X > 1 {
		t.Errorf("Expected mean red channel within sky gradient, got %f", mean.X)
	}
}
