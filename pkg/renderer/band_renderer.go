package renderer

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
)

// Band is a half-open range of image rows [Y0, Y1), counted from the top
type Band struct {
	Index  int
	Y0, Y1 int
}

// Height returns the number of rows in the band
func (b Band) Height() int {
	return b.Y1 - b.Y0
}

// NewBands splits height rows into bands of at most bandHeight rows, top to bottom
func NewBands(height, bandHeight int) []Band {
	if bandHeight <= 0 {
		bandHeight = 1
	}

	var bands []Band
	for y := 0; y < height; y += bandHeight {
		bands = append(bands, Band{
			Index: len(bands),
			Y0:    y,
			Y1:    min(y+bandHeight, height),
		})
	}
	return bands
}

// BandRenderer renders bands of rows. It holds only read-only state and
// may be shared by every worker; all randomness comes from the caller's sampler.
type BandRenderer struct {
	world      geometry.Hittable
	camera     *geometry.Camera
	integrator integrator.Integrator
	config     ImageConfig
}

// NewBandRenderer creates a new band renderer
func NewBandRenderer(world geometry.Hittable, camera *geometry.Camera, integ integrator.Integrator, config ImageConfig) *BandRenderer {
	return &BandRenderer{
		world:      world,
		camera:     camera,
		integrator: integ,
		config:     config,
	}
}

// RenderBand renders every pixel of band and returns its rows as packed RGB bytes
func (br *BandRenderer) RenderBand(band Band, sampler core.Sampler) []uint8 {
	width := br.config.Width
	pixels := make([]uint8, 0, band.Height()*width*3)

	for y := band.Y0; y < band.Y1; y++ {
		for x := 0; x < width; x++ {
			colorSum := br.SamplePixel(x, y, sampler)
			r, g, b := QuantizeColor(colorSum, br.config.SamplesPerPixel)
			pixels = append(pixels, r, g, b)
		}
	}

	return pixels
}

// SamplePixel returns the sum of SamplesPerPixel jittered samples for image pixel (x, y),
// where y counts down from the top row.
func (br *BandRenderer) SamplePixel(x, y int, sampler core.Sampler) core.Vec3 {
	// Camera space has t=0 at the bottom of the viewport
	j := br.config.Height - 1 - y

	uDenom := float64(max(1, br.config.Width-1))
	vDenom := float64(max(1, br.config.Height-1))

	var colorSum core.Vec3
	for sample := 0; sample < br.config.SamplesPerPixel; sample++ {
		s := (float64(x) + sampler.Get1D()) / uDenom
		t := (float64(j) + sampler.Get1D()) / vDenom

		ray := br.camera.GetRay(s, t, sampler)
		colorSum.AddInPlace(br.integrator.RayColor(ray, br.world, br.config.MaxDepth, sampler))
	}

	return colorSum
}
