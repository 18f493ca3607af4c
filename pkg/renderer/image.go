package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Image is a row-major RGB pixel buffer with its origin at the top-left.
// It implements image.Image so it can be handed straight to an encoder.
type Image struct {
	Width  int
	Height int
	Pix    []uint8 // 3 bytes per pixel, rows top to bottom
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Stride returns the number of bytes per row
func (img *Image) Stride() int {
	return img.Width * 3
}

// Row returns the bytes of row y
func (img *Image) Row(y int) []uint8 {
	return img.Pix[y*img.Stride() : (y+1)*img.Stride()]
}

// RGBAt returns the pixel at (x, y)
func (img *Image) RGBAt(x, y int) (r, g, b uint8) {
	i := y*img.Stride() + x*3
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}

// SetRGB sets the pixel at (x, y)
func (img *Image) SetRGB(x, y int, r, g, b uint8) {
	i := y*img.Stride() + x*3
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements image.Image
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return color.RGBA{}
	}
	r, g, b := img.RGBAt(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// maxChannel keeps quantized channels below 1.0 so they never wrap past 255
const maxChannel = 0.999

// QuantizeColor turns a summed sample color into 8-bit RGB:
// average over samples, gamma 2 correct, clamp, then scale to [0, 255].
func QuantizeColor(colorSum core.Vec3, samples int) (r, g, b uint8) {
	scale := 1.0 / float64(samples)
	c := colorSum.Multiply(scale).Sqrt()
	return quantizeChannel(c.X), quantizeChannel(c.Y), quantizeChannel(c.Z)
}

func quantizeChannel(v float64) uint8 {
	if math.IsNaN(v) {
		v = 0
	}
	v = max(0, min(maxChannel, v))
	return uint8(v * 255.999)
}
