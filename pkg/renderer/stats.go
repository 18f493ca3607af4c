package renderer

import (
	"image"
	"time"

	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	TotalPixels     int             // Total number of pixels rendered
	SamplesPerPixel int             // Samples taken per pixel
	TotalSamples    int             // Total number of camera rays traced
	MaxDepth        int             // Bounce limit used
	Seed            int64           // Base seed the bands were derived from
	Bands           int             // Number of bands the image was split into
	BandTimes       []time.Duration // Render time of each band, indexed by band
	Workers         []WorkerStats   // Per-worker breakdown, indexed by worker ID
	Elapsed         time.Duration   // Wall-clock time of the whole render
}

// WorkerStats summarises the work done by one worker
type WorkerStats struct {
	ID       int
	Bands    int           // Bands rendered
	Rows     int           // Rows rendered
	BusyTime time.Duration // Time spent rendering
}

// newRenderStats prepares statistics for a render of config split into bands
func newRenderStats(config ImageConfig, bands, workers int, seed int64) RenderStats {
	stats := RenderStats{
		Width:           config.Width,
		Height:          config.Height,
		TotalPixels:     config.Width * config.Height,
		SamplesPerPixel: config.SamplesPerPixel,
		TotalSamples:    config.Width * config.Height * config.SamplesPerPixel,
		MaxDepth:        config.MaxDepth,
		Seed:            seed,
		Bands:           bands,
		BandTimes:       make([]time.Duration, bands),
		Workers:         make([]WorkerStats, workers),
	}
	for i := range stats.Workers {
		stats.Workers[i].ID = i
	}
	return stats
}

// record adds a completed band to the statistics
func (s *RenderStats) record(result BandResult) {
	s.BandTimes[result.Band.Index] = result.Duration

	w := &s.Workers[result.WorkerID]
	w.Bands++
	w.Rows += result.Band.Height()
	w.BusyTime += result.Duration
}

// bandSeconds returns band times in seconds
func (s RenderStats) bandSeconds() []float64 {
	seconds := make([]float64, len(s.BandTimes))
	for i, d := range s.BandTimes {
		seconds[i] = d.Seconds()
	}
	return seconds
}

// BandTimeMean returns the mean band render time
func (s RenderStats) BandTimeMean() time.Duration {
	if len(s.BandTimes) == 0 {
		return 0
	}
	return time.Duration(stat.Mean(s.bandSeconds(), nil) * float64(time.Second))
}

// BandTimeStdDev returns the standard deviation of band render times
func (s RenderStats) BandTimeStdDev() time.Duration {
	if len(s.BandTimes) < 2 {
		return 0
	}
	return time.Duration(stat.StdDev(s.bandSeconds(), nil) * float64(time.Second))
}

// SamplesPerSecond returns the camera-ray throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/65535.0 + 0.7152*float64(g)/65535.0 + 0.0722*float64(b)/65535.0
		}
	}

	return total / float64(pixels)
}
