package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/log"
)

// Raytracer renders a scene by splitting the image into row bands
// and sampling each band on a fixed pool of workers.
type Raytracer struct {
	world   geometry.Hittable
	camera  *geometry.Camera
	config  ImageConfig
	options Options
	logger  core.Logger
}

// NewRaytracer creates a new raytracer. The world must not be modified while Render runs.
// A nil logger logs under the "renderer" module.
func NewRaytracer(world geometry.Hittable, camera *geometry.Camera, config ImageConfig, options Options, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = log.New("renderer")
	}
	return &Raytracer{
		world:   world,
		camera:  camera,
		config:  config,
		options: options.withDefaults(),
		logger:  logger,
	}
}

// Config returns the image configuration
func (rt *Raytracer) Config() ImageConfig {
	return rt.config
}

// Render samples every pixel and returns the finished image.
// Cancelling ctx stops further bands from being rendered and returns ctx.Err().
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	seed := rt.options.Seed
	if seed == 0 {
		seed = NewEntropySeed()
	}

	bands := NewBands(rt.config.Height, rt.options.BandHeight)
	numWorkers := min(rt.options.NumWorkers, len(bands))
	stats := newRenderStats(rt.config, len(bands), numWorkers, seed)

	rt.logger.Noticef("rendering %dx%d, %d spp, depth %d: %d bands on %d workers (seed %d)",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth,
		len(bands), numWorkers, seed)

	start := time.Now()

	bandRenderer := NewBandRenderer(rt.world, rt.camera, rt.options.Integrator, rt.config)
	pool := NewWorkerPool(bandRenderer, numWorkers, len(bands))
	pool.Start()

	for _, band := range bands {
		pool.SubmitTask(BandTask{
			Ctx:  ctx,
			Band: band,
			Seed: BandSeed(seed, band.Index),
		})
	}

	img := NewImage(rt.config.Width, rt.config.Height)
	progress := newProgressLogger(rt.logger, rt.config.Height)

	var renderErr error
	for i := 0; i < len(bands); i++ {
		result, ok := pool.GetResult()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}

		// Bands complete in any order; placement depends only on the row index
		copy(img.Pix[result.Band.Y0*img.Stride():], result.Pixels)
		stats.record(result)

		rt.logger.Debugf("band %d (rows %d-%d) done by worker %d in %v",
			result.Band.Index, result.Band.Y0, result.Band.Y1-1, result.WorkerID, result.Duration)
		progress.add(result.Band.Height())
	}

	pool.Stop()
	stats.Elapsed = time.Since(start)

	if renderErr != nil {
		rt.logger.Warningf("render aborted after %v: %v", stats.Elapsed, renderErr)
		return nil, stats, renderErr
	}

	rt.logger.Noticef("render completed in %v", stats.Elapsed)
	return img, stats, nil
}

// progressLogger reports completed rows every 10% of the image
type progressLogger struct {
	logger     core.Logger
	total      int
	done       int
	nextDecile int
}

func newProgressLogger(logger core.Logger, total int) *progressLogger {
	return &progressLogger{logger: logger, total: total, nextDecile: 1}
}

func (p *progressLogger) add(rows int) {
	p.done += rows
	for p.nextDecile <= 10 && p.done*10 >= p.nextDecile*p.total {
		p.logger.Infof("rows completed: %d/%d (%d%%)", p.done, p.total, p.nextDecile*10)
		p.nextDecile++
	}
}
