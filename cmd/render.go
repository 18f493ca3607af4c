package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/imageio"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/log"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Delay between attempts to save the rendered image
const saveRetryDelay = 500 * time.Millisecond

// renderSettings holds everything needed to render and save one frame
type renderSettings struct {
	sceneName    string
	seed         int64
	image        renderer.ImageConfig
	options      renderer.Options
	outFile      string
	saveAttempts int
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	settings, err := settingsFromContext(ctx)
	if err != nil {
		return err
	}

	// Stop dispatching bands on Ctrl+C
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = renderFrame(runCtx, settings, logger)
	return err
}

// settingsFromContext starts from the scene's recommended image settings and
// applies any flag the user set explicitly.
func settingsFromContext(ctx *cli.Context) (renderSettings, error) {
	settings := renderSettings{
		sceneName:    ctx.String("scene"),
		seed:         ctx.Int64("seed"),
		outFile:      ctx.String("out"),
		saveAttempts: ctx.Int("save-attempts"),
	}

	sc, err := scene.New(settings.sceneName, settings.seed)
	if err != nil {
		return settings, err
	}

	image := sc.ImageConfig
	aspect := image.AspectRatio
	width := image.Width
	if ctx.IsSet("aspect") {
		aspect = ctx.Float64("aspect")
	}
	if ctx.IsSet("width") {
		width = ctx.Int("width")
	}
	if ctx.IsSet("spp") {
		image.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		image.MaxDepth = ctx.Int("depth")
	}
	settings.image = renderer.NewImageConfig(aspect, width, image.SamplesPerPixel, image.MaxDepth)

	integ, err := integrator.New(ctx.String("integrator"))
	if err != nil {
		return settings, err
	}
	settings.options = renderer.Options{
		NumWorkers: ctx.Int("workers"),
		BandHeight: ctx.Int("band-height"),
		Seed:       settings.seed,
		Integrator: integ,
	}

	return settings, nil
}

// renderFrame builds the scene, renders it, reports statistics and saves the image
func renderFrame(ctx context.Context, settings renderSettings, logger log.Logger) (renderer.RenderStats, error) {
	sc, err := scene.New(settings.sceneName, settings.seed)
	if err != nil {
		return renderer.RenderStats{}, err
	}
	sc.ImageConfig = settings.image

	logger.Noticef("scene %q: %d objects", sc.Name, sc.GetPrimitiveCount())

	rt := renderer.NewRaytracer(sc.World, sc.Camera(), settings.image, settings.options, log.New("renderer"))
	img, stats, err := rt.Render(ctx)
	if err != nil {
		return stats, err
	}

	displayFrameStats(logger, stats, renderer.CalculateAverageLuminance(img))

	err = imageio.Save(settings.outFile, img, imageio.SaveOptions{
		Attempts:   settings.saveAttempts,
		RetryDelay: saveRetryDelay,
		Logger:     logger,
	})
	if err != nil {
		return stats, err
	}

	logger.Noticef("render saved as %s", settings.outFile)
	return stats, nil
}

func displayFrameStats(logger log.Logger, stats renderer.RenderStats, luminance float64) {
	logger.Noticef("frame statistics\n%s", formatFrameStats(stats, luminance))
}

// formatFrameStats renders the per-worker breakdown as a table
func formatFrameStats(stats renderer.RenderStats, luminance float64) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Bands", "Rows", "% of frame", "Busy time"})
	for _, w := range stats.Workers {
		percent := 0.0
		if stats.Height > 0 {
			percent = 100 * float64(w.Rows) / float64(stats.Height)
		}
		table.Append([]string{
			fmt.Sprintf("%d", w.ID),
			fmt.Sprintf("%d", w.Bands),
			fmt.Sprintf("%d", w.Rows),
			fmt.Sprintf("%02.1f %%", percent),
			w.BusyTime.String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL",
		fmt.Sprintf("%d", stats.Bands),
		fmt.Sprintf("%d", stats.Height),
		fmt.Sprintf("%.0f samples/s", stats.SamplesPerSecond()),
		stats.Elapsed.String(),
	})
	table.Render()

	fmt.Fprintf(&buf, "%dx%d, %d spp, depth %d, seed %d\n",
		stats.Width, stats.Height, stats.SamplesPerPixel, stats.MaxDepth, stats.Seed)
	fmt.Fprintf(&buf, "band time %v ± %v, average luminance %.4f\n",
		stats.BandTimeMean(), stats.BandTimeStdDev(), luminance)

	return buf.String()
}
