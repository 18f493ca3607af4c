package main

import (
	"fmt"
	"os"

	"github.com/df07/go-sphere-pathtracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render sphere scenes using Monte-Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render one of the built-in scenes to an image file. Each scene provides its own
recommended resolution, sample count and bounce depth; any of these flags that
is set explicitly overrides the scene's value.

The output format is chosen from the file extension (png, jpg, bmp or tif).`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "scene, s",
					Value:  "random",
					Usage:  "scene to render (see the scenes command)",
					EnvVar: "PT_SCENE",
				},
				cli.IntFlag{
					Name:   "width",
					Value:  1200,
					Usage:  "image width in pixels",
					EnvVar: "PT_WIDTH",
				},
				cli.Float64Flag{
					Name:   "aspect",
					Value:  3.0 / 2.0,
					Usage:  "image aspect ratio (width / height)",
					EnvVar: "PT_ASPECT",
				},
				cli.IntFlag{
					Name:   "spp",
					Value:  500,
					Usage:  "samples per pixel",
					EnvVar: "PT_SPP",
				},
				cli.IntFlag{
					Name:   "depth",
					Value:  50,
					Usage:  "maximum number of ray bounces",
					EnvVar: "PT_DEPTH",
				},
				cli.IntFlag{
					Name:   "workers",
					Value:  0,
					Usage:  "number of render workers (0 uses every CPU)",
					EnvVar: "PT_WORKERS",
				},
				cli.IntFlag{
					Name:   "band-height",
					Value:  1,
					Usage:  "rows rendered per unit of work",
					EnvVar: "PT_BAND_HEIGHT",
				},
				cli.Int64Flag{
					Name:   "seed",
					Value:  0,
					Usage:  "random seed for scene layout and sampling (0 draws a fresh sampling seed)",
					EnvVar: "PT_SEED",
				},
				cli.StringFlag{
					Name:   "integrator",
					Value:  "recursive",
					Usage:  "light transport implementation: recursive or iterative",
					EnvVar: "PT_INTEGRATOR",
				},
				cli.StringFlag{
					Name:   "out, o",
					Value:  "image.png",
					Usage:  "image filename for the rendered frame",
					EnvVar: "PT_OUT",
				},
				cli.IntFlag{
					Name:   "save-attempts",
					Value:  5,
					Usage:  "number of times to try saving the image",
					EnvVar: "PT_SAVE_ATTEMPTS",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
