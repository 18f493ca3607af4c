package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	logger.Noticef("available scenes\n%s", formatSceneList(scene.List()))
	return nil
}

func formatSceneList(scenes []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Resolution", "Samples", "Depth", "Description"})
	for _, info := range scenes {
		table.Append([]string{
			info.Name,
			fmt.Sprintf("%dx%d", info.Image.Width, info.Image.Height),
			fmt.Sprintf("%d", info.Image.SamplesPerPixel),
			fmt.Sprintf("%d", info.Image.MaxDepth),
			info.Description,
		})
	}
	table.Render()
	return buf.String()
}
