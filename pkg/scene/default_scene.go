package scene

import (
	"image/color"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"golang.org/x/image/colornames"
)

// albedo converts a named 8-bit color to a reflectance in [0, 1]
func albedo(c color.RGBA) core.Vec3 {
	return core.NewVec3(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// NewDefaultScene creates a small scene with diffuse, glass and metal spheres
// resting on a large ground sphere. The seed is unused.
func NewDefaultScene(int64) *Scene {
	lambertianGround := material.NewLambertian(albedo(colornames.Olive))
	lambertianBlue := material.NewLambertian(albedo(colornames.Steelblue))
	materialGlass := material.NewDielectric(1.5)
	metalGold := material.NewMetal(albedo(colornames.Goldenrod), 0.0)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianBlue),
		// A negative radius flips the normals, making a hollow glass shell
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, materialGlass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, materialGlass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
	)

	imageConfig := renderer.DefaultImageConfig()

	return &Scene{
		World: world,
		CameraConfig: geometry.CameraConfig{
			LookFrom:      core.NewVec3(3, 3, 2),
			LookAt:        core.NewVec3(0, 0, -1),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20,
			AspectRatio:   imageConfig.AspectRatio,
			Aperture:      1.0,
			FocusDistance: 0, // Focus on the center sphere
		},
		ImageConfig: imageConfig,
	}
}

// NewGroundScene creates a scene with nothing but the ground sphere and sky.
// It renders quickly and makes a useful smoke test. The seed is unused.
func NewGroundScene(int64) *Scene {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
	)

	imageConfig := renderer.NewImageConfig(2.0, 200, 16, 10)

	return &Scene{
		World: world,
		CameraConfig: geometry.CameraConfig{
			LookFrom:      core.NewVec3(0, 1, 0),
			LookAt:        core.NewVec3(0, 1, -1),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          90,
			AspectRatio:   imageConfig.AspectRatio,
			FocusDistance: 1,
		},
		ImageConfig: imageConfig,
	}
}
