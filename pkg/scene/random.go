package scene

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

const (
	gridExtent      = 11
	smallRadius     = 0.2
	diffuseChance   = 0.8
	metalChance     = 0.95 // cumulative; the rest is glass
	glassIndex      = 1.5
	clearanceRadius = 0.9
)

// NewRandomScene creates the "many spheres" scene: a 22x22 grid of small
// spheres with random materials around three large spheres. The layout is
// fully determined by seed.
func NewRandomScene(seed int64) *Scene {
	sampler := core.NewSeededSampler(seed)
	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// Keep the small spheres clear of the large metal sphere
	clearance := core.NewVec3(4, smallRadius, 0)

	for a := -gridExtent; a < gridExtent; a++ {
		for b := -gridExtent; b < gridExtent; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				smallRadius,
				float64(b)+0.9*sampler.Get1D(),
			)

			if center.Subtract(clearance).Length() <= clearanceRadius {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < diffuseChance:
				albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
				mat = material.NewLambertian(albedo)
			case chooseMat < metalChance:
				albedo := core.RandomVec3Range(sampler, 0.5, 1.0)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(glassIndex)
			}
			world.Add(geometry.NewSphere(center, smallRadius, mat))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(glassIndex)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	imageConfig := renderer.NewImageConfig(3.0/2.0, 1200, 500, 50)

	return &Scene{
		World: world,
		CameraConfig: geometry.CameraConfig{
			LookFrom:      core.NewVec3(12, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20,
			AspectRatio:   imageConfig.AspectRatio,
			Aperture:      0.1,
			FocusDistance: 10,
		},
		ImageConfig: imageConfig,
	}
}
