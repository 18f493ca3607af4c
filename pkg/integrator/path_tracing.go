package integrator

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
)

// PathTracingIntegrator implements unidirectional path tracing by recursion
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := intersect(ray, world)
	if !isHit {
		return SkyGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, depth-1, sampler))
}

// IterativePathTracingIntegrator produces the same result as PathTracingIntegrator
// with a loop instead of recursion, so deep bounce limits do not grow the call stack.
type IterativePathTracingIntegrator struct{}

// NewIterativePathTracingIntegrator creates a new loop-based path tracing integrator
func NewIterativePathTracingIntegrator() *IterativePathTracingIntegrator {
	return &IterativePathTracingIntegrator{}
}

// RayColor computes the color for a single ray
func (it *IterativePathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	var attenuations []core.Vec3
	var color core.Vec3

	for {
		if depth <= 0 {
			color = core.Vec3{}
			break
		}

		hit, isHit := intersect(ray, world)
		if !isHit {
			color = SkyGradient(ray)
			break
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			color = core.Vec3{}
			break
		}

		attenuations = append(attenuations, scatter.Attenuation)
		ray = scatter.Scattered
		depth--
	}

	// Unwind innermost bounce first so the products match the recursive order exactly
	for i := len(attenuations) - 1; i >= 0; i-- {
		color = attenuations[i].MultiplyVec(color)
	}

	return color
}
