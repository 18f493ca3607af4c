package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// ShadowAcneEpsilon is the minimum ray parameter accepted for a hit.
// It keeps a scattered ray from re-hitting the surface it just left.
const ShadowAcneEpsilon = 0.001

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the light carried back along ray, following at most depth bounces.
	RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3
}

var (
	horizonColor = core.NewVec3(1.0, 1.0, 1.0)
	zenithColor  = core.NewVec3(0.5, 0.7, 1.0)
)

// SkyGradient is the environment light seen by rays that escape the scene:
// white at the horizon blending to sky blue straight up.
func SkyGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return horizonColor.Lerp(zenithColor, t)
}

// New returns the integrator registered under name ("recursive" or "iterative")
func New(name string) (Integrator, error) {
	switch name {
	case "", "recursive":
		return NewPathTracingIntegrator(), nil
	case "iterative":
		return NewIterativePathTracingIntegrator(), nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", name)
	}
}

// intersect finds the nearest hit on [ShadowAcneEpsilon, +Inf)
func intersect(ray core.Ray, world geometry.Hittable) (*material.HitRecord, bool) {
	return world.Hit(ray, ShadowAcneEpsilon, math.Inf(1))
}
