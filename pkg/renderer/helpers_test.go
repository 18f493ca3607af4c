package renderer

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Noticef(string, ...interface{})  {}
func (nopLogger) Warningf(string, ...interface{}) {}

// groundWorld is a single large Lambertian sphere whose top touches y=0
func groundWorld() *geometry.HittableList {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
	)
}

// groundCamera looks down the -z axis from just above the ground
func groundCamera(aspect float64) *geometry.Camera {
	return geometry.NewCamera(geometry.CameraConfig{
		LookFrom:      core.NewVec3(0, 1, 0),
		LookAt:        core.NewVec3(0, 1, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   aspect,
		Aperture:      0,
		FocusDistance: 1,
	})
}
