package geometry

import (
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

func TestHittableList_Empty(t *testing.T) {
	world := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := world.Hit(ray, 0.001, 1000); isHit {
		t.Error("Empty list should never report a hit")
	}
}

func TestHittableList_NearestHit(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 1, 0))

	// Far sphere added first so order cannot decide the result
	world := NewHittableList(
		NewSphere(core.NewVec3(0, 0, -10), 1, far),
		NewSphere(core.NewVec3(0, 0, -3), 1, near),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := world.Hit(ray, 0.001, 1000)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != near {
		t.Errorf("Expected nearest sphere's material")
	}
	if hit.T != 2 {
		t.Errorf("Expected t=2, got %f", hit.T)
	}
}

func TestHittableList_AddAndClear(t *testing.T) {
	world := NewHittableList()
	world.Add(NewSphere(core.NewVec3(0, 0, -1), 0.5, testMaterial))
	world.Add(NewSphere(core.NewVec3(0, -100.5, -1), 100, testMaterial))

	if world.Len() != 2 || len(world.Objects()) != 2 {
		t.Fatalf("Expected 2 objects, got %d", world.Len())
	}

	world.Clear()
	if world.Len() != 0 {
		t.Errorf("Expected empty list after Clear, got %d", world.Len())
	}
}

func TestHittableList_MatchesLinearMinimum(t *testing.T) {
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	for scene := 0; scene < 20; scene++ {
		var spheres []*Sphere
		world := NewHittableList()
		for i := 0; i < 15; i++ {
			s := NewSphere(core.RandomVec3Range(sampler, -10, 10), core.RandomRange(sampler, 0.2, 3), testMaterial)
			spheres = append(spheres, s)
			world.Add(s)
		}

		for r := 0; r < 200; r++ {
			ray := core.NewRay(core.RandomVec3Range(sampler, -12, 12), core.RandomUnitVector(sampler))
			tMin := 0.001
			tMax := core.RandomRange(sampler, 1, 40)

			// Manual minimum over every sphere
			var best *material.HitRecord
			for _, s := range spheres {
				if hit, ok := s.Hit(ray, tMin, tMax); ok && (best == nil || hit.T < best.T) {
					best = hit
				}
			}

			got, isHit := world.Hit(ray, tMin, tMax)
			if isHit != (best != nil) {
				t.Fatalf("scene %d ray %d: list hit=%t, manual hit=%t", scene, r, isHit, best != nil)
			}
			if best == nil {
				continue
			}
			if got.T != best.T || !got.Point.Equals(best.Point) || !got.Normal.Equals(best.Normal) {
				t.Fatalf("scene %d ray %d: list returned t=%f, manual minimum t=%f", scene, r, got.T, best.T)
			}
		}
	}
}

func TestHittableList_Nested(t *testing.T) {
	inner := NewHittableList(NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial))
	outer := NewHittableList(inner, NewSphere(core.NewVec3(0, 0, -5), 0.5, testMaterial))

	hit, isHit := outer.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, 1000)
	if !isHit {
		t.Fatal("Expected hit through nested list")
	}
	if hit.T != 1.5 {
		t.Errorf("Expected t=1.5, got %f", hit.T)
	}
}
