package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// ErrUnknownScene is returned by New for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.HittableList // Objects in the scene
	CameraConfig geometry.CameraConfig
	ImageConfig  renderer.ImageConfig // Recommended image settings
}

// Camera builds the scene camera. The image aspect ratio takes precedence
// over the one stored in the camera configuration so the two never disagree.
func (s *Scene) Camera() *geometry.Camera {
	config := s.CameraConfig
	if s.ImageConfig.AspectRatio > 0 {
		config.AspectRatio = s.ImageConfig.AspectRatio
	}
	return geometry.NewCamera(config)
}

// GetPrimitiveCount returns the number of objects in the world
func (s *Scene) GetPrimitiveCount() int {
	if s.World == nil {
		return 0
	}
	return s.World.Len()
}

// Builder constructs a scene. Scenes that place objects randomly draw from seed.
type Builder func(seed int64) *Scene

// SceneInfo describes a registered scene
type SceneInfo struct {
	Name        string
	Description string
	Image       renderer.ImageConfig
}

type entry struct {
	description string
	build       Builder
}

var registry = map[string]entry{}

// Register adds a scene under name, replacing any earlier registration
func Register(name, description string, build Builder) {
	registry[name] = entry{description: description, build: build}
}

// New builds the named scene
func New(name string, seed int64) (*Scene, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	s := e.build(seed)
	s.Name = name
	return s, nil
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns information about every registered scene, sorted by name
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(registry))
	for _, name := range Names() {
		e := registry[name]
		infos = append(infos, SceneInfo{
			Name:        name,
			Description: e.description,
			Image:       e.build(1).ImageConfig,
		})
	}
	return infos
}

func init() {
	Register("random", "Ground sphere with a grid of small random spheres and three large ones", NewRandomScene)
	Register("default", "Three spheres on a large ground sphere, including a hollow glass sphere", NewDefaultScene)
	Register("ground", "A single ground sphere under the sky", NewGroundScene)
}
