package scene

import (
	"fmt"

	"github.com/davidgray/go-diffuse-raytracer/pkg/core"
	"github.com/davidgray/go-diffuse-raytracer/pkg/geometry"
	"github.com/davidgray/go-diffuse-raytracer/pkg/integrator"
	"github.com/davidgray/go-diffuse-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera           *renderer.Camera
	CameraConfig     renderer.CameraConfig
	World            *geometry.HittableList
	SamplingConfig   renderer.SamplingConfig
	IntegratorConfig integrator.Config
	Width            int // Image width in pixels
	Height           int // Image height in pixels
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld returns the scene's hittable aggregate
func (s *Scene) GetWorld() *geometry.HittableList {
	return s.World
}

// GetIntegratorConfig returns the shading configuration
func (s *Scene) GetIntegratorConfig() integrator.Config {
	return s.IntegratorConfig
}

// AddSphere adds a sphere to the scene world
func (s *Scene) AddSphere(center core.Vec3, radius float64) {
	s.World.Add(geometry.NewSphere(center, radius))
}

// New creates a scene by name. Known names: "default", "single-sphere".
func New(name string) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(), nil
	case "single-sphere":
		return NewSingleSphereScene(), nil
	}
	return nil, fmt.Errorf("unknown scene type: %q", name)
}
