package scene

import (
	"github.com/davidgray/go-diffuse-raytracer/pkg/core"
	"github.com/davidgray/go-diffuse-raytracer/pkg/geometry"
	"github.com/davidgray/go-diffuse-raytracer/pkg/integrator"
	"github.com/davidgray/go-diffuse-raytracer/pkg/renderer"
)

// newBaseScene builds the shared 16:9 camera and empty world
func newBaseScene() *Scene {
	cameraConfig := renderer.DefaultCameraConfig()

	return &Scene{
		Camera:           renderer.NewCamera(cameraConfig),
		CameraConfig:     cameraConfig,
		World:            geometry.NewHittableList(),
		SamplingConfig:   renderer.DefaultSamplingConfig(),
		IntegratorConfig: integrator.DefaultConfig(),
		Width:            400,
		Height:           225, // 16:9 aspect ratio
	}
}

// NewDefaultScene creates the standard two-sphere scene: a unit-test sphere
// in front of the camera resting on a large ground sphere
func NewDefaultScene() *Scene {
	s := newBaseScene()
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100) // ground
	return s
}

// NewSingleSphereScene creates a scene with only the centered sphere,
// floating against the sky gradient
func NewSingleSphereScene() *Scene {
	s := newBaseScene()
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5)
	return s
}
