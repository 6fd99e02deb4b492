package renderer

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/davidgray/go-diffuse-raytracer/pkg/core"
	"github.com/davidgray/go-diffuse-raytracer/pkg/geometry"
	"github.com/davidgray/go-diffuse-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() *geometry.HittableList
	GetIntegratorConfig() integrator.Config
}

// Raytracer handles the rendering process. Single-threaded: each pass walks
// the image scanline by scanline.
type Raytracer struct {
	scene      Scene
	integrator *integrator.DiffuseIntegrator
	width      int
	height     int
	config     SamplingConfig
	sampler    core.Sampler
	random     *rand.Rand
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	random := rand.New(rand.NewSource(42)) // Deterministic for testing
	return &Raytracer{
		scene:      scene,
		integrator: integrator.NewDiffuseIntegrator(scene.GetIntegratorConfig()),
		width:      width,
		height:     height,
		config:     DefaultSamplingConfig(),
		sampler:    core.NewRandomSampler(random),
		random:     random,
		logger:     nil,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetLogger installs a logger for per-scanline progress lines
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func (rt *Raytracer) vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	// Clamp to valid color range
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

// RenderPass renders a single pass with multi-sampling and returns the image
// along with whole-render statistics
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()

	luminances := make([]float64, 0, rt.width*rt.height)

	for j := rt.height - 1; j >= 0; j-- {
		if rt.logger != nil {
			rt.logger.Printf("Scanlines remaining: %d", j)
		}

		for i := 0; i < rt.width; i++ {
			var pixel PixelStats

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				// Convert pixel coordinates to normalized coordinates with jitter
				s := (float64(i) + rt.random.Float64()) / float64(rt.width)
				t := (float64(j) + rt.random.Float64()) / float64(rt.height)

				ray := camera.GetRay(s, t)
				pixel.AddSample(rt.integrator.RayColor(ray, world, rt.sampler, rt.config.MaxDepth))
			}

			colorVec := pixel.Color()
			luminances = append(luminances, colorVec.Luminance())

			// Image rows run top to bottom; viewport rows bottom to top
			img.SetRGBA(i, rt.height-1-j, rt.vec3ToColor(colorVec))
		}
	}

	return img, summarize(luminances, rt.config.SamplesPerPixel)
}
