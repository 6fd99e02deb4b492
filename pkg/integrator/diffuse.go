package integrator

import (
	"math"

	"github.com/davidgray/go-diffuse-raytracer/pkg/core"
	"github.com/davidgray/go-diffuse-raytracer/pkg/geometry"
)

// DefaultTMin is the minimum hit distance used to reject self-intersections
// of bounce rays at their origin (shadow acne). Kept as a constant rather
// than derived adaptively.
const DefaultTMin = 0.001

// DefaultAlbedo is the fraction of light retained per diffuse bounce
const DefaultAlbedo = 0.5

// Config contains integrator configuration
type Config struct {
	TMin   float64   // Minimum hit distance for bounce rays
	Albedo float64   // Light retained per bounce
	Top    core.Vec3 // Background color at the zenith
	Bottom core.Vec3 // Background color at the horizon
}

// DefaultConfig returns the standard sky-gradient diffuse configuration
func DefaultConfig() Config {
	return Config{
		TMin:   DefaultTMin,
		Albedo: DefaultAlbedo,
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// DiffuseIntegrator computes ray colors by recursive uniform-hemisphere
// diffuse bounces against a sky-gradient background
type DiffuseIntegrator struct {
	config Config
}

// NewDiffuseIntegrator creates a new diffuse integrator
func NewDiffuseIntegrator(config Config) *DiffuseIntegrator {
	return &DiffuseIntegrator{config: config}
}

// RayColor computes the color for a single ray.
// Depth bounds the recursion; at zero no more light is gathered.
func (di *DiffuseIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, di.config.TMin, math.Inf(1))
	if !isHit {
		return di.backgroundGradient(ray)
	}

	// Diffuse bounce: uniform direction in the hemisphere around the normal.
	// The record normal already opposes the incoming ray, so the bounce
	// always leaves the surface on the correct side.
	bounceDir := core.SampleUniformHemisphere(hit.Normal, sampler.Get2D())
	target := hit.Point.Add(bounceDir)
	bounce := core.NewRay(hit.Point, target.Subtract(hit.Point))

	return di.RayColor(bounce, world, sampler, depth-1).Multiply(di.config.Albedo)
}

// backgroundGradient returns a gradient color based on ray direction
func (di *DiffuseIntegrator) backgroundGradient(r core.Ray) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return di.config.Bottom.Lerp(di.config.Top, t)
}
