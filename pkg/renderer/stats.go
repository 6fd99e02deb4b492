package renderer

import (
	"github.com/davidgray/go-diffuse-raytracer/pkg/core"
	"gonum.org/v1/gonum/stat"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int     // Total number of pixels rendered
	TotalSamples    int     // Total number of samples taken
	SamplesPerPixel int     // Samples taken for each pixel
	MeanLuminance   float64 // Mean of per-pixel luminance
	StdDevLuminance float64 // Standard deviation of per-pixel luminance
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// Color returns the current average color for this pixel
func (ps *PixelStats) Color() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Divide(float64(ps.SampleCount))
}

// summarize collapses per-pixel luminance values into whole-render statistics
func summarize(luminances []float64, samplesPerPixel int) RenderStats {
	return RenderStats{
		TotalPixels:     len(luminances),
		TotalSamples:    len(luminances) * samplesPerPixel,
		SamplesPerPixel: samplesPerPixel,
		MeanLuminance:   stat.Mean(luminances, nil),
		StdDevLuminance: stat.StdDev(luminances, nil),
	}
}
