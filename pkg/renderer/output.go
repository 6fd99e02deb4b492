package renderer

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/nfnt/resize"
)

// WritePNG encodes the rendered image as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// WritePPM encodes the rendered image in plain PPM (P3) format
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit channels
			if _, err := fmt.Fprintf(w, "%d %d %d\n", r>>8, g>>8, b>>8); err != nil {
				return fmt.Errorf("writing ppm pixel: %w", err)
			}
		}
	}

	return nil
}

// Downscale resizes the image to the given width for quick-look previews,
// preserving the aspect ratio
func Downscale(img image.Image, width int) image.Image {
	return resize.Resize(uint(width), 0, img, resize.Lanczos3)
}
