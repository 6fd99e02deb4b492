package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/davidgray/go-diffuse-raytracer/pkg/renderer"
	"github.com/davidgray/go-diffuse-raytracer/pkg/scene"
)

const appName = "go-diffuse-raytracer"

var cfgFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   appName,
		Short: "Offline diffuse ray tracer",
		Long: `Renders a sphere scene by casting rays from a pinhole camera and
simulating diffuse light bounces against a sky gradient.

Available scenes:
  default       - unit sphere resting on a large ground sphere
  single-sphere - lone sphere floating against the sky`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (YAML)")

	flags := cmd.Flags()
	flags.String("scene", "default", "Scene type: 'default' or 'single-sphere'")
	flags.Int("width", 400, "Image width in pixels (height follows the camera aspect ratio)")
	flags.Int("samples", 100, "Samples per pixel")
	flags.Int("max-depth", 50, "Maximum ray bounce depth")
	flags.String("output", "output", "Output directory")
	flags.String("format", "png", "Output format: 'png' or 'ppm'")
	flags.Int("preview-width", 0, "Also write a downscaled preview of this width (0 disables)")

	for _, name := range []string{"scene", "width", "samples", "max-depth", "output", "format", "preview-width"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	cobra.OnInitialize(initConfig)

	return cmd
}

// initConfig loads the optional config file; flag values take precedence
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("render")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func runRender() error {
	logger := log.New(os.Stderr, "", 0)

	sceneType := viper.GetString("scene")
	selectedScene, err := scene.New(sceneType)
	if err != nil {
		return err
	}

	width := viper.GetInt("width")
	height := int(float64(width) / selectedScene.CameraConfig.AspectRatio)

	format := viper.GetString("format")
	if format != "png" && format != "ppm" {
		return fmt.Errorf("unknown output format: %q", format)
	}

	outputDir := filepath.Join(viper.GetString("output"), sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	raytracer := renderer.NewRaytracer(selectedScene, width, height)
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: viper.GetInt("samples"),
		MaxDepth:        viper.GetInt("max-depth"),
	})
	raytracer.SetLogger(logger)

	logger.Printf("Rendering %q at %dx%d, %d samples/pixel, depth %d",
		sceneType, width, height, viper.GetInt("samples"), viper.GetInt("max-depth"))

	startTime := time.Now()
	img, stats := raytracer.RenderPass()
	renderTime := time.Since(startTime)

	logger.Printf("Render completed in %v", renderTime)
	logger.Printf("Luminance mean %.4f, stddev %.4f over %d samples",
		stats.MeanLuminance, stats.StdDevLuminance, stats.TotalSamples)

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))

	if err := writeImage(filename, format, img); err != nil {
		return err
	}
	logger.Printf("Render saved as %s", filename)

	if previewWidth := viper.GetInt("preview-width"); previewWidth > 0 {
		preview := renderer.Downscale(img, previewWidth)
		previewName := filepath.Join(outputDir, fmt.Sprintf("render_%s_preview.%s", timestamp, format))
		if err := writeImage(previewName, format, preview); err != nil {
			return err
		}
		logger.Printf("Preview saved as %s", previewName)
	}

	return nil
}

func writeImage(filename, format string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	switch format {
	case "ppm":
		err = renderer.WritePPM(file, img)
	default:
		err = renderer.WritePNG(file, img)
	}
	return err
}
