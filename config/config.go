// Package config loads the viewer settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	PrimitiveTriangles = "triangles"
	PrimitiveStrip     = "strip"
)

type Window struct {
	Title  string `toml:"title"`
	Width  int32  `toml:"width"`
	Height int32  `toml:"height"`
	VSync  bool   `toml:"vsync"`
	MSAA   bool   `toml:"msaa"`
}

type Shaders struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	Imgui    string `toml:"imgui"`
	// Watch recompiles the pyramid program when a shader file changes on disk
	Watch bool `toml:"watch"`
}

type View struct {
	InitialZoom float32 `toml:"initial_zoom"`
	ZoomStep    float32 `toml:"zoom_step"`
	// ApplyZRotation adds the tracked z rotation to the model matrix. Off by default
	ApplyZRotation bool   `toml:"apply_z_rotation"`
	Primitive      string `toml:"primitive"`
	// InitialColor is RGBA, 0-255 per channel
	InitialColor []int `toml:"initial_color"`
	// ClearColor is RGBA, 0-1 per channel
	ClearColor []float32 `toml:"clear_color"`
}

type Config struct {
	LogLevel string  `toml:"log_level"`
	Window   Window  `toml:"window"`
	Shaders  Shaders `toml:"shaders"`
	View     View    `toml:"view"`
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Window: Window{
			Title:  "OpenGlDemo",
			Width:  640,
			Height: 720,
			VSync:  true,
			MSAA:   true,
		},
		Shaders: Shaders{
			Vertex:   "./res/shaders/pyramid.vert.glsl",
			Fragment: "./res/shaders/pyramid.frag.glsl",
			Imgui:    "./res/shaders/imgui.glsl",
		},
		View: View{
			InitialZoom:  -5,
			ZoomStep:     0.1,
			Primitive:    PrimitiveTriangles,
			InitialColor: []int{255, 0, 0, 255},
			ClearColor:   []float32{0, 0, 0.3, 0},
		},
	}
}

// Load reads the file at path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	if err != nil {
		return Config{}, fmt.Errorf("failed to read config '%s': %w", path, err)
	}

	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {

	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return errors.New("both vertex and fragment shader paths must be set")
	}

	if c.Shaders.Imgui == "" {
		return errors.New("imgui shader path must be set")
	}

	if c.View.ZoomStep <= 0 {
		return fmt.Errorf("zoom_step must be positive, got %v", c.View.ZoomStep)
	}

	if c.View.Primitive != PrimitiveTriangles && c.View.Primitive != PrimitiveStrip {
		return fmt.Errorf("primitive must be '%s' or '%s', got '%s'", PrimitiveTriangles, PrimitiveStrip, c.View.Primitive)
	}

	if len(c.View.InitialColor) != 4 {
		return fmt.Errorf("initial_color needs 4 channels, got %d", len(c.View.InitialColor))
	}

	for i, v := range c.View.InitialColor {
		if v < 0 || v > 255 {
			return fmt.Errorf("initial_color channel %d out of range 0-255: %d", i, v)
		}
	}

	if len(c.View.ClearColor) != 4 {
		return fmt.Errorf("clear_color needs 4 channels, got %d", len(c.View.ClearColor))
	}

	return nil
}
