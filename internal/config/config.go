// Package config handles terragen configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) by Validate for unusable settings.
var ErrInvalid = errors.New("invalid config")

// Config holds all settings. It is fixed before a generation run starts.
type Config struct {
	Terrain    TerrainConfig    `yaml:"terrain"`
	Generation GenerationConfig `yaml:"generation"`
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Camera     CameraConfig     `yaml:"camera"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// TerrainConfig holds heightmap and mesh dimensions.
type TerrainConfig struct {
	UnitCount   int     `yaml:"unit_count"`   // Grid edge cell count
	UnitSize    float32 `yaml:"unit_size"`    // World spacing between vertices
	HeightScale float32 `yaml:"height_scale"` // Multiplier applied to heights in the mesh
	WaterHeight float32 `yaml:"water_height"` // World height at or below which cells are water
}

// GenerationConfig holds the pipeline layout and algorithm tuning.
type GenerationConfig struct {
	Seed             uint64   `yaml:"seed"` // 0 draws a fresh seed
	NoiseBackend     string   `yaml:"noise_backend"`
	BaseFrequency    float64  `yaml:"base_frequency"`
	Stages           []string `yaml:"stages"`
	FractalBudget    int      `yaml:"fractal_budget"` // Regions processed per tick
	FractalRoughness float32  `yaml:"fractal_roughness"`
	ErosionDrops     int      `yaml:"erosion_drops"`
	ErosionStrength  float32  `yaml:"erosion_strength"`
	ErosionMaxTicks  int      `yaml:"erosion_max_ticks"`
	SmoothPasses     int      `yaml:"smooth_passes"`
}

// GraphicsConfig holds viewer window settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Wireframe  bool `yaml:"wireframe"`

	SunLongitude  float32 `yaml:"sun_longitude"` // Degrees about Y from +Z
	SunLatitude   float32 `yaml:"sun_latitude"`  // Degrees above the horizon
	ScreenshotDir string  `yaml:"screenshot_dir"`
}

// CameraConfig holds fly camera tuning for the in-game view.
type CameraConfig struct {
	MoveSpeed        float32 `yaml:"move_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// WaterLine returns the water height as a fraction of the normalized height
// range, clamped to [0, 1].
func (t TerrainConfig) WaterLine() float32 {
	if t.HeightScale <= 0 {
		return 0
	}
	return min(max(t.WaterHeight/t.HeightScale, 0), 1)
}

// Known stage and backend names.
const (
	StageNoise   = "noise"
	StageFractal = "fractal" // Alternative to noise; both overwrite the whole field
	StageErosion = "erosion"
	StageSmooth  = "smooth"

	BackendPerlin  = "perlin"
	BackendSimplex = "simplex"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			UnitCount:   256,
			UnitSize:    0.25,
			HeightScale: 40,
			WaterHeight: 2,
		},
		Generation: GenerationConfig{
			Seed:             0,
			NoiseBackend:     BackendPerlin,
			BaseFrequency:    2.0,
			Stages:           []string{StageNoise, StageErosion, StageSmooth},
			FractalBudget:    512,
			FractalRoughness: 0.35,
			ErosionDrops:     1000,
			ErosionStrength:  0.002,
			ErosionMaxTicks:  2000,
			SmoothPasses:     5,
		},
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			VSync:         true,
			SunLongitude:  45,
			SunLatitude:   50,
			ScreenshotDir: "screenshots",
		},
		Camera: CameraConfig{
			MoveSpeed:        12,
			MouseSensitivity: 0.003,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	if c.Terrain.UnitCount <= 0 {
		return fmt.Errorf("%w: terrain.unit_count must be positive, got %d", ErrInvalid, c.Terrain.UnitCount)
	}
	if c.Terrain.UnitSize <= 0 {
		return fmt.Errorf("%w: terrain.unit_size must be positive, got %v", ErrInvalid, c.Terrain.UnitSize)
	}
	switch c.Generation.NoiseBackend {
	case BackendPerlin, BackendSimplex:
	default:
		return fmt.Errorf("%w: unknown noise backend %q", ErrInvalid, c.Generation.NoiseBackend)
	}
	for _, s := range c.Generation.Stages {
		switch s {
		case StageNoise, StageFractal, StageErosion, StageSmooth:
		default:
			return fmt.Errorf("%w: unknown stage %q", ErrInvalid, s)
		}
	}
	if c.Generation.FractalBudget <= 0 {
		return fmt.Errorf("%w: generation.fractal_budget must be positive", ErrInvalid)
	}
	if c.Generation.SmoothPasses <= 0 {
		return fmt.Errorf("%w: generation.smooth_passes must be positive", ErrInvalid)
	}
	if c.Generation.ErosionDrops < 0 || c.Generation.ErosionMaxTicks <= 0 {
		return fmt.Errorf("%w: erosion drops must be >= 0 and max ticks > 0", ErrInvalid)
	}
	return nil
}
