package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Terrain.UnitCount != 256 {
		t.Errorf("expected unit count 256, got %d", cfg.Terrain.UnitCount)
	}
	if cfg.Terrain.UnitSize != 0.25 {
		t.Errorf("expected unit size 0.25, got %f", cfg.Terrain.UnitSize)
	}
	if cfg.Generation.NoiseBackend != BackendPerlin {
		t.Errorf("expected perlin backend, got %s", cfg.Generation.NoiseBackend)
	}
	want := []string{StageNoise, StageErosion, StageSmooth}
	if len(cfg.Generation.Stages) != len(want) {
		t.Fatalf("expected %d stages, got %v", len(want), cfg.Generation.Stages)
	}
	for i, s := range want {
		if cfg.Generation.Stages[i] != s {
			t.Errorf("stage %d: expected %s, got %s", i, s, cfg.Generation.Stages[i])
		}
	}
	if cfg.Generation.ErosionDrops != 1000 {
		t.Errorf("expected 1000 erosion drops, got %d", cfg.Generation.ErosionDrops)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "terragen.yaml")

	yamlContent := `
terrain:
  unit_count: 64
  unit_size: 1.5
  height_scale: 10
  water_height: 0.5

generation:
  seed: 1234
  noise_backend: simplex
  stages: [noise, smooth]
  smooth_passes: 2

graphics:
  width: 1920
  wireframe: true

logging:
  level: "debug"
  log_file: "terragen.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Terrain.UnitCount != 64 {
		t.Errorf("expected unit count 64, got %d", cfg.Terrain.UnitCount)
	}
	if cfg.Terrain.UnitSize != 1.5 {
		t.Errorf("expected unit size 1.5, got %f", cfg.Terrain.UnitSize)
	}
	if cfg.Generation.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Generation.Seed)
	}
	if cfg.Generation.NoiseBackend != BackendSimplex {
		t.Errorf("expected simplex backend, got %s", cfg.Generation.NoiseBackend)
	}
	if len(cfg.Generation.Stages) != 2 || cfg.Generation.Stages[1] != StageSmooth {
		t.Errorf("expected [noise smooth], got %v", cfg.Generation.Stages)
	}
	if cfg.Generation.ErosionDrops != 1000 {
		t.Errorf("unset fields should keep defaults, got erosion drops %d", cfg.Generation.ErosionDrops)
	}
	if !cfg.Graphics.Wireframe {
		t.Error("expected wireframe to be true")
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected default height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Logging.LogFile != "terragen.log" {
		t.Errorf("expected log file 'terragen.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
terrain:
  unit_count: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/terragen.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero unit count", func(c *Config) { c.Terrain.UnitCount = 0 }},
		{"negative unit size", func(c *Config) { c.Terrain.UnitSize = -1 }},
		{"unknown backend", func(c *Config) { c.Generation.NoiseBackend = "value" }},
		{"unknown stage", func(c *Config) { c.Generation.Stages = []string{"noise", "rivers"} }},
		{"zero fractal budget", func(c *Config) { c.Generation.FractalBudget = 0 }},
		{"zero smooth passes", func(c *Config) { c.Generation.SmoothPasses = 0 }},
		{"zero erosion ticks", func(c *Config) { c.Generation.ErosionMaxTicks = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME only applies on other platforms")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if got, want := ConfigDir(), filepath.Join(xdg, appDirName); got != want {
		t.Errorf("ConfigDir() = %s, want %s", got, want)
	}

	if err := os.MkdirAll(ConfigDir(), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(ConfigDir(), UserConfigFile), []byte("terrain:\n  unit_count: 16\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)
	os.Chdir(t.TempDir())

	if got, want := findConfigFile(), filepath.Join(xdg, appDirName, UserConfigFile); got != want {
		t.Errorf("findConfigFile() = %q, want %q", got, want)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, LocalConfigFile), []byte("terrain:\n  unit_count: 32\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find terragen.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "seed flag",
			setup: func() { *flagSeed = 99 },
			verify: func(cfg *Config) {
				if cfg.Generation.Seed != 99 {
					t.Errorf("expected seed 99, got %d", cfg.Generation.Seed)
				}
			},
			teardown: func() { *flagSeed = 0 },
		},
		{
			name:  "size flag",
			setup: func() { *flagSize = 32 },
			verify: func(cfg *Config) {
				if cfg.Terrain.UnitCount != 32 {
					t.Errorf("expected unit count 32, got %d", cfg.Terrain.UnitCount)
				}
			},
			teardown: func() { *flagSize = 0 },
		},
		{
			name:  "noise flag",
			setup: func() { *flagNoise = BackendSimplex },
			verify: func(cfg *Config) {
				if cfg.Generation.NoiseBackend != BackendSimplex {
					t.Errorf("expected simplex backend, got %s", cfg.Generation.NoiseBackend)
				}
			},
			teardown: func() { *flagNoise = "" },
		},
		{
			name:  "stages flag",
			setup: func() { *flagStages = "fractal,smooth" },
			verify: func(cfg *Config) {
				if len(cfg.Generation.Stages) != 2 || cfg.Generation.Stages[0] != StageFractal {
					t.Errorf("expected [fractal smooth], got %v", cfg.Generation.Stages)
				}
			},
			teardown: func() { *flagStages = "" },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Terrain.UnitCount = 48
	cfg.Generation.Stages = []string{StageFractal}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Terrain.UnitCount != 48 {
		t.Errorf("expected unit count 48, got %d", loaded.Terrain.UnitCount)
	}
	if len(loaded.Generation.Stages) != 1 || loaded.Generation.Stages[0] != StageFractal {
		t.Errorf("expected [fractal], got %v", loaded.Generation.Stages)
	}
}

func TestWaterLine(t *testing.T) {
	tests := []struct {
		name string
		t    TerrainConfig
		want float32
	}{
		{"default", Default().Terrain, 0.05},
		{"no height scale", TerrainConfig{WaterHeight: 2}, 0},
		{"above range", TerrainConfig{WaterHeight: 10, HeightScale: 5}, 1},
		{"negative", TerrainConfig{WaterHeight: -1, HeightScale: 5}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.WaterLine(); got != tt.want {
				t.Errorf("WaterLine() = %v, want %v", got, tt.want)
			}
		})
	}
}
