package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Shapes.Param1 != 5 || cfg.Shapes.Param2 != 5 {
		t.Errorf("expected tessellation 5x5, got %dx%d", cfg.Shapes.Param1, cfg.Shapes.Param2)
	}

	// Terrain defaults
	if cfg.Terrain.GridWidth != 200 || cfg.Terrain.GridDepth != 200 {
		t.Errorf("expected grid 200x200, got %dx%d", cfg.Terrain.GridWidth, cfg.Terrain.GridDepth)
	}
	if cfg.Terrain.WorldWidth != 50 {
		t.Errorf("expected world width 50, got %f", cfg.Terrain.WorldWidth)
	}
	if cfg.Terrain.HeightScale != 5 {
		t.Errorf("expected height scale 5, got %f", cfg.Terrain.HeightScale)
	}
	if cfg.Terrain.Octaves != 4 {
		t.Errorf("expected 4 octaves, got %d", cfg.Terrain.Octaves)
	}

	// Scatter defaults
	if cfg.Scatter.Baguettes.Count != 150 {
		t.Errorf("expected 150 baguettes, got %d", cfg.Scatter.Baguettes.Count)
	}
	if cfg.Scatter.Loaves.Count != 60 {
		t.Errorf("expected 60 loaves, got %d", cfg.Scatter.Loaves.Count)
	}

	if cfg.Render.MaxLights != 8 {
		t.Errorf("expected 8 lights, got %d", cfg.Render.MaxLights)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestTerrainParams(t *testing.T) {
	cfg := Default()
	cfg.Terrain.GridWidth = 4
	cfg.Terrain.Octaves = 2

	p := cfg.Terrain.Params()
	if p.GridWidth != 4 || p.Octaves != 2 {
		t.Errorf("params not copied: %+v", p)
	}
	if p.NoiseFrequency != 0.1 {
		t.Errorf("expected noise frequency 0.1, got %f", p.NoiseFrequency)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
shapes:
  param1: 12
  param2: 24

terrain:
  grid_width: 64
  grid_depth: 32
  octaves: 6

scatter:
  seed: 99
  baguettes:
    count: 10

logging:
  level: "debug"
  log_file: "hearth.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Shapes.Param1 != 12 || cfg.Shapes.Param2 != 24 {
		t.Errorf("expected tessellation 12x24, got %dx%d", cfg.Shapes.Param1, cfg.Shapes.Param2)
	}
	if cfg.Terrain.GridWidth != 64 || cfg.Terrain.GridDepth != 32 {
		t.Errorf("expected grid 64x32, got %dx%d", cfg.Terrain.GridWidth, cfg.Terrain.GridDepth)
	}
	if cfg.Terrain.Octaves != 6 {
		t.Errorf("expected 6 octaves, got %d", cfg.Terrain.Octaves)
	}
	// Unset fields keep their defaults
	if cfg.Terrain.WorldWidth != 50 {
		t.Errorf("expected default world width, got %f", cfg.Terrain.WorldWidth)
	}
	if cfg.Scatter.Seed != 99 || cfg.Scatter.Baguettes.Count != 10 {
		t.Errorf("unexpected scatter section: %+v", cfg.Scatter)
	}
	if cfg.Scatter.Loaves.Count != 60 {
		t.Errorf("expected default loaf count, got %d", cfg.Scatter.Loaves.Count)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "hearth.log" {
		t.Errorf("expected log file 'hearth.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
[shapes]
param1 = 8
param2 = 16

[terrain]
height_scale = 12.5
lacunarity = 2.5

[texture]
size = 256
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Shapes.Param1 != 8 || cfg.Shapes.Param2 != 16 {
		t.Errorf("expected tessellation 8x16, got %dx%d", cfg.Shapes.Param1, cfg.Shapes.Param2)
	}
	if cfg.Terrain.HeightScale != 12.5 {
		t.Errorf("expected height scale 12.5, got %f", cfg.Terrain.HeightScale)
	}
	if cfg.Terrain.Lacunarity != 2.5 {
		t.Errorf("expected lacunarity 2.5, got %f", cfg.Terrain.Lacunarity)
	}
	if cfg.Terrain.GridWidth != 200 {
		t.Errorf("expected default grid width, got %d", cfg.Terrain.GridWidth)
	}
	if cfg.Texture.Size != 256 {
		t.Errorf("expected texture size 256, got %d", cfg.Texture.Size)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
terrain:
  grid_width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			cfg := Default()
			cfg.Terrain.Octaves = 7
			cfg.Scatter.Loaves.MaxScale = 4
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("save failed: %v", err)
			}

			loaded := Default()
			if err := loadFromFile(loaded, path); err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if loaded.Terrain.Octaves != 7 {
				t.Errorf("expected 7 octaves, got %d", loaded.Terrain.Octaves)
			}
			if loaded.Scatter.Loaves.MaxScale != 4 {
				t.Errorf("expected max scale 4, got %f", loaded.Scatter.Loaves.MaxScale)
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

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "hearth.toml")
	if err := os.WriteFile(configPath, []byte("[shapes]\nparam1 = 3\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find hearth.toml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "grid flag",
			setup: func() { *flagGrid = 32 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Terrain.GridWidth != 32 || cfg.Terrain.GridDepth != 32 {
					t.Errorf("expected grid 32x32, got %dx%d", cfg.Terrain.GridWidth, cfg.Terrain.GridDepth)
				}
			},
			teardown: func() { *flagGrid = 0 },
		},
		{
			name: "tessellation flags",
			setup: func() {
				*flagTess1 = 9
				*flagTess2 = 17
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Shapes.Param1 != 9 || cfg.Shapes.Param2 != 17 {
					t.Errorf("expected tessellation 9x17, got %dx%d", cfg.Shapes.Param1, cfg.Shapes.Param2)
				}
			},
			teardown: func() {
				*flagTess1 = 0
				*flagTess2 = 0
			},
		},
		{
			name: "scene and seed flags",
			setup: func() {
				*flagScene = "scenes/test.yaml"
				*flagSeed = 1234
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Path != "scenes/test.yaml" {
					t.Errorf("expected scene path, got %q", cfg.Scene.Path)
				}
				if cfg.Scatter.Seed != 1234 {
					t.Errorf("expected seed 1234, got %d", cfg.Scatter.Seed)
				}
			},
			teardown: func() {
				*flagScene = ""
				*flagSeed = 0
			},
		},
		{
			name:  "octaves flag",
			setup: func() { *flagOctaves = 8 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Terrain.Octaves != 8 {
					t.Errorf("expected 8 octaves, got %d", cfg.Terrain.Octaves)
				}
			},
			teardown: func() { *flagOctaves = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
terrain:
  grid_width: 100
  octaves: 3
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagGrid = 40
	defer func() {
		*flagConfig = ""
		*flagGrid = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Grid from flag, not file
	if cfg.Terrain.GridWidth != 40 {
		t.Errorf("expected grid 40 from flag, got %d", cfg.Terrain.GridWidth)
	}

	// Octaves from file since no flag override
	if cfg.Terrain.Octaves != 3 {
		t.Errorf("expected 3 octaves from file, got %d", cfg.Terrain.Octaves)
	}
}
