// Package config handles viewer configuration loading and management.
package config

import "github.com/Faultbox/hearth/internal/engine/terrain"

// Config holds all settings that feed the geometry generators.
type Config struct {
	Shapes  ShapesConfig  `yaml:"shapes" toml:"shapes"`
	Terrain TerrainConfig `yaml:"terrain" toml:"terrain"`
	Organic OrganicConfig `yaml:"organic" toml:"organic"`
	Scatter ScatterConfig `yaml:"scatter" toml:"scatter"`
	Texture TextureConfig `yaml:"texture" toml:"texture"`
	Render  RenderConfig  `yaml:"render" toml:"render"`
	Scene   SceneConfig   `yaml:"scene" toml:"scene"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// ShapesConfig holds the tessellation parameters shared by all primitives.
type ShapesConfig struct {
	Param1 int `yaml:"param1" toml:"param1"` // Linear subdivisions (stacks, rings, face divisions)
	Param2 int `yaml:"param2" toml:"param2"` // Angular wedges around the primary axis
}

// TerrainConfig mirrors terrain.Params with file tags.
type TerrainConfig struct {
	Enabled        bool    `yaml:"enabled" toml:"enabled"`
	GridWidth      int     `yaml:"grid_width" toml:"grid_width"`
	GridDepth      int     `yaml:"grid_depth" toml:"grid_depth"`
	WorldWidth     float32 `yaml:"world_width" toml:"world_width"`
	WorldDepth     float32 `yaml:"world_depth" toml:"world_depth"`
	HeightScale    float32 `yaml:"height_scale" toml:"height_scale"`
	Octaves        int     `yaml:"octaves" toml:"octaves"`
	Persistence    float32 `yaml:"persistence" toml:"persistence"`
	Lacunarity     float32 `yaml:"lacunarity" toml:"lacunarity"`
	RidgeThreshold float32 `yaml:"ridge_threshold" toml:"ridge_threshold"`
	RidgeBoost     float32 `yaml:"ridge_boost" toml:"ridge_boost"`
	OffsetY        float32 `yaml:"offset_y" toml:"offset_y"` // World Y of the terrain origin
}

// Params converts the section to generator parameters.
func (c TerrainConfig) Params() terrain.Params {
	p := terrain.DefaultParams()
	p.GridWidth = c.GridWidth
	p.GridDepth = c.GridDepth
	p.WorldWidth = c.WorldWidth
	p.WorldDepth = c.WorldDepth
	p.HeightScale = c.HeightScale
	p.Octaves = c.Octaves
	p.Persistence = c.Persistence
	p.Lacunarity = c.Lacunarity
	p.RidgeThreshold = c.RidgeThreshold
	p.RidgeBoost = c.RidgeBoost
	return p
}

// OrganicConfig holds tessellation for the procedural bread meshes.
type OrganicConfig struct {
	BaguetteSegments int  `yaml:"baguette_segments" toml:"baguette_segments"`
	BaguetteSlices   int  `yaml:"baguette_slices" toml:"baguette_slices"`
	LoafSegments     int  `yaml:"loaf_segments" toml:"loaf_segments"`
	LoafSlices       int  `yaml:"loaf_slices" toml:"loaf_slices"`
	SmoothNormals    bool `yaml:"smooth_normals" toml:"smooth_normals"`
}

// ScatterConfig controls instance placement for both organic meshes.
type ScatterConfig struct {
	Seed      int64            `yaml:"seed" toml:"seed"`
	Baguettes PopulationConfig `yaml:"baguettes" toml:"baguettes"`
	Loaves    PopulationConfig `yaml:"loaves" toml:"loaves"`
}

// PopulationConfig describes one scattered population.
type PopulationConfig struct {
	Count    int     `yaml:"count" toml:"count"`
	Radius   float32 `yaml:"radius" toml:"radius"`
	MinScale float32 `yaml:"min_scale" toml:"min_scale"`
	MaxScale float32 `yaml:"max_scale" toml:"max_scale"`
	MaxTilt  float32 `yaml:"max_tilt" toml:"max_tilt"` // Radians
	MinY     float32 `yaml:"min_y" toml:"min_y"`
	MaxY     float32 `yaml:"max_y" toml:"max_y"`
	Lift     float32 `yaml:"lift" toml:"lift"`           // Height added per unit of scale
	OnGround bool    `yaml:"on_ground" toml:"on_ground"` // Sample terrain height instead of MinY/MaxY
}

// TextureConfig holds procedural texture settings.
type TextureConfig struct {
	Size int `yaml:"size" toml:"size"`
	Seed int `yaml:"seed" toml:"seed"`
}

// RenderConfig holds settings for the render-list consumer.
type RenderConfig struct {
	MaxLights   int     `yaml:"max_lights" toml:"max_lights"`
	NearPlane   float32 `yaml:"near_plane" toml:"near_plane"`
	FarPlane    float32 `yaml:"far_plane" toml:"far_plane"`
	AspectRatio float32 `yaml:"aspect_ratio" toml:"aspect_ratio"`

	// ShadowDistance > 0 fits the shadow map around the focus point instead
	// of the whole scene.
	ShadowDistance float32 `yaml:"shadow_distance" toml:"shadow_distance"`
}

// SceneConfig points at the scene description to resolve.
type SceneConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	tp := terrain.DefaultParams()
	return &Config{
		Shapes: ShapesConfig{
			Param1: 5,
			Param2: 5,
		},
		Terrain: TerrainConfig{
			Enabled:        true,
			GridWidth:      tp.GridWidth,
			GridDepth:      tp.GridDepth,
			WorldWidth:     tp.WorldWidth,
			WorldDepth:     tp.WorldDepth,
			HeightScale:    tp.HeightScale,
			Octaves:        tp.Octaves,
			Persistence:    tp.Persistence,
			Lacunarity:     tp.Lacunarity,
			RidgeThreshold: tp.RidgeThreshold,
			RidgeBoost:     tp.RidgeBoost,
			OffsetY:        -5.0,
		},
		Organic: OrganicConfig{
			BaguetteSegments: 40,
			BaguetteSlices:   24,
			LoafSegments:     30,
			LoafSlices:       20,
		},
		Scatter: ScatterConfig{
			Seed: 1,
			Baguettes: PopulationConfig{
				Count:    150,
				Radius:   22.5,
				MinScale: 3.5,
				MaxScale: 3.5,
				MaxTilt:  0.4,
				MinY:     -5,
				MaxY:     -5,
				Lift:     1.472,
				OnGround: true,
			},
			Loaves: PopulationConfig{
				Count:    60,
				Radius:   22.5,
				MinScale: 2.5,
				MaxScale: 3.5,
				MinY:     15,
				MaxY:     25,
			},
		},
		Texture: TextureConfig{
			Size: 1024,
			Seed: 1,
		},
		Render: RenderConfig{
			MaxLights:   8,
			NearPlane:   0.1,
			FarPlane:    500,
			AspectRatio: 4.0 / 3.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
