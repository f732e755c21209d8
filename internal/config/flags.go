package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagScene      = flag.String("scene", "", "Scene description to resolve")
	flagGrid       = flag.Int("grid", 0, "Terrain grid resolution (width and depth)")
	flagOctaves    = flag.Int("octaves", 0, "Terrain noise octaves")
	flagSeed       = flag.Int64("seed", 0, "Scatter seed")
	flagTess1      = flag.Int("tess1", 0, "Shape tessellation parameter 1")
	flagTess2      = flag.Int("tess2", 0, "Shape tessellation parameter 2")
	flagWatch      = flag.Bool("watch", false, "Regenerate geometry when the config file changes")
	flagTextureOut = flag.String("texture-out", "", "Write the procedural bread texture to this PNG path")
	flagWriteCfg   = flag.String("write-config", "", "Write the effective config to this path (.yaml or .toml) and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WatchEnabled reports whether --watch was given.
func WatchEnabled() bool {
	return *flagWatch
}

// TextureOut returns the --texture-out path, or "".
func TextureOut() string {
	return *flagTextureOut
}

// WriteConfigPath returns the --write-config path, or "".
func WriteConfigPath() string {
	return *flagWriteCfg
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Scene.Path = *flagScene
	}
	if *flagGrid > 0 {
		cfg.Terrain.GridWidth = *flagGrid
		cfg.Terrain.GridDepth = *flagGrid
	}
	if *flagOctaves > 0 {
		cfg.Terrain.Octaves = *flagOctaves
	}
	if *flagSeed != 0 {
		cfg.Scatter.Seed = *flagSeed
	}
	if *flagTess1 > 0 {
		cfg.Shapes.Param1 = *flagTess1
	}
	if *flagTess2 > 0 {
		cfg.Shapes.Param2 = *flagTess2
	}
}
