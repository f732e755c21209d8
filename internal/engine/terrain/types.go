// Package terrain synthesizes a height field from fractal gradient noise and
// builds a tangent-space mesh over it.
package terrain

import "github.com/chewxy/math32"

// Params configures terrain generation.
type Params struct {
	GridWidth   int     // Grid points along X
	GridDepth   int     // Grid points along Z
	WorldWidth  float32 // World extent along X, centered on the origin
	WorldDepth  float32 // World extent along Z, centered on the origin
	HeightScale float32 // Maximum height before the ridge boost
	Octaves     int
	Persistence float32
	Lacunarity  float32

	NoiseFrequency float32 // World to noise space scale
	UVScale        float32 // Texture repeats across the grid
	RidgeThreshold float32 // Fraction of HeightScale where the boost begins
	RidgeBoost     float32 // Extra rise per unit above the threshold
}

// DefaultParams returns the stock terrain.
func DefaultParams() Params {
	return Params{
		GridWidth:      200,
		GridDepth:      200,
		WorldWidth:     50,
		WorldDepth:     50,
		HeightScale:    5,
		Octaves:        4,
		Persistence:    0.5,
		Lacunarity:     2,
		NoiseFrequency: 0.1,
		UVScale:        3,
		RidgeThreshold: 0.6,
		RidgeBoost:     0.5,
	}
}

// MaxHeight returns the highest elevation the parameters can produce.
func (p Params) MaxHeight() float32 {
	return p.HeightScale + p.HeightScale*(1-p.RidgeThreshold)*p.RidgeBoost
}

// Sanitize replaces non-finite fields with their defaults and returns the
// names of the fields it replaced.
func (p Params) Sanitize() (Params, []string) {
	def := DefaultParams()
	var fixed []string
	fields := []struct {
		name string
		v    *float32
		d    float32
	}{
		{"world_width", &p.WorldWidth, def.WorldWidth},
		{"world_depth", &p.WorldDepth, def.WorldDepth},
		{"height_scale", &p.HeightScale, def.HeightScale},
		{"persistence", &p.Persistence, def.Persistence},
		{"lacunarity", &p.Lacunarity, def.Lacunarity},
		{"noise_frequency", &p.NoiseFrequency, def.NoiseFrequency},
		{"uv_scale", &p.UVScale, def.UVScale},
		{"ridge_threshold", &p.RidgeThreshold, def.RidgeThreshold},
		{"ridge_boost", &p.RidgeBoost, def.RidgeBoost},
	}
	for _, f := range fields {
		if math32.IsNaN(*f.v) || math32.IsInf(*f.v, 0) {
			*f.v = f.d
			fixed = append(fixed, f.name)
		}
	}
	return p, fixed
}

// State is the lifecycle of a Generator.
type State int

const (
	Unconfigured State = iota
	Generated
)

func (s State) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Generated:
		return "generated"
	default:
		return "unknown"
	}
}
