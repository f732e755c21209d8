package organic

import (
	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/internal/engine/noise"
	"github.com/Faultbox/hearth/pkg/math"
	"github.com/chewxy/math32"
)

// NoiseLayer is one octave of crust displacement.
type NoiseLayer struct {
	Seed      int
	Frequency float32
	Amplitude float32
}

// LoafParams shapes the loaf: a rounded box with a domed top, layered crust
// noise and diagonal score marks across the top.
type LoafParams struct {
	Width, Height, Depth float32 // X, Y, Z extents
	RoundRadius          float32
	PillowHeight         float32 // extra rise at the center of the top

	Layers []NoiseLayer

	ScoreOffsets []float32 // X offset of each score line at z = 0
	ScoreSlope   float32   // X shift per unit Z
	ScoreWidth   float32
	ScoreDepth   float32
	ScoreBand    float32 // scores apply above this fraction of the height

	UVTile float32
}

// DefaultLoafParams returns the stock loaf.
func DefaultLoafParams() LoafParams {
	return LoafParams{
		Width:        1.5,
		Height:       0.6,
		Depth:        1.0,
		RoundRadius:  0.12,
		PillowHeight: 0.054,
		Layers: []NoiseLayer{
			{Seed: 123, Frequency: 4, Amplitude: 0.08},
			{Seed: 456, Frequency: 10, Amplitude: 0.05},
			{Seed: 789, Frequency: 20, Amplitude: 0.03},
			{Seed: 321, Frequency: 35, Amplitude: 0.02},
		},
		ScoreOffsets: []float32{0.3, -0.3},
		ScoreSlope:   0.5,
		ScoreWidth:   0.1,
		ScoreDepth:   0.05,
		ScoreBand:    0.8,
		UVTile:       2,
	}
}

// GenerateLoaf builds the default loaf. segments subdivides the width (and
// half as many rows the height), slices subdivides the depth.
func GenerateLoaf(segments, slices int) *mesh.Buffer {
	return DefaultLoafParams().Generate(segments, slices)
}

func (p LoafParams) half() math.Vec3 {
	return math.V3(p.Width/2, p.Height/2, p.Depth/2)
}

// ScoreCarve returns the carve depth of the score marks at (x, z).
func (p LoafParams) ScoreCarve(x, z float32) float32 {
	var depth float32
	for _, off := range p.ScoreOffsets {
		dist := math32.Abs(x + off - z*p.ScoreSlope)
		depth += p.ScoreDepth * cosineFalloff(dist, p.ScoreWidth)
	}
	return depth
}

// Crust sums the noise layers at (x, z).
func (p LoafParams) Crust(x, z float32) float32 {
	var total float32
	for _, l := range p.Layers {
		total += noise.Value(x*l.Frequency, z*l.Frequency, l.Seed) * l.Amplitude
	}
	return total
}

// surface maps a point on the box to the displaced loaf surface.
func (p LoafParams) surface(base math.Vec3, uv math.Vec2) surfacePoint {
	half := p.half()
	r := min(p.RoundRadius, half.X, half.Y, half.Z)
	inner := math.V3(
		clamp(base.X, -half.X+r, half.X-r),
		clamp(base.Y, -half.Y+r, half.Y-r),
		clamp(base.Z, -half.Z+r, half.Z-r),
	)
	outward := base.Sub(inner).Normalize()
	pos := inner.Add(outward.Scale(r))

	ty := base.Y/p.Height + 0.5
	if rise := 2*ty - 1; rise > 0 {
		fx := base.X / half.X
		fz := base.Z / half.Z
		pos.Y += p.PillowHeight * rise * (1 - fx*fx) * (1 - fz*fz)
	}

	pos = pos.Add(pos.Normalize().Scale(p.Crust(base.X, base.Z)))

	if ty > p.ScoreBand {
		pos.Y -= p.ScoreCarve(base.X, base.Z)
	}
	return surfacePoint{pos: pos, outward: outward, uv: uv}
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}

// loafFace describes one box face. u × v points outward along axis n.
type loafFace struct {
	n, u, v    int     // axis indices
	sn, su, sv float32 // axis signs
}

var loafFaces = [6]loafFace{
	{n: 2, u: 0, v: 1, sn: 1, su: 1, sv: 1},   // +z
	{n: 2, u: 0, v: 1, sn: -1, su: -1, sv: 1}, // -z
	{n: 0, u: 2, v: 1, sn: 1, su: -1, sv: 1},  // +x
	{n: 0, u: 2, v: 1, sn: -1, su: 1, sv: 1},  // -x
	{n: 1, u: 0, v: 2, sn: 1, su: 1, sv: -1},  // +y
	{n: 1, u: 0, v: 2, sn: -1, su: 1, sv: 1},  // -y
}

// Generate builds the mesh. Each face is a grid whose resolution depends on
// the axes it spans.
func (p LoafParams) Generate(segments, slices int) *mesh.Buffer {
	divs := [3]int{max(segments, 1), max(segments/2, 1), max(slices, 1)}
	half := p.half().Array()

	total := 0
	for _, f := range loafFaces {
		total += divs[f.u] * divs[f.v] * 6
	}
	b := mesh.NewBuilder(mesh.DerivedBasis{}, total)

	// coord returns the box coordinate of grid line k along an axis. Faces
	// that run an axis backwards index it from the far end so shared edges
	// evaluate identical points.
	coord := func(axis, k int, sign float32) float32 {
		n := divs[axis]
		if sign < 0 {
			k = n - k
		}
		return -half[axis] + 2*half[axis]*float32(k)/float32(n)
	}

	for _, f := range loafFaces {
		nu, nv := divs[f.u], divs[f.v]
		point := func(i, j int) surfacePoint {
			var c [3]float32
			c[f.n] = f.sn * half[f.n]
			c[f.u] = coord(f.u, i, f.su)
			c[f.v] = coord(f.v, j, f.sv)
			uv := math.V2(float32(i)/float32(nu)*p.UVTile, float32(j)/float32(nv)*p.UVTile)
			return p.surface(math.V3(c[0], c[1], c[2]), uv)
		}
		for j := 0; j < nv; j++ {
			for i := 0; i < nu; i++ {
				addTile(b, point(i, j+1), point(i+1, j+1), point(i, j), point(i+1, j))
			}
		}
	}
	return b.Buffer()
}
