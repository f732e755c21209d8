package terrain

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/internal/engine/noise"
	"github.com/Faultbox/hearth/internal/logger"
	"github.com/Faultbox/hearth/pkg/math"
)

// Generator owns a height field and the mesh built over it. Generate and
// Regenerate replace both; callers holding the previous mesh must Clone it
// first if they need it to survive.
type Generator struct {
	state  State
	params Params
	field  *Heightfield
	mesh   *mesh.Buffer
}

// NewGenerator returns an unconfigured generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// State returns the lifecycle state.
func (g *Generator) State() State { return g.state }

// Params returns the parameters of the last Generate.
func (g *Generator) Params() Params { return g.params }

// Mesh returns the terrain mesh, or nil before the first Generate.
func (g *Generator) Mesh() *mesh.Buffer { return g.mesh }

// Heightfield returns the height field, or nil before the first Generate.
func (g *Generator) Heightfield() *Heightfield { return g.field }

// Generate builds the height field and mesh for p. A grid smaller than 2 in
// either axis yields an empty mesh.
// Non-finite parameters are replaced by defaults and reported.
func (g *Generator) Generate(p Params) {
	log := logger.Named("terrain")
	p, fixed := p.Sanitize()
	if len(fixed) > 0 {
		log.Warn("non-finite terrain parameters replaced by defaults", zap.Strings("fields", fixed))
	}

	g.params = p
	g.field = buildHeightfield(p)
	g.mesh = buildMesh(g.field, p)
	g.state = Generated

	log.Debug("terrain generated",
		zap.Int("width", p.GridWidth),
		zap.Int("depth", p.GridDepth),
		zap.Int("octaves", p.Octaves),
		zap.Int("vertices", g.mesh.VertexCount()))
}

// Regenerate rebuilds with the current parameters. It does nothing while
// the generator is unconfigured.
func (g *Generator) Regenerate() {
	if g.state == Unconfigured {
		return
	}
	g.Generate(g.params)
}

// Elevation maps a world position to a terrain height without the grid.
func (p Params) Elevation(wx, wz float32) float32 {
	n := noise.PerlinFractal(wx*p.NoiseFrequency, wz*p.NoiseFrequency, p.Octaves, p.Persistence, p.Lacunarity)
	n = clampf(n, -1, 1)
	h := (n + 1) / 2 * p.HeightScale

	// push peaks up harder than valleys
	if ridge := p.RidgeThreshold * p.HeightScale; h > ridge {
		h += (h - ridge) * p.RidgeBoost
	}
	return h
}

func buildHeightfield(p Params) *Heightfield {
	p.GridWidth = max(p.GridWidth, 0)
	p.GridDepth = max(p.GridDepth, 0)
	f := newHeightfield(p)
	for x := range f.width {
		for z := range f.depth {
			wx, wz := f.World(x, z)
			f.heights[x][z] = p.Elevation(wx, wz)
		}
	}
	return f
}

// normal uses central differences, one-sided at the grid edges. Edge
// tangents divide by the real index distance (one step) rather than two
// steps, so boundary slopes are not halved.
func (h *Heightfield) normal(x, z int) math.Vec3 {
	sx, sz := h.spacing()
	l, r := clampi(x-1, 0, h.width-1), clampi(x+1, 0, h.width-1)
	b, f := clampi(z-1, 0, h.depth-1), clampi(z+1, 0, h.depth-1)

	tx := math.V3(float32(r-l)*sx, h.heights[r][z]-h.heights[l][z], 0)
	tz := math.V3(0, h.heights[x][f]-h.heights[x][b], float32(f-b)*sz)
	return tz.Cross(tx).Normalize()
}

func buildMesh(f *Heightfield, p Params) *mesh.Buffer {
	if f.width < 2 || f.depth < 2 {
		return &mesh.Buffer{}
	}

	corner := func(x, z int) mesh.Corner {
		wx, wz := f.World(x, z)
		uv := math.V2(
			float32(x)/float32(f.width-1)*p.UVScale,
			float32(z)/float32(f.depth-1)*p.UVScale,
		)
		return mesh.C(math.V3(wx, f.heights[x][z], wz), f.normal(x, z), uv)
	}

	b := mesh.NewBuilder(mesh.DerivedBasis{}, (f.width-1)*(f.depth-1)*6)
	for x := 0; x < f.width-1; x++ {
		for z := 0; z < f.depth-1; z++ {
			p00, p10 := corner(x, z), corner(x+1, z)
			p01, p11 := corner(x, z+1), corner(x+1, z+1)
			// counter-clockwise seen from above
			b.AddTriangle(p00, p01, p10)
			b.AddTriangle(p10, p01, p11)
		}
	}
	return b.Buffer()
}
