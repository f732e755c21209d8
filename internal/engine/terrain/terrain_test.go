package terrain

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/hearth/internal/engine/mesh/meshtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallParams() Params {
	p := DefaultParams()
	p.GridWidth, p.GridDepth = 4, 4
	p.WorldWidth, p.WorldDepth = 10, 10
	p.HeightScale = 1
	p.Octaves = 1
	p.Persistence = 0.5
	p.Lacunarity = 2
	return p
}

func TestGeneratorStates(t *testing.T) {
	g := NewGenerator()
	assert.Equal(t, Unconfigured, g.State())
	assert.Nil(t, g.Mesh())
	assert.Nil(t, g.Heightfield())

	// nothing to rebuild yet
	g.Regenerate()
	assert.Equal(t, Unconfigured, g.State())

	g.Generate(smallParams())
	assert.Equal(t, Generated, g.State())
	assert.Equal(t, smallParams(), g.Params())
	assert.Equal(t, "generated", g.State().String())
}

func TestSmallTerrain(t *testing.T) {
	g := NewGenerator()
	g.Generate(smallParams())

	buf := g.Mesh()
	require.Equal(t, 54, buf.VertexCount())
	assert.Equal(t, 18, buf.TriangleCount())

	maxHeight := smallParams().MaxHeight()
	assert.InDelta(t, 1.2, maxHeight, 1e-6)
	for _, v := range buf.Vertices {
		assert.GreaterOrEqual(t, v.Position.Y, float32(0))
		assert.LessOrEqual(t, v.Position.Y, maxHeight)
	}
	meshtest.Check(t, buf)
}

func TestTerrainTBN(t *testing.T) {
	p := DefaultParams()
	p.GridWidth, p.GridDepth = 40, 25
	g := NewGenerator()
	g.Generate(p)
	require.Equal(t, 39*24*6, g.Mesh().VertexCount())
	meshtest.Check(t, g.Mesh())
	meshtest.CheckWinding(t, g.Mesh())

	// smooth normals point up
	for _, v := range g.Mesh().Vertices {
		assert.Greater(t, v.Normal.Y, float32(0))
	}
}

func TestDegenerateGrid(t *testing.T) {
	for _, dims := range [][2]int{{1, 10}, {10, 1}, {0, 0}, {-3, 5}} {
		p := smallParams()
		p.GridWidth, p.GridDepth = dims[0], dims[1]

		g := NewGenerator()
		g.Generate(p)
		assert.Equal(t, Generated, g.State(), "%v", dims)
		assert.NotNil(t, g.Mesh(), "%v", dims)
		assert.True(t, g.Mesh().Empty(), "%v", dims)
	}
}

func TestRegenerateIdempotent(t *testing.T) {
	g := NewGenerator()
	g.Generate(smallParams())
	first := g.Mesh().Clone()
	heights := g.Heightfield()

	g.Regenerate()
	meshtest.Equal(t, first, g.Mesh())
	for x := range heights.Width() {
		for z := range heights.Depth() {
			assert.Equal(t, heights.At(x, z), g.Heightfield().At(x, z))
		}
	}
}

func TestRidgeBoost(t *testing.T) {
	p := smallParams()
	p.HeightScale = 10
	p.RidgeBoost = 0

	boosted := smallParams()
	boosted.HeightScale = 10

	// sample enough points to cover both sides of the threshold
	for i := range 200 {
		wx := float32(i)*0.37 - 30
		wz := float32(i)*0.11 - 10
		flat, ridged := p.Elevation(wx, wz), boosted.Elevation(wx, wz)
		if flat <= 6 {
			assert.InDelta(t, flat, ridged, 1e-4)
		} else {
			assert.InDelta(t, flat+(flat-6)*0.5, ridged, 1e-4)
		}
	}
}

func TestHeightAt(t *testing.T) {
	g := NewGenerator()
	g.Generate(smallParams())
	f := g.Heightfield()

	// grid points sample exactly
	for x := range f.Width() {
		for z := range f.Depth() {
			wx, wz := f.World(x, z)
			assert.InDelta(t, f.At(x, z), f.HeightAt(wx, wz), 1e-5, "(%d,%d)", x, z)
		}
	}

	// midpoint of the first cell averages its corners
	wx0, wz0 := f.World(0, 0)
	wx1, wz1 := f.World(1, 1)
	want := (f.At(0, 0) + f.At(1, 0) + f.At(0, 1) + f.At(1, 1)) / 4
	assert.InDelta(t, want, f.HeightAt((wx0+wx1)/2, (wz0+wz1)/2), 1e-5)

	// outside the grid clamps to the edge
	assert.InDelta(t, f.At(0, 0), f.HeightAt(-100, -100), 1e-5)
	assert.InDelta(t, f.At(3, 3), f.HeightAt(100, 100), 1e-5)
}

func TestHeightfieldBounds(t *testing.T) {
	g := NewGenerator()
	g.Generate(smallParams())
	b := g.Heightfield().Bounds()

	assert.Equal(t, float32(-5), b.Min.X)
	assert.Equal(t, float32(5), b.Max.X)
	assert.Equal(t, float32(-5), b.Min.Z)
	assert.Equal(t, float32(5), b.Max.Z)
	assert.LessOrEqual(t, b.Min.Y, b.Max.Y)

	var nilField *Heightfield
	assert.Zero(t, nilField.HeightAt(1, 1))
	assert.Equal(t, b.Min.Y, g.Mesh().Bounds().Min.Y)
}

func TestSanitize(t *testing.T) {
	p := smallParams()
	p.HeightScale = math32.NaN()
	p.Lacunarity = math32.Inf(1)

	got, fixed := p.Sanitize()
	assert.Equal(t, []string{"height_scale", "lacunarity"}, fixed)
	assert.Equal(t, DefaultParams().HeightScale, got.HeightScale)
	assert.Equal(t, DefaultParams().Lacunarity, got.Lacunarity)

	_, fixed = smallParams().Sanitize()
	assert.Empty(t, fixed)

	g := NewGenerator()
	g.Generate(p)
	meshtest.Check(t, g.Mesh())
	assert.Equal(t, DefaultParams().HeightScale, g.Params().HeightScale)
}

func TestTerrainWindingFacesUp(t *testing.T) {
	g := NewGenerator()
	g.Generate(DefaultParams())
	buf := g.Mesh()
	meshtest.CheckWinding(t, buf)

	for i := 0; i+2 < buf.VertexCount(); i += 3 {
		a, b, c := buf.Vertices[i].Position, buf.Vertices[i+1].Position, buf.Vertices[i+2].Position
		face := b.Sub(a).Cross(c.Sub(a))
		if face.Y <= 0 {
			t.Fatalf("triangle %d faces down: %v", i/3, face)
		}
	}
}
