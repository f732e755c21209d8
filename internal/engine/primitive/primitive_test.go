package primitive

import (
	"testing"

	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/internal/engine/mesh/meshtest"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitivesTBN(t *testing.T) {
	params := [][2]int{{1, 3}, {2, 5}, {5, 5}, {10, 24}}
	for _, typ := range []Type{Cube, Sphere, Cone, Cylinder} {
		for _, p := range params {
			buf := Generate(typ, p[0], p[1])
			require.False(t, buf.Empty(), "%s %v", typ, p)
			if err := meshtest.Validate(buf); err != nil {
				t.Errorf("%s %v: %v", typ, p, err)
			}
		}
	}
}

func TestPrimitiveVertexCounts(t *testing.T) {
	tests := []struct {
		typ    Type
		p1, p2 int
		want   int
	}{
		{Cube, 1, 0, 6 * 6},
		{Cube, 3, 0, 6 * 9 * 6},
		{Sphere, 2, 3, 3 * 2 * 3},
		{Sphere, 4, 8, 8 * 3 * 6},
		{Cone, 1, 3, 3 * 2 * 3},
		{Cone, 3, 6, 6 * 5 * 2 * 3},
		{Cylinder, 1, 3, 3 * 4 * 3},
		{Cylinder, 2, 4, 4 * (3 + 3 + 4) * 6 / 2},
	}
	for _, tt := range tests {
		got := Generate(tt.typ, tt.p1, tt.p2).VertexCount()
		assert.Equal(t, tt.want, got, "%s(%d,%d)", tt.typ, tt.p1, tt.p2)
	}
}

func TestPrimitiveClamping(t *testing.T) {
	meshtest.Equal(t, GenerateCube(1), GenerateCube(0))
	meshtest.Equal(t, GenerateCube(1), GenerateCube(-4))
	meshtest.Equal(t, GenerateSphere(2, 3), GenerateSphere(0, 0))
	meshtest.Equal(t, GenerateCone(1, 3), GenerateCone(0, 1))
	meshtest.Equal(t, GenerateCylinder(1, 3), GenerateCylinder(-1, 2))
}

func TestPrimitiveDeterminism(t *testing.T) {
	for _, typ := range []Type{Cube, Sphere, Cone, Cylinder} {
		meshtest.Equal(t, Generate(typ, 7, 9), Generate(typ, 7, 9))
	}
}

func TestPrimitivesFitUnitBox(t *testing.T) {
	for _, typ := range []Type{Cube, Sphere, Cone, Cylinder} {
		b := Generate(typ, 6, 12).Bounds()
		for _, c := range []float32{b.Min.X, b.Min.Y, b.Min.Z} {
			assert.GreaterOrEqual(t, c, float32(-0.5001), typ.String())
		}
		for _, c := range []float32{b.Max.X, b.Max.Y, b.Max.Z} {
			assert.LessOrEqual(t, c, float32(0.5001), typ.String())
		}
		assert.InDelta(t, 0.5, b.Max.Y, 1e-5, typ.String())
		assert.InDelta(t, -0.5, b.Min.Y, 1e-5, typ.String())
	}
}

// Every triangle's winding must agree with its vertex normals so that
// back-face culling keeps the outside.
func TestPrimitiveWindingOutward(t *testing.T) {
	for _, typ := range []Type{Cube, Sphere, Cone, Cylinder} {
		buf := Generate(typ, 4, 8)
		for i := 0; i+2 < buf.VertexCount(); i += 3 {
			a, b, c := buf.Vertices[i], buf.Vertices[i+1], buf.Vertices[i+2]
			face := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
			avg := a.Normal.Add(b.Normal).Add(c.Normal)
			if face.Dot(avg) <= 0 {
				t.Fatalf("%s triangle %d winds inward", typ, i/3)
			}
		}
	}
}

func TestSphereNormalsRadial(t *testing.T) {
	buf := GenerateSphere(8, 16)
	for _, v := range buf.Vertices {
		assert.InDelta(t, 0.5, v.Position.Length(), 1e-5)
		assert.InDelta(t, 1, v.Normal.Dot(v.Position.Normalize()), 1e-5)
	}
}

func TestSphereTangentFollowsLongitude(t *testing.T) {
	buf := GenerateSphere(4, 4)
	for _, v := range buf.Vertices {
		assert.InDelta(t, 0, v.Tangent.Y, 1e-5)
	}
}

func TestCubeUVsCoverFace(t *testing.T) {
	buf := GenerateCube(2)
	for _, v := range buf.Vertices {
		assert.GreaterOrEqual(t, v.UV.X, float32(-1e-5))
		assert.LessOrEqual(t, v.UV.X, float32(1+1e-5))
		assert.GreaterOrEqual(t, v.UV.Y, float32(-1e-5))
		assert.LessOrEqual(t, v.UV.Y, float32(1+1e-5))
	}
}

func TestCubeTangentMatchesFaceFrame(t *testing.T) {
	buf := GenerateCube(1)
	// first face is +z, mapped with U along +X
	for _, v := range buf.Vertices[:6] {
		assert.InDelta(t, 1, v.Normal.Z, 1e-6)
		assert.InDelta(t, 1, v.Tangent.X, 1e-5)
	}
}

func TestConeApexNormal(t *testing.T) {
	buf := GenerateCone(3, 6)
	found := false
	for _, v := range buf.Vertices {
		if v.Position.Y > 0.499 {
			found = true
			assert.Equal(t, float32(1), v.Normal.Y)
		}
	}
	assert.True(t, found)
}

func TestCylinderSideNormalsHorizontal(t *testing.T) {
	buf := GenerateCylinder(2, 8)
	for _, v := range buf.Vertices {
		if math32.Abs(v.Normal.Y) < 0.5 {
			assert.InDelta(t, 0, v.Normal.Y, 1e-6)
			assert.InDelta(t, 0.5, math32.Hypot(v.Position.X, v.Position.Z), 1e-5)
		}
	}
}

func TestParseType(t *testing.T) {
	for typ := Cube; typ <= Mesh; typ++ {
		got, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	got, err := ParseType(" Terrain ")
	require.NoError(t, err)
	assert.Equal(t, Mesh, got)

	_, err = ParseType("torus")
	assert.Error(t, err)
	assert.Equal(t, "Type(42)", Type(42).String())
}

func TestSetUpdate(t *testing.T) {
	s := NewSet()
	assert.Nil(t, s.Buffer(Cube))
	assert.True(t, s.Update(2, 4))

	before := s.Buffer(Sphere)
	assert.False(t, s.Update(2, 4), "unchanged params must not rebuild")
	assert.Same(t, before, s.Buffer(Sphere))

	assert.True(t, s.Update(3, 4))
	assert.NotSame(t, before, s.Buffer(Sphere))
	p1, p2 := s.Params()
	assert.Equal(t, 3, p1)
	assert.Equal(t, 4, p2)
	assert.Equal(t, GenerateCone(3, 4).VertexCount(), s.VertexCount(Cone))
	assert.Equal(t, 0, s.VertexCount(Baguette))
}

func TestGenerateNonAnalytic(t *testing.T) {
	assert.True(t, Generate(Loaf, 3, 3).Empty())
	assert.IsType(t, &mesh.Buffer{}, Generate(Mesh, 1, 1))
}
