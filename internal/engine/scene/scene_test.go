package scene

import (
	"testing"

	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/internal/engine/primitive"
	"github.com/Faultbox/hearth/pkg/math"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)
}

func translate(x, y, z float32) Transformation {
	return Transformation{Type: Translate, Translate: math.V3(x, y, z)}
}

func TestResolveNil(t *testing.T) {
	list := Resolve(nil)
	assert.Empty(t, list.Shapes)
	assert.Empty(t, list.Lights)
	assert.Empty(t, list.ActiveLights())
}

func TestResolveOrder(t *testing.T) {
	// root(cube) -> a(sphere) -> a1(cone); root -> b(cylinder)
	root := &Node{
		Primitives: []Primitive{{Type: primitive.Cube}},
		Children: []*Node{
			{
				Primitives: []Primitive{{Type: primitive.Sphere}},
				Children:   []*Node{{Primitives: []Primitive{{Type: primitive.Cone}}}},
			},
			{Primitives: []Primitive{{Type: primitive.Cylinder}}},
		},
	}

	list := Resolve(root)
	require.Len(t, list.Shapes, 4)
	want := []primitive.Type{primitive.Cube, primitive.Sphere, primitive.Cone, primitive.Cylinder}
	for i, s := range list.Shapes {
		assert.Equal(t, want[i], s.Primitive)
	}
}

func TestResolveComposition(t *testing.T) {
	child := &Node{
		Transformations: []Transformation{translate(1, 0, 0)},
		Primitives:      []Primitive{{Type: primitive.Cube}, {Type: primitive.Sphere}},
	}
	root := &Node{
		Transformations: []Transformation{
			translate(0, 5, 0),
			{Type: Scale, Scale: math.V3(2, 2, 2)},
		},
		Children: []*Node{child},
	}

	list := Resolve(root)
	require.Len(t, list.Shapes, 2)

	// translate then scale: the child offset is scaled, the root offset is not
	assertVec3(t, math.V3(2, 5, 0), list.Shapes[0].CTM.TransformPoint(math.Vec3{}))
	assertVec3(t, math.V3(4, 7, 2), list.Shapes[0].CTM.TransformPoint(math.V3(1, 1, 1)))

	// both primitives share the node CTM
	assert.Equal(t, list.Shapes[0].CTM, list.Shapes[1].CTM)
}

func TestTransformationMatrices(t *testing.T) {
	rot := Transformation{Type: Rotate, Axis: math.V3(0, 0, 1), Angle: math32.Pi / 2}
	assertVec3(t, math.V3(0, 1, 0), rot.Mat4().TransformDirection(math.V3(1, 0, 0)))

	raw := math.Translate(3, 4, 5)
	assert.Equal(t, raw, Transformation{Type: Matrix, Matrix: raw}.Mat4())
	assert.Equal(t, math.Identity(), Transformation{Type: TransformType(42)}.Mat4())
	assert.Equal(t, "rotate", Rotate.String())
}

func TestMaterialCopied(t *testing.T) {
	mat := Material{Diffuse: math.Vec4{1, 0, 0, 1}, Shininess: 20}
	root := &Node{
		Transformations: []Transformation{translate(1, 2, 3)},
		Primitives:      []Primitive{{Type: primitive.Cube, Material: mat}},
	}
	list := Resolve(root)
	require.Len(t, list.Shapes, 1)
	assert.Equal(t, mat, list.Shapes[0].Material)

	root.Primitives[0].Material.Shininess = 1
	assert.Equal(t, float32(20), list.Shapes[0].Material.Shininess)
}

func TestLightTransforms(t *testing.T) {
	lights := []Light{
		{ID: 1, Type: PointLight},
		{ID: 2, Type: DirectionalLight, Direction: math.Vec4{1, 1, 0, 0}},
		{ID: 3, Type: SpotLight, Direction: math.Vec4{0, -1, 0, 0}, Angle: 0.5},
	}
	root := &Node{
		Transformations: []Transformation{
			translate(1, 2, 3),
			{Type: Scale, Scale: math.V3(5, 1, 1)},
		},
		Lights: lights,
	}

	list := Resolve(root)
	require.Len(t, list.Lights, 3)

	point := list.Lights[0]
	assertVec3(t, math.V3(1, 2, 3), point.Position)
	assert.Equal(t, math.Vec3{}, point.Direction)

	// non-uniform scale still yields a unit direction
	dir := list.Lights[1]
	assert.InDelta(t, 1, dir.Direction.Length(), 1e-5)
	assertVec3(t, math.V3(5, 1, 0).Normalize(), dir.Direction)
	assert.Equal(t, math.Vec3{}, dir.Position)

	spot := list.Lights[2]
	assertVec3(t, math.V3(1, 2, 3), spot.Position)
	assertVec3(t, math.V3(0, -1, 0), spot.Direction)
	assert.Equal(t, float32(0.5), spot.Angle)
	assert.Equal(t, 3, spot.ID)
}

func TestActiveLightsTruncates(t *testing.T) {
	root := &Node{}
	for i := range 6 {
		root.Lights = append(root.Lights, Light{ID: i, Type: PointLight})
	}
	child := &Node{}
	for i := 6; i < 12; i++ {
		child.Lights = append(child.Lights, Light{ID: i, Type: PointLight})
	}
	root.Children = []*Node{child}

	list := Resolve(root)
	require.Len(t, list.Lights, 12)
	active := list.ActiveLights()
	require.Len(t, active, MaxLights)
	for i, l := range active {
		assert.Equal(t, i, l.ID)
	}
}

func TestDeepTree(t *testing.T) {
	root := &Node{}
	n := root
	for range 10000 {
		next := &Node{Transformations: []Transformation{translate(0, 0, 1)}}
		n.Children = []*Node{next}
		n = next
	}
	n.Primitives = []Primitive{{Type: primitive.Sphere}}

	list := Resolve(root)
	require.Len(t, list.Shapes, 1)
	assertVec3(t, math.V3(0, 0, 10000), list.Shapes[0].CTM.TransformPoint(math.Vec3{}))
}

func TestGraphResolve(t *testing.T) {
	g := Graph{
		Global: GlobalData{Ka: 0.5, Kd: 0.5},
		Camera: CameraData{Pos: math.Vec4{0, 0, 5, 1}, HeightAngle: 0.5},
		Root:   &Node{Primitives: []Primitive{{Type: primitive.Cube}}},
	}
	list := g.Resolve()
	assert.Equal(t, g.Global, list.Global)
	assert.Equal(t, g.Camera, list.Camera)
	assert.Len(t, list.Shapes, 1)
}

func TestRenderListBounds(t *testing.T) {
	unit := func(primitive.Type) mesh.Bounds {
		return mesh.Bounds{Min: math.V3(-0.5, -0.5, -0.5), Max: math.V3(0.5, 0.5, 0.5)}
	}

	_, ok := RenderList{}.Bounds(unit)
	assert.False(t, ok)

	root := &Node{
		Children: []*Node{
			{Transformations: []Transformation{translate(-2, 0, 0)}, Primitives: []Primitive{{Type: primitive.Cube}}},
			{Transformations: []Transformation{translate(3, 1, 0)}, Primitives: []Primitive{{Type: primitive.Cube}}},
		},
	}
	b, ok := Resolve(root).Bounds(unit)
	require.True(t, ok)
	assertVec3(t, math.V3(-2.5, -0.5, -0.5), b.Min)
	assertVec3(t, math.V3(3.5, 1.5, 0.5), b.Max)
}

func TestNormalMatrix(t *testing.T) {
	s := RenderShape{CTM: math.Scale(2, 1, 1)}
	n := s.NormalMatrix().TransformDirection(math.V3(1, 1, 0))
	assertVec3(t, math.V3(0.5, 1, 0), n)
}
