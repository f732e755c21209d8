package scene

import (
	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/internal/engine/primitive"
	"github.com/Faultbox/hearth/pkg/math"
)

// RenderShape is a primitive with its world transform.
type RenderShape struct {
	Primitive primitive.Type
	MeshFile  string
	Material  Material
	CTM       math.Mat4
}

// NormalMatrix returns the matrix that carries normals to world space.
func (s RenderShape) NormalMatrix() math.Mat4 {
	return s.CTM.NormalMatrix()
}

// RenderLight is a light in world space. Position is set for point, spot
// and area lights; Direction, always unit length, for the rest.
type RenderLight struct {
	ID        int
	Type      LightType
	Color     math.Vec4
	Function  math.Vec3
	Position  math.Vec3
	Direction math.Vec3
	Penumbra  float32
	Angle     float32
	Width     float32
	Height    float32
}

// RenderList is the flattened scene in pre-order traversal order.
type RenderList struct {
	Global GlobalData
	Camera CameraData
	Shapes []RenderShape
	Lights []RenderLight
}

// ActiveLights returns the lights the renderer uses: the first MaxLights in
// traversal order.
func (r RenderList) ActiveLights() []RenderLight {
	if len(r.Lights) > MaxLights {
		return r.Lights[:MaxLights]
	}
	return r.Lights
}

// Bounds returns the world-space box around every shape. boundsOf gives the
// object-space box of a primitive type.
func (r RenderList) Bounds(boundsOf func(primitive.Type) mesh.Bounds) (mesh.Bounds, bool) {
	var out mesh.Bounds
	found := false
	for _, s := range r.Shapes {
		b := boundsOf(s.Primitive)
		for i := range 8 {
			corner := math.V3(b.Min.X, b.Min.Y, b.Min.Z)
			if i&1 != 0 {
				corner.X = b.Max.X
			}
			if i&2 != 0 {
				corner.Y = b.Max.Y
			}
			if i&4 != 0 {
				corner.Z = b.Max.Z
			}
			p := s.CTM.TransformPoint(corner)
			if !found {
				out.Min, out.Max = p, p
				found = true
				continue
			}
			out.Min = math.V3(min(out.Min.X, p.X), min(out.Min.Y, p.Y), min(out.Min.Z, p.Z))
			out.Max = math.V3(max(out.Max.X, p.X), max(out.Max.Y, p.Y), max(out.Max.Z, p.Z))
		}
	}
	return out, found
}

// Resolve flattens g, carrying its global and camera data through.
func (g Graph) Resolve() RenderList {
	list := Resolve(g.Root)
	list.Global = g.Global
	list.Camera = g.Camera
	return list
}

type frame struct {
	node   *Node
	parent math.Mat4
}

// Resolve walks the tree rooted at root in pre-order, parents before
// children and siblings in declaration order. Each node's CTM is its
// parent's CTM right-multiplied by the node's transformations in order.
// A nil root gives an empty list.
func Resolve(root *Node) RenderList {
	var list RenderList
	if root == nil {
		return list
	}

	stack := []frame{{node: root, parent: math.Identity()}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := top.node
		if n == nil {
			continue
		}

		ctm := top.parent
		for _, t := range n.Transformations {
			ctm = ctm.Mul(t.Mat4())
		}

		for _, p := range n.Primitives {
			list.Shapes = append(list.Shapes, RenderShape{
				Primitive: p.Type,
				MeshFile:  p.MeshFile,
				Material:  p.Material,
				CTM:       ctm,
			})
		}
		for _, l := range n.Lights {
			list.Lights = append(list.Lights, transformLight(l, ctm))
		}

		// reversed so the first child is visited next
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: n.Children[i], parent: ctm})
		}
	}
	return list
}

func transformLight(l Light, ctm math.Mat4) RenderLight {
	out := RenderLight{
		ID:       l.ID,
		Type:     l.Type,
		Color:    l.Color,
		Function: l.Function,
		Penumbra: l.Penumbra,
		Angle:    l.Angle,
		Width:    l.Width,
		Height:   l.Height,
	}
	if l.Type.HasPosition() {
		out.Position = ctm.TransformPoint(math.Vec3{})
	}
	if l.Type.HasDirection() {
		out.Direction = ctm.TransformDirection(l.Direction.XYZ()).Normalize()
	}
	return out
}
