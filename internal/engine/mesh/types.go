// Package mesh provides the triangle-list vertex buffer shared by every
// geometry generator, plus tangent-space utilities.
package mesh

import "github.com/Faultbox/hearth/pkg/math"

// Stride is the number of floats per vertex in the upload layout:
// position(3) normal(3) uv(2) tangent(3) bitangent(3).
const Stride = 14

// Vertex is one corner of a triangle with a full tangent frame.
type Vertex struct {
	Position  math.Vec3
	Normal    math.Vec3
	UV        math.Vec2
	Tangent   math.Vec3
	Bitangent math.Vec3
}

// Buffer is a triangle list: every three consecutive vertices form one
// triangle. There is no index buffer.
type Buffer struct {
	Vertices []Vertex
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// VertexCount returns the number of vertices. A nil buffer has none.
func (b *Buffer) VertexCount() int {
	if b == nil {
		return 0
	}
	return len(b.Vertices)
}

// TriangleCount returns VertexCount / 3.
func (b *Buffer) TriangleCount() int {
	return b.VertexCount() / 3
}

// Empty reports whether there is nothing to draw.
func (b *Buffer) Empty() bool {
	return b.VertexCount() == 0
}

// Floats flattens the buffer to the interleaved Stride layout.
func (b *Buffer) Floats() []float32 {
	out := make([]float32, 0, b.VertexCount()*Stride)
	if b == nil {
		return out
	}
	for _, v := range b.Vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.UV.X, v.UV.Y,
			v.Tangent.X, v.Tangent.Y, v.Tangent.Z,
			v.Bitangent.X, v.Bitangent.Y, v.Bitangent.Z,
		)
	}
	return out
}

// Clone returns a deep copy. Callers holding a buffer across a regenerate
// must clone it first.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return &Buffer{}
	}
	out := &Buffer{Vertices: make([]Vertex, len(b.Vertices))}
	copy(out.Vertices, b.Vertices)
	return out
}

// Bounds returns the bounding box of all positions. An empty buffer yields
// a zero box.
func (b *Buffer) Bounds() Bounds {
	if b.Empty() {
		return Bounds{}
	}
	bounds := Bounds{Min: b.Vertices[0].Position, Max: b.Vertices[0].Position}
	for _, v := range b.Vertices[1:] {
		p := v.Position
		bounds.Min = math.V3(min(bounds.Min.X, p.X), min(bounds.Min.Y, p.Y), min(bounds.Min.Z, p.Z))
		bounds.Max = math.V3(max(bounds.Max.X, p.X), max(bounds.Max.Y, p.Y), max(bounds.Max.Z, p.Z))
	}
	return bounds
}

