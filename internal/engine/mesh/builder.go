package mesh

import "github.com/Faultbox/hearth/pkg/math"

var defaultUp = math.V3(0, 1, 0)

// Builder accumulates triangles, resolving each corner's tangent frame with
// a single TangentBasis strategy.
type Builder struct {
	basis    TangentBasis
	vertices []Vertex
}

// NewBuilder creates a builder. capacity is a vertex count hint.
func NewBuilder(basis TangentBasis, capacity int) *Builder {
	if basis == nil {
		basis = DerivedBasis{}
	}
	return &Builder{
		basis:    basis,
		vertices: make([]Vertex, 0, max(capacity, 0)),
	}
}

// AddTriangle appends one triangle.
func (b *Builder) AddTriangle(c0, c1, c2 Corner) {
	raw := b.basis.Tangents(c0, c1, c2)
	b.emit(c0, raw[0])
	b.emit(c1, raw[1])
	b.emit(c2, raw[2])
}

// AddTile appends a quad as (tl, bl, br) and (tl, br, tr).
func (b *Builder) AddTile(tl, tr, bl, br Corner) {
	b.AddTriangle(tl, bl, br)
	b.AddTriangle(tl, br, tr)
}

func (b *Builder) emit(c Corner, raw math.Vec3) {
	n := c.Normal.Normalize()
	if !n.IsFinite() || n.LengthSqr() == 0 {
		n = defaultUp
	}
	t, bt := Basis(n, raw)
	b.vertices = append(b.vertices, Vertex{
		Position:  c.Position,
		Normal:    n,
		UV:        c.UV,
		Tangent:   t,
		Bitangent: bt,
	})
}

// Buffer returns the accumulated triangles. The builder must not be used
// afterwards.
func (b *Builder) Buffer() *Buffer {
	return &Buffer{Vertices: b.vertices}
}
