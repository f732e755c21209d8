// Package meshtest checks the structural properties every generated mesh
// buffer must satisfy.
package meshtest

import (
	"fmt"
	"testing"

	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/chewxy/math32"
)

const (
	// UnitTolerance bounds length and dot-product error of a TBN frame.
	UnitTolerance = 1e-3
	// HandednessTolerance bounds |dot(T×B, N)| - 1.
	HandednessTolerance = 0.1
)

// Validate returns the first violation found in buf, or nil. It checks for
// whole triangles, finite attributes, orthonormal frames and a single
// handedness sign across the buffer.
func Validate(buf *mesh.Buffer) error {
	if buf.VertexCount()%3 != 0 {
		return fmt.Errorf("vertex count %d is not a multiple of 3", buf.VertexCount())
	}
	if got := len(buf.Floats()); got != buf.VertexCount()*mesh.Stride {
		return fmt.Errorf("float count %d does not match %d vertices", got, buf.VertexCount())
	}
	if buf.Empty() {
		return nil
	}

	var sign float32
	for i, v := range buf.Vertices {
		if !v.Position.IsFinite() || !v.Normal.IsFinite() || !v.Tangent.IsFinite() || !v.Bitangent.IsFinite() {
			return fmt.Errorf("vertex %d: non-finite attribute %+v", i, v)
		}
		n, t, b := v.Normal, v.Tangent, v.Bitangent
		for name, l := range map[string]float32{"normal": n.Length(), "tangent": t.Length(), "bitangent": b.Length()} {
			if math32.Abs(l-1) > UnitTolerance {
				return fmt.Errorf("vertex %d: %s length %f", i, name, l)
			}
		}
		for name, d := range map[string]float32{"t·n": t.Dot(n), "b·n": b.Dot(n), "t·b": t.Dot(b)} {
			if math32.Abs(d) > UnitTolerance {
				return fmt.Errorf("vertex %d: %s = %f", i, name, d)
			}
		}
		h := t.Cross(b).Dot(n)
		if math32.Abs(math32.Abs(h)-1) > HandednessTolerance {
			return fmt.Errorf("vertex %d: handedness magnitude %f", i, h)
		}
		s := float32(1)
		if h < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return fmt.Errorf("vertex %d: handedness %f differs from mesh sign %f", i, h, sign)
		}
	}
	return nil
}

// ValidateWinding returns an error for the first triangle whose winding
// disagrees with the sum of its vertex normals. Degenerate triangles are
// skipped.
func ValidateWinding(buf *mesh.Buffer) error {
	for i := 0; i+2 < buf.VertexCount(); i += 3 {
		a, b, c := buf.Vertices[i], buf.Vertices[i+1], buf.Vertices[i+2]
		face := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		if face.LengthSqr() < 1e-20 {
			continue
		}
		if face.Dot(a.Normal.Add(b.Normal).Add(c.Normal)) <= 0 {
			return fmt.Errorf("triangle %d is wound against its normals", i/3)
		}
	}
	return nil
}

// CheckWinding fails t if ValidateWinding reports a triangle.
func CheckWinding(t testing.TB, buf *mesh.Buffer) {
	t.Helper()
	if err := ValidateWinding(buf); err != nil {
		t.Fatal(err)
	}
}

// Check fails t if buf violates any property checked by Validate.
func Check(t testing.TB, buf *mesh.Buffer) {
	t.Helper()
	if err := Validate(buf); err != nil {
		t.Fatal(err)
	}
}

// Equal fails t unless a and b hold exactly the same floats.
func Equal(t testing.TB, a, b *mesh.Buffer) {
	t.Helper()
	fa, fb := a.Floats(), b.Floats()
	if len(fa) != len(fb) {
		t.Fatalf("buffer lengths differ: %d vs %d", len(fa), len(fb))
	}
	for i := range fa {
		if fa[i] != fb[i] {
			t.Fatalf("float %d differs: %v vs %v", i, fa[i], fb[i])
		}
	}
}
