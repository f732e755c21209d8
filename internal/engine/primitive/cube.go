package primitive

import (
	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/pkg/math"
)

type cubeFace struct {
	tl, tr, bl, br math.Vec3
	// planar mapping frame: u along tangent, v against bitangent
	tangent, bitangent math.Vec3
}

const half = radius

var cubeFaces = [6]cubeFace{
	// +z
	{math.V3(-half, half, half), math.V3(half, half, half), math.V3(-half, -half, half), math.V3(half, -half, half), math.V3(1, 0, 0), math.V3(0, 1, 0)},
	// -z
	{math.V3(half, half, -half), math.V3(-half, half, -half), math.V3(half, -half, -half), math.V3(-half, -half, -half), math.V3(-1, 0, 0), math.V3(0, 1, 0)},
	// +y
	{math.V3(-half, half, -half), math.V3(half, half, -half), math.V3(-half, half, half), math.V3(half, half, half), math.V3(1, 0, 0), math.V3(0, 0, -1)},
	// -y
	{math.V3(-half, -half, half), math.V3(half, -half, half), math.V3(-half, -half, -half), math.V3(half, -half, -half), math.V3(1, 0, 0), math.V3(0, 0, 1)},
	// +x
	{math.V3(half, half, half), math.V3(half, half, -half), math.V3(half, -half, half), math.V3(half, -half, -half), math.V3(0, 0, -1), math.V3(0, 1, 0)},
	// -x
	{math.V3(-half, half, -half), math.V3(-half, half, half), math.V3(-half, -half, -half), math.V3(-half, -half, half), math.V3(0, 0, 1), math.V3(0, 1, 0)},
}

// GenerateCube builds a unit cube with div×div tiles per face. Each face is
// planar-mapped to the full [0,1] UV square.
func GenerateCube(div int) *mesh.Buffer {
	div = max(div, MinLinear)
	b := mesh.NewBuilder(mesh.DerivedBasis{}, 6*div*div*6)
	for _, f := range cubeFaces {
		addCubeFace(b, f, div)
	}
	return b.Buffer()
}

func addCubeFace(b *mesh.Builder, f cubeFace, div int) {
	normal := f.bl.Sub(f.tl).Cross(f.tr.Sub(f.tl)).Normalize()
	center := normal.Scale(half)
	corner := func(p math.Vec3) mesh.Corner {
		q := p.Sub(center)
		uv := math.V2(q.Dot(f.tangent)+0.5, 0.5-q.Dot(f.bitangent))
		return mesh.C(p, normal, uv)
	}

	n := float32(div)
	for i := 0; i < div; i++ {
		top := float32(i) / n
		bottom := float32(i+1) / n
		leftTop := f.tl.Lerp(f.bl, top)
		leftBot := f.tl.Lerp(f.bl, bottom)
		rightTop := f.tr.Lerp(f.br, top)
		rightBot := f.tr.Lerp(f.br, bottom)
		for j := 0; j < div; j++ {
			left := float32(j) / n
			right := float32(j+1) / n
			b.AddTile(
				corner(leftTop.Lerp(rightTop, left)),
				corner(leftTop.Lerp(rightTop, right)),
				corner(leftBot.Lerp(rightBot, left)),
				corner(leftBot.Lerp(rightBot, right)),
			)
		}
	}
}
