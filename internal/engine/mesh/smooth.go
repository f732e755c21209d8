package mesh

import "github.com/Faultbox/hearth/pkg/math"

// SmoothNormals averages normals at shared vertex positions, which removes
// the faceted look of meshes built with per-face normals. Each affected
// frame is re-orthogonalized around the averaged normal.
func SmoothNormals(buf *Buffer) {
	if buf.Empty() {
		return
	}
	const epsilon float32 = 0.001

	// Group vertices by quantized position for O(n) lookup
	posMap := make(map[[3]int32][]int)
	for i := range buf.Vertices {
		p := buf.Vertices[i].Position
		key := [3]int32{
			int32(p.X / epsilon),
			int32(p.Y / epsilon),
			int32(p.Z / epsilon),
		}
		posMap[key] = append(posMap[key], i)
	}

	for _, idxs := range posMap {
		if len(idxs) < 2 {
			continue
		}

		var sum math.Vec3
		for _, idx := range idxs {
			sum = sum.Add(buf.Vertices[idx].Normal)
		}
		avg := sum.Normalize()
		if avg.LengthSqr() == 0 {
			continue
		}

		for _, idx := range idxs {
			v := &buf.Vertices[idx]
			v.Normal = avg
			v.Tangent, v.Bitangent = Basis(avg, v.Tangent)
		}
	}
}
