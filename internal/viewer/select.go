package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/internal/engine/picking"
	"github.com/Faultbox/hearth/internal/engine/shadow"
	"github.com/Faultbox/hearth/pkg/math"
)

// shapeBounds returns the world-space box of a resolved shape.
func (p *Pipeline) shapeBounds(i int) mesh.Bounds {
	s := p.list.Shapes[i]
	box := shadow.FromBounds(p.meshBounds(s.Primitive)).Transform(s.CTM)
	return mesh.Bounds{Min: box.Min, Max: box.Max}
}

// cast returns the ray under a pixel and the nearest shape it hits, or -1.
func (p *Pipeline) cast(x, y, width, height float32) (ray picking.Ray, index int, t float32) {
	view, proj, _ := p.camera()
	ray = picking.ScreenToRay(x, y, width, height, proj.Mul(view))

	boxes := make([]mesh.Bounds, len(p.list.Shapes))
	for i := range p.list.Shapes {
		boxes[i] = p.shapeBounds(i)
	}
	index, t = ray.Nearest(boxes)
	return ray, index, t
}

// Pick selects the nearest shape under the pixel (x, y) of a width×height
// viewport and returns its index, or -1 when the ray misses everything.
// A miss clears the selection.
func (p *Pipeline) Pick(x, y, width, height float32) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if width <= 0 || height <= 0 {
		return p.selected
	}

	_, p.selected, _ = p.cast(x, y, width, height)
	if p.selected >= 0 {
		p.log.Debug("shape picked",
			zap.Int("index", p.selected),
			zap.Stringer("primitive", p.list.Shapes[p.selected].Primitive))
	}
	return p.selected
}

// PickPoint returns the world point under the pixel (x, y): the entry point
// on the nearest shape's box, or else where the ray meets the terrain's base
// plane. It does not change the selection.
func (p *Pipeline) PickPoint(x, y, width, height float32) (math.Vec3, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if width <= 0 || height <= 0 {
		return math.Vec3{}, false
	}

	ray, i, t := p.cast(x, y, width, height)
	if i >= 0 {
		return ray.At(t), true
	}

	planeY := p.cfg.Terrain.OffsetY
	wx, wz, ok := ray.IntersectPlaneY(planeY)
	if !ok {
		return math.Vec3{}, false
	}
	return math.V3(wx, planeY, wz), true
}

// Select sets the selection directly. Out-of-range indices clear it.
func (p *Pipeline) Select(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.list.Shapes) {
		i = -1
	}
	p.selected = i
}
