package terrain

import "github.com/Faultbox/hearth/internal/engine/mesh"

// Heightfield provides height lookup over the generated grid.
type Heightfield struct {
	heights [][]float32 // [x][z]
	width   int
	depth   int

	worldWidth float32
	worldDepth float32
}

func newHeightfield(p Params) *Heightfield {
	heights := make([][]float32, p.GridWidth)
	for x := range heights {
		heights[x] = make([]float32, p.GridDepth)
	}
	return &Heightfield{
		heights:    heights,
		width:      p.GridWidth,
		depth:      p.GridDepth,
		worldWidth: p.WorldWidth,
		worldDepth: p.WorldDepth,
	}
}

// Width returns the number of grid points along X.
func (h *Heightfield) Width() int { return h.width }

// Depth returns the number of grid points along Z.
func (h *Heightfield) Depth() int { return h.depth }

// At returns the height at grid point (x, z), clamping the indices.
func (h *Heightfield) At(x, z int) float32 {
	if h == nil || h.width == 0 || h.depth == 0 {
		return 0
	}
	return h.heights[clampi(x, 0, h.width-1)][clampi(z, 0, h.depth-1)]
}

// spacing returns the world distance between neighboring grid points.
func (h *Heightfield) spacing() (sx, sz float32) {
	if h.width > 1 {
		sx = h.worldWidth / float32(h.width-1)
	}
	if h.depth > 1 {
		sz = h.worldDepth / float32(h.depth-1)
	}
	return sx, sz
}

// World returns the world-space X and Z of grid point (x, z).
func (h *Heightfield) World(x, z int) (wx, wz float32) {
	sx, sz := h.spacing()
	return float32(x)*sx - h.worldWidth/2, float32(z)*sz - h.worldDepth/2
}

// HeightAt returns the bilinearly interpolated height at a world position.
// Positions outside the grid take the height of the nearest edge.
func (h *Heightfield) HeightAt(worldX, worldZ float32) float32 {
	if h == nil || h.width == 0 || h.depth == 0 {
		return 0
	}
	if h.width < 2 || h.depth < 2 {
		return h.At(0, 0)
	}

	sx, sz := h.spacing()
	cellFX := (worldX + h.worldWidth/2) / sx
	cellFZ := (worldZ + h.worldDepth/2) / sz

	cellX := clampi(int(cellFX), 0, h.width-2)
	cellZ := clampi(int(cellFZ), 0, h.depth-2)

	fracX := clampf(cellFX-float32(cellX), 0, 1)
	fracZ := clampf(cellFZ-float32(cellZ), 0, 1)

	// lerp along X on both Z edges, then between them
	south := h.heights[cellX][cellZ]*(1-fracX) + h.heights[cellX+1][cellZ]*fracX
	north := h.heights[cellX][cellZ+1]*(1-fracX) + h.heights[cellX+1][cellZ+1]*fracX
	return south*(1-fracZ) + north*fracZ
}

// Bounds returns the world-space box enclosing the grid.
func (h *Heightfield) Bounds() mesh.Bounds {
	var b mesh.Bounds
	if h == nil || h.width == 0 || h.depth == 0 {
		return b
	}
	lo, hi := h.heights[0][0], h.heights[0][0]
	for _, col := range h.heights {
		for _, y := range col {
			lo = min(lo, y)
			hi = max(hi, y)
		}
	}
	b.Min.X, b.Min.Y, b.Min.Z = -h.worldWidth/2, lo, -h.worldDepth/2
	b.Max.X, b.Max.Y, b.Max.Z = h.worldWidth/2, hi, h.worldDepth/2
	return b
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
