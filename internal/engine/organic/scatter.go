package organic

import (
	"math/rand"

	"github.com/Faultbox/hearth/pkg/math"
	"github.com/chewxy/math32"
)

// HeightSampler reports the ground height below a world position.
type HeightSampler interface {
	HeightAt(x, z float32) float32
}

// ScatterParams controls the placement of a population of instances.
type ScatterParams struct {
	Count    int
	Radius   float32 // half-extent of the square, or disc radius
	Disc     bool
	MinScale float32
	MaxScale float32
	MaxTilt  float32 // radians

	// Height range used when Ground is nil.
	MinY, MaxY float32
	// Lift raises each instance by Lift*scale, so the mesh rests on its
	// base instead of its center.
	Lift   float32
	Ground HeightSampler

	// Orient is applied first and sets the rest pose. Yaw follows, then a
	// tilt about a horizontal world axis.
	Orient math.Quat
}

// DefaultBaguetteScatter stands baguettes upright on the ground: Orient
// turns their long Z axis to +Y.
func DefaultBaguetteScatter() ScatterParams {
	return ScatterParams{
		Count:    150,
		Radius:   22.5,
		MinScale: 3.5,
		MaxScale: 3.5,
		MaxTilt:  0.4,
		MinY:     -5,
		MaxY:     -5,
		Lift:     1.6 * 0.92,
		Orient:   math.QuatFromAxisAngle(math.V3(1, 0, 0), -math32.Pi/2),
	}
}

// DefaultLoafScatter floats loaves above the scene.
func DefaultLoafScatter() ScatterParams {
	return ScatterParams{
		Count:    60,
		Radius:   22.5,
		MinScale: 2.5,
		MaxScale: 3.5,
		MinY:     15,
		MaxY:     25,
		Orient:   math.QuatFromAxisAngle(math.V3(0, 0, 1), math32.Pi/2),
	}
}

// NewRand returns a generator for Scatter seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Scatter returns Count world transforms drawn from rng. Every instance
// consumes the same number of draws, so a seed always yields the same
// population regardless of Ground.
func Scatter(rng *rand.Rand, p ScatterParams) []math.Mat4 {
	if p.Count <= 0 {
		return nil
	}
	orient := p.Orient
	if orient == (math.Quat{}) {
		orient = math.QuatIdentity()
	}

	out := make([]math.Mat4, 0, p.Count)
	for range p.Count {
		a, c := uniform(rng, -1, 1), uniform(rng, -1, 1)
		yaw := uniform(rng, 0, 2*math32.Pi)
		tilt := uniform(rng, -p.MaxTilt, p.MaxTilt)
		tiltDir := uniform(rng, 0, 2*math32.Pi)
		scale := uniform(rng, p.MinScale, p.MaxScale)
		y := uniform(rng, p.MinY, p.MaxY)

		x, z := a*p.Radius, c*p.Radius
		if p.Disc {
			// a, c reinterpreted as polar coordinates for an even disc
			r := p.Radius * math32.Sqrt((a+1)/2)
			s, co := math32.Sincos((c + 1) * math32.Pi)
			x, z = r*co, r*s
		}
		if p.Ground != nil {
			y = p.Ground.HeightAt(x, z)
		}
		y += p.Lift * scale

		sd, cd := math32.Sincos(tiltDir)
		rot := math.QuatFromAxisAngle(math.V3(cd, 0, sd), tilt).
			Mul(math.QuatFromAxisAngle(math.V3(0, 1, 0), yaw)).
			Mul(orient)

		m := math.Translate(x, y, z).
			Mul(rot.ToMat4()).
			Mul(math.Scale(scale, scale, scale))
		out = append(out, m)
	}
	return out
}

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}
