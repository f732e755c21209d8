package organic

import (
	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/internal/engine/noise"
	"github.com/Faultbox/hearth/pkg/math"
	"github.com/chewxy/math32"
)

// BaguetteParams shapes the baguette: a capsule along Z with a noisy crust
// and diagonal slashes facing +X.
type BaguetteParams struct {
	Radius     float32
	BodyLength float32 // length of the cylindrical section between the domes

	CrustSeed      int
	CrustThetaFreq float32
	CrustZFreq     float32
	CrustAmplitude float32

	SlashCenters []float32 // Z of each slash at theta = 0
	SlashSlope   float32   // Z shift per radian of theta
	SlashWidth   float32
	SlashDepth   float32
	SlashArc     float32 // slashes only where |theta| <= SlashArc

	DomeSeed      int
	DomeFreq      float32
	DomeAmplitude float32

	BodyTileU float32 // UV repeats along the body
	BodyTileV float32 // UV repeats around the body
	DomeTile  float32
}

// DefaultBaguetteParams returns the stock baguette.
func DefaultBaguetteParams() BaguetteParams {
	return BaguetteParams{
		Radius:         0.15,
		BodyLength:     1.6,
		CrustSeed:      42,
		CrustThetaFreq: 8,
		CrustZFreq:     5,
		CrustAmplitude: 0.015,
		SlashCenters:   []float32{-0.5, 0, 0.5},
		SlashSlope:     0.8,
		SlashWidth:     0.12,
		SlashDepth:     0.035,
		SlashArc:       math32.Pi / 3,
		DomeSeed:       99,
		DomeFreq:       6,
		DomeAmplitude:  0.01,
		BodyTileU:      4,
		BodyTileV:      2,
		DomeTile:       2,
	}
}

// GenerateBaguette builds the default baguette. segments/2 rings make up the
// body and segments/4 rings each dome; slices is the count around the axis.
func GenerateBaguette(segments, slices int) *mesh.Buffer {
	return DefaultBaguetteParams().Generate(segments, slices)
}

// signedAngle wraps theta in [0, 2π] to (-π, π].
func signedAngle(theta float32) float32 {
	if theta > math32.Pi {
		theta -= 2 * math32.Pi
	}
	return theta
}

// SlashCarve returns the total carve depth at (theta, z) on the body.
func (p BaguetteParams) SlashCarve(theta, z float32) float32 {
	theta = signedAngle(theta)
	if math32.Abs(theta) > p.SlashArc {
		return 0
	}
	var depth float32
	for _, center := range p.SlashCenters {
		dist := math32.Abs(z - center - theta*p.SlashSlope)
		depth += p.SlashDepth * cosineFalloff(dist, p.SlashWidth)
	}
	return depth
}

// bodyDisplacement is the signed offset along the body normal.
func (p BaguetteParams) bodyDisplacement(theta, z float32) float32 {
	bump := noise.Value(theta*p.CrustThetaFreq, z*p.CrustZFreq, p.CrustSeed) * p.CrustAmplitude
	return bump - p.SlashCarve(theta, z)
}

func (p BaguetteParams) domeBump(theta, phi float32) float32 {
	return noise.Value(theta*p.DomeFreq, phi*p.DomeFreq, p.DomeSeed) * p.DomeAmplitude
}

// Generate builds the mesh. segments is clamped so that body and domes get
// at least one ring each, and slices to at least three.
func (p BaguetteParams) Generate(segments, slices int) *mesh.Buffer {
	bodySegments := max(segments/2, 1)
	domeSegments := max(segments/4, 1)
	slices = max(slices, 3)
	b := mesh.NewBuilder(mesh.DerivedBasis{}, (bodySegments+2*domeSegments)*slices*6)

	// angle of slice k; the last slice wraps to 0 so the seam closes
	theta := func(k int) float32 {
		return float32(k%slices) / float32(slices) * 2 * math32.Pi
	}
	halfLength := p.BodyLength / 2

	body := func(k int, t float32) surfacePoint {
		th := theta(k)
		z := -halfLength + t*p.BodyLength
		sin, cos := math32.Sincos(th)
		n := math.V3(cos, sin, 0)
		pos := math.V3(p.Radius*cos, p.Radius*sin, z).Add(n.Scale(p.bodyDisplacement(th, z)))
		uv := math.V2(t*p.BodyTileU, float32(k)/float32(slices)*p.BodyTileV)
		return surfacePoint{pos: pos, outward: n, uv: uv}
	}

	for seg := 0; seg < bodySegments; seg++ {
		t1 := float32(seg) / float32(bodySegments)
		t2 := float32(seg+1) / float32(bodySegments)
		for sl := 0; sl < slices; sl++ {
			// increasing theta runs to the left when seen from outside
			addTile(b, body(sl+1, t1), body(sl, t1), body(sl+1, t2), body(sl, t2))
		}
	}

	for end := 0; end < 2; end++ {
		dir := float32(1)
		if end == 0 {
			dir = -1
		}
		zEnd := dir * halfLength
		center := math.V3(0, 0, zEnd)

		dome := func(k, ring int) surfacePoint {
			th := theta(k)
			phi := float32(ring) / float32(domeSegments) * math32.Pi / 2
			sinPhi, cosPhi := math32.Sincos(phi)
			if ring == domeSegments {
				sinPhi, cosPhi = 1, 0
			}
			sinTh, cosTh := math32.Sincos(th)
			base := math.V3(p.Radius*sinPhi*cosTh, p.Radius*sinPhi*sinTh, zEnd+dir*p.Radius*cosPhi)
			n := base.Sub(center).Normalize()

			// the pole is shared by every slice and the rim by the body
			var bump float32
			switch ring {
			case 0:
				bump = p.domeBump(0, 0)
			case domeSegments:
				bump = p.bodyDisplacement(th, zEnd)
			default:
				// blend toward the body displacement so the rim meets the body
				rim := p.bodyDisplacement(th, zEnd) - p.domeBump(th, math32.Pi/2)
				bump = p.domeBump(th, phi) + rim*sinPhi*sinPhi
			}
			uv := math.V2(float32(ring)/float32(domeSegments)*p.DomeTile, float32(k)/float32(slices)*p.DomeTile)
			return surfacePoint{pos: base.Add(n.Scale(bump)), outward: n, uv: uv}
		}

		for seg := 0; seg < domeSegments; seg++ {
			for sl := 0; sl < slices; sl++ {
				tl, tr := dome(sl, seg), dome(sl+1, seg)
				bl, br := dome(sl, seg+1), dome(sl+1, seg+1)
				if end == 0 {
					tl, tr, bl, br = tr, tl, br, bl
				}
				if seg == 0 {
					// pole row: tl and tr coincide
					addFacet(b, tl, bl, br)
					continue
				}
				addTile(b, tl, tr, bl, br)
			}
		}
	}
	return b.Buffer()
}
