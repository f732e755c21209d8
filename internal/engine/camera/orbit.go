// Package camera provides the scene camera and an orbit camera for framing
// generated content.
package camera

import (
	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/pkg/math"
	"github.com/chewxy/math32"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        5,
		RotationX:       0.5,
		MinDistance:     0.5,
		MaxDistance:     1000,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	// pitch up about X, then yaw about Y, starting from +Z
	rot := math.RotateY(c.RotationY).Mul(math.RotateX(-c.RotationX))
	return c.Center.Add(rot.TransformDirection(math.V3(0, 0, c.Distance)))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.V3(0, 1, 0))
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.RotationX = clamp(c.RotationX, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on b and backs off far enough to see it
// with a vertical field of view of fovY radians.
func (c *OrbitCamera) FitToBounds(b mesh.Bounds, fovY float32) {
	c.Center = b.Center()
	radius := b.Min.Distance(b.Max) / 2

	c.Distance = radius / math32.Sin(fovY/2)
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)

	c.RotationX = 0.6 // about 35 degrees down
	c.RotationY = 0
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
