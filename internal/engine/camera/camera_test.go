package camera

import (
	"testing"

	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/internal/engine/scene"
	"github.com/Faultbox/hearth/pkg/math"
	"github.com/stretchr/testify/assert"
)

func TestOrbitPosition(t *testing.T) {
	c := NewOrbitCamera()
	c.Center = math.V3(1, 2, 3)
	c.Distance = 10
	c.RotationX, c.RotationY = 0, 0

	p := c.Position()
	assert.InDelta(t, 1, p.X, 1e-5)
	assert.InDelta(t, 2, p.Y, 1e-5)
	assert.InDelta(t, 13, p.Z, 1e-5)

	// the center lands in front of the camera
	v := c.ViewMatrix().TransformPoint(c.Center)
	assert.InDelta(t, -10, v.Z, 1e-4)
}

func TestOrbitClamps(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	assert.Equal(t, c.MaxPitch, c.RotationX)
	c.HandleDrag(0, -1e6)
	assert.Equal(t, c.MinPitch, c.RotationX)

	c.HandleZoom(100)
	assert.Equal(t, c.MinDistance, c.Distance)
	for range 200 {
		c.HandleZoom(-1)
	}
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	b := mesh.Bounds{Min: math.V3(-10, 0, -10), Max: math.V3(10, 4, 10)}
	c.FitToBounds(b, DefaultHeightAngle)

	assert.Equal(t, math.V3(0, 2, 0), c.Center)
	assert.Greater(t, c.Distance, b.Size().Length()/2)
}

func TestSceneCamera(t *testing.T) {
	c := FromScene(scene.CameraData{
		Pos:  math.Vec4{0, 0, 5, 1},
		Look: math.Vec4{0, 0, -1, 0},
		Up:   math.Vec4{0, 1, 0, 0},
	})
	assert.Equal(t, float32(DefaultHeightAngle), c.HeightAngle)

	v := c.ViewMatrix().TransformPoint(math.Vec3{})
	assert.InDelta(t, 0, v.X, 1e-5)
	assert.InDelta(t, -5, v.Z, 1e-5)

	clip := c.ViewProjection(1, 0.1, 100).TransformPoint(math.Vec3{})
	assert.InDelta(t, 0, clip.X, 1e-5)
	assert.Greater(t, clip.Z, float32(-1))
	assert.Less(t, clip.Z, float32(1))
}

func TestSceneCameraDefaults(t *testing.T) {
	c := FromScene(scene.CameraData{})
	assert.Equal(t, math.V3(0, 0, -1), c.Look)
	assert.Equal(t, math.V3(0, 1, 0), c.Up)
}
