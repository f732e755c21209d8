package viewer

import (
	"slices"

	"github.com/Faultbox/hearth/internal/engine/camera"
	"github.com/Faultbox/hearth/internal/engine/debug"
	"github.com/Faultbox/hearth/internal/engine/lighting"
	"github.com/Faultbox/hearth/internal/engine/scene"
	"github.com/Faultbox/hearth/internal/engine/shadow"
	"github.com/Faultbox/hearth/pkg/math"
)

// FrameData is everything the renderer needs for one frame.
type FrameData struct {
	View       math.Mat4
	Projection math.Mat4
	CameraPos  math.Vec3

	Shapes []scene.RenderShape
	Lights *lighting.Buffer
	Global scene.GlobalData

	// LightSpace is valid when HasShadow is set: the scene has a
	// directional light among the active lights and something to shadow.
	LightSpace math.Mat4
	HasShadow  bool

	Baguettes []math.Mat4
	Loaves    []math.Mat4

	// Selected indexes Shapes, or is -1. Selection outlines it as a line list.
	Selected  int
	Selection []math.Vec3
}

// Frame assembles the current frame. The scene camera is used when the
// scene defines one, otherwise the orbit camera.
func (p *Pipeline) Frame() FrameData {
	p.mu.Lock()
	defer p.mu.Unlock()

	// copies, so a later Apply cannot change a frame already handed out
	f := FrameData{
		Shapes:    slices.Clone(p.list.Shapes),
		Lights:    p.lights.Clone(),
		Global:    p.list.Global,
		Baguettes: slices.Clone(p.baguettes),
		Loaves:    slices.Clone(p.loaves),
		Selected:  p.selected,
	}
	f.View, f.Projection, f.CameraPos = p.camera()

	if p.selected >= 0 {
		f.Selection = debug.Wireframe(p.shapeBounds(p.selected), debug.DefaultPadding)
	}

	for _, l := range p.lights.Lights {
		if l.Type != scene.DirectionalLight {
			continue
		}
		b, ok := p.bounds()
		if !ok {
			break
		}
		f.LightSpace = p.lightSpace(l.Direction.Neg(), shadow.FromBounds(b), f.CameraPos)
		f.HasShadow = true
		break
	}
	return f
}

// lightSpace covers the whole scene, or with a shadow distance set, only the
// area around the selected shape or the camera.
func (p *Pipeline) lightSpace(toLight math.Vec3, bounds shadow.AABB, cameraPos math.Vec3) math.Mat4 {
	dist := p.cfg.Render.ShadowDistance
	if dist <= 0 {
		return shadow.DirectionalLightMatrix(toLight, bounds)
	}
	focus := cameraPos
	if p.selected >= 0 {
		focus = p.shapeBounds(p.selected).Center()
	}
	return shadow.TightLightMatrix(toLight, bounds, focus, dist)
}

// camera returns the view and projection of the active camera.
func (p *Pipeline) camera() (view, proj math.Mat4, pos math.Vec3) {
	rc := p.cfg.Render
	if p.list.Camera != (scene.CameraData{}) {
		cam := camera.FromScene(p.list.Camera)
		return cam.ViewMatrix(), cam.ProjectionMatrix(rc.AspectRatio, rc.NearPlane, rc.FarPlane), cam.Position
	}
	proj = math.Perspective(camera.DefaultHeightAngle, rc.AspectRatio, rc.NearPlane, rc.FarPlane)
	return p.orbit.ViewMatrix(), proj, p.orbit.Position()
}
