// Package scene flattens a scene graph into the per-frame render list: one
// record per primitive with its composed world transform, and one per light
// moved into world space.
package scene

import (
	"fmt"

	"github.com/Faultbox/hearth/internal/engine/primitive"
	"github.com/Faultbox/hearth/pkg/math"
)

// MaxLights is the number of lights the renderer honors.
const MaxLights = 8

// TransformType identifies a node transformation.
type TransformType int

const (
	Translate TransformType = iota
	Scale
	Rotate
	Matrix
)

func (t TransformType) String() string {
	switch t {
	case Translate:
		return "translate"
	case Scale:
		return "scale"
	case Rotate:
		return "rotate"
	case Matrix:
		return "matrix"
	default:
		return fmt.Sprintf("TransformType(%d)", int(t))
	}
}

// Transformation is one entry of a node's transformation list. Only the
// fields for its Type are read.
type Transformation struct {
	Type      TransformType
	Translate math.Vec3
	Scale     math.Vec3
	Axis      math.Vec3
	Angle     float32 // radians
	Matrix    math.Mat4
}

// Mat4 builds the transformation matrix.
func (t Transformation) Mat4() math.Mat4 {
	switch t.Type {
	case Translate:
		return math.TranslateVec(t.Translate)
	case Scale:
		return math.ScaleVec(t.Scale)
	case Rotate:
		return math.RotateAxis(t.Axis, t.Angle)
	case Matrix:
		return t.Matrix
	default:
		return math.Identity()
	}
}

// TextureMap references an image applied to a material.
type TextureMap struct {
	Used     bool
	Filename string
	RepeatU  float32
	RepeatV  float32
}

// Material holds the shading coefficients of a primitive.
type Material struct {
	Ambient     math.Vec4
	Diffuse     math.Vec4
	Specular    math.Vec4
	Reflective  math.Vec4
	Transparent math.Vec4
	Shininess   float32
	IOR         float32
	Texture     TextureMap
	Blend       float32
}

// Primitive is a drawable attached to a node.
type Primitive struct {
	Type     primitive.Type
	MeshFile string // for primitive.Mesh
	Material Material
}

// LightType identifies how a light is positioned.
type LightType int

const (
	PointLight LightType = iota
	DirectionalLight
	SpotLight
	AreaLight
)

func (t LightType) String() string {
	switch t {
	case PointLight:
		return "point"
	case DirectionalLight:
		return "directional"
	case SpotLight:
		return "spot"
	case AreaLight:
		return "area"
	default:
		return fmt.Sprintf("LightType(%d)", int(t))
	}
}

// HasPosition reports whether lights of this type are placed at a point.
func (t LightType) HasPosition() bool {
	return t != DirectionalLight
}

// HasDirection reports whether lights of this type shine along a direction.
func (t LightType) HasDirection() bool {
	return t != PointLight
}

// Light is a light in node space. Lights sit at the node origin.
type Light struct {
	ID        int
	Type      LightType
	Color     math.Vec4
	Function  math.Vec3 // constant, linear, quadratic attenuation
	Direction math.Vec4 // w is ignored
	Penumbra  float32
	Angle     float32
	Width     float32
	Height    float32
}

// GlobalData holds the scene-wide lighting coefficients.
type GlobalData struct {
	Ka, Kd, Ks, Kt float32
}

// CameraData describes the scene camera.
type CameraData struct {
	Pos         math.Vec4
	Look        math.Vec4
	Up          math.Vec4
	HeightAngle float32 // radians
	Aperture    float32
	FocalLength float32
}

// Node is a scene graph node. The graph is read-only to the resolver and
// must be a finite tree.
type Node struct {
	Transformations []Transformation
	Primitives      []Primitive
	Lights          []Light
	Children        []*Node
}

// Graph is a parsed scene: global settings plus the node tree.
type Graph struct {
	Global GlobalData
	Camera CameraData
	Root   *Node
}
