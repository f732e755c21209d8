package scenefile

import (
	"fmt"
	"strings"

	"github.com/Faultbox/hearth/internal/engine/lighting"
	"github.com/Faultbox/hearth/internal/engine/primitive"
	"github.com/Faultbox/hearth/internal/engine/scene"
	"github.com/Faultbox/hearth/pkg/math"
	"github.com/chewxy/math32"
	"golang.org/x/text/cases"
)

const degrees = math32.Pi / 180

// keyword normalizes a type name so that matching ignores case and
// surrounding space.
func keyword(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// converter turns parsed documents into scene nodes, numbering lights that
// carry no explicit id in traversal order.
type converter struct {
	nextLightID int
}

func (c *converter) node(d *nodeDoc, path string) (*scene.Node, error) {
	if d == nil {
		return nil, fmt.Errorf("%s: empty node", path)
	}
	if d.Name != "" {
		path = path + "(" + d.Name + ")"
	}

	n := &scene.Node{}
	for i, t := range d.Transforms {
		tr, err := t.convert()
		if err != nil {
			return nil, fmt.Errorf("%s/transforms[%d]: %w", path, i, err)
		}
		n.Transformations = append(n.Transformations, tr)
	}
	for i, p := range d.Primitives {
		prim, err := p.convert()
		if err != nil {
			return nil, fmt.Errorf("%s/primitives[%d]: %w", path, i, err)
		}
		n.Primitives = append(n.Primitives, prim)
	}
	for i, l := range d.Lights {
		light, err := c.light(l)
		if err != nil {
			return nil, fmt.Errorf("%s/lights[%d]: %w", path, i, err)
		}
		n.Lights = append(n.Lights, light)
	}
	for i, child := range d.Children {
		cn, err := c.node(child, fmt.Sprintf("%s/children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, cn)
	}
	return n, nil
}

func (d globalDoc) convert() scene.GlobalData {
	return scene.GlobalData{Ka: d.Ka, Kd: d.Kd, Ks: d.Ks, Kt: d.Kt}
}

func (d cameraDoc) convert() (scene.CameraData, error) {
	cam := scene.CameraData{
		HeightAngle: d.HeightAngle * degrees,
		Aperture:    d.Aperture,
		FocalLength: d.FocalLength,
	}
	pos, err := optVec3(d.Position, "position", math.Vec3{})
	if err != nil {
		return cam, err
	}
	look, err := optVec3(d.Look, "look", math.V3(0, 0, -1))
	if err != nil {
		return cam, err
	}
	if d.Focus != nil {
		focus, err := vec3(d.Focus, "focus")
		if err != nil {
			return cam, err
		}
		look = focus.Sub(pos)
	}
	up, err := optVec3(d.Up, "up", math.V3(0, 1, 0))
	if err != nil {
		return cam, err
	}
	cam.Pos = pos.Vec4(1)
	cam.Look = look.Vec4(0)
	cam.Up = up.Vec4(0)
	return cam, nil
}

func (d transformDoc) convert() (scene.Transformation, error) {
	var out scene.Transformation
	set := 0
	if d.Translate != nil {
		set++
		v, err := vec3(d.Translate, "translate")
		if err != nil {
			return out, err
		}
		out = scene.Transformation{Type: scene.Translate, Translate: v}
	}
	if d.Scale != nil {
		set++
		v, err := vec3(d.Scale, "scale")
		if err != nil {
			return out, err
		}
		out = scene.Transformation{Type: scene.Scale, Scale: v}
	}
	if d.Rotate != nil {
		set++
		axis, err := vec3(d.Rotate.Axis, "axis")
		if err != nil {
			return out, err
		}
		out = scene.Transformation{Type: scene.Rotate, Axis: axis, Angle: d.Rotate.Angle * degrees}
	}
	if d.Matrix != nil {
		set++
		if len(d.Matrix) != 16 {
			return out, fmt.Errorf("matrix has %d values, want 16: %w", len(d.Matrix), ErrInvalidVector)
		}
		var m math.Mat4
		for row := range 4 {
			for col := range 4 {
				m[col*4+row] = d.Matrix[row*4+col]
			}
		}
		out = scene.Transformation{Type: scene.Matrix, Matrix: m}
	}
	if set != 1 {
		return out, fmt.Errorf("%d operations in one entry: %w", set, ErrInvalidTransform)
	}
	return out, nil
}

func (d primitiveDoc) convert() (scene.Primitive, error) {
	name := keyword(d.Type)
	t, err := primitive.ParseType(name)
	if err != nil {
		return scene.Primitive{}, fmt.Errorf("%q: %w", d.Type, ErrUnknownPrimitive)
	}
	// "terrain" names the generated terrain; "mesh" needs a file
	if t == primitive.Mesh && d.File == "" && name == "mesh" {
		return scene.Primitive{}, ErrMissingMesh
	}
	mat, err := d.Material.convert()
	if err != nil {
		return scene.Primitive{}, fmt.Errorf("material: %w", err)
	}
	return scene.Primitive{Type: t, MeshFile: d.File, Material: mat}, nil
}

func (d materialDoc) convert() (scene.Material, error) {
	m := scene.Material{Shininess: d.Shininess, IOR: d.IOR, Blend: d.Blend}
	colors := []struct {
		src  []float32
		dst  *math.Vec4
		name string
	}{
		{d.Ambient, &m.Ambient, "ambient"},
		{d.Diffuse, &m.Diffuse, "diffuse"},
		{d.Specular, &m.Specular, "specular"},
		{d.Reflective, &m.Reflective, "reflective"},
		{d.Transparent, &m.Transparent, "transparent"},
	}
	for _, c := range colors {
		if c.src == nil {
			continue
		}
		v, err := color(c.src, c.name)
		if err != nil {
			return m, err
		}
		*c.dst = v
	}
	if d.Texture != nil && d.Texture.File != "" {
		m.Texture = scene.TextureMap{
			Used:     true,
			Filename: d.Texture.File,
			RepeatU:  orOne(d.Texture.RepeatU),
			RepeatV:  orOne(d.Texture.RepeatV),
		}
	}
	return m, nil
}

func (c *converter) light(d lightDoc) (scene.Light, error) {
	id := c.nextLightID
	if d.ID != nil {
		id = *d.ID
	}
	c.nextLightID = id + 1

	col := math.Vec4{1, 1, 1, 1}
	if d.Color != nil {
		var err error
		if col, err = color(d.Color, "color"); err != nil {
			return scene.Light{}, err
		}
	}

	kind := keyword(d.Type)
	if kind == "sun" {
		return lighting.SunLight(id, d.Longitude, d.Latitude, col), nil
	}

	l := scene.Light{
		ID:       id,
		Color:    col,
		Penumbra: d.Penumbra * degrees,
		Angle:    d.Angle * degrees,
		Width:    d.Width,
		Height:   d.Height,
	}
	switch kind {
	case "point":
		l.Type = scene.PointLight
	case "directional":
		l.Type = scene.DirectionalLight
	case "spot":
		l.Type = scene.SpotLight
	case "area":
		l.Type = scene.AreaLight
	default:
		return l, fmt.Errorf("%q: %w", d.Type, ErrUnknownLight)
	}

	fn, err := optVec3(d.Function, "function", math.V3(1, 0, 0))
	if err != nil {
		return l, err
	}
	l.Function = fn

	if l.Type.HasDirection() {
		dir, err := optVec3(d.Direction, "direction", math.V3(0, -1, 0))
		if err != nil {
			return l, err
		}
		l.Direction = dir.Vec4(0)
	}
	return l, nil
}

func vec3(v []float32, name string) (math.Vec3, error) {
	if len(v) != 3 {
		return math.Vec3{}, fmt.Errorf("%s has %d values, want 3: %w", name, len(v), ErrInvalidVector)
	}
	return math.V3(v[0], v[1], v[2]), nil
}

func optVec3(v []float32, name string, def math.Vec3) (math.Vec3, error) {
	if v == nil {
		return def, nil
	}
	return vec3(v, name)
}

// color accepts RGB or RGBA; alpha defaults to 1.
func color(v []float32, name string) (math.Vec4, error) {
	switch len(v) {
	case 3:
		return math.Vec4{v[0], v[1], v[2], 1}, nil
	case 4:
		return math.Vec4{v[0], v[1], v[2], v[3]}, nil
	default:
		return math.Vec4{}, fmt.Errorf("%s has %d values, want 3 or 4: %w", name, len(v), ErrInvalidVector)
	}
}

func orOne(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}
