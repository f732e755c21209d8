package viewer

import (
	"github.com/Faultbox/hearth/internal/engine/lighting"
	"github.com/Faultbox/hearth/internal/engine/primitive"
	"github.com/Faultbox/hearth/internal/engine/scene"
	"github.com/Faultbox/hearth/pkg/math"
)

// DefaultGraph is the scene shown when no scene file is configured: every
// shape in a row above the terrain, lit by a sun and a warm point light.
func DefaultGraph(withTerrain bool, terrainY float32) scene.Graph {
	shapes := []primitive.Type{
		primitive.Cube, primitive.Sphere, primitive.Cone,
		primitive.Cylinder, primitive.Baguette, primitive.Loaf,
	}

	root := &scene.Node{
		Lights: []scene.Light{
			lighting.SunLight(0, 45, 55, math.Vec4{1, 0.96, 0.9, 1}),
			{
				ID:       1,
				Type:     scene.PointLight,
				Color:    math.Vec4{1, 0.8, 0.6, 1},
				Function: math.V3(1, 0.05, 0.01),
			},
		},
	}

	row := &scene.Node{
		Transformations: []scene.Transformation{
			{Type: scene.Translate, Translate: math.V3(-float32(len(shapes)-1), 1, 0)},
		},
	}
	for i, t := range shapes {
		row.Children = append(row.Children, &scene.Node{
			Transformations: []scene.Transformation{
				{Type: scene.Translate, Translate: math.V3(float32(i)*2, 0, 0)},
			},
			Primitives: []scene.Primitive{{
				Type: t,
				Material: scene.Material{
					Ambient:   math.Vec4{0.2, 0.18, 0.15, 1},
					Diffuse:   math.Vec4{0.9, 0.75, 0.5, 1},
					Specular:  math.Vec4{0.2, 0.2, 0.2, 1},
					Shininess: 16,
				},
			}},
		})
	}
	root.Children = append(root.Children, row)

	if withTerrain {
		root.Children = append(root.Children, &scene.Node{
			Transformations: []scene.Transformation{
				{Type: scene.Translate, Translate: math.V3(0, terrainY, 0)},
			},
			Primitives: []scene.Primitive{{
				Type: primitive.Mesh,
				Material: scene.Material{
					Ambient: math.Vec4{0.15, 0.15, 0.12, 1},
					Diffuse: math.Vec4{0.85, 0.8, 0.65, 1},
				},
			}},
		})
	}

	return scene.Graph{
		Global: scene.GlobalData{Ka: 0.5, Kd: 0.5, Ks: 0.5},
		Camera: scene.CameraData{
			Pos:         math.Vec4{0, 6, 14, 1},
			Look:        math.Vec4{0, -6, -14, 0},
			Up:          math.Vec4{0, 1, 0, 0},
			HeightAngle: 0.785398,
		},
		Root: root,
	}
}
