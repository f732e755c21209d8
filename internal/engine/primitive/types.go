// Package primitive generates tessellated unit primitives (cube, sphere,
// cone, cylinder) centered at the origin and spanning [-0.5, 0.5].
package primitive

import (
	"fmt"
	"strings"
)

// Type identifies a drawable shape.
type Type int

const (
	Cube Type = iota
	Sphere
	Cone
	Cylinder
	Baguette
	Loaf
	Mesh // terrain or other externally generated geometry
)

var typeNames = [...]string{
	Cube:     "cube",
	Sphere:   "sphere",
	Cone:     "cone",
	Cylinder: "cylinder",
	Baguette: "baguette",
	Loaf:     "loaf",
	Mesh:     "mesh",
}

// String returns the lower-case name used in scene files.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType maps a scene-file name to a Type. "terrain" is accepted as an
// alias for Mesh.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "terrain" {
		return Mesh, nil
	}
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown primitive type %q", name)
}

// Analytic reports whether t is one of the tessellated unit primitives.
func (t Type) Analytic() bool {
	return t >= Cube && t <= Cylinder
}

// Minimum tessellation after clamping.
const (
	MinLinear  = 1 // stacks, rings, face subdivisions
	MinBands   = 2 // sphere latitude bands
	MinAngular = 3 // wedges around an axis
)

const radius = 0.5
