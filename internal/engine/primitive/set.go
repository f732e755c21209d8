package primitive

import (
	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/internal/logger"
	"go.uber.org/zap"
)

// Generate builds the buffer for an analytic primitive. Other types yield an
// empty buffer.
func Generate(t Type, param1, param2 int) *mesh.Buffer {
	if !t.Analytic() {
		return &mesh.Buffer{}
	}
	switch t {
	case Cube:
		return GenerateCube(param1)
	case Sphere:
		return GenerateSphere(param1, param2)
	case Cone:
		return GenerateCone(param1, param2)
	case Cylinder:
		return GenerateCylinder(param1, param2)
	}
	return &mesh.Buffer{}
}

// Set owns one buffer per analytic primitive, all built with the same
// tessellation parameters.
type Set struct {
	param1, param2 int
	generated      bool
	buffers        map[Type]*mesh.Buffer
}

// NewSet creates an empty set. Call Generate before reading buffers.
func NewSet() *Set {
	return &Set{buffers: make(map[Type]*mesh.Buffer)}
}

// Generate rebuilds every primitive. Parameters are clamped per shape.
func (s *Set) Generate(param1, param2 int) {
	log := logger.Named("primitive")
	s.param1, s.param2 = param1, param2
	for t := Cube; t.Analytic(); t++ {
		s.buffers[t] = Generate(t, param1, param2)
		log.Debug("generated primitive",
			zap.Stringer("type", t),
			zap.Int("vertices", s.buffers[t].VertexCount()))
	}
	s.generated = true
}

// Update regenerates only when the parameters changed. It reports whether a
// rebuild happened.
func (s *Set) Update(param1, param2 int) bool {
	if s.generated && param1 == s.param1 && param2 == s.param2 {
		return false
	}
	s.Generate(param1, param2)
	return true
}

// Params returns the tessellation parameters of the last Generate.
func (s *Set) Params() (param1, param2 int) {
	return s.param1, s.param2
}

// Buffer returns the buffer for t, or nil if t is not in the set.
func (s *Set) Buffer(t Type) *mesh.Buffer {
	return s.buffers[t]
}

// VertexCount returns the vertex count for t.
func (s *Set) VertexCount(t Type) int {
	return s.buffers[t].VertexCount()
}
