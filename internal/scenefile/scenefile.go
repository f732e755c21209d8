// Package scenefile reads YAML scene descriptions into a scene graph.
//
// A scene has optional global and camera sections and a root node. Each node
// lists transforms (applied in order), primitives, lights and children.
// Angles are written in degrees.
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/hearth/internal/engine/scene"
)

var (
	// ErrNoRoot is returned when a scene has no root node.
	ErrNoRoot = errors.New("scene has no root node")
	// ErrUnknownPrimitive is returned for an unrecognized primitive type.
	ErrUnknownPrimitive = errors.New("unknown primitive type")
	// ErrUnknownLight is returned for an unrecognized light type.
	ErrUnknownLight = errors.New("unknown light type")
	// ErrInvalidTransform is returned when a transform entry does not name
	// exactly one operation.
	ErrInvalidTransform = errors.New("invalid transform")
	// ErrInvalidVector is returned when a vector has the wrong length.
	ErrInvalidVector = errors.New("invalid vector")
	// ErrMissingMesh is returned when a mesh primitive has no file.
	ErrMissingMesh = errors.New("mesh primitive without file")
)

// Load reads and decodes the scene file at path.
func Load(path string) (scene.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scene.Graph{}, fmt.Errorf("reading scene: %w", err)
	}
	g, err := Parse(data)
	if err != nil {
		return scene.Graph{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Parse decodes a scene from YAML bytes.
func Parse(data []byte) (scene.Graph, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a scene from r. Unknown keys are rejected.
func Decode(r io.Reader) (scene.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc fileDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return scene.Graph{}, ErrNoRoot
		}
		return scene.Graph{}, fmt.Errorf("parsing scene: %w", err)
	}
	if doc.Root == nil {
		return scene.Graph{}, ErrNoRoot
	}

	c := &converter{}
	g := scene.Graph{Global: doc.Global.convert()}

	var err error
	if g.Camera, err = doc.Camera.convert(); err != nil {
		return scene.Graph{}, fmt.Errorf("camera: %w", err)
	}
	if g.Root, err = c.node(doc.Root, "root"); err != nil {
		return scene.Graph{}, err
	}
	return g, nil
}
