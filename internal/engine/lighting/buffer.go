// Package lighting packs resolved scene lights into the flat arrays the
// shading stage uploads as uniforms.
package lighting

import (
	"github.com/Faultbox/hearth/internal/engine/scene"
	"github.com/Faultbox/hearth/pkg/math"
)

// MaxLights is the maximum number of lights supported in shaders.
const MaxLights = scene.MaxLights

// Buffer holds lights for upload.
type Buffer struct {
	Lights []scene.RenderLight
	Count  int
}

// NewBuffer creates an empty light buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		Lights: make([]scene.RenderLight, 0, MaxLights),
	}
}

// Clone returns a copy that does not share storage with b.
func (b *Buffer) Clone() *Buffer {
	c := NewBuffer()
	c.Lights = append(c.Lights, b.Lights...)
	c.Count = b.Count
	return c
}

// Clear removes all lights from the buffer.
func (b *Buffer) Clear() {
	b.Lights = b.Lights[:0]
	b.Count = 0
}

// AddLight adds a light to the buffer.
// Returns false if buffer is full.
func (b *Buffer) AddLight(light scene.RenderLight) bool {
	if b.Count >= MaxLights {
		return false
	}
	b.Lights = append(b.Lights, light)
	b.Count++
	return true
}

// SetLights replaces all lights in the buffer.
// Truncates to MaxLights, keeping the first ones.
func (b *Buffer) SetLights(lights []scene.RenderLight) {
	b.Clear()
	count := min(len(lights), MaxLights)
	b.Lights = append(b.Lights, lights[:count]...)
	b.Count = count
}

// Positions returns positions as a flat float32 slice.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (b *Buffer) Positions() []float32 {
	result := make([]float32, MaxLights*3)
	for i, light := range b.Lights {
		put3(result[i*3:], light.Position)
	}
	return result
}

// Directions returns unit directions as a flat float32 slice.
func (b *Buffer) Directions() []float32 {
	result := make([]float32, MaxLights*3)
	for i, light := range b.Lights {
		put3(result[i*3:], light.Direction)
	}
	return result
}

// Colors returns RGB colors as a flat float32 slice.
func (b *Buffer) Colors() []float32 {
	result := make([]float32, MaxLights*3)
	for i, light := range b.Lights {
		copy(result[i*3:], light.Color[:3])
	}
	return result
}

// Functions returns the attenuation coefficients as a flat float32 slice.
func (b *Buffer) Functions() []float32 {
	result := make([]float32, MaxLights*3)
	for i, light := range b.Lights {
		put3(result[i*3:], light.Function)
	}
	return result
}

// Types returns the light types as int32 for upload.
func (b *Buffer) Types() []int32 {
	result := make([]int32, MaxLights)
	for i, light := range b.Lights {
		result[i] = int32(light.Type)
	}
	return result
}

func put3(dst []float32, v math.Vec3) {
	dst[0], dst[1], dst[2] = v.X, v.Y, v.Z
}
