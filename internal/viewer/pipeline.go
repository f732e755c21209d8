// Package viewer ties the generators together: it builds every mesh the
// configuration asks for, resolves the scene and assembles per-frame data
// for the renderer.
package viewer

import (
	"fmt"
	"image"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/hearth/internal/config"
	"github.com/Faultbox/hearth/internal/engine/camera"
	"github.com/Faultbox/hearth/internal/engine/lighting"
	"github.com/Faultbox/hearth/internal/engine/mesh"
	"github.com/Faultbox/hearth/internal/engine/organic"
	"github.com/Faultbox/hearth/internal/engine/primitive"
	"github.com/Faultbox/hearth/internal/engine/scene"
	"github.com/Faultbox/hearth/internal/engine/terrain"
	"github.com/Faultbox/hearth/internal/engine/texture"
	"github.com/Faultbox/hearth/internal/logger"
	"github.com/Faultbox/hearth/internal/scenefile"
	"github.com/Faultbox/hearth/pkg/math"
)

// Pipeline owns all generated content. It is safe for concurrent use; Apply
// is typically called from a watcher while Frame runs on the render loop.
// Everything it returns is either a copy or a value that later rebuilds
// replace instead of modifying.
type Pipeline struct {
	mu  sync.Mutex
	log *zap.Logger

	cfg   config.Config
	built bool

	shapes   *primitive.Set
	baguette *mesh.Buffer
	loaf     *mesh.Buffer
	terrain  *terrain.Generator

	baguettes []math.Mat4
	loaves    []math.Mat4

	bread    *image.RGBA
	mipmaps  []*image.RGBA
	textures map[string]*image.RGBA

	graph  scene.Graph
	list   scene.RenderList
	lights *lighting.Buffer
	orbit  *camera.OrbitCamera

	selected int
}

// New creates an empty pipeline.
func New() *Pipeline {
	return &Pipeline{
		log:      logger.Named("viewer"),
		shapes:   primitive.NewSet(),
		terrain:  terrain.NewGenerator(),
		textures: make(map[string]*image.RGBA),
		lights:   lighting.NewBuffer(),
		orbit:    camera.NewOrbitCamera(),
		selected: -1,
	}
}

// Build runs every generator for cfg.
func (p *Pipeline) Build(cfg *config.Config) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.built = false
	_, err := p.apply(cfg)
	return err
}

// Changes reports which parts of the pipeline an Apply rebuilt.
type Changes struct {
	Shapes  bool
	Terrain bool
	Organic bool
	Scatter bool
	Texture bool
	Scene   bool
}

// Any reports whether anything was rebuilt.
func (c Changes) Any() bool {
	return c.Shapes || c.Terrain || c.Organic || c.Scatter || c.Texture || c.Scene
}

// Apply regenerates only what differs between cfg and the last applied
// configuration. On error the previous content stays in place for the
// failing part.
func (p *Pipeline) Apply(cfg *config.Config) (Changes, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.apply(cfg)
}

func (p *Pipeline) apply(cfg *config.Config) (Changes, error) {
	old := p.cfg
	first := !p.built
	var ch Changes

	if first {
		p.shapes.Generate(cfg.Shapes.Param1, cfg.Shapes.Param2)
		ch.Shapes = true
	} else {
		ch.Shapes = p.shapes.Update(cfg.Shapes.Param1, cfg.Shapes.Param2)
	}

	if first || cfg.Terrain != old.Terrain {
		ch.Terrain = true
		if cfg.Terrain.Enabled {
			p.terrain.Generate(cfg.Terrain.Params())
		} else {
			p.terrain = terrain.NewGenerator()
		}
	}

	if first || cfg.Organic != old.Organic {
		ch.Organic = true
		p.buildOrganic(cfg.Organic)
	}

	// instances sit on the terrain, so a new height field moves them too
	if first || ch.Terrain || cfg.Scatter != old.Scatter {
		ch.Scatter = true
		p.scatter(cfg)
	}

	if first || cfg.Texture != old.Texture {
		ch.Texture = true
		p.bread = texture.Bread(cfg.Texture.Size, cfg.Texture.Seed)
		p.mipmaps = texture.Mipmaps(p.bread)
	}

	var sceneErr error
	if first || ch.Terrain || cfg.Scene != old.Scene || cfg.Render != old.Render {
		ch.Scene = true
		sceneErr = p.loadScene(cfg)
	}

	p.cfg = *cfg
	p.built = true

	if ch.Any() {
		p.log.Info("pipeline updated",
			zap.Bool("shapes", ch.Shapes),
			zap.Bool("terrain", ch.Terrain),
			zap.Bool("organic", ch.Organic),
			zap.Bool("scatter", ch.Scatter),
			zap.Bool("texture", ch.Texture),
			zap.Bool("scene", ch.Scene),
			zap.Int("terrain_vertices", p.terrain.Mesh().VertexCount()),
			zap.Int("shapes", len(p.list.Shapes)),
			zap.Int("lights", p.lights.Count))
	}
	return ch, sceneErr
}

func (p *Pipeline) buildOrganic(c config.OrganicConfig) {
	// buffers handed out by MeshFor are never modified, so smooth before
	// publishing
	baguette := organic.GenerateBaguette(c.BaguetteSegments, c.BaguetteSlices)
	loaf := organic.GenerateLoaf(c.LoafSegments, c.LoafSlices)
	if c.SmoothNormals {
		mesh.SmoothNormals(baguette)
		mesh.SmoothNormals(loaf)
	}
	p.baguette, p.loaf = baguette, loaf
	p.log.Debug("organic meshes generated",
		zap.Int("baguette_vertices", p.baguette.VertexCount()),
		zap.Int("loaf_vertices", p.loaf.VertexCount()))
}

// ground offsets the terrain height field by the terrain's world Y.
type ground struct {
	field   *terrain.Heightfield
	offsetY float32
}

func (g ground) HeightAt(x, z float32) float32 {
	return g.field.HeightAt(x, z) + g.offsetY
}

func populationParams(base organic.ScatterParams, c config.PopulationConfig, g organic.HeightSampler) organic.ScatterParams {
	base.Count = c.Count
	base.Radius = c.Radius
	base.MinScale = c.MinScale
	base.MaxScale = c.MaxScale
	base.MaxTilt = c.MaxTilt
	base.MinY = c.MinY
	base.MaxY = c.MaxY
	base.Lift = c.Lift
	base.Ground = nil
	if c.OnGround {
		base.Ground = g
	}
	return base
}

func (p *Pipeline) scatter(cfg *config.Config) {
	var g organic.HeightSampler
	if f := p.terrain.Heightfield(); f != nil {
		g = ground{field: f, offsetY: cfg.Terrain.OffsetY}
	}

	// one generator for both populations keeps a single seed reproducible
	rng := organic.NewRand(cfg.Scatter.Seed)
	p.baguettes = organic.Scatter(rng, populationParams(organic.DefaultBaguetteScatter(), cfg.Scatter.Baguettes, g))
	p.loaves = organic.Scatter(rng, populationParams(organic.DefaultLoafScatter(), cfg.Scatter.Loaves, g))
}

func (p *Pipeline) loadScene(cfg *config.Config) error {
	graph := DefaultGraph(cfg.Terrain.Enabled, cfg.Terrain.OffsetY)
	if cfg.Scene.Path != "" {
		g, err := scenefile.Load(cfg.Scene.Path)
		if err != nil {
			return fmt.Errorf("loading scene: %w", err)
		}
		graph = g
	}

	p.graph = graph
	p.list = graph.Resolve()
	p.selected = -1
	active := p.list.ActiveLights()
	if n := cfg.Render.MaxLights; n > 0 && n < len(active) {
		active = active[:n]
	}
	p.lights.SetLights(active)
	if dropped := len(p.list.Lights) - p.lights.Count; dropped > 0 {
		p.log.Warn("scene has more lights than the renderer supports",
			zap.Int("lights", len(p.list.Lights)),
			zap.Int("dropped", dropped))
	}

	p.loadTextures(filepath.Dir(cfg.Scene.Path))

	if b, ok := p.bounds(); ok {
		p.orbit.FitToBounds(b, camera.FromScene(graph.Camera).HeightAngle)
	}
	return nil
}

// loadTextures reads material images relative to dir. Missing images are
// logged and the material falls back to the bread texture.
func (p *Pipeline) loadTextures(dir string) {
	clear(p.textures)
	for _, s := range p.list.Shapes {
		tm := s.Material.Texture
		if !tm.Used {
			continue
		}
		if _, ok := p.textures[tm.Filename]; ok {
			continue
		}
		path := tm.Filename
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		img, err := texture.Load(path)
		if err != nil {
			p.log.Warn("material texture unavailable", zap.String("file", tm.Filename), zap.Error(err))
			img = p.bread
		}
		p.textures[tm.Filename] = img
	}
}

// MeshFor returns the mesh drawn for a primitive type.
func (p *Pipeline) MeshFor(t primitive.Type) *mesh.Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.meshFor(t)
}

func (p *Pipeline) meshFor(t primitive.Type) *mesh.Buffer {
	switch t {
	case primitive.Baguette:
		return p.baguette
	case primitive.Loaf:
		return p.loaf
	case primitive.Mesh:
		return p.terrain.Mesh()
	default:
		return p.shapes.Buffer(t)
	}
}

// meshBounds returns the object-space box of a primitive.
func (p *Pipeline) meshBounds(t primitive.Type) mesh.Bounds {
	return p.meshFor(t).Bounds()
}

func (p *Pipeline) bounds() (mesh.Bounds, bool) {
	return p.list.Bounds(p.meshBounds)
}

// Heightfield returns the current terrain height field, or nil when terrain
// is disabled. A regenerate replaces it rather than modifying it.
func (p *Pipeline) Heightfield() *terrain.Heightfield {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.terrain.Heightfield()
}

// Instances returns the scattered baguette and loaf transforms.
func (p *Pipeline) Instances() (baguettes, loaves []math.Mat4) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.baguettes, p.loaves
}

// Bread returns the procedural texture and its mip chain.
func (p *Pipeline) Bread() (*image.RGBA, []*image.RGBA) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bread, p.mipmaps
}

// RenderList returns the resolved scene.
func (p *Pipeline) RenderList() scene.RenderList {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.list
}

// Orbit returns a copy of the camera used when the scene has none.
func (p *Pipeline) Orbit() camera.OrbitCamera {
	p.mu.Lock()
	defer p.mu.Unlock()
	return *p.orbit
}

// OrbitDrag rotates the orbit camera by a pointer drag in pixels.
func (p *Pipeline) OrbitDrag(dx, dy float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orbit.HandleDrag(dx, dy)
}

// OrbitZoom moves the orbit camera by a scroll delta.
func (p *Pipeline) OrbitZoom(delta float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orbit.HandleZoom(delta)
}

// Texture returns a material image by the name used in the scene.
func (p *Pipeline) Texture(name string) *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.textures[name]
}
