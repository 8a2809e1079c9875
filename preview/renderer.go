package preview

import (
	"log"
	"math"
	"sync"
)

// Camera constants matching the storefront preview: a 75° perspective
// camera with clipping planes wide enough for free zooming.
const (
	cameraFOV  = 75.0
	cameraNear = 0.01
	cameraFar  = 2000.0

	// framePadding backs the camera off beyond the exact fit distance
	framePadding = 1.5

	// autoRotateStep is the per-frame Y rotation in non-interactive mode
	autoRotateStep = 0.01
)

// Camera is a perspective camera looking at the origin
type Camera struct {
	FOV      float64 `json:"fov"`
	Aspect   float64 `json:"aspect"`
	Near     float64 `json:"near"`
	Far      float64 `json:"far"`
	Distance float64 `json:"distance"`
}

// fitDistance returns the camera distance that frames a model of the given
// largest dimension, plus padding.
func fitDistance(maxDimension float64) float64 {
	fov := cameraFOV * math.Pi / 180
	return math.Abs(maxDimension/2/math.Tan(fov/2)) * framePadding
}

// OrbitInput is one sample of orbit/pan/zoom interaction
type OrbitInput struct {
	DeltaX float64 `json:"deltaX"`
	DeltaY float64 `json:"deltaY"`
	Zoom   float64 `json:"zoom"`
}

// OrbitState tracks the interactive camera position around the model
type OrbitState struct {
	Azimuth float64 `json:"azimuth"`
	Polar   float64 `json:"polar"`
	Zoom    float64 `json:"zoom"`
}

const orbitSpeed = 0.8

// apply folds one input sample into the orbit state. The polar angle is
// capped at the horizon so the camera never goes under the model.
func (o *OrbitState) apply(input OrbitInput) {
	o.Azimuth += input.DeltaX * orbitSpeed
	o.Polar += input.DeltaY * orbitSpeed
	if o.Polar < 0 {
		o.Polar = 0
	}
	if o.Polar > math.Pi/2 {
		o.Polar = math.Pi / 2
	}
	o.Zoom += input.Zoom * orbitSpeed
}

// RendererState is a read-only snapshot of a mounted renderer
type RendererState struct {
	Loaded       bool       `json:"loaded"`
	LoadError    string     `json:"loadError,omitempty"`
	MeshCount    int        `json:"meshCount"`
	GarmentColor string     `json:"garmentColor"`
	Interactive  bool       `json:"interactive"`
	RotationY    float64    `json:"rotationY"`
	Orbit        OrbitState `json:"orbit"`
	Camera       Camera     `json:"camera"`
	Frames       int64      `json:"frames"`
}

// Renderer owns a scene, a camera and the graphics resources of one
// mounted preview. Resources are claimed on construction and must be
// released exactly once through Close, on every teardown path; a new
// renderer for the same surface may only be created after that.
type Renderer struct {
	mu sync.Mutex

	width, height int
	interactive   bool
	garmentColor  string

	scene  *Scene
	camera Camera

	rotationY float64
	orbit     OrbitState
	lastInput *OrbitInput
	frames    int64

	loaded    bool
	loadError string

	// generation invalidates in-flight asset loads: a load that finishes
	// after Close, or after a newer Load, must not touch renderer state.
	generation int
	closed     bool
	done       chan struct{}
}

// NewRenderer constructs the scene, camera and renderer for a viewport of
// the given size and applies the garment color to anything loaded later.
func NewRenderer(width, height int, garmentColor string, interactive bool) *Renderer {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	return &Renderer{
		width:        width,
		height:       height,
		interactive:  interactive,
		garmentColor: garmentColor,
		scene:        NewScene(),
		camera: Camera{
			FOV:      cameraFOV,
			Aspect:   aspect,
			Near:     cameraNear,
			Far:      cameraFar,
			Distance: 5,
		},
		done: make(chan struct{}),
	}
}

// Load starts loading the garment asset asynchronously. On success the
// model is recentered at the origin, the camera framed to its largest
// dimension and the garment color applied. On failure the error is logged
// and the renderer stays mounted with an empty scene.
func (r *Renderer) Load(path string) {
	r.mu.Lock()
	generation := r.generation
	r.mu.Unlock()

	go func() {
		meshes, err := LoadAsset(path)
		r.finishLoad(generation, meshes, err)
	}()
}

// finishLoad applies a completed load, unless the renderer was closed or a
// newer load superseded this one; late arrivals are disposed and dropped.
func (r *Renderer) finishLoad(generation int, meshes []*Mesh, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.generation != generation {
		for _, mesh := range meshes {
			mesh.Geometry.Dispose()
			mesh.Material.Dispose()
		}
		log.Printf("⚠️  Preview: Discarding stale asset load (generation %d)", generation)
		return
	}

	if err != nil {
		r.loadError = err.Error()
		log.Printf("❌ Preview: Error loading 3D model: %v", err)
		return
	}

	for _, mesh := range meshes {
		r.scene.Add(mesh)
	}

	// Recenter the model at the origin and frame the camera
	if box, ok := r.scene.BoundingBox(); ok {
		center := box.Center()
		for _, mesh := range r.scene.Meshes() {
			mesh.Position = Vector3{X: -center.X, Y: -center.Y, Z: -center.Z}
		}
		r.camera.Distance = fitDistance(box.MaxDimension())
	}

	r.tintLocked(r.garmentColor)
	r.loaded = true
	log.Printf("✅ Preview: Model loaded (%d meshes), camera distance %.2f", len(meshes), r.camera.Distance)
}

// tintLocked applies the color to every paintable (standard) material
func (r *Renderer) tintLocked(color string) {
	for _, mesh := range r.scene.Meshes() {
		if mesh.Material != nil && mesh.Material.Standard {
			mesh.Material.Color = color
		}
	}
}

// SetColor re-tints the loaded model to a new garment color
func (r *Renderer) SetColor(color string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.garmentColor = color
	r.tintLocked(color)
}

// SubmitInput records the latest orbit/pan/zoom sample. Only the most
// recent sample is consumed per frame.
func (r *Renderer) SubmitInput(input OrbitInput) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastInput = &input
}

// Step advances one animation frame: interactive mode folds the last input
// sample into the orbit state, otherwise the model auto-rotates by a fixed
// step.
func (r *Renderer) Step() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.frames++

	if r.interactive {
		if r.lastInput != nil {
			r.orbit.apply(*r.lastInput)
			r.lastInput = nil
		}
		return
	}
	r.rotationY += autoRotateStep
}

// State returns a snapshot of the renderer
func (r *Renderer) State() RendererState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return RendererState{
		Loaded:       r.loaded,
		LoadError:    r.loadError,
		MeshCount:    len(r.scene.Meshes()),
		GarmentColor: r.garmentColor,
		Interactive:  r.interactive,
		RotationY:    r.rotationY,
		Orbit:        r.orbit,
		Camera:       r.camera,
		Frames:       r.frames,
	}
}

// Closed reports whether the renderer has been torn down
func (r *Renderer) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Close releases the renderer and disposes every geometry and material
// held by scene objects. It runs unconditionally on every teardown path
// and is safe to call more than once; in-flight loads finishing afterwards
// are discarded by the generation check.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.generation++
	r.scene.DisposeAll()
	close(r.done)
	log.Printf("✅ Preview: Renderer disposed")
}
