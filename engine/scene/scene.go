package scene

import (
	"sync"

	"github.com/xRyann2255/ICHack26-sub001/engine/camera"
	"github.com/xRyann2255/ICHack26-sub001/engine/environment"
	"github.com/xRyann2255/ICHack26-sub001/engine/heatmap"
	"github.com/xRyann2255/ICHack26-sub001/engine/light"
	"github.com/xRyann2255/ICHack26-sub001/engine/renderer"
)

// Scene ties the flyover pieces together: the camera, the renderer, the
// resolved environment settings, the light list with the environment's sun,
// and the heatmap overlay. Scenes can be hot-swapped via the Active flag.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active for rendering.
	Active() bool

	// SetActive sets whether this scene is active for rendering.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Renderer returns the scene's renderer.
	Renderer() renderer.Renderer

	// SetRenderer replaces the scene's renderer.
	//
	// Parameters:
	//   - r: the new renderer
	SetRenderer(r renderer.Renderer)

	// AddLight adds a light source to the scene.
	//
	// Parameters:
	//   - l: the Light to add
	AddLight(l light.Light)

	// RemoveLight removes a light source from the scene by reference.
	//
	// Parameters:
	//   - l: the Light to remove
	RemoveLight(l light.Light)

	// Lights returns all lights currently registered in the scene, including
	// the environment's sun.
	//
	// Returns:
	//   - []light.Light: the scene's light list
	Lights() []light.Light

	// Sun returns the directional key light derived from the applied
	// environment, or nil before any environment has been applied.
	//
	// Returns:
	//   - light.Light: the sun light or nil
	Sun() light.Light

	// AmbientColor returns the scene's ambient light color.
	//
	// Returns:
	//   - [3]float32: the ambient RGB color
	AmbientColor() [3]float32

	// SetAmbientColor sets the scene's ambient light color.
	//
	// Parameters:
	//   - color: the ambient RGB color
	SetAmbientColor(color [3]float32)

	// ApplyEnvironment makes resolved environment settings current: the
	// renderer's clear color (sky) and fog are updated, the ambient color is
	// replaced, and the sun light is rebuilt from the settings.
	//
	// Parameters:
	//   - settings: the resolved environment settings
	ApplyEnvironment(settings environment.Settings)

	// Environment returns the most recently applied environment settings.
	//
	// Returns:
	//   - environment.Settings: the current settings (zero value before the first apply)
	Environment() environment.Settings

	// SetHeatmap rasterizes a sample grid into the overlay texture and uploads
	// it to the renderer.
	//
	// Parameters:
	//   - samples: a row-major gridSize * gridSize sample grid
	//   - gridSize: samples per grid edge
	//   - textureSize: overlay texture edge length in pixels
	//
	// Returns:
	//   - error: an error if rasterization or upload fails
	SetHeatmap(samples []heatmap.Sample, gridSize, textureSize int) error

	// HeatmapSamples returns the sample grid last applied via SetHeatmap.
	//
	// Returns:
	//   - []heatmap.Sample: the current sample grid, or nil
	HeatmapSamples() []heatmap.Sample

	// SetZoom sets the view zoom level, restyling the heatmap overlay via its
	// zoom breakpoints (intensity and radius are baked into the texture; the
	// opacity is forwarded to the renderer).
	//
	// Parameters:
	//   - zoom: the map zoom level
	SetZoom(zoom float32)

	// Zoom returns the current view zoom level.
	//
	// Returns:
	//   - float32: the zoom level
	Zoom() float32

	// RenderFrame recomputes the camera matrices and submits one frame with
	// the scene's current lighting state. Present must be called on the
	// renderer afterwards.
	//
	// Returns:
	//   - error: an error if frame submission fails
	RenderFrame() error
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	cam camera.Camera
	r   renderer.Renderer

	lights       []light.Light
	sun          light.Light
	ambientColor [3]float32

	env        environment.Settings
	envApplied bool

	zoom           float32
	heatmapSamples []heatmap.Sample
}

var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and renderer. Both are
// required and NewScene panics if either is nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}
	if r == nil {
		panic("scene: NewScene requires a non-nil Renderer")
	}

	s := &scene{
		mu:           &sync.RWMutex{},
		name:         name,
		active:       false,
		cam:          cam,
		r:            r,
		ambientColor: [3]float32{0.2, 0.2, 0.2},
		zoom:         11,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) SetRenderer(r renderer.Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = r
}

func (s *scene) AddLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights = append(s.lights, l)
}

func (s *scene) RemoveLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.lights {
		if existing == l {
			s.lights = append(s.lights[:i], s.lights[i+1:]...)
			return
		}
	}
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]light.Light, 0, len(s.lights)+1)
	if s.sun != nil {
		out = append(out, s.sun)
	}
	out = append(out, s.lights...)
	return out
}

func (s *scene) Sun() light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sun
}

func (s *scene) AmbientColor() [3]float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ambientColor
}

func (s *scene) SetAmbientColor(color [3]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambientColor = color
}

func (s *scene) ApplyEnvironment(settings environment.Settings) {
	s.mu.Lock()
	s.env = settings
	s.envApplied = true
	s.sun = environment.Sun(settings)
	s.ambientColor = settings.Ambient
	r := s.r
	s.mu.Unlock()

	r.SetClearColor(settings.Background[0], settings.Background[1], settings.Background[2])
	r.SetFog(settings.FogColor, settings.FogNear, settings.FogFar, settings.FogEnabled)
}

func (s *scene) Environment() environment.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.env
}

func (s *scene) SetHeatmap(samples []heatmap.Sample, gridSize, textureSize int) error {
	tex, err := heatmap.BuildTexture(samples, gridSize, textureSize)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.heatmapSamples = samples
	r := s.r
	s.mu.Unlock()

	return r.SetOverlayTexture(tex)
}

func (s *scene) HeatmapSamples() []heatmap.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.heatmapSamples
}

func (s *scene) SetZoom(zoom float32) {
	s.mu.Lock()
	s.zoom = zoom
	r := s.r
	s.mu.Unlock()

	r.SetOverlayOpacity(heatmap.StyleAt(zoom).Opacity)
}

func (s *scene) Zoom() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.zoom
}

func (s *scene) RenderFrame() error {
	s.mu.RLock()
	cam := s.cam
	r := s.r
	sun := s.sun
	ambient := s.ambientColor
	s.mu.RUnlock()

	cam.Update()

	state := renderer.FrameState{
		ViewProjection: cam.ViewProjectionMatrix(),
		Ambient:        ambient,
	}
	if ctrl := cam.Controller(); ctrl != nil {
		x, y, z := ctrl.Position()
		state.CameraPosition = [3]float32{x, y, z}
	}
	if sun != nil && sun.Enabled() {
		state.SunDirection = sun.Direction()
		state.SunColor = sun.Color()
		state.SunIntensity = sun.Intensity()
	}

	return r.RenderFrame(state)
}
