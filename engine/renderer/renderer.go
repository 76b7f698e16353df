package renderer

import (
	"sync"

	"github.com/xRyann2255/ICHack26-sub001/common"
	"github.com/xRyann2255/ICHack26-sub001/engine/window"
)

// RendererBackendType identifies the rendering backend implementation.
type RendererBackendType int

const (
	// BackendTypeWGPU is the WebGPU backend (wgpu-native via cogentcore/webgpu).
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls frame pacing for the renderer.
type PresentMode int

const (
	// PresentModeUncapped presents frames as fast as possible (no vsync).
	PresentModeUncapped PresentMode = iota

	// PresentModeVSync synchronizes presentation with the display refresh rate.
	PresentModeVSync
)

// FrameState carries the per-frame inputs the flyover pass needs: the camera's
// combined matrix and position plus the resolved environment lighting.
type FrameState struct {
	// ViewProjection is the camera's combined view-projection matrix,
	// column-major.
	ViewProjection [16]float32

	// CameraPosition is the camera's world-space position, used for the
	// distance fog falloff.
	CameraPosition [3]float32

	// SunDirection is the key light's travel direction.
	SunDirection [3]float32

	// SunColor is the key light color.
	SunColor [3]float32

	// SunIntensity is the key light intensity multiplier.
	SunIntensity float32

	// Ambient is the flat ambient light color.
	Ambient [3]float32
}

// renderer is the implementation of the Renderer interface. It delegates GPU
// work to a backend and holds the environment-driven state (clear color, fog,
// overlay opacity) that persists across frames.
type renderer struct {
	mu *sync.Mutex

	backend rendererBackend

	fogColor   [3]float32
	fogNear    float32
	fogFar     float32
	fogEnabled bool

	overlayOpacity float32

	// Builder state applied during construction.
	backendType          RendererBackendType
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
}

// Renderer draws the flyover scene: a ground plane carrying the heatmap
// overlay texture, lit by the environment's sun and ambient terms, faded by
// distance fog, under a sky rendered as the clear color. The camera rig and
// environment store feed it per-frame state; it owns no scene logic of its
// own.
type Renderer interface {
	// Resize reconfigures the surface and depth buffer for a new window size.
	//
	// Parameters:
	//   - width: new surface width in pixels
	//   - height: new surface height in pixels
	Resize(width, height int)

	// SetPresentMode switches frame pacing between vsync and uncapped.
	//
	// Parameters:
	//   - mode: the present mode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the sky color the surface is cleared to each frame.
	//
	// Parameters:
	//   - r, g, b: sky color components
	SetClearColor(r, g, b float32)

	// SetFog sets the distance fog parameters. When enabled is false the
	// remaining parameters are ignored and fragments keep their lit color.
	//
	// Parameters:
	//   - color: the color distant fragments fade toward
	//   - near: distance at which fog starts, in scene units
	//   - far: distance at which fog fully occludes, in scene units
	//   - enabled: whether fog is applied at all
	SetFog(color [3]float32, near, far float32, enabled bool)

	// SetOverlayTexture uploads the heatmap overlay texture mapped onto the
	// ground plane. May be called again to swap the overlay.
	//
	// Parameters:
	//   - stagingData: RGBA pixels with dimensions
	//
	// Returns:
	//   - error: an error if texture creation or upload fails
	SetOverlayTexture(stagingData common.TextureStagingData) error

	// SetOverlayOpacity sets the overlay layer opacity in [0, 1]; 0 hides the
	// layer entirely.
	//
	// Parameters:
	//   - opacity: the layer opacity
	SetOverlayOpacity(opacity float32)

	// RenderFrame records and submits one frame for the given state. Present
	// must be called afterwards to flip the surface.
	//
	// Parameters:
	//   - state: the per-frame camera and lighting inputs
	//
	// Returns:
	//   - error: an error if the surface texture could not be acquired
	RenderFrame(state FrameState) error

	// Present flips the rendered frame to the screen and releases the
	// per-frame surface references.
	Present()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer over the given window's surface.
//
// Parameters:
//   - backendType: the rendering backend to use (e.g., WGPU)
//   - win: the window providing the surface descriptor and initial size
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:             &sync.Mutex{},
		backendType:    backendType,
		overlayOpacity: 1,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(win.Width(), win.Height())
	return r
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) SetClearColor(red, green, blue float32) {
	r.backend.SetClearColor(red, green, blue)
}

func (r *renderer) SetFog(color [3]float32, near, far float32, enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fogColor = color
	r.fogNear = near
	r.fogFar = far
	r.fogEnabled = enabled
}

func (r *renderer) SetOverlayTexture(stagingData common.TextureStagingData) error {
	return r.backend.SetOverlayTexture(stagingData)
}

func (r *renderer) SetOverlayOpacity(opacity float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overlayOpacity = common.Clamp(opacity, 0, 1)
}

func (r *renderer) RenderFrame(state FrameState) error {
	r.mu.Lock()
	uniforms := frameUniforms{
		ViewProjection: state.ViewProjection,
		FogColor:       [4]float32{r.fogColor[0], r.fogColor[1], r.fogColor[2], 0},
		FogParams:      [4]float32{r.fogNear, r.fogFar, 0, 0},
		SunDirection:   [4]float32{state.SunDirection[0], state.SunDirection[1], state.SunDirection[2], state.SunIntensity},
		SunColor:       [4]float32{state.SunColor[0], state.SunColor[1], state.SunColor[2], 1},
		Ambient:        [4]float32{state.Ambient[0], state.Ambient[1], state.Ambient[2], 1},
		CameraPosition: [4]float32{state.CameraPosition[0], state.CameraPosition[1], state.CameraPosition[2], r.overlayOpacity},
	}
	if r.fogEnabled {
		uniforms.FogColor[3] = 1
	}
	r.mu.Unlock()

	return r.backend.RenderFrame(uniforms)
}

func (r *renderer) Present() {
	r.backend.Present()
}
