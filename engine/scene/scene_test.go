package scene

import (
	"math"
	"testing"

	"github.com/xRyann2255/ICHack26-sub001/common"
	"github.com/xRyann2255/ICHack26-sub001/engine/camera"
	"github.com/xRyann2255/ICHack26-sub001/engine/environment"
	"github.com/xRyann2255/ICHack26-sub001/engine/heatmap"
	"github.com/xRyann2255/ICHack26-sub001/engine/light"
	"github.com/xRyann2255/ICHack26-sub001/engine/renderer"
)

// stubRenderer records calls so scene behavior can be asserted without a GPU.
type stubRenderer struct {
	clearColor     [3]float32
	fogColor       [3]float32
	fogNear        float32
	fogFar         float32
	fogEnabled     bool
	overlayOpacity float32
	overlayTexture common.TextureStagingData
	overlaySet     bool
	frames         int
	lastState      renderer.FrameState
}

var _ renderer.Renderer = &stubRenderer{}

func (s *stubRenderer) Resize(width, height int)             {}
func (s *stubRenderer) SetPresentMode(mode renderer.PresentMode) {}

func (s *stubRenderer) SetClearColor(r, g, b float32) {
	s.clearColor = [3]float32{r, g, b}
}

func (s *stubRenderer) SetFog(color [3]float32, near, far float32, enabled bool) {
	s.fogColor = color
	s.fogNear = near
	s.fogFar = far
	s.fogEnabled = enabled
}

func (s *stubRenderer) SetOverlayTexture(stagingData common.TextureStagingData) error {
	s.overlayTexture = stagingData
	s.overlaySet = true
	return nil
}

func (s *stubRenderer) SetOverlayOpacity(opacity float32) {
	s.overlayOpacity = opacity
}

func (s *stubRenderer) RenderFrame(state renderer.FrameState) error {
	s.frames++
	s.lastState = state
	return nil
}

func (s *stubRenderer) Present() {}

func newTestScene(r renderer.Renderer) Scene {
	ctrl := camera.NewTransitionController(camera.WithStartPose(camera.Pose{
		Position: [3]float32{0, 120, 240},
		LookAt:   [3]float32{0, 0, 0},
	}))
	cam := camera.NewCamera(camera.WithController(ctrl))
	return NewScene("test", cam, r)
}

func TestApplyEnvironmentUpdatesRendererAndSun(t *testing.T) {
	stub := &stubRenderer{}
	s := newTestScene(stub)

	settings := environment.Resolve(environment.MoodNight, 1)
	s.ApplyEnvironment(settings)

	if stub.clearColor != settings.Background {
		t.Errorf("Expected clear color %v, got %v", settings.Background, stub.clearColor)
	}
	if stub.fogColor != settings.FogColor || !stub.fogEnabled {
		t.Errorf("Expected fog %v enabled, got %v enabled=%t", settings.FogColor, stub.fogColor, stub.fogEnabled)
	}
	if stub.fogNear != settings.FogNear || stub.fogFar != settings.FogFar {
		t.Errorf("Expected fog distances %f/%f, got %f/%f", settings.FogNear, settings.FogFar, stub.fogNear, stub.fogFar)
	}
	if s.AmbientColor() != settings.Ambient {
		t.Errorf("Expected ambient %v, got %v", settings.Ambient, s.AmbientColor())
	}

	sun := s.Sun()
	if sun == nil {
		t.Fatal("Expected a sun light after ApplyEnvironment")
	}
	if sun.Type() != light.LightTypeDirectional {
		t.Errorf("Expected directional sun, got %v", sun.Type())
	}
	if s.Environment() != settings {
		t.Errorf("Expected stored environment %+v, got %+v", settings, s.Environment())
	}
}

func TestSceneLightsIncludeSunFirst(t *testing.T) {
	stub := &stubRenderer{}
	s := newTestScene(stub)

	accent := light.NewLight(light.LightTypePoint)
	s.AddLight(accent)
	s.ApplyEnvironment(environment.Resolve(environment.MoodDay, 1))

	lights := s.Lights()
	if len(lights) != 2 {
		t.Fatalf("Expected 2 lights, got %d", len(lights))
	}
	if lights[0] != s.Sun() {
		t.Error("Expected sun first in the light list")
	}

	s.RemoveLight(accent)
	if len(s.Lights()) != 1 {
		t.Errorf("Expected 1 light after removal, got %d", len(s.Lights()))
	}
}

func TestSetZoomAppliesOverlayOpacity(t *testing.T) {
	stub := &stubRenderer{}
	s := newTestScene(stub)

	s.SetZoom(9)
	if math.Abs(float64(stub.overlayOpacity-0.9)) > 1e-5 {
		t.Errorf("Expected overlay opacity 0.9 at zoom 9, got %f", stub.overlayOpacity)
	}
	s.SetZoom(16)
	if stub.overlayOpacity != 0 {
		t.Errorf("Expected overlay hidden at zoom 16, got opacity %f", stub.overlayOpacity)
	}
	if s.Zoom() != 16 {
		t.Errorf("Expected stored zoom 16, got %f", s.Zoom())
	}
}

func TestSetHeatmapUploadsTexture(t *testing.T) {
	stub := &stubRenderer{}
	s := newTestScene(stub)

	samples := heatmap.NewGenerator(heatmap.WithGridSize(8), heatmap.WithSeed(2)).Generate()
	if err := s.SetHeatmap(samples, 8, 32); err != nil {
		t.Fatalf("Expected no error from SetHeatmap, got %v", err)
	}
	if !stub.overlaySet {
		t.Fatal("Expected overlay texture upload")
	}
	if stub.overlayTexture.Width != 32 || stub.overlayTexture.Height != 32 {
		t.Errorf("Expected 32x32 overlay, got %dx%d", stub.overlayTexture.Width, stub.overlayTexture.Height)
	}
	if len(s.HeatmapSamples()) != 64 {
		t.Errorf("Expected 64 stored samples, got %d", len(s.HeatmapSamples()))
	}

	if err := s.SetHeatmap(samples, 9, 32); err == nil {
		t.Error("Expected error for mismatched grid size, got nil")
	}
}

func TestRenderFrameCarriesCameraAndLighting(t *testing.T) {
	stub := &stubRenderer{}
	s := newTestScene(stub)
	s.ApplyEnvironment(environment.Resolve(environment.MoodSunset, 1))

	if err := s.RenderFrame(); err != nil {
		t.Fatalf("Expected no error from RenderFrame, got %v", err)
	}
	if stub.frames != 1 {
		t.Fatalf("Expected 1 rendered frame, got %d", stub.frames)
	}

	state := stub.lastState
	if state.CameraPosition != [3]float32{0, 120, 240} {
		t.Errorf("Expected camera position from controller, got %v", state.CameraPosition)
	}
	if state.SunIntensity != s.Sun().Intensity() {
		t.Errorf("Expected sun intensity %f, got %f", s.Sun().Intensity(), state.SunIntensity)
	}
	if state.Ambient != s.AmbientColor() {
		t.Errorf("Expected ambient %v, got %v", s.AmbientColor(), state.Ambient)
	}
	identity := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	if state.ViewProjection == identity {
		t.Error("Expected view-projection recomputed from the controller pose")
	}
}
