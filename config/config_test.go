package config

import (
	"path/filepath"
	"testing"

	"github.com/xRyann2255/ICHack26-sub001/engine/ease"
	"github.com/xRyann2255/ICHack26-sub001/engine/environment"
)

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "flyover.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Window.Title != "London Flyover" || cfg.Window.Width != 1600 || cfg.Window.Height != 900 {
		t.Errorf("Expected window 'London Flyover' 1600x900, got %q %dx%d",
			cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Tour.Loop {
		t.Error("Expected looping tour")
	}
	if len(cfg.Tour.Keyframes) != 3 {
		t.Fatalf("Expected 3 keyframes, got %d", len(cfg.Tour.Keyframes))
	}
	if cfg.Heatmap.GridSize != 48 || cfg.Heatmap.Seed != 7 {
		t.Errorf("Expected heatmap grid 48 seed 7, got %d seed %d", cfg.Heatmap.GridSize, cfg.Heatmap.Seed)
	}
	if cfg.Zoom != 12 {
		t.Errorf("Expected zoom 12, got %f", cfg.Zoom)
	}
}

func TestEnvironmentSettingsResolution(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "flyover.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	settings, err := cfg.Environment.Settings()
	if err != nil {
		t.Fatalf("Expected no error resolving environment, got %v", err)
	}

	// fogDensity 0.5 doubles the sunset preset distances.
	base := environment.Resolve(environment.MoodSunset, 1)
	if settings.FogNear != base.FogNear*2 || settings.FogFar != base.FogFar*2 {
		t.Errorf("Expected fog distances %f/%f, got %f/%f",
			base.FogNear*2, base.FogFar*2, settings.FogNear, settings.FogFar)
	}
	if settings.Background != [3]float32{0.9, 0.5, 0.3} {
		t.Errorf("Expected background override, got %v", settings.Background)
	}
}

func TestEnvironmentDefaultsToDayWithFog(t *testing.T) {
	ec := EnvironmentConfig{}
	settings, err := ec.Settings()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if settings != environment.Resolve(environment.MoodDay, 1) {
		t.Errorf("Expected day preset defaults, got %+v", settings)
	}
	if !settings.FogEnabled {
		t.Error("Expected fog enabled when density is omitted")
	}
}

func TestExplicitZeroFogDensityDisablesFog(t *testing.T) {
	zero := float32(0)
	ec := EnvironmentConfig{Mood: "night", FogDensity: &zero}
	settings, err := ec.Settings()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if settings.FogEnabled {
		t.Error("Expected fog disabled for explicit zero density")
	}
}

func TestCameraKeyframesConversion(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "flyover.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	frames, err := cfg.Tour.CameraKeyframes()
	if err != nil {
		t.Fatalf("Expected no error converting keyframes, got %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(frames))
	}
	if frames[0].Curve != ease.CurveEaseInOut {
		t.Errorf("Expected easeInOut on first frame, got %v", frames[0].Curve)
	}
	if frames[2].Curve != ease.CurveLinear {
		t.Errorf("Expected linear default on third frame, got %v", frames[2].Curve)
	}
	if frames[1].Duration != 3 {
		t.Errorf("Expected duration 3 on second frame, got %f", frames[1].Duration)
	}
	if frames[2].LookAt != [3]float32{0, 50, 0} {
		t.Errorf("Expected lookAt {0,50,0} on third frame, got %v", frames[2].LookAt)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "bad_duration.yaml")); err == nil {
		t.Error("Expected error for non-positive keyframe duration, got nil")
	}
	if _, err := Load(filepath.Join("testdata", "bad_mood.yaml")); err == nil {
		t.Error("Expected error for unknown mood, got nil")
	}
	if _, err := Load(filepath.Join("testdata", "missing.yaml")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestValidateRejectsEmptyTour(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for empty tour, got nil")
	}
}
