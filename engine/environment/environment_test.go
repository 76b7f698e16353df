package environment

import (
	"math"
	"testing"

	"github.com/xRyann2255/ICHack26-sub001/engine/ease"
	"github.com/xRyann2255/ICHack26-sub001/engine/light"
)

func TestResolveScalesFogByDensity(t *testing.T) {
	s := Resolve(MoodDay, 0.5)
	if !s.FogEnabled {
		t.Error("Expected fog enabled for positive density")
	}
	if s.FogNear != 1000 {
		t.Errorf("Expected fog near 1000, got %f", s.FogNear)
	}
	if s.FogFar != 4000 {
		t.Errorf("Expected fog far 4000, got %f", s.FogFar)
	}

	unit := Resolve(MoodDay, 1)
	if unit.FogNear != 500 || unit.FogFar != 2000 {
		t.Errorf("Expected unit density to keep preset distances, got near %f far %f", unit.FogNear, unit.FogFar)
	}
}

func TestResolveDisablesFogAtZeroDensity(t *testing.T) {
	for _, density := range []float32{0, -1} {
		s := Resolve(MoodNight, density)
		if s.FogEnabled {
			t.Errorf("Expected fog disabled for density %f", density)
		}
	}
}

func TestResolveOverridesTakePrecedence(t *testing.T) {
	s := Resolve(MoodOvercast, 1,
		WithBackgroundOverride(0.1, 0.2, 0.3),
		WithFogColorOverride(0.4, 0.5, 0.6),
	)
	if s.Background != [3]float32{0.1, 0.2, 0.3} {
		t.Errorf("Expected background override, got %v", s.Background)
	}
	if s.FogColor != [3]float32{0.4, 0.5, 0.6} {
		t.Errorf("Expected fog color override, got %v", s.FogColor)
	}
	// Overrides must not disturb the rest of the preset.
	if s.FogNear != 250 {
		t.Errorf("Expected preset fog near 250, got %f", s.FogNear)
	}
}

func TestParseMoodRoundTrip(t *testing.T) {
	for _, mood := range Moods() {
		parsed, err := ParseMood(mood.String())
		if err != nil {
			t.Errorf("Expected no error parsing %q, got %v", mood.String(), err)
		}
		if parsed != mood {
			t.Errorf("Expected %v to round-trip, got %v", mood, parsed)
		}
	}
	if _, err := ParseMood("twilight"); err == nil {
		t.Error("Expected error for unknown mood, got nil")
	}
}

func TestSunMatchesSettings(t *testing.T) {
	s := Resolve(MoodSunset, 1)
	sun := Sun(s)
	if sun.Type() != light.LightTypeDirectional {
		t.Errorf("Expected directional sun, got %v", sun.Type())
	}
	if sun.Color() != s.SunColor {
		t.Errorf("Expected sun color %v, got %v", s.SunColor, sun.Color())
	}
	if sun.Intensity() != s.SunIntensity {
		t.Errorf("Expected sun intensity %f, got %f", s.SunIntensity, sun.Intensity())
	}
	dir := sun.Direction()
	length := math.Sqrt(float64(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2]))
	if math.Abs(length-1.0) > 1e-5 {
		t.Errorf("Expected normalized sun direction, got length %f", length)
	}
}

func TestBlendCrossfades(t *testing.T) {
	from := Resolve(MoodDay, 1)
	to := Resolve(MoodNight, 1)
	b := NewBlend(from, to, 2, ease.CurveLinear)

	b.Advance(10)
	if b.Settings() != from {
		t.Errorf("Expected from settings at blend start, got %+v", b.Settings())
	}

	b.Advance(11)
	mid := b.Settings()
	wantBg := (from.Background[0] + to.Background[0]) / 2
	if math.Abs(float64(mid.Background[0]-wantBg)) > 1e-4 {
		t.Errorf("Expected midpoint background red %f, got %f", wantBg, mid.Background[0])
	}
	if b.Done() {
		t.Error("Expected blend unfinished at midpoint")
	}

	b.Advance(12)
	if !b.Done() {
		t.Error("Expected blend finished")
	}
	if b.Settings() != to {
		t.Errorf("Expected target settings at blend end, got %+v", b.Settings())
	}

	// Advancing past the end holds the target.
	b.Advance(20)
	if b.Settings() != to {
		t.Errorf("Expected settings held at target, got %+v", b.Settings())
	}
}

func TestBlendZeroDurationCompletesImmediately(t *testing.T) {
	from := Resolve(MoodDay, 1)
	to := Resolve(MoodDawn, 1)
	b := NewBlend(from, to, 0, ease.CurveLinear)
	if !b.Done() {
		t.Error("Expected zero-duration blend to be done immediately")
	}
	if b.Settings() != to {
		t.Errorf("Expected target settings, got %+v", b.Settings())
	}
}

func TestBlendFogDisabledTarget(t *testing.T) {
	from := Resolve(MoodDay, 1)
	to := Resolve(MoodDay, 0)
	b := NewBlend(from, to, 1, ease.CurveLinear)
	b.Advance(0)
	b.Advance(0.5)
	mid := b.Settings()
	if !mid.FogEnabled {
		t.Error("Expected fog still enabled mid-blend")
	}
	if mid.FogFar <= from.FogFar {
		t.Errorf("Expected fog receding mid-blend, got far %f", mid.FogFar)
	}
	b.Advance(1)
	if b.Settings().FogEnabled {
		t.Error("Expected fog disabled once blend completes")
	}
}
