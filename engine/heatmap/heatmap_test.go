package heatmap

import (
	"image/color"
	"math"
	"testing"
)

func TestGenerateCountAndRange(t *testing.T) {
	g := NewGenerator(WithGridSize(40), WithSeed(7))
	samples := g.Generate()

	if len(samples) != 1600 {
		t.Fatalf("Expected 1600 samples for grid size 40, got %d", len(samples))
	}
	for i, s := range samples {
		if s.Intensity < 0 || s.Intensity > 1 {
			t.Fatalf("Expected intensity in [0, 1] at sample %d, got %f", i, s.Intensity)
		}
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	a := NewGenerator(WithGridSize(16), WithSeed(42), WithWorkers(1)).Generate()
	b := NewGenerator(WithGridSize(16), WithSeed(42), WithWorkers(4)).Generate()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical samples at index %d, got %+v and %+v", i, a[i], b[i])
		}
	}

	c := NewGenerator(WithGridSize(16), WithSeed(43)).Generate()
	same := true
	for i := range a {
		if a[i].Intensity != c[i].Intensity {
			same = false
			break
		}
	}
	if same {
		t.Error("Expected a different seed to produce different intensities")
	}
}

func TestGenerateCentralPeak(t *testing.T) {
	g := NewGenerator(WithGridSize(21), WithSeed(1))
	samples := g.Generate()

	center := samples[10*21+10]
	corner := samples[0]
	if center.Intensity <= corner.Intensity {
		t.Errorf("Expected central sample hotter than corner, got center %f corner %f", center.Intensity, corner.Intensity)
	}
}

func TestGenerateGridSpansSpread(t *testing.T) {
	g := NewGenerator(WithCenter(-0.1, 51.5), WithSpread(0.05), WithGridSize(11), WithSeed(1))
	samples := g.Generate()

	first := samples[0]
	last := samples[len(samples)-1]
	if math.Abs(first.Lon-(-0.15)) > 1e-9 || math.Abs(first.Lat-51.45) > 1e-9 {
		t.Errorf("Expected south-west corner at (-0.15, 51.45), got (%f, %f)", first.Lon, first.Lat)
	}
	if math.Abs(last.Lon-(-0.05)) > 1e-9 || math.Abs(last.Lat-51.55) > 1e-9 {
		t.Errorf("Expected north-east corner at (-0.05, 51.55), got (%f, %f)", last.Lon, last.Lat)
	}
}

func TestRampColorStops(t *testing.T) {
	if got := RampColor(0); got != (color.RGBA{R: 33, G: 102, B: 172, A: 0}) {
		t.Errorf("Expected transparent blue at 0, got %v", got)
	}
	if got := RampColor(1); got != (color.RGBA{R: 178, G: 24, B: 43, A: 255}) {
		t.Errorf("Expected deep red at 1, got %v", got)
	}
	if got := RampColor(2); got != RampColor(1) {
		t.Errorf("Expected clamp above 1, got %v", got)
	}
	if got := RampColor(0.2); got != (color.RGBA{R: 103, G: 169, B: 207, A: 255}) {
		t.Errorf("Expected exact stop color at 0.2, got %v", got)
	}

	// Between stops the channels sit between the neighbors.
	mid := RampColor(0.5)
	if mid.R < 209 || mid.R > 253 {
		t.Errorf("Expected red channel between stops at 0.5, got %d", mid.R)
	}
}

func TestStyleAtInterpolatesAndClamps(t *testing.T) {
	low := StyleAt(5)
	if low != (Style{Intensity: 1, Radius: 24, Opacity: 0.9}) {
		t.Errorf("Expected first breakpoint below range, got %+v", low)
	}
	high := StyleAt(20)
	if high != (Style{Intensity: 3, Radius: 60, Opacity: 0}) {
		t.Errorf("Expected last breakpoint above range, got %+v", high)
	}

	mid := StyleAt(11)
	if math.Abs(float64(mid.Intensity-2)) > 1e-5 {
		t.Errorf("Expected intensity 2 at zoom 11, got %f", mid.Intensity)
	}
	if math.Abs(float64(mid.Radius-32)) > 1e-5 {
		t.Errorf("Expected radius 32 at zoom 11, got %f", mid.Radius)
	}
	if math.Abs(float64(mid.Opacity-0.8)) > 1e-5 {
		t.Errorf("Expected opacity 0.8 at zoom 11, got %f", mid.Opacity)
	}
}

func TestLocalMeters(t *testing.T) {
	// Center projects to the origin.
	x, z := LocalMeters(Sample{Lon: -0.1, Lat: 51.5}, -0.1, 51.5)
	if x != 0 || z != 0 {
		t.Errorf("Expected center at origin, got (%f, %f)", x, z)
	}

	// East of center is positive x; north of center is negative z.
	x, _ = LocalMeters(Sample{Lon: -0.05, Lat: 51.5}, -0.1, 51.5)
	if x <= 0 {
		t.Errorf("Expected positive x east of center, got %f", x)
	}
	_, z = LocalMeters(Sample{Lon: -0.1, Lat: 51.55}, -0.1, 51.5)
	if z >= 0 {
		t.Errorf("Expected negative z north of center, got %f", z)
	}

	// 0.05 degrees of longitude is about 5.6 km of Mercator easting.
	if math.Abs(float64(x)-5565.97) > 10 {
		t.Errorf("Expected roughly 5566 m east, got %f", x)
	}
}

func TestBuildTexture(t *testing.T) {
	g := NewGenerator(WithGridSize(8), WithSeed(3))
	samples := g.Generate()

	tex, err := BuildTexture(samples, 8, 64)
	if err != nil {
		t.Fatalf("Expected no error from BuildTexture, got %v", err)
	}
	if tex.Width != 64 || tex.Height != 64 {
		t.Errorf("Expected 64x64 texture, got %dx%d", tex.Width, tex.Height)
	}
	if len(tex.Pixels) != 64*64*4 {
		t.Errorf("Expected %d pixel bytes, got %d", 64*64*4, len(tex.Pixels))
	}

	if _, err := BuildTexture(samples, 9, 64); err == nil {
		t.Error("Expected error for mismatched grid size, got nil")
	}
}
