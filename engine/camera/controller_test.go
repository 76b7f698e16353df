package camera

import (
	"math"
	"testing"
)

func TestDeriveLookAtProjectsForward(t *testing.T) {
	got := DeriveLookAt([3]float32{10, 20, 30}, [3]float32{0, 0, -1})
	if got != [3]float32{10, 20, -70} {
		t.Errorf("Expected {10,20,-70}, got %v", got)
	}
}

func TestDeriveLookAtNormalizesForward(t *testing.T) {
	// A non-unit forward must not stretch the projection distance.
	got := DeriveLookAt([3]float32{0, 0, 0}, [3]float32{3, 0, 4})
	want := [3]float32{60, 0, 80}
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-4 {
			t.Errorf("Expected %v, got %v", want, got)
			break
		}
	}
	dist := math.Sqrt(float64(got[0]*got[0] + got[1]*got[1] + got[2]*got[2]))
	if math.Abs(dist-100) > 1e-3 {
		t.Errorf("Expected derived point 100 units out, got %f", dist)
	}
}

func TestDeriveLookAtDegenerateForward(t *testing.T) {
	// A zero forward direction has nothing to project along; the position
	// itself comes back rather than a NaN-laden point.
	pos := [3]float32{5, 6, 7}
	if got := DeriveLookAt(pos, [3]float32{}); got != pos {
		t.Errorf("Expected position %v for zero forward, got %v", pos, got)
	}
}
