package ease

import "testing"

func TestCurveEndpoints(t *testing.T) {
	for _, c := range Curves() {
		if got := c.Apply(0); got != 0 {
			t.Errorf("Expected %s(0)=0, got %f", c, got)
		}
		if got := c.Apply(1); got != 1 {
			t.Errorf("Expected %s(1)=1, got %f", c, got)
		}
	}
}

func TestCurveClampsInput(t *testing.T) {
	for _, c := range Curves() {
		if got := c.Apply(-0.5); got != 0 {
			t.Errorf("Expected %s(-0.5)=0, got %f", c, got)
		}
		if got := c.Apply(1.5); got != 1 {
			t.Errorf("Expected %s(1.5)=1, got %f", c, got)
		}
	}
}

func TestCurveMonotonic(t *testing.T) {
	const steps = 100
	for _, c := range Curves() {
		prev := float32(0)
		for i := 1; i <= steps; i++ {
			t0 := float32(i) / steps
			v := c.Apply(t0)
			if v < prev {
				t.Errorf("Curve %s not monotonic: f(%f)=%f < previous %f", c, t0, v, prev)
			}
			prev = v
		}
	}
}

func TestLinearMidpoint(t *testing.T) {
	if got := CurveLinear.Apply(0.5); got != 0.5 {
		t.Errorf("Expected linear(0.5)=0.5, got %f", got)
	}
}

func TestEaseInOutSymmetry(t *testing.T) {
	// InOut curves pass through the midpoint.
	if got := CurveEaseInOut.Apply(0.5); got < 0.49 || got > 0.51 {
		t.Errorf("Expected easeInOut(0.5)~=0.5, got %f", got)
	}
	// EaseIn is below linear early on; EaseOut above.
	if CurveEaseIn.Apply(0.25) >= 0.25 {
		t.Errorf("Expected easeIn(0.25) < 0.25, got %f", CurveEaseIn.Apply(0.25))
	}
	if CurveEaseOut.Apply(0.25) <= 0.25 {
		t.Errorf("Expected easeOut(0.25) > 0.25, got %f", CurveEaseOut.Apply(0.25))
	}
}

func TestParseCurveRoundTrip(t *testing.T) {
	for _, c := range Curves() {
		parsed, err := ParseCurve(c.String())
		if err != nil {
			t.Fatalf("ParseCurve(%q) returned error: %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("Expected ParseCurve(%q)=%v, got %v", c.String(), c, parsed)
		}
	}
}

func TestParseCurveUnknown(t *testing.T) {
	if _, err := ParseCurve("bounce"); err == nil {
		t.Error("Expected error for unknown curve name, got nil")
	}
}
