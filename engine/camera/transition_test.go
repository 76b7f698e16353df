package camera

import (
	"math"
	"testing"

	"github.com/xRyann2255/ICHack26-sub001/engine/ease"
)

func posesClose(a, b Pose, epsilon float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(float64(a.Position[i]-b.Position[i])) > epsilon {
			return false
		}
		if math.Abs(float64(a.LookAt[i]-b.LookAt[i])) > epsilon {
			return false
		}
	}
	return true
}

func TestTransitionLinearProgress(t *testing.T) {
	tc := NewTransitionController(WithStartPose(Pose{
		Position: [3]float32{0, 0, 0},
		LookAt:   [3]float32{0, 0, -100},
	}))
	err := tc.SetTarget(Pose{
		Position: [3]float32{10, 0, 0},
		LookAt:   [3]float32{10, 0, -100},
	}, 2, ease.CurveLinear)
	if err != nil {
		t.Fatalf("Expected no error from SetTarget, got %v", err)
	}

	// First Advance anchors the start time; progress is 0.
	tc.Advance(5)
	if !posesClose(tc.Pose(), Pose{Position: [3]float32{0, 0, 0}, LookAt: [3]float32{0, 0, -100}}, 1e-5) {
		t.Errorf("Expected pose unchanged at progress 0, got %+v", tc.Pose())
	}

	tc.Advance(6)
	want := Pose{Position: [3]float32{5, 0, 0}, LookAt: [3]float32{5, 0, -100}}
	if !posesClose(tc.Pose(), want, 1e-4) {
		t.Errorf("Expected midpoint pose %+v, got %+v", want, tc.Pose())
	}

	tc.Advance(7)
	want = Pose{Position: [3]float32{10, 0, 0}, LookAt: [3]float32{10, 0, -100}}
	if !posesClose(tc.Pose(), want, 1e-4) {
		t.Errorf("Expected end pose %+v, got %+v", want, tc.Pose())
	}
	if tc.Active() {
		t.Error("Expected transition to be inactive after completion")
	}

	// Advancing past the end must not move the pose.
	tc.Advance(8)
	if !posesClose(tc.Pose(), want, 1e-4) {
		t.Errorf("Expected pose to stay at end pose, got %+v", tc.Pose())
	}
}

func TestTransitionCompletionCallbackFiresOnce(t *testing.T) {
	calls := 0
	tc := NewTransitionController(WithCompletionCallback(func() {
		calls++
	}))
	if err := tc.SetTarget(Pose{Position: [3]float32{1, 2, 3}}, 1, ease.CurveLinear); err != nil {
		t.Fatalf("Expected no error from SetTarget, got %v", err)
	}

	tc.Advance(0)
	tc.Advance(0.5)
	if calls != 0 {
		t.Errorf("Expected no completion callback mid-flight, got %d calls", calls)
	}
	tc.Advance(1)
	if calls != 1 {
		t.Errorf("Expected completion callback to fire once, got %d calls", calls)
	}
	tc.Advance(2)
	tc.Advance(3)
	if calls != 1 {
		t.Errorf("Expected no further callbacks after completion, got %d calls", calls)
	}
}

func TestTransitionInterruptRestartsFromCurrentPose(t *testing.T) {
	calls := 0
	tc := NewTransitionController(WithCompletionCallback(func() {
		calls++
	}))
	if err := tc.SetTarget(Pose{Position: [3]float32{10, 0, 0}}, 2, ease.CurveLinear); err != nil {
		t.Fatalf("Expected no error from SetTarget, got %v", err)
	}
	tc.Advance(0)
	tc.Advance(1)
	mid := tc.Pose()

	// Retarget mid-flight: no callback, and the new transition departs from
	// the live pose.
	if err := tc.SetTarget(Pose{Position: [3]float32{0, 20, 0}}, 1, ease.CurveLinear); err != nil {
		t.Fatalf("Expected no error from SetTarget, got %v", err)
	}
	if calls != 0 {
		t.Errorf("Expected no completion callback on interruption, got %d calls", calls)
	}
	tc.Advance(1)
	if !posesClose(tc.Pose(), mid, 1e-5) {
		t.Errorf("Expected interrupted transition to start from %+v, got %+v", mid, tc.Pose())
	}
	tc.Advance(2)
	want := Pose{Position: [3]float32{0, 20, 0}}
	if !posesClose(tc.Pose(), want, 1e-4) {
		t.Errorf("Expected pose %+v after retargeted transition, got %+v", want, tc.Pose())
	}
	if calls != 1 {
		t.Errorf("Expected one completion callback after retargeted transition, got %d", calls)
	}
}

func TestTransitionRejectsNonPositiveDuration(t *testing.T) {
	tc := NewTransitionController()
	if err := tc.SetTarget(Pose{}, 0, ease.CurveLinear); err == nil {
		t.Error("Expected error for zero duration, got nil")
	}
	if err := tc.SetTarget(Pose{}, -1, ease.CurveLinear); err == nil {
		t.Error("Expected error for negative duration, got nil")
	}
	if tc.Active() {
		t.Error("Expected controller to stay inactive after rejected target")
	}
}

func TestTransitionEasedEndpointsMatchLinear(t *testing.T) {
	for _, curve := range ease.Curves() {
		tc := NewTransitionController()
		if err := tc.SetTarget(Pose{Position: [3]float32{4, 4, 4}}, 1, curve); err != nil {
			t.Fatalf("Expected no error from SetTarget, got %v", err)
		}
		tc.Advance(0)
		if !posesClose(tc.Pose(), Pose{}, 1e-5) {
			t.Errorf("Curve %v: expected start pose at progress 0, got %+v", curve, tc.Pose())
		}
		tc.Advance(1)
		if !posesClose(tc.Pose(), Pose{Position: [3]float32{4, 4, 4}}, 1e-4) {
			t.Errorf("Curve %v: expected end pose at progress 1, got %+v", curve, tc.Pose())
		}
	}
}
