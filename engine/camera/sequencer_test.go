package camera

import (
	"testing"

	"github.com/xRyann2255/ICHack26-sub001/engine/ease"
)

// sequencerStep is exactly representable in binary so the simulated frame
// times in these tests accumulate without rounding drift.
const sequencerStep = float32(0.0625)

func testKeyframes() []Keyframe {
	return []Keyframe{
		{Position: [3]float32{10, 0, 0}, LookAt: [3]float32{10, 0, -100}, Duration: 1, Curve: ease.CurveLinear},
		{Position: [3]float32{10, 20, 0}, LookAt: [3]float32{10, 20, -100}, Duration: 1, Curve: ease.CurveLinear},
		{Position: [3]float32{0, 20, 0}, LookAt: [3]float32{0, 20, -100}, Duration: 1, Curve: ease.CurveLinear},
	}
}

func driveSequencer(s Sequencer, from, to int) {
	for i := from; i <= to; i++ {
		s.Advance(float32(i) * sequencerStep)
	}
}

func TestSequencerRunsAllKeyframes(t *testing.T) {
	calls := 0
	s := NewSequencer(WithSequenceCompletionCallback(func() {
		calls++
	}))
	if err := s.SetKeyframes(testKeyframes(), false); err != nil {
		t.Fatalf("Expected no error from SetKeyframes, got %v", err)
	}

	if s.Cursor() != 0 {
		t.Errorf("Expected cursor 0 before advancing, got %d", s.Cursor())
	}

	// One-second segments at 16 steps per second: the first segment ends at
	// step 16, the next is anchored at step 17 and ends at step 33, and so on.
	driveSequencer(s, 0, 16)
	if s.Cursor() != 1 {
		t.Errorf("Expected cursor 1 after first segment, got %d", s.Cursor())
	}
	driveSequencer(s, 17, 33)
	if s.Cursor() != 2 {
		t.Errorf("Expected cursor 2 after second segment, got %d", s.Cursor())
	}
	if calls != 0 {
		t.Errorf("Expected no sequence completion mid-run, got %d calls", calls)
	}
	driveSequencer(s, 34, 52)

	if !s.Complete() {
		t.Error("Expected sequence to be complete")
	}
	if calls != 1 {
		t.Errorf("Expected sequence completion callback once, got %d calls", calls)
	}

	final := s.Pose()
	want := Pose{Position: [3]float32{0, 20, 0}, LookAt: [3]float32{0, 20, -100}}
	if !posesClose(final, want, 1e-4) {
		t.Errorf("Expected final pose %+v, got %+v", want, final)
	}

	// Advancing a completed sequence must not restart it or re-fire the
	// callback.
	driveSequencer(s, 53, 80)
	if calls != 1 {
		t.Errorf("Expected no further callbacks, got %d calls", calls)
	}
	if !posesClose(s.Pose(), want, 1e-4) {
		t.Errorf("Expected pose held at final keyframe, got %+v", s.Pose())
	}
}

func TestSequencerLoopWrapsForever(t *testing.T) {
	calls := 0
	s := NewSequencer(WithSequenceCompletionCallback(func() {
		calls++
	}))
	if err := s.SetKeyframes(testKeyframes(), true); err != nil {
		t.Fatalf("Expected no error from SetKeyframes, got %v", err)
	}

	// 120 steps is 7.5 simulated seconds, well past the 3 seconds the
	// sequence takes without looping, so it must have wrapped at least twice.
	driveSequencer(s, 0, 120)

	if s.Complete() {
		t.Error("Expected looping sequence to never complete")
	}
	if calls != 0 {
		t.Errorf("Expected no completion callback for looping sequence, got %d calls", calls)
	}
	if s.Cursor() != 1 {
		t.Errorf("Expected cursor 1 after wrapping, got %d", s.Cursor())
	}
}

func TestSequencerRejectsInvalidSequences(t *testing.T) {
	s := NewSequencer()
	if err := s.SetKeyframes(nil, false); err == nil {
		t.Error("Expected error for empty sequence, got nil")
	}
	if err := s.SetKeyframes([]Keyframe{{Duration: 0}}, false); err == nil {
		t.Error("Expected error for zero duration keyframe, got nil")
	}
	if err := s.SetKeyframes([]Keyframe{{Duration: 1}, {Duration: -2}}, false); err == nil {
		t.Error("Expected error for negative duration keyframe, got nil")
	}
}

func TestSequencerResetMidFlight(t *testing.T) {
	s := NewSequencer()
	if err := s.SetKeyframes(testKeyframes(), false); err != nil {
		t.Fatalf("Expected no error from SetKeyframes, got %v", err)
	}
	s.Advance(0)
	s.Advance(0.5)

	replacement := []Keyframe{
		{Position: [3]float32{-5, 0, 0}, Duration: 2, Curve: ease.CurveLinear},
	}
	if err := s.SetKeyframes(replacement, false); err != nil {
		t.Fatalf("Expected no error from SetKeyframes, got %v", err)
	}
	if s.Cursor() != 0 {
		t.Errorf("Expected cursor reset to 0, got %d", s.Cursor())
	}
	if s.Complete() {
		t.Error("Expected terminal state cleared after reset")
	}

	s.Advance(1)
	s.Advance(3)
	if !s.Complete() {
		t.Error("Expected replacement sequence to complete")
	}
	want := Pose{Position: [3]float32{-5, 0, 0}}
	if !posesClose(s.Pose(), want, 1e-4) {
		t.Errorf("Expected final pose %+v, got %+v", want, s.Pose())
	}
}
