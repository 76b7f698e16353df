package camera

import (
	"fmt"
	"sync"

	"github.com/xRyann2255/ICHack26-sub001/engine/ease"
)

// Keyframe is a waypoint pose plus the duration and easing used to reach it.
// Keyframes are immutable once supplied to a Sequencer.
type Keyframe struct {
	// Position is the waypoint's world-space camera position.
	Position [3]float32

	// LookAt is the waypoint's world-space look-at point.
	LookAt [3]float32

	// Duration is the time in seconds to reach this waypoint from the
	// previous pose.
	Duration float32

	// Curve is the easing curve for this segment. The zero value is linear.
	Curve ease.Curve
}

// sequencerImpl is the single implementation of Sequencer. It owns exactly one
// TransitionController and drives it segment by segment; the cursor is the
// only mutable index over the keyframe sequence.
type sequencerImpl struct {
	mu *sync.Mutex

	transition TransitionController

	frames   []Keyframe
	loop     bool
	cursor   int
	complete bool

	onSequenceComplete func()
}

// Sequencer chains camera transitions end to end over an ordered keyframe
// sequence, optionally looping.
//
// The state machine is Idle → Transitioning(cursor=0) → Transitioning(1) → …
// → Complete for a non-looping sequence; a looping sequence wraps the cursor
// back to 0 forever and never reaches Complete. Supplying a new sequence at
// any time resets the cursor and clears the terminal state, abandoning any
// in-flight transition.
type Sequencer interface {
	Controller
	Advancer

	// SetKeyframes replaces the keyframe sequence and restarts from the first
	// keyframe, abandoning any in-flight transition.
	//
	// Parameters:
	//   - frames: the ordered keyframes (must be non-empty, durations > 0)
	//   - loop: true to restart at keyframe 0 after the last one
	//
	// Returns:
	//   - error: an error if the sequence is empty or a duration is not positive
	SetKeyframes(frames []Keyframe, loop bool) error

	// Cursor returns the index of the keyframe currently being approached.
	//
	// Returns:
	//   - int: the current sequence index
	Cursor() int

	// Complete reports whether a non-looping sequence has finished.
	//
	// Returns:
	//   - bool: true once the terminal state is reached
	Complete() bool

	// Pose returns the last committed camera pose.
	//
	// Returns:
	//   - Pose: the current pose
	Pose() Pose

	// ResetPose sets the committed pose the next segment starts from.
	//
	// Parameters:
	//   - pose: the pose to commit
	ResetPose(pose Pose)

	// SetSequenceCompletionCallback registers the function invoked exactly
	// once when a non-looping sequence reaches its terminal state. Pass nil
	// to clear. Never invoked for looping sequences.
	//
	// Parameters:
	//   - callback: function to call on sequence completion (or nil)
	SetSequenceCompletionCallback(callback func())
}

var _ Sequencer = &sequencerImpl{}

// NewSequencer creates a new keyframe sequencer with its own transition
// controller. The sequencer is idle until SetKeyframes is called.
//
// Parameters:
//   - options: functional options to configure the sequencer
//
// Returns:
//   - Sequencer: the newly created sequencer
func NewSequencer(options ...SequencerOption) Sequencer {
	s := &sequencerImpl{
		mu: &sync.Mutex{},
	}
	for _, option := range options {
		option(s)
	}
	if s.transition == nil {
		s.transition = NewTransitionController()
	}
	s.transition.SetCompletionCallback(s.handleSegmentComplete)
	return s
}

func (s *sequencerImpl) SetKeyframes(frames []Keyframe, loop bool) error {
	if len(frames) == 0 {
		return fmt.Errorf("keyframe sequence must not be empty")
	}
	for i, f := range frames {
		if f.Duration <= 0 {
			return fmt.Errorf("keyframe %d duration must be positive, got %f", i, f.Duration)
		}
	}

	s.mu.Lock()
	s.frames = append([]Keyframe(nil), frames...)
	s.loop = loop
	s.cursor = 0
	s.complete = false
	first := s.frames[0]
	s.mu.Unlock()

	// Durations were validated above, so SetTarget cannot fail here.
	return s.transition.SetTarget(Pose{Position: first.Position, LookAt: first.LookAt}, first.Duration, first.Curve)
}

func (s *sequencerImpl) Advance(elapsed float32) {
	s.transition.Advance(elapsed)
}

// handleSegmentComplete is the transition controller's completion callback.
// It advances the cursor and either starts the next segment, wraps around in
// loop mode, or enters the terminal state.
func (s *sequencerImpl) handleSegmentComplete() {
	s.mu.Lock()

	if len(s.frames) == 0 || s.complete {
		s.mu.Unlock()
		return
	}

	s.cursor++
	if s.cursor >= len(s.frames) {
		if s.loop {
			s.cursor = 0
		} else {
			s.complete = true
			callback := s.onSequenceComplete
			s.mu.Unlock()
			if callback != nil {
				callback()
			}
			return
		}
	}

	next := s.frames[s.cursor]
	s.mu.Unlock()

	_ = s.transition.SetTarget(Pose{Position: next.Position, LookAt: next.LookAt}, next.Duration, next.Curve)
}

func (s *sequencerImpl) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

func (s *sequencerImpl) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete
}

func (s *sequencerImpl) Pose() Pose {
	return s.transition.Pose()
}

func (s *sequencerImpl) ResetPose(pose Pose) {
	s.transition.ResetPose(pose)
}

func (s *sequencerImpl) SetSequenceCompletionCallback(callback func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSequenceComplete = callback
}

func (s *sequencerImpl) Position() (x, y, z float32) {
	return s.transition.Position()
}

func (s *sequencerImpl) Target() (x, y, z float32) {
	return s.transition.Target()
}
