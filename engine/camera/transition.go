package camera

import (
	"fmt"
	"sync"

	"github.com/xRyann2255/ICHack26-sub001/common"
	"github.com/xRyann2255/ICHack26-sub001/engine/ease"
)

// transitionState is the per-transition bookkeeping owned by exactly one
// TransitionController. It is never destroyed, only reset when a new target is
// supplied. startTime is unset until the first Advance after SetTarget so the
// transition clock starts with the host loop, not with the caller.
type transitionState struct {
	active       bool
	startTimeSet bool
	startTime    float32
	startPose    Pose
	endPose      Pose
	duration     float32
	curve        ease.Curve
}

// transitionControllerImpl is the single implementation of TransitionController.
type transitionControllerImpl struct {
	mu *sync.Mutex

	current    Pose
	state      transitionState
	onComplete func()
}

// TransitionController animates the camera pose from its current value to a
// target pose over a fixed duration, reshaped by an easing curve.
//
// Supplying a new target while a transition is in flight discards the previous
// end pose and restarts from whatever pose was last committed — the camera
// visibly changes direction rather than smoothly re-routing. This is the
// intended interruption behavior, not a bug: an interrupted transition never
// fires its completion callback.
type TransitionController interface {
	Controller
	Advancer

	// SetTarget begins a new transition from the live pose captured at call
	// time to the given target pose.
	//
	// Parameters:
	//   - target: the pose to transition to
	//   - duration: transition length in seconds (must be > 0)
	//   - curve: the easing curve reshaping progress
	//
	// Returns:
	//   - error: an error if duration is not positive
	SetTarget(target Pose, duration float32, curve ease.Curve) error

	// Active reports whether a transition is currently in flight.
	//
	// Returns:
	//   - bool: true while a transition is animating
	Active() bool

	// Pose returns the last committed camera pose.
	//
	// Returns:
	//   - Pose: the current pose
	Pose() Pose

	// ResetPose sets the committed pose directly and cancels any in-flight
	// transition without firing the completion callback.
	//
	// Parameters:
	//   - pose: the pose to commit
	ResetPose(pose Pose)

	// SetCompletionCallback registers the function invoked exactly once when a
	// transition finishes. Pass nil to clear. The callback does not fire when
	// a transition is interrupted or reset.
	//
	// Parameters:
	//   - callback: function to call on completion (or nil)
	SetCompletionCallback(callback func())
}

var _ TransitionController = &transitionControllerImpl{}

// NewTransitionController creates a new transition controller holding the zero
// pose until a pose is reset or a transition commits one.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - TransitionController: the newly created controller
func NewTransitionController(options ...TransitionControllerOption) TransitionController {
	tc := &transitionControllerImpl{
		mu: &sync.Mutex{},
	}
	for _, option := range options {
		option(tc)
	}
	return tc
}

func (tc *transitionControllerImpl) SetTarget(target Pose, duration float32, curve ease.Curve) error {
	if duration <= 0 {
		return fmt.Errorf("transition duration must be positive, got %f", duration)
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()

	// Restart from the last committed pose. When this interrupts an in-flight
	// transition, the abandoned end pose is discarded entirely.
	tc.state = transitionState{
		active:    true,
		startPose: tc.current,
		endPose:   target,
		duration:  duration,
		curve:     curve,
	}
	return nil
}

func (tc *transitionControllerImpl) Advance(elapsed float32) {
	tc.mu.Lock()

	if !tc.state.active {
		tc.mu.Unlock()
		return
	}

	if !tc.state.startTimeSet {
		tc.state.startTime = elapsed
		tc.state.startTimeSet = true
	}

	rawProgress := common.Clamp((elapsed-tc.state.startTime)/tc.state.duration, 0, 1)
	progress := tc.state.curve.Apply(rawProgress)

	tc.current = Pose{
		Position: common.Lerp3(tc.state.startPose.Position, tc.state.endPose.Position, progress),
		LookAt:   common.Lerp3(tc.state.startPose.LookAt, tc.state.endPose.LookAt, progress),
	}

	var completed func()
	if rawProgress >= 1 {
		tc.state.active = false
		completed = tc.onComplete
	}

	// Release before invoking the callback: completion handlers are allowed to
	// call back into the controller (the sequencer starts its next segment from
	// inside the callback).
	tc.mu.Unlock()

	if completed != nil {
		completed()
	}
}

func (tc *transitionControllerImpl) Active() bool {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.state.active
}

func (tc *transitionControllerImpl) Pose() Pose {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.current
}

func (tc *transitionControllerImpl) ResetPose(pose Pose) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.current = pose
	tc.state = transitionState{}
}

func (tc *transitionControllerImpl) SetCompletionCallback(callback func()) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.onComplete = callback
}

func (tc *transitionControllerImpl) Position() (x, y, z float32) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.current.Position[0], tc.current.Position[1], tc.current.Position[2]
}

func (tc *transitionControllerImpl) Target() (x, y, z float32) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.current.LookAt[0], tc.current.LookAt[1], tc.current.LookAt[2]
}
