package camera

// TransitionControllerOption is a functional option for configuring a TransitionController.
type TransitionControllerOption func(*transitionControllerImpl)

// WithStartPose sets the initial committed pose. Without this option the
// controller holds the zero pose until the first ResetPose or transition.
//
// Parameters:
//   - pose: the pose the controller starts from
//
// Returns:
//   - TransitionControllerOption: functional option to set the start pose
func WithStartPose(pose Pose) TransitionControllerOption {
	return func(tc *transitionControllerImpl) {
		tc.current = pose
	}
}

// WithCompletionCallback registers the completion callback during construction.
//
// Parameters:
//   - callback: function invoked exactly once when a transition finishes
//
// Returns:
//   - TransitionControllerOption: functional option to set the callback
func WithCompletionCallback(callback func()) TransitionControllerOption {
	return func(tc *transitionControllerImpl) {
		tc.onComplete = callback
	}
}
