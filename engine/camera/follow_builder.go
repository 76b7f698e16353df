package camera

// FollowControllerOption is a functional option for configuring a FollowController.
type FollowControllerOption func(*followControllerImpl)

// WithFollowDistance sets how far behind the target the ideal camera position sits.
//
// Parameters:
//   - distance: trailing distance in world units
//
// Returns:
//   - FollowControllerOption: functional option to set the follow distance
func WithFollowDistance(distance float32) FollowControllerOption {
	return func(fc *followControllerImpl) {
		fc.followDistance = distance
	}
}

// WithFollowHeight sets the fixed Y height of the ideal camera position.
//
// Parameters:
//   - height: camera height in world units
//
// Returns:
//   - FollowControllerOption: functional option to set the follow height
func WithFollowHeight(height float32) FollowControllerOption {
	return func(fc *followControllerImpl) {
		fc.followHeight = height
	}
}

// WithSmoothing sets the exponential smoothing factor applied each frame.
// Values closer to 0 move the camera more slowly toward the ideal pose;
// 1.0 snaps to the ideal pose on the very next frame.
//
// Parameters:
//   - smoothing: smoothing factor in (0, 1]
//
// Returns:
//   - FollowControllerOption: functional option to set the smoothing factor
func WithSmoothing(smoothing float32) FollowControllerOption {
	return func(fc *followControllerImpl) {
		fc.smoothing = smoothing
	}
}

// WithFollowStartPose sets the initial committed pose so the chase does not
// begin from the world origin.
//
// Parameters:
//   - pose: the pose the controller starts from
//
// Returns:
//   - FollowControllerOption: functional option to set the start pose
func WithFollowStartPose(pose Pose) FollowControllerOption {
	return func(fc *followControllerImpl) {
		fc.current = pose
	}
}
