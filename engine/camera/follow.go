package camera

import (
	"sync"

	"github.com/xRyann2255/ICHack26-sub001/common"
)

// followControllerImpl is the single implementation of FollowController.
// The ideal pose trails the target opposite its heading at a fixed height;
// the committed pose chases the ideal with exponential smoothing.
type followControllerImpl struct {
	mu *sync.Mutex

	followDistance float32
	followHeight   float32
	smoothing      float32

	enabled   bool
	hasTarget bool
	targetPos [3]float32
	heading   [3]float32

	current Pose
}

// FollowController keeps the camera trailing a moving target. It is a
// continuous controller: there is no terminal state and no completion signal.
// Each frame the ideal pose is recomputed from the target's position and
// heading, and the committed pose is exponentially smoothed toward it.
type FollowController interface {
	Controller
	Advancer

	// SetTarget updates the followed target's position and heading.
	//
	// Parameters:
	//   - position: the target's world-space position
	//   - heading: the target's movement direction (normalized internally)
	SetTarget(position, heading [3]float32)

	// ClearTarget removes the target. Subsequent Advance calls are no-ops
	// until a new target is set; the last committed pose is retained.
	ClearTarget()

	// Enabled reports whether the controller responds to Advance.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled enables or disables the controller. Disabling freezes the
	// last committed pose.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Pose returns the last committed camera pose.
	//
	// Returns:
	//   - Pose: the current pose
	Pose() Pose

	// ResetPose sets the committed pose directly, bypassing smoothing.
	//
	// Parameters:
	//   - pose: the pose to commit
	ResetPose(pose Pose)
}

var _ FollowController = &followControllerImpl{}

// NewFollowController creates a new follow controller with sensible defaults
// for a low flyover chase: 40 units behind the target at height 18, smoothing
// factor 0.08.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - FollowController: the newly created controller
func NewFollowController(options ...FollowControllerOption) FollowController {
	fc := &followControllerImpl{
		mu:             &sync.Mutex{},
		followDistance: 40.0,
		followHeight:   18.0,
		smoothing:      0.08,
		enabled:        true,
	}
	for _, option := range options {
		option(fc)
	}
	return fc
}

func (fc *followControllerImpl) SetTarget(position, heading [3]float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.targetPos = position
	fc.heading = heading
	fc.hasTarget = true
}

func (fc *followControllerImpl) ClearTarget() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.hasTarget = false
}

func (fc *followControllerImpl) Enabled() bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.enabled
}

func (fc *followControllerImpl) SetEnabled(enabled bool) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.enabled = enabled
}

func (fc *followControllerImpl) Advance(elapsed float32) {
	_ = elapsed // smoothing is per-frame, not clock-driven

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if !fc.enabled || !fc.hasTarget {
		return
	}

	ideal := common.Sub3(fc.targetPos, common.Scale3(common.Normalize3(fc.heading), fc.followDistance))
	ideal[1] = fc.followHeight

	fc.current.Position = common.Lerp3(fc.current.Position, ideal, fc.smoothing)
	fc.current.LookAt = common.Lerp3(fc.current.LookAt, fc.targetPos, fc.smoothing)
}

func (fc *followControllerImpl) Pose() Pose {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.current
}

func (fc *followControllerImpl) ResetPose(pose Pose) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.current = pose
}

func (fc *followControllerImpl) Position() (x, y, z float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.current.Position[0], fc.current.Position[1], fc.current.Position[2]
}

func (fc *followControllerImpl) Target() (x, y, z float32) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.current.LookAt[0], fc.current.LookAt[1], fc.current.LookAt[2]
}
