package camera

import (
	"github.com/xRyann2255/ICHack26-sub001/common"
)

// lookAtProjectionDistance is how far along the forward direction a look-at
// point is synthesized when a pose only carries an orientation. The value
// matches the approximation used by the flyover rig: far enough that small
// positional drift does not visibly swing the derived target.
const lookAtProjectionDistance = 100.0

// Pose is a camera's position plus the point it looks at. Both components are
// canonical 3-component world-space vectors; any literal-array conversion
// happens at the boundary where a Pose is constructed, never inside the
// controllers.
type Pose struct {
	// Position is the camera's world-space position.
	Position [3]float32

	// LookAt is the world-space point the camera looks at.
	LookAt [3]float32
}

// Controller is the read interface the Camera consumes each frame. All motion
// controllers (transition, follow, orbit, sequencer) implement it; the Camera
// only ever reads position and target, it never drives motion itself.
type Controller interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)
}

// Advancer is implemented by controllers that consume the host loop's elapsed
// clock time once per frame. Advancing is the only way any controller mutates
// its pose; nothing in this package reads a global clock.
type Advancer interface {
	// Advance updates the controller's pose for the given elapsed time.
	//
	// Parameters:
	//   - elapsed: elapsed clock time in seconds since the rig started
	Advance(elapsed float32)
}

// DeriveLookAt synthesizes a look-at point for a pose that only has an
// orientation, by projecting a fixed distance along the forward direction.
// This is an approximation of the true look-at target; if the previous state
// held a different look-at it introduces a small first-frame discontinuity.
//
// Parameters:
//   - position: the camera's world-space position
//   - forward: the camera's forward direction (normalized internally)
//
// Returns:
//   - [3]float32: the derived look-at point
func DeriveLookAt(position, forward [3]float32) [3]float32 {
	return common.Add3(position, common.Scale3(common.Normalize3(forward), lookAtProjectionDistance))
}
