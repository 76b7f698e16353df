package camera

import (
	"math"
	"sync"
)

// orbitControllerImpl is the single implementation of OrbitController.
// The camera rides a circle of fixed radius and height around a center point,
// always looking at the center. The azimuth sin/cos convention matches the
// LookAt view matrix: angle 0 places the camera on the +Z axis.
type orbitControllerImpl struct {
	mu *sync.Mutex

	center       [3]float32
	radius       float32
	height       float32
	angularSpeed float32

	enabled bool
	current Pose
}

// OrbitController places the camera on a continuous circular path around a
// fixed center point. The orbit angle accumulates as elapsed time times
// angular speed, so the motion is a pure function of the host clock. There is
// no terminal state; disabling freezes the last computed pose without
// resetting the camera.
type OrbitController interface {
	Controller
	Advancer

	// Center returns the orbit center point.
	//
	// Returns:
	//   - [3]float32: the center in world space
	Center() [3]float32

	// SetCenter moves the orbit center point.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetCenter(x, y, z float32)

	// Radius returns the orbit radius.
	//
	// Returns:
	//   - float32: distance from the center on the horizontal plane
	Radius() float32

	// SetRadius sets the orbit radius.
	//
	// Parameters:
	//   - radius: distance from the center on the horizontal plane
	SetRadius(radius float32)

	// AngularSpeed returns the orbit angular speed.
	//
	// Returns:
	//   - float32: radians per second
	AngularSpeed() float32

	// SetAngularSpeed sets the orbit angular speed.
	//
	// Parameters:
	//   - speed: radians per second
	SetAngularSpeed(speed float32)

	// Enabled reports whether the controller responds to Advance.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled enables or disables the controller. Disabling freezes the
	// last computed pose.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Pose returns the last committed camera pose.
	//
	// Returns:
	//   - Pose: the current pose
	Pose() Pose
}

var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates a new orbit controller with sensible defaults:
// radius 120, height 60 above the center, a quarter radian per second.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(options ...OrbitControllerOption) OrbitController {
	oc := &orbitControllerImpl{
		mu:           &sync.Mutex{},
		radius:       120.0,
		height:       60.0,
		angularSpeed: 0.25,
		enabled:      true,
	}
	for _, option := range options {
		option(oc)
	}
	oc.current = oc.poseAt(0)
	return oc
}

// poseAt computes the orbit pose for a given angle. Caller must hold the mutex
// (or be inside the constructor before the controller is shared).
func (oc *orbitControllerImpl) poseAt(angle float32) Pose {
	sin := float32(math.Sin(float64(angle)))
	cos := float32(math.Cos(float64(angle)))
	return Pose{
		Position: [3]float32{
			oc.center[0] + oc.radius*sin,
			oc.center[1] + oc.height,
			oc.center[2] + oc.radius*cos,
		},
		LookAt: oc.center,
	}
}

func (oc *orbitControllerImpl) Advance(elapsed float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()

	if !oc.enabled {
		return
	}
	oc.current = oc.poseAt(elapsed * oc.angularSpeed)
}

func (oc *orbitControllerImpl) Center() [3]float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.center
}

func (oc *orbitControllerImpl) SetCenter(x, y, z float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.center = [3]float32{x, y, z}
}

func (oc *orbitControllerImpl) Radius() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.radius
}

func (oc *orbitControllerImpl) SetRadius(radius float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.radius = radius
}

func (oc *orbitControllerImpl) AngularSpeed() float32 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.angularSpeed
}

func (oc *orbitControllerImpl) SetAngularSpeed(speed float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.angularSpeed = speed
}

func (oc *orbitControllerImpl) Enabled() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.enabled
}

func (oc *orbitControllerImpl) SetEnabled(enabled bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.enabled = enabled
}

func (oc *orbitControllerImpl) Pose() Pose {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.current
}

func (oc *orbitControllerImpl) Position() (x, y, z float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.current.Position[0], oc.current.Position[1], oc.current.Position[2]
}

func (oc *orbitControllerImpl) Target() (x, y, z float32) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.current.LookAt[0], oc.current.LookAt[1], oc.current.LookAt[2]
}
