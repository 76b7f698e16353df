package camera

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*orbitControllerImpl)

// WithOrbitCenter sets the point the camera circles and looks at.
//
// Parameters:
//   - x, y, z: world-space coordinates of the orbit center
//
// Returns:
//   - OrbitControllerOption: functional option to set the center
func WithOrbitCenter(x, y, z float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.center = [3]float32{x, y, z}
	}
}

// WithOrbitRadius sets the orbit radius on the horizontal plane.
//
// Parameters:
//   - radius: distance from the center in world units
//
// Returns:
//   - OrbitControllerOption: functional option to set the radius
func WithOrbitRadius(radius float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.radius = radius
	}
}

// WithOrbitHeight sets the camera height above the orbit center.
//
// Parameters:
//   - height: vertical offset in world units
//
// Returns:
//   - OrbitControllerOption: functional option to set the height
func WithOrbitHeight(height float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.height = height
	}
}

// WithAngularSpeed sets how fast the orbit angle accumulates.
//
// Parameters:
//   - speed: radians per second of elapsed clock time
//
// Returns:
//   - OrbitControllerOption: functional option to set the angular speed
func WithAngularSpeed(speed float32) OrbitControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.angularSpeed = speed
	}
}
