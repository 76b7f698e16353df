package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithAmbientColor sets the initial ambient light color, normally replaced by
// the first ApplyEnvironment call.
//
// Parameters:
//   - color: the ambient RGB color
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAmbientColor(color [3]float32) SceneBuilderOption {
	return func(s *scene) {
		s.ambientColor = color
	}
}

// WithZoom sets the initial view zoom level.
//
// Parameters:
//   - zoom: the map zoom level
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithZoom(zoom float32) SceneBuilderOption {
	return func(s *scene) {
		s.zoom = zoom
	}
}
