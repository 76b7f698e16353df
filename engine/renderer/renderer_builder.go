package renderer

// RendererBuilderOption is a function that configures a renderer during construction.
type RendererBuilderOption func(*renderer)

// WithPresentMode is an option builder that sets the initial present mode.
//
// Parameters:
//   - mode: the present mode to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithForceFallbackAdapter is an option builder that forces selection of a
// software fallback adapter instead of a hardware GPU. Useful for headless or
// CI environments.
//
// Parameters:
//   - force: true to force the fallback adapter
//
// Returns:
//   - RendererBuilderOption: a function that applies the fallback option to a renderer
func WithForceFallbackAdapter(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithOverlayOpacity is an option builder that sets the initial heatmap
// overlay opacity.
//
// Parameters:
//   - opacity: the layer opacity in [0, 1]
//
// Returns:
//   - RendererBuilderOption: a function that applies the opacity option to a renderer
func WithOverlayOpacity(opacity float32) RendererBuilderOption {
	return func(r *renderer) {
		r.overlayOpacity = opacity
	}
}
