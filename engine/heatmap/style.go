package heatmap

import "image/color"

// rampStop is one fixed point of the heatmap color ramp.
type rampStop struct {
	at    float32
	color color.RGBA
}

// rampStops is the six-stop density color ramp, cold blue through warm red.
// The literal stop values are part of the visual contract with the map layer
// and must not be adjusted.
var rampStops = []rampStop{
	{0, color.RGBA{R: 33, G: 102, B: 172, A: 0}},
	{0.2, color.RGBA{R: 103, G: 169, B: 207, A: 255}},
	{0.4, color.RGBA{R: 209, G: 229, B: 240, A: 255}},
	{0.6, color.RGBA{R: 253, G: 219, B: 199, A: 255}},
	{0.8, color.RGBA{R: 239, G: 138, B: 98, A: 255}},
	{1, color.RGBA{R: 178, G: 24, B: 43, A: 255}},
}

// RampColor maps a normalized density value through the color ramp, linearly
// interpolating between adjacent stops. Input outside [0, 1] is clamped.
//
// Parameters:
//   - t: normalized density in [0, 1]
//
// Returns:
//   - color.RGBA: the interpolated ramp color
func RampColor(t float32) color.RGBA {
	if t <= rampStops[0].at {
		return rampStops[0].color
	}
	last := len(rampStops) - 1
	if t >= rampStops[last].at {
		return rampStops[last].color
	}
	for i := 1; i <= last; i++ {
		if t > rampStops[i].at {
			continue
		}
		lo, hi := rampStops[i-1], rampStops[i]
		f := (t - lo.at) / (hi.at - lo.at)
		return color.RGBA{
			R: lerpByte(lo.color.R, hi.color.R, f),
			G: lerpByte(lo.color.G, hi.color.G, f),
			B: lerpByte(lo.color.B, hi.color.B, f),
			A: lerpByte(lo.color.A, hi.color.A, f),
		}
	}
	return rampStops[last].color
}

func lerpByte(a, b uint8, f float32) uint8 {
	return uint8(float32(a) + (float32(b)-float32(a))*f + 0.5)
}

// Style holds the zoom-dependent rendering parameters of the heatmap layer.
type Style struct {
	// Intensity is the global multiplier applied to sample weights.
	Intensity float32

	// Radius is the influence radius of one sample, in screen pixels.
	Radius float32

	// Opacity is the layer opacity; 0 hides the layer entirely.
	Opacity float32
}

// styleStop is one fixed zoom breakpoint of the layer style.
type styleStop struct {
	zoom  float32
	style Style
}

// styleStops are the zoom interpolation breakpoints. The layer reads hotter
// and tighter when zoomed in, then fades out entirely past street level where
// individual markers take over.
var styleStops = []styleStop{
	{9, Style{Intensity: 1, Radius: 24, Opacity: 0.9}},
	{13, Style{Intensity: 3, Radius: 40, Opacity: 0.7}},
	{16, Style{Intensity: 3, Radius: 60, Opacity: 0}},
}

// StyleAt returns the layer style for a zoom level, linearly interpolating
// between the fixed breakpoints and clamping beyond the first and last.
//
// Parameters:
//   - zoom: the map zoom level
//
// Returns:
//   - Style: the interpolated style
func StyleAt(zoom float32) Style {
	if zoom <= styleStops[0].zoom {
		return styleStops[0].style
	}
	last := len(styleStops) - 1
	if zoom >= styleStops[last].zoom {
		return styleStops[last].style
	}
	for i := 1; i <= last; i++ {
		if zoom > styleStops[i].zoom {
			continue
		}
		lo, hi := styleStops[i-1], styleStops[i]
		f := (zoom - lo.zoom) / (hi.zoom - lo.zoom)
		return Style{
			Intensity: lo.style.Intensity + (hi.style.Intensity-lo.style.Intensity)*f,
			Radius:    lo.style.Radius + (hi.style.Radius-lo.style.Radius)*f,
			Opacity:   lo.style.Opacity + (hi.style.Opacity-lo.style.Opacity)*f,
		}
	}
	return styleStops[last].style
}
