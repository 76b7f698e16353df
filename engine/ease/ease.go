// package ease exposes the closed set of easing curves available to the camera
// rig. Curves reshape linear progress in [0, 1] into perceptually smoother
// motion; every curve maps 0 to 0 and 1 to 1 and is monotonic non-decreasing.
package ease

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Curve identifies an easing curve. The set is closed — lookups are exhaustive
// switches so a new curve cannot be added without the compiler flagging every
// consumer.
type Curve int

const (
	// CurveLinear is the identity curve: progress passes through unchanged.
	CurveLinear Curve = iota

	// CurveEaseIn starts slow and accelerates (quadratic ease-in).
	CurveEaseIn

	// CurveEaseOut starts fast and decelerates (quadratic ease-out).
	CurveEaseOut

	// CurveEaseInOut accelerates through the first half and decelerates
	// through the second (quadratic ease-in-out).
	CurveEaseInOut
)

// TweenFunc returns the underlying gween tween function for the curve,
// suitable for driving a gween.Tween or gween.Sequence directly.
//
// Returns:
//   - ease.TweenFunc: the gween easing function the curve maps to
func (c Curve) TweenFunc() ease.TweenFunc {
	switch c {
	case CurveEaseIn:
		return ease.InQuad
	case CurveEaseOut:
		return ease.OutQuad
	case CurveEaseInOut:
		return ease.InOutQuad
	case CurveLinear:
		fallthrough
	default:
		return ease.Linear
	}
}

// Apply reshapes a normalized progress value through the curve.
// Input outside [0, 1] is clamped before the curve is applied so the
// invariants curve(0) == 0 and curve(1) == 1 hold for any input.
//
// Parameters:
//   - t: raw progress in [0, 1]
//
// Returns:
//   - float32: eased progress in [0, 1]
func (c Curve) Apply(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	// gween tween functions take (elapsed, begin, change, duration); with
	// begin=0, change=1, duration=1 they reduce to normalized easing.
	return c.TweenFunc()(t, 0, 1, 1)
}

// String returns the configuration name of the curve.
//
// Returns:
//   - string: one of "linear", "easeIn", "easeOut", "easeInOut"
func (c Curve) String() string {
	switch c {
	case CurveEaseIn:
		return "easeIn"
	case CurveEaseOut:
		return "easeOut"
	case CurveEaseInOut:
		return "easeInOut"
	case CurveLinear:
		fallthrough
	default:
		return "linear"
	}
}

// ParseCurve resolves a configuration name to a Curve.
//
// Parameters:
//   - name: one of "linear", "easeIn", "easeOut", "easeInOut"
//
// Returns:
//   - Curve: the matching curve
//   - error: an error if the name is not a known curve
func ParseCurve(name string) (Curve, error) {
	switch name {
	case "linear":
		return CurveLinear, nil
	case "easeIn":
		return CurveEaseIn, nil
	case "easeOut":
		return CurveEaseOut, nil
	case "easeInOut":
		return CurveEaseInOut, nil
	default:
		return CurveLinear, fmt.Errorf("unknown easing curve %q", name)
	}
}

// Curves returns all members of the closed curve set, in declaration order.
//
// Returns:
//   - []Curve: every defined Curve
func Curves() []Curve {
	return []Curve{CurveLinear, CurveEaseIn, CurveEaseOut, CurveEaseInOut}
}
