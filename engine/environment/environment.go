// package environment maps named scene moods to the lighting, fog, and sky
// parameters the renderer consumes. Presets are static data; Resolve is a pure
// function over (mood, fog density, overrides) and is recomputed only when one
// of those inputs changes.
package environment

import "fmt"

// Mood identifies a named environment preset. The set is closed — preset
// lookup is an exhaustive switch, so a new mood cannot be added without the
// compiler flagging every consumer.
type Mood int

const (
	// MoodDay is full midday sun with a light blue sky.
	MoodDay Mood = iota

	// MoodSunset is a low warm sun with an orange sky.
	MoodSunset

	// MoodNight is cool moonlight with a near-black sky.
	MoodNight

	// MoodDawn is a low pale sun with a muted pink sky.
	MoodDawn

	// MoodOvercast is flat diffuse light under a grey sky.
	MoodOvercast
)

// Settings holds the resolved environment parameters the renderer and scene
// consume directly. All colors are linear RGB in [0, 1].
type Settings struct {
	// Background is the sky clear color.
	Background [3]float32

	// FogColor is the color distant fragments fade toward.
	FogColor [3]float32

	// FogEnabled reports whether distance fog is active. When false the fog
	// distances are meaningless and the renderer skips the fog blend.
	FogEnabled bool

	// FogNear is the distance at which fog starts, in scene units.
	FogNear float32

	// FogFar is the distance at which fog fully occludes, in scene units.
	FogFar float32

	// SunDirection is the direction the key light travels (not normalized
	// here; the light normalizes on assignment).
	SunDirection [3]float32

	// SunColor is the key light color.
	SunColor [3]float32

	// SunIntensity is the key light intensity multiplier.
	SunIntensity float32

	// Ambient is the flat ambient light color.
	Ambient [3]float32
}

// String returns the configuration name of the mood.
//
// Returns:
//   - string: one of "day", "sunset", "night", "dawn", "overcast"
func (m Mood) String() string {
	switch m {
	case MoodSunset:
		return "sunset"
	case MoodNight:
		return "night"
	case MoodDawn:
		return "dawn"
	case MoodOvercast:
		return "overcast"
	case MoodDay:
		fallthrough
	default:
		return "day"
	}
}

// ParseMood resolves a configuration name to a Mood.
//
// Parameters:
//   - name: one of "day", "sunset", "night", "dawn", "overcast"
//
// Returns:
//   - Mood: the matching mood
//   - error: an error if the name is not a known mood
func ParseMood(name string) (Mood, error) {
	switch name {
	case "day":
		return MoodDay, nil
	case "sunset":
		return MoodSunset, nil
	case "night":
		return MoodNight, nil
	case "dawn":
		return MoodDawn, nil
	case "overcast":
		return MoodOvercast, nil
	default:
		return MoodDay, fmt.Errorf("unknown environment mood %q", name)
	}
}

// Moods returns all members of the closed mood set, in declaration order.
//
// Returns:
//   - []Mood: every defined Mood
func Moods() []Mood {
	return []Mood{MoodDay, MoodSunset, MoodNight, MoodDawn, MoodOvercast}
}

// preset returns the fixed parameter table for the mood. Fog distances are the
// unscaled baseline values; Resolve applies the density scaling.
func preset(m Mood) Settings {
	switch m {
	case MoodSunset:
		return Settings{
			Background:   [3]float32{0.98, 0.58, 0.35},
			FogColor:     [3]float32{0.95, 0.65, 0.45},
			FogEnabled:   true,
			FogNear:      400,
			FogFar:       1600,
			SunDirection: [3]float32{-0.8, -0.25, -0.2},
			SunColor:     [3]float32{1, 0.6, 0.3},
			SunIntensity: 0.85,
			Ambient:      [3]float32{0.4, 0.3, 0.3},
		}
	case MoodNight:
		return Settings{
			Background:   [3]float32{0.05, 0.06, 0.12},
			FogColor:     [3]float32{0.08, 0.09, 0.16},
			FogEnabled:   true,
			FogNear:      300,
			FogFar:       1200,
			SunDirection: [3]float32{0.2, -1, 0.3},
			SunColor:     [3]float32{0.6, 0.7, 0.9},
			SunIntensity: 0.25,
			Ambient:      [3]float32{0.08, 0.09, 0.14},
		}
	case MoodDawn:
		return Settings{
			Background:   [3]float32{0.77, 0.64, 0.72},
			FogColor:     [3]float32{0.8, 0.7, 0.75},
			FogEnabled:   true,
			FogNear:      350,
			FogFar:       1400,
			SunDirection: [3]float32{0.7, -0.3, -0.3},
			SunColor:     [3]float32{1, 0.8, 0.7},
			SunIntensity: 0.6,
			Ambient:      [3]float32{0.3, 0.28, 0.33},
		}
	case MoodOvercast:
		return Settings{
			Background:   [3]float32{0.62, 0.65, 0.68},
			FogColor:     [3]float32{0.68, 0.7, 0.72},
			FogEnabled:   true,
			FogNear:      250,
			FogFar:       1000,
			SunDirection: [3]float32{-0.1, -1, -0.1},
			SunColor:     [3]float32{0.85, 0.87, 0.9},
			SunIntensity: 0.5,
			Ambient:      [3]float32{0.5, 0.5, 0.52},
		}
	case MoodDay:
		fallthrough
	default:
		return Settings{
			Background:   [3]float32{0.53, 0.81, 0.92},
			FogColor:     [3]float32{0.75, 0.85, 0.95},
			FogEnabled:   true,
			FogNear:      500,
			FogFar:       2000,
			SunDirection: [3]float32{-0.3, -1, -0.5},
			SunColor:     [3]float32{1, 0.98, 0.9},
			SunIntensity: 1.0,
			Ambient:      [3]float32{0.45, 0.45, 0.5},
		}
	}
}

// ResolveOption overrides a resolved setting. Overrides apply after the preset
// and density scaling, so they take precedence over the preset's own values.
type ResolveOption func(*Settings)

// WithBackgroundOverride overrides the sky clear color.
//
// Parameters:
//   - r, g, b: color components
//
// Returns:
//   - ResolveOption: the option to apply
func WithBackgroundOverride(r, g, b float32) ResolveOption {
	return func(s *Settings) {
		s.Background = [3]float32{r, g, b}
	}
}

// WithFogColorOverride overrides the fog color.
//
// Parameters:
//   - r, g, b: color components
//
// Returns:
//   - ResolveOption: the option to apply
func WithFogColorOverride(r, g, b float32) ResolveOption {
	return func(s *Settings) {
		s.FogColor = [3]float32{r, g, b}
	}
}

// Resolve produces the final environment settings for a mood at a given fog
// density. Fog distances scale inversely with density (near = presetNear /
// density, far = presetFar / density), so higher density pulls the fog closer.
// A density of zero or less disables fog entirely rather than dividing by
// zero; the preset's unscaled distances are kept for reference.
//
// Parameters:
//   - mood: the preset to resolve
//   - density: fog density factor (> 0 enables fog)
//   - opts: overrides applied after scaling
//
// Returns:
//   - Settings: the resolved environment settings
func Resolve(mood Mood, density float32, opts ...ResolveOption) Settings {
	s := preset(mood)
	if density > 0 {
		s.FogNear = s.FogNear / density
		s.FogFar = s.FogFar / density
	} else {
		s.FogEnabled = false
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
