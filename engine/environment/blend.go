package environment

import (
	"sync"

	"github.com/tanema/gween"

	"github.com/xRyann2255/ICHack26-sub001/engine/ease"
)

// blendImpl is the implementation of the Blend interface.
type blendImpl struct {
	mu *sync.Mutex

	tween *gween.Tween

	from Settings
	to   Settings

	current  Settings
	started  bool
	last     float32
	finished bool
}

// Blend crossfades between two resolved environment settings over a fixed
// duration, for smooth mood shifts like day into sunset. It follows the same
// explicit elapsed-clock-time contract as the camera controllers: the host
// loop calls Advance once per frame and reads Settings back.
type Blend interface {
	// Advance moves the crossfade to the given elapsed clock time. The first
	// call anchors the blend's start time.
	//
	// Parameters:
	//   - elapsed: elapsed clock time in seconds
	Advance(elapsed float32)

	// Settings returns the blended environment settings at the last advanced
	// time. Before the first Advance this is the from settings.
	//
	// Returns:
	//   - Settings: the current blended settings
	Settings() Settings

	// Done reports whether the crossfade has reached the target settings.
	//
	// Returns:
	//   - bool: true once the blend is complete
	Done() bool
}

var _ Blend = &blendImpl{}

// NewBlend creates a crossfade from one resolved settings value to another.
//
// Parameters:
//   - from: the settings the blend departs from
//   - to: the settings the blend arrives at
//   - duration: crossfade length in seconds (values <= 0 complete immediately)
//   - curve: the easing curve shaping the crossfade
//
// Returns:
//   - Blend: the newly created blend
func NewBlend(from, to Settings, duration float32, curve ease.Curve) Blend {
	if duration <= 0 {
		return &blendImpl{
			mu:       &sync.Mutex{},
			from:     from,
			to:       to,
			current:  to,
			finished: true,
		}
	}
	return &blendImpl{
		mu:      &sync.Mutex{},
		tween:   gween.New(0, 1, duration, curve.TweenFunc()),
		from:    from,
		to:      to,
		current: from,
	}
}

func (b *blendImpl) Advance(elapsed float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finished {
		return
	}

	var dt float32
	if !b.started {
		b.started = true
	} else {
		dt = elapsed - b.last
	}
	b.last = elapsed
	if dt < 0 {
		dt = 0
	}

	t, finished := b.tween.Update(dt)
	b.current = mix(b.from, b.to, t)
	if finished {
		b.current = b.to
		b.finished = true
	}
}

func (b *blendImpl) Settings() Settings {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

func (b *blendImpl) Done() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.finished
}

// mix interpolates every settings field at blend factor t. Fog needs care
// when exactly one side has fog disabled: the disabled side contributes the
// enabled side's distances pushed out fourfold, so the fog recedes smoothly
// instead of popping on or off. FogEnabled flips to the target's value only
// at t = 1.
func mix(from, to Settings, t float32) Settings {
	fromNear, fromFar := fogDistances(from, to)
	toNear, toFar := fogDistances(to, from)

	s := Settings{
		Background:   mix3(from.Background, to.Background, t),
		FogColor:     mix3(from.FogColor, to.FogColor, t),
		FogEnabled:   from.FogEnabled || to.FogEnabled,
		FogNear:      mix1(fromNear, toNear, t),
		FogFar:       mix1(fromFar, toFar, t),
		SunDirection: mix3(from.SunDirection, to.SunDirection, t),
		SunColor:     mix3(from.SunColor, to.SunColor, t),
		SunIntensity: mix1(from.SunIntensity, to.SunIntensity, t),
		Ambient:      mix3(from.Ambient, to.Ambient, t),
	}
	if t >= 1 {
		s.FogEnabled = to.FogEnabled
		s.FogNear = to.FogNear
		s.FogFar = to.FogFar
	}
	return s
}

// fogDistances returns the fog distances one side contributes to the mix,
// borrowing from the other side when this side has fog disabled.
func fogDistances(side, other Settings) (near, far float32) {
	if side.FogEnabled {
		return side.FogNear, side.FogFar
	}
	return other.FogNear * 4, other.FogFar * 4
}

func mix1(a, b, t float32) float32 {
	return a + (b-a)*t
}

func mix3(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{
		mix1(a[0], b[0], t),
		mix1(a[1], b[1], t),
		mix1(a[2], b[2], t),
	}
}
