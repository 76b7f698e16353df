package engine

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/xRyann2255/ICHack26-sub001/engine/camera"
	"github.com/xRyann2255/ICHack26-sub001/engine/profiler"
	"github.com/xRyann2255/ICHack26-sub001/engine/scene"
	"github.com/xRyann2255/ICHack26-sub001/engine/window"
)

// engine implements the Engine interface.
// Coordinates the advance, render, and window threads.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickRate        time.Duration
	advanceCallback func(elapsed float32)

	advancersMu sync.Mutex
	advancers   []camera.Advancer

	scenes map[int]scene.Scene

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
}

// Engine is the main entry point for the flyover viewer.
// It orchestrates the advance loop, render loop, and window management.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the advance tick rate in ticks per second.
	// Registered advancers and the advance callback are driven at this rate.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetAdvanceCallback registers the function called each advance tick.
	// The callback receives the total elapsed time in seconds since Run was
	// called, the same clock handed to registered camera advancers.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate
	SetAdvanceCallback(callback func(elapsed float32))

	// AddAdvancer registers a camera advancer to be driven by the engine clock.
	// Each tick the advancer receives the total elapsed seconds since Run.
	//
	// Parameters:
	//   - a: the Advancer to drive
	AddAdvancer(a camera.Advancer)

	// RemoveAdvancer unregisters a previously added advancer.
	//
	// Parameters:
	//   - a: the Advancer to stop driving
	RemoveAdvancer(a camera.Advancer)

	// SetRenderFrameLimit sets an optional render frame rate cap in frames per second.
	// Pass 0 to uncap the render loop (default).
	//
	// Parameters:
	//   - fps: maximum render frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// AddScene registers a scene at the given z-index key.
	// Scenes are rendered in ascending key order during the render loop.
	//
	// Parameters:
	//   - key: the z-index determining render order (lower renders first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Run starts the main engine loop (blocks until window closes).
	Run()

	// Quit signals all engine goroutines to stop and shuts down the engine.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Initializes channels and the profiler with sensible defaults.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		scenes:           make(map[int]scene.Scene),
		running:          false,
		wg:               sync.WaitGroup{},
		profiler:         profiler.NewProfiler(time.Second),
		profilingEnabled: false,
		tickRate:         time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			for _, s := range e.scenes {
				if r := s.Renderer(); r != nil {
					r.Resize(width, height)
				}
				if c := s.Camera(); c != nil && height > 0 {
					c.SetAspect(float32(width) / float32(height))
				}
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.handle()
	e.window.ProcessMessages()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the advance, render, and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.running = true
	e.wg.Add(3)
	go e.handleAdvance()
	go e.handleRender()
	go e.handleQuit()
}

// handleAdvance runs the fixed-rate advance loop in its own goroutine.
// Each tick it forwards the total elapsed seconds since Run to every
// registered camera advancer and then to the advance callback, and listens
// for dynamic rate changes via tickRateChannel. Exits when the quit channel
// is closed.
func (e *engine) handleAdvance() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.tickRate)
	defer ticker.Stop()

	start := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case now := <-ticker.C:
			elapsed := float32(now.Sub(start).Seconds())

			e.advancersMu.Lock()
			advancers := make([]camera.Advancer, len(e.advancers))
			copy(advancers, e.advancers)
			e.advancersMu.Unlock()

			for _, a := range advancers {
				a.Advance(elapsed)
			}

			if e.advanceCallback != nil {
				e.advanceCallback(elapsed)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.tickRate = newRate
		}
	}
}

// handleRender runs the uncapped (or frame-limited) render loop in its own goroutine.
// Iterates active scenes in ascending z-index order, rendering and presenting each.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleRender() {
	defer e.wg.Done()
	// Recover from panics inside the render goroutine to avoid crashing the whole process.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("render goroutine recovered from panic: %v", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			lastRender = time.Now()

			keys := make([]int, 0, len(e.scenes))
			for k := range e.scenes {
				keys = append(keys, k)
			}
			sort.Ints(keys)

			for _, k := range keys {
				s := e.scenes[k]
				if !s.Active() {
					continue
				}
				if err := s.RenderFrame(); err != nil {
					log.Printf("render frame failed for scene %q: %v", s.Name(), err)
					continue
				}
				if r := s.Renderer(); r != nil {
					r.Present()
				}
			}

			if e.profilingEnabled && e.profiler != nil {
				e.profiler.Tick()
			}

			// Frame rate limiting
			if e.renderFrameLimit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := e.renderFrameLimit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the advance tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Second / time.Duration(fps)

	if e.running {
		// Non-blocking send - if the channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.tickRate = newRate
	}
}

// SetAdvanceCallback registers the function called each advance tick.
func (e *engine) SetAdvanceCallback(callback func(elapsed float32)) {
	e.advanceCallback = callback
}

// AddAdvancer registers a camera advancer to be driven by the engine clock.
func (e *engine) AddAdvancer(a camera.Advancer) {
	if a == nil {
		return
	}
	e.advancersMu.Lock()
	defer e.advancersMu.Unlock()
	e.advancers = append(e.advancers, a)
}

// RemoveAdvancer unregisters a previously added advancer.
func (e *engine) RemoveAdvancer(a camera.Advancer) {
	e.advancersMu.Lock()
	defer e.advancersMu.Unlock()
	for i, existing := range e.advancers {
		if existing == a {
			e.advancers = append(e.advancers[:i], e.advancers[i+1:]...)
			return
		}
	}
}

// SetRenderFrameLimit sets an optional render frame rate cap.
// Pass 0 to uncap the render loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Second / time.Duration(fps)
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}
