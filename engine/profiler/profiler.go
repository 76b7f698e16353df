package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame pacing and memory statistics for the flyover loop.
// Stats are written to the log once per reporting interval.
type Profiler struct {
	frameCount     int
	windowStart    time.Time
	lastFrame      time.Time
	slowestFrame   time.Duration
	interval       time.Duration
	memStats       runtime.MemStats
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler.
// The reporting interval defaults to 1 second when a non-positive interval is given.
//
// Parameters:
//   - interval: how often to log accumulated statistics
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(interval time.Duration) *Profiler {
	if interval <= 0 {
		interval = time.Second
	}
	now := time.Now()
	return &Profiler{
		windowStart: now,
		lastFrame:   now,
		interval:    interval,
	}
}

// Tick should be called once per frame.
// Logs FPS, the slowest frame in the window, heap usage and allocation rate
// when the reporting interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	now := time.Now()
	frameTime := now.Sub(p.lastFrame)
	p.lastFrame = now
	p.frameCount++
	if frameTime > p.slowestFrame {
		p.slowestFrame = frameTime
	}

	elapsed := now.Sub(p.windowStart)
	if elapsed < p.interval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	log.Printf("[Profiler] FPS: %.2f | Slowest Frame: %.2f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
		fps, float64(p.slowestFrame.Microseconds())/1000, heapMB, allocRateMB, p.memStats.NumGC)

	p.frameCount = 0
	p.slowestFrame = 0
	p.windowStart = now
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
