// package heatmap produces the synthetic geo heatmap overlay: a deterministic
// grid of weighted sample points around a geographic center, the zoom-keyed
// style that colors them, and the overlay texture the renderer maps onto the
// ground plane. Samples are demo data generated once at initialization, not a
// simulation with an update loop.
package heatmap

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// Sample is one weighted point of the heatmap grid.
type Sample struct {
	// Lon is the longitude in degrees.
	Lon float64

	// Lat is the latitude in degrees.
	Lat float64

	// Intensity is the sample weight in [0, 1].
	Intensity float32
}

// generatorImpl is the implementation of the Generator interface.
type generatorImpl struct {
	centerLon float64
	centerLat float64
	gridSize  int
	spreadDeg float64
	seed      int64
	workers   int
}

// Generator produces the synthetic sample grid. Generation is deterministic
// for a fixed seed regardless of worker count: each row draws its noise from
// its own seeded source.
type Generator interface {
	// Generate produces the full sample grid. Rows are filled in parallel on
	// a worker pool; the returned slice is ordered row-major from the
	// south-west corner.
	//
	// Returns:
	//   - []Sample: gridSize * gridSize samples with intensities in [0, 1]
	Generate() []Sample

	// GridSize returns the configured grid edge length.
	//
	// Returns:
	//   - int: samples per grid edge
	GridSize() int

	// Center returns the geographic center of the grid.
	//
	// Returns:
	//   - float64: center longitude in degrees
	//   - float64: center latitude in degrees
	Center() (lon, lat float64)
}

var _ Generator = &generatorImpl{}

// NewGenerator creates a heatmap sample generator with sensible defaults and
// any provided options applied.
//
// Parameters:
//   - options: functional options to configure the generator
//
// Returns:
//   - Generator: the newly created generator
func NewGenerator(options ...GeneratorOption) Generator {
	g := &generatorImpl{
		centerLon: -0.1276,
		centerLat: 51.5072,
		gridSize:  40,
		spreadDeg: 0.05,
		seed:      1,
		workers:   max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(g)
	}
	if g.gridSize < 2 {
		g.gridSize = 2
	}
	return g
}

func (g *generatorImpl) Generate() []Sample {
	samples := make([]Sample, g.gridSize*g.gridSize)

	// Workers are reused while rows queue up and idle-exit afterwards; a
	// WaitGroup provides the completion barrier since pool.Wait() blocks
	// until workers idle-exit.
	pool := worker.NewDynamicWorkerPool(g.workers, 256, 1*time.Second)
	var wg sync.WaitGroup
	for row := 0; row < g.gridSize; row++ {
		wg.Add(1)
		r := row
		pool.SubmitTask(worker.Task{
			ID: r,
			Do: func() (any, error) {
				defer wg.Done()
				g.fillRow(samples, r)
				return nil, nil
			},
		})
	}
	wg.Wait()

	return samples
}

func (g *generatorImpl) GridSize() int {
	return g.gridSize
}

func (g *generatorImpl) Center() (lon, lat float64) {
	return g.centerLon, g.centerLat
}

// fillRow computes one grid row. Rows share no state beyond disjoint slice
// ranges, and each row's noise source is seeded from the generator seed plus
// the row index so the output is independent of scheduling order.
func (g *generatorImpl) fillRow(samples []Sample, row int) {
	rng := rand.New(rand.NewSource(g.seed + int64(row)))
	span := float64(g.gridSize - 1)
	gy := float64(row)/span - 0.5
	for col := 0; col < g.gridSize; col++ {
		gx := float64(col)/span - 0.5
		samples[row*g.gridSize+col] = Sample{
			Lon:       g.centerLon + gx*2*g.spreadDeg,
			Lat:       g.centerLat + gy*2*g.spreadDeg,
			Intensity: intensityAt(gx, gy, rng.Float64()),
		}
	}
}

// intensityAt combines two sinusoidal fields, bounded noise, and a centrally
// peaked falloff into a sample weight, clamped to [0, 1]. gx and gy are grid
// coordinates in [-0.5, 0.5]; noise is in [0, 1).
func intensityAt(gx, gy, noise float64) float32 {
	fieldA := 0.5 + 0.5*math.Sin(gx*6*math.Pi)*math.Cos(gy*4*math.Pi)
	fieldB := 0.5 + 0.5*math.Sin((gx+gy)*9*math.Pi)
	peak := math.Exp(-(gx*gx + gy*gy) * 18)

	v := 0.3*fieldA + 0.2*fieldB + 0.15*noise + 0.45*peak
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return float32(v)
}
