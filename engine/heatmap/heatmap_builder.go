package heatmap

// GeneratorOption is a function that configures a Generator during construction.
type GeneratorOption func(*generatorImpl)

// WithCenter is an option builder that sets the geographic center of the grid.
//
// Parameters:
//   - lon: center longitude in degrees
//   - lat: center latitude in degrees
//
// Returns:
//   - GeneratorOption: a function that applies the center option to a generatorImpl
func WithCenter(lon, lat float64) GeneratorOption {
	return func(g *generatorImpl) {
		g.centerLon = lon
		g.centerLat = lat
	}
}

// WithGridSize is an option builder that sets the number of samples per grid
// edge. Values below 2 are raised to 2.
//
// Parameters:
//   - gridSize: samples per edge
//
// Returns:
//   - GeneratorOption: a function that applies the grid size option to a generatorImpl
func WithGridSize(gridSize int) GeneratorOption {
	return func(g *generatorImpl) {
		g.gridSize = gridSize
	}
}

// WithSpread is an option builder that sets the half-extent of the grid in
// degrees from the center along each axis.
//
// Parameters:
//   - spreadDeg: half-extent in degrees
//
// Returns:
//   - GeneratorOption: a function that applies the spread option to a generatorImpl
func WithSpread(spreadDeg float64) GeneratorOption {
	return func(g *generatorImpl) {
		g.spreadDeg = spreadDeg
	}
}

// WithSeed is an option builder that sets the noise seed. Two generators with
// the same configuration and seed produce identical grids.
//
// Parameters:
//   - seed: the noise seed
//
// Returns:
//   - GeneratorOption: a function that applies the seed option to a generatorImpl
func WithSeed(seed int64) GeneratorOption {
	return func(g *generatorImpl) {
		g.seed = seed
	}
}

// WithWorkers is an option builder that sets the worker count for parallel
// row generation. Defaults to NumCPU - 1.
//
// Parameters:
//   - workers: number of pool workers
//
// Returns:
//   - GeneratorOption: a function that applies the workers option to a generatorImpl
func WithWorkers(workers int) GeneratorOption {
	return func(g *generatorImpl) {
		if workers > 0 {
			g.workers = workers
		}
	}
}
