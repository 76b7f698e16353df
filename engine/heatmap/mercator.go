package heatmap

import "math"

// earthRadius is the WGS84 equatorial radius in meters, the sphere radius
// used by the Web-Mercator projection.
const earthRadius = 6378137.0

// project maps a lon/lat pair (degrees) to Web-Mercator meters.
func project(lon, lat float64) (x, y float64) {
	x = earthRadius * lon * math.Pi / 180
	latRad := lat * math.Pi / 180
	y = earthRadius * math.Log(math.Tan(math.Pi/4+latRad/2))
	return x, y
}

// LocalMeters places a sample in scene space relative to a geographic center:
// x grows east and z grows south (negative z is north), matching the scene's
// right-handed ground plane. Distances are Web-Mercator meters, so they carry
// the projection's latitude-dependent scale inflation; acceptable for an
// overlay spanning a fraction of a degree.
//
// Parameters:
//   - sample: the sample to place
//   - centerLon, centerLat: the geographic origin of the scene, in degrees
//
// Returns:
//   - float32: scene x in meters
//   - float32: scene z in meters
func LocalMeters(sample Sample, centerLon, centerLat float64) (x, z float32) {
	sx, sy := project(sample.Lon, sample.Lat)
	cx, cy := project(centerLon, centerLat)
	return float32(sx - cx), float32(-(sy - cy))
}
