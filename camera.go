package eeviewer

// Camera is a map view position.
type Camera struct {
	Lat, Lng float64
	Zoom     int
}

// DefaultCamera is the view used when no previous position is known.
var DefaultCamera = Camera{Lat: 49.61, Lng: 6.13, Zoom: 4}
