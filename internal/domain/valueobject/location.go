package valueobject

import (
	"math"

	"github.com/paulmach/orb"
)

// Location is a WGS84 fix as reported by a device. Accuracy is the reported
// radius in meters, when the device sent one.
type Location struct {
	Latitude  float64
	Longitude float64
	Accuracy  *float64
}

func NewLocation(lat, lng float64, accuracy *float64) *Location {
	return &Location{
		Latitude:  lat,
		Longitude: lng,
		Accuracy:  accuracy,
	}
}

// IsValid rejects non-finite or out of range coordinates and negative accuracy.
func (l *Location) IsValid() bool {
	return finite(l.Latitude) && l.Latitude >= -90 && l.Latitude <= 90 &&
		finite(l.Longitude) && l.Longitude >= -180 && l.Longitude <= 180 &&
		(l.Accuracy == nil || (finite(*l.Accuracy) && *l.Accuracy >= 0))
}

// Point returns the location in orb's lng/lat order.
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
