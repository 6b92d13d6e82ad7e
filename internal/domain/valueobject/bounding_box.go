package valueobject

import "github.com/paulmach/orb"

// BoundingBox is the lat/lng rectangle enclosing a set of fixes.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

func NewBoundingBox(minLat, maxLat, minLng, maxLng float64) *BoundingBox {
	return &BoundingBox{
		MinLat: minLat,
		MaxLat: maxLat,
		MinLng: minLng,
		MaxLng: maxLng,
	}
}

// Enclose returns the bounds of locs, or nil when locs is empty.
func Enclose(locs []Location) *BoundingBox {
	if len(locs) == 0 {
		return nil
	}

	points := make(orb.MultiPoint, 0, len(locs))
	for _, l := range locs {
		points = append(points, l.Point())
	}

	b := points.Bound()
	return NewBoundingBox(b.Min.Lat(), b.Max.Lat(), b.Min.Lon(), b.Max.Lon())
}

func (bb *BoundingBox) IsValid() bool {
	return bb.MinLat <= bb.MaxLat &&
		bb.MinLng <= bb.MaxLng &&
		bb.MinLat >= -90 && bb.MaxLat <= 90 &&
		bb.MinLng >= -180 && bb.MaxLng <= 180
}

func (bb *BoundingBox) Contains(lat, lng float64) bool {
	return bb.bound().Contains(orb.Point{lng, lat})
}

// Center returns the midpoint of the box as (lat, lng).
func (bb *BoundingBox) Center() (float64, float64) {
	c := bb.bound().Center()
	return c.Lat(), c.Lon()
}

func (bb *BoundingBox) bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{bb.MinLng, bb.MinLat},
		Max: orb.Point{bb.MaxLng, bb.MaxLat},
	}
}
