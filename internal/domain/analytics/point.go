// Package analytics derives trip statistics, per-fix confidence scores,
// anomaly flags and a narrative timeline from an ordered batch of location
// fixes. Every function is pure: callers own the input slice and receive
// freshly computed values.
package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain"
)

type Method string

const (
	MethodGPS  Method = "gps"
	MethodWiFi Method = "wifi"
)

// Point is a single device fix. Sequences must be sorted by Timestamp ascending.
type Point struct {
	Latitude  float64
	Longitude float64
	Timestamp time.Time
	Motion    bool
	Method    Method
	Accuracy  *float64
}

// PointError reports which fix in a sequence failed validation.
type PointError struct {
	Index  int
	Reason string
}

func (e *PointError) Error() string {
	return fmt.Sprintf("point %d: %s", e.Index, e.Reason)
}

func (e *PointError) Unwrap() error {
	return domain.ErrInvalidPoint
}

func validate(points []Point) error {
	if len(points) == 0 {
		return domain.ErrEmptyInput
	}
	for i, p := range points {
		switch {
		case math.IsNaN(p.Latitude) || math.IsInf(p.Latitude, 0) || p.Latitude < -90 || p.Latitude > 90:
			return &PointError{Index: i, Reason: "invalid latitude"}
		case math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) || p.Longitude < -180 || p.Longitude > 180:
			return &PointError{Index: i, Reason: "invalid longitude"}
		case p.Timestamp.IsZero():
			return &PointError{Index: i, Reason: "missing timestamp"}
		}
	}
	return nil
}

// elapsedSeconds returns the signed time between two fixes.
func elapsedSeconds(prev, curr Point) float64 {
	return curr.Timestamp.Sub(prev.Timestamp).Seconds()
}

// forwardSeconds is elapsedSeconds with out-of-order steps counted as zero.
func forwardSeconds(prev, curr Point) float64 {
	return max(elapsedSeconds(prev, curr), 0)
}
