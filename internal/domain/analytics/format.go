package analytics

import (
	"fmt"
	"math"
)

// FormatDistanceKm renders a distance given in kilometers, e.g. "500 m" or
// "1 km 234 m".
func FormatDistanceKm(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int64(math.Round(km*1000)))
	}
	kmPart := math.Floor(km)
	mPart := math.Round((km - kmPart) * 1000)
	return fmt.Sprintf("%d km %d m", int64(kmPart), int64(mPart))
}

// FormatDistanceMeters is FormatDistanceKm for a value in meters.
func FormatDistanceMeters(meters float64) string {
	return FormatDistanceKm(meters / 1000)
}

// FormatDuration renders seconds as "{H}h {M}m {S}s".
func FormatDuration(seconds float64) string {
	total := int64(math.Floor(seconds))
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
