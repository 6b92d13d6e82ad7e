package analytics

const (
	MotionVeryActive = "Very active"
	MotionNormal     = "Normal"
	MotionSedentary  = "Need to move around"

	AccuracyUnknown = "Unknown"
	AccuracyHigh    = "High"
	AccuracyMedium  = "Medium"
	AccuracyLow     = "Low"
)

type LastLocation struct {
	Latitude      float64
	Longitude     float64
	Motion        bool
	AccuracyLevel string
}

// Summary aggregates a whole trip.
type Summary struct {
	TotalPoints         int
	TotalDistanceMeters float64
	TotalTimeSeconds    float64
	AvgAccuracy         float64
	MotionStatus        string
	LastConfidence      int
	Anomalies           bool
	PairwiseAnomalies   bool
	LastLocation        LastLocation
}

// Summarize reduces an ordered point sequence into trip totals. It fails with
// domain.ErrEmptyInput for an empty slice and domain.ErrInvalidPoint when a
// fix lacks usable coordinates or a timestamp.
func Summarize(points []Point) (*Summary, error) {
	if err := validate(points); err != nil {
		return nil, err
	}

	var totalDistance, totalTime float64
	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1], points[i]
		totalDistance += Distance(prev, curr)
		totalTime += forwardSeconds(prev, curr)
	}

	last := points[len(points)-1]
	lastConfidence := 100
	if len(points) >= 2 {
		lastConfidence = Score(&points[len(points)-2], last).Score
	}

	return &Summary{
		TotalPoints:         len(points),
		TotalDistanceMeters: totalDistance,
		TotalTimeSeconds:    totalTime,
		AvgAccuracy:         AverageAccuracy(points),
		MotionStatus:        MotionStatus(points),
		LastConfidence:      lastConfidence,
		Anomalies:           IsLowConfidence(lastConfidence),
		PairwiseAnomalies:   HasPairwiseAnomaly(points),
		LastLocation: LastLocation{
			Latitude:      last.Latitude,
			Longitude:     last.Longitude,
			Motion:        last.Motion,
			AccuracyLevel: AccuracyLevel(last.Accuracy),
		},
	}, nil
}

// AverageAccuracy is the mean of the reported accuracies, ignoring fixes
// without one. It returns 0 when no fix reports accuracy.
func AverageAccuracy(points []Point) float64 {
	var sum float64
	var n int
	for _, p := range points {
		if p.Accuracy != nil {
			sum += *p.Accuracy
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func MotionStatus(points []Point) string {
	var moving int
	for _, p := range points {
		if p.Motion {
			moving++
		}
	}
	still := len(points) - moving

	switch {
	case moving > still:
		return MotionVeryActive
	case moving == still:
		return MotionNormal
	default:
		return MotionSedentary
	}
}

func AccuracyLevel(accuracy *float64) string {
	switch {
	case accuracy == nil:
		return AccuracyUnknown
	case *accuracy < 20:
		return AccuracyHigh
	case *accuracy < 50:
		return AccuracyMedium
	default:
		return AccuracyLow
	}
}
