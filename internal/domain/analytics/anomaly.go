package analytics

// HasPairwiseAnomaly reports whether any fix claims to be stationary while
// having moved more than 50 m from its predecessor.
func HasPairwiseAnomaly(points []Point) bool {
	for i := 1; i < len(points); i++ {
		if isDrift(points[i-1], points[i]) {
			return true
		}
	}
	return false
}

func isDrift(prev, curr Point) bool {
	return !curr.Motion && Distance(prev, curr) > driftDistanceMeters
}

// IsLowConfidence is the summary-level anomaly check.
func IsLowConfidence(score int) bool {
	return score < LowConfidenceThreshold
}
