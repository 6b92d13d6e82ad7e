package analytics

const (
	teleportDistanceMeters = 100_000.0
	teleportWindowSeconds  = 600.0
	driftDistanceMeters    = 50.0
	maxSpeedMetersPerSec   = 55.0
	staleWindowSeconds     = 1800.0
	staleDistanceMeters    = 1000.0

	// LowConfidenceThreshold marks a summary as anomalous below this score.
	LowConfidenceThreshold = 70
)

// Confidence is the trust score of a fix relative to its predecessor.
type Confidence struct {
	Score    int
	Distance float64
	Bearing  float64
}

type movement struct {
	curr     Point
	distance float64
	elapsed  float64
}

func (m movement) speed() float64 {
	if m.elapsed <= 0 {
		return 0
	}
	return m.distance / m.elapsed
}

type rule struct {
	name    string
	applies func(m movement) bool
	apply   func(score int) int
}

func deduct(n int) func(int) int {
	return func(score int) int { return score - n }
}

// rules are evaluated in order; every matching rule applies.
var rules = []rule{
	{
		name:    "teleport",
		applies: func(m movement) bool { return m.distance > teleportDistanceMeters && m.elapsed < teleportWindowSeconds },
		apply:   func(int) int { return 0 },
	},
	{
		name:    "stationary_moved",
		applies: func(m movement) bool { return !m.curr.Motion && m.distance > driftDistanceMeters },
		apply:   deduct(40),
	},
	{
		name:    "implausible_speed",
		applies: func(m movement) bool { return m.speed() > maxSpeedMetersPerSec },
		apply:   deduct(40),
	},
	{
		name:    "stale_fix",
		applies: func(m movement) bool { return m.elapsed > staleWindowSeconds && m.distance > staleDistanceMeters },
		apply:   deduct(20),
	},
}

// Score rates curr given the previous fix. A nil prev is the first fix of a
// sequence and always scores 100.
func Score(prev *Point, curr Point) Confidence {
	if prev == nil {
		return Confidence{Score: 100}
	}

	m := movement{
		curr:     curr,
		distance: Distance(*prev, curr),
		elapsed:  elapsedSeconds(*prev, curr),
	}

	score := 100
	for _, r := range rules {
		if r.applies(m) {
			score = r.apply(score)
		}
	}

	return Confidence{
		Score:    clamp(score, 0, 100),
		Distance: m.distance,
		Bearing:  Bearing(*prev, curr),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
