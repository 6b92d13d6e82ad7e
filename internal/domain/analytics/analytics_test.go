package analytics_test

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/analytics"
)

// one meter of latitude, in degrees
const meterLat = 1.0 / 111194.93

var t0 = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func point(lat, lng float64, at time.Time, motion bool) analytics.Point {
	return analytics.Point{Latitude: lat, Longitude: lng, Timestamp: at, Motion: motion}
}

func ptr(v float64) *float64 {
	return &v
}

func TestDistance(t *testing.T) {
	t.Run("is zero for identical points", func(t *testing.T) {
		a := point(25.0330, 121.5654, t0, true)
		assert.Equal(t, 0.0, analytics.Distance(a, a))
	})

	t.Run("is symmetric", func(t *testing.T) {
		a := point(25.0330, 121.5654, t0, true)
		b := point(24.1477, 120.6736, t0, true)
		assert.InDelta(t, analytics.Distance(a, b), analytics.Distance(b, a), 1e-6)
	})

	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		a := point(0, 0, t0, true)
		b := point(0, 1, t0, true)
		assert.InDelta(t, 111194.93, analytics.Distance(a, b), 0.1)
	})
}

func TestBearing(t *testing.T) {
	origin := point(0, 0, t0, true)

	tests := []struct {
		name string
		to   analytics.Point
		want float64
	}{
		{"north", point(1, 0, t0, true), 0},
		{"east", point(0, 1, t0, true), 90},
		{"west", point(0, -1, t0, true), -90},
		{"south", point(-1, 0, t0, true), 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, analytics.Bearing(origin, tt.to), 1e-9)
		})
	}

	t.Run("identical points are stable", func(t *testing.T) {
		got := analytics.Bearing(origin, origin)
		assert.False(t, math.IsNaN(got))
		assert.Equal(t, 0.0, got)
	})
}

func TestScore(t *testing.T) {
	t.Run("first fix is fully trusted", func(t *testing.T) {
		got := analytics.Score(nil, point(10, 10, t0, false))
		assert.Equal(t, analytics.Confidence{Score: 100}, got)
	})

	t.Run("teleport drops to zero", func(t *testing.T) {
		prev := point(0, 0, t0, true)
		curr := point(150_000*meterLat, 0, t0.Add(300*time.Second), true)

		got := analytics.Score(&prev, curr)

		assert.Equal(t, 0, got.Score)
		assert.InDelta(t, 150_000, got.Distance, 1)
	})

	t.Run("stale fix deducts twenty", func(t *testing.T) {
		prev := point(0, 0, t0, true)
		curr := point(1500*meterLat, 0, t0.Add(2000*time.Second), true)

		assert.Equal(t, 80, analytics.Score(&prev, curr).Score)
	})

	t.Run("stationary fix that moved deducts forty", func(t *testing.T) {
		prev := point(0, 0, t0, true)
		curr := point(100*meterLat, 0, t0.Add(60*time.Second), false)

		assert.Equal(t, 60, analytics.Score(&prev, curr).Score)
	})

	t.Run("implausible speed deducts forty", func(t *testing.T) {
		prev := point(0, 0, t0, true)
		curr := point(1000*meterLat, 0, t0.Add(10*time.Second), true)

		assert.Equal(t, 60, analytics.Score(&prev, curr).Score)
	})

	t.Run("rules accumulate", func(t *testing.T) {
		prev := point(0, 0, t0, true)
		curr := point(1000*meterLat, 0, t0.Add(10*time.Second), false)

		assert.Equal(t, 20, analytics.Score(&prev, curr).Score)
	})

	t.Run("zero elapsed time is not treated as infinite speed", func(t *testing.T) {
		prev := point(0, 0, t0, true)
		curr := point(10*meterLat, 0, t0, true)

		assert.Equal(t, 100, analytics.Score(&prev, curr).Score)
	})

	t.Run("always within bounds", func(t *testing.T) {
		distances := []float64{0, 10, 60, 1200, 50_000, 200_000}
		gaps := []time.Duration{-time.Minute, 0, time.Second, 5 * time.Minute, time.Hour}

		for _, d := range distances {
			for _, gap := range gaps {
				for _, motion := range []bool{true, false} {
					prev := point(0, 0, t0, true)
					curr := point(d*meterLat, 0, t0.Add(gap), motion)

					got := analytics.Score(&prev, curr).Score
					assert.GreaterOrEqual(t, got, 0)
					assert.LessOrEqual(t, got, 100)
				}
			}
		}
	})
}

func TestHasPairwiseAnomaly(t *testing.T) {
	t.Run("stationary fix far from predecessor", func(t *testing.T) {
		points := []analytics.Point{
			point(0, 0, t0, true),
			point(80*meterLat, 0, t0.Add(time.Minute), false),
		}
		assert.True(t, analytics.HasPairwiseAnomaly(points))
	})

	t.Run("moving fixes are never flagged", func(t *testing.T) {
		points := []analytics.Point{
			point(0, 0, t0, true),
			point(800*meterLat, 0, t0.Add(time.Minute), true),
		}
		assert.False(t, analytics.HasPairwiseAnomaly(points))
	})

	t.Run("single point", func(t *testing.T) {
		assert.False(t, analytics.HasPairwiseAnomaly([]analytics.Point{point(0, 0, t0, false)}))
	})
}

func TestSummarize(t *testing.T) {
	t.Run("fails on empty input", func(t *testing.T) {
		summary, err := analytics.Summarize(nil)

		assert.Nil(t, summary)
		assert.ErrorIs(t, err, domain.ErrEmptyInput)
	})

	t.Run("fails on invalid point", func(t *testing.T) {
		points := []analytics.Point{
			point(0, 0, t0, true),
			point(math.NaN(), 0, t0.Add(time.Minute), true),
		}

		_, err := analytics.Summarize(points)

		require.ErrorIs(t, err, domain.ErrInvalidPoint)
		var pointErr *analytics.PointError
		require.True(t, errors.As(err, &pointErr))
		assert.Equal(t, 1, pointErr.Index)
	})

	t.Run("fails on missing timestamp", func(t *testing.T) {
		_, err := analytics.Summarize([]analytics.Point{point(0, 0, time.Time{}, true)})
		assert.ErrorIs(t, err, domain.ErrInvalidPoint)
	})

	t.Run("single point", func(t *testing.T) {
		summary, err := analytics.Summarize([]analytics.Point{point(25, 121, t0, false)})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.TotalPoints)
		assert.Equal(t, 0.0, summary.TotalDistanceMeters)
		assert.Equal(t, 0.0, summary.TotalTimeSeconds)
		assert.Equal(t, 100, summary.LastConfidence)
		assert.False(t, summary.Anomalies)
		assert.Equal(t, analytics.AccuracyUnknown, summary.LastLocation.AccuracyLevel)
	})

	t.Run("aggregates a trip", func(t *testing.T) {
		points := []analytics.Point{
			{Latitude: 0, Longitude: 0, Timestamp: t0, Motion: true},
			{Latitude: 100 * meterLat, Longitude: 0, Timestamp: t0.Add(time.Minute), Motion: true, Accuracy: ptr(10)},
			{Latitude: 300 * meterLat, Longitude: 0, Timestamp: t0.Add(3 * time.Minute), Motion: false, Accuracy: ptr(30)},
		}

		summary, err := analytics.Summarize(points)

		require.NoError(t, err)
		assert.Equal(t, 3, summary.TotalPoints)
		assert.InDelta(t, 300, summary.TotalDistanceMeters, 0.01)
		assert.Equal(t, 180.0, summary.TotalTimeSeconds)
		assert.Equal(t, 20.0, summary.AvgAccuracy)
		assert.Equal(t, analytics.MotionVeryActive, summary.MotionStatus)
		assert.Equal(t, 60, summary.LastConfidence)
		assert.True(t, summary.Anomalies)
		assert.True(t, summary.PairwiseAnomalies)
		assert.Equal(t, analytics.LastLocation{
			Latitude:      300 * meterLat,
			Longitude:     0,
			Motion:        false,
			AccuracyLevel: analytics.AccuracyMedium,
		}, summary.LastLocation)
	})

	t.Run("out of order timestamps never reduce total time", func(t *testing.T) {
		points := []analytics.Point{
			point(0, 0, t0.Add(10*time.Minute), true),
			point(0, 0, t0, true),
			point(0, 0, t0.Add(5*time.Minute), true),
		}

		summary, err := analytics.Summarize(points)

		require.NoError(t, err)
		assert.Equal(t, 300.0, summary.TotalTimeSeconds)
	})
}

func TestMotionStatus(t *testing.T) {
	tests := []struct {
		name   string
		motion []bool
		want   string
	}{
		{"mostly moving", []bool{true, true, false}, analytics.MotionVeryActive},
		{"balanced", []bool{true, false}, analytics.MotionNormal},
		{"mostly still", []bool{false, false, true}, analytics.MotionSedentary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := make([]analytics.Point, 0, len(tt.motion))
			for i, m := range tt.motion {
				points = append(points, point(0, 0, t0.Add(time.Duration(i)*time.Minute), m))
			}
			assert.Equal(t, tt.want, analytics.MotionStatus(points))
		})
	}
}

func TestAccuracy(t *testing.T) {
	t.Run("average ignores missing values", func(t *testing.T) {
		points := []analytics.Point{
			{Accuracy: ptr(5)},
			{},
			{Accuracy: ptr(15)},
		}
		assert.Equal(t, 10.0, analytics.AverageAccuracy(points))
	})

	t.Run("average of nothing is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, analytics.AverageAccuracy([]analytics.Point{{}, {}}))
	})

	t.Run("levels", func(t *testing.T) {
		assert.Equal(t, analytics.AccuracyUnknown, analytics.AccuracyLevel(nil))
		assert.Equal(t, analytics.AccuracyHigh, analytics.AccuracyLevel(ptr(19.9)))
		assert.Equal(t, analytics.AccuracyMedium, analytics.AccuracyLevel(ptr(20)))
		assert.Equal(t, analytics.AccuracyMedium, analytics.AccuracyLevel(ptr(49)))
		assert.Equal(t, analytics.AccuracyLow, analytics.AccuracyLevel(ptr(50)))
	})
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "500 m", analytics.FormatDistanceKm(0.5))
	assert.Equal(t, "0 m", analytics.FormatDistanceKm(0))
	assert.Equal(t, "1 km 234 m", analytics.FormatDistanceKm(1.234))
	assert.Equal(t, "12 km 0 m", analytics.FormatDistanceKm(12))
	assert.Equal(t, "2 km 500 m", analytics.FormatDistanceMeters(2500))

	assert.Equal(t, "1h 2m 5s", analytics.FormatDuration(3725))
	assert.Equal(t, "0h 0m 0s", analytics.FormatDuration(0))
	assert.Equal(t, "0h 5m 0s", analytics.FormatDuration(300.9))
}

func TestTimeline(t *testing.T) {
	t.Run("rest after resumed motion", func(t *testing.T) {
		points := []analytics.Point{
			point(25.0330, 121.5654, t0, false),
			point(25.0330+2*meterLat, 121.5654, t0.Add(5*time.Minute), true),
			point(25.0330+2*meterLat, 121.5654, t0.Add(10*time.Minute), false),
		}

		lines, err := analytics.TimelineText(points)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"- 08:00 started stationary",
			"- 08:05 resumed moving",
			"- 08:10 resting, lasted 0h 5m 0s",
		}, lines)
	})

	t.Run("arrived between moving fixes", func(t *testing.T) {
		points := []analytics.Point{
			point(0, 0, t0, true),
			point(2*meterLat, 0, t0.Add(5*time.Minute), true),
		}

		seq, err := analytics.Timeline(points)
		require.NoError(t, err)

		events := slices.Collect(seq)
		require.Len(t, events, 2)
		assert.Equal(t, analytics.EventTripStart, events[0].Kind)
		assert.Equal(t, "- 08:00 started moving", events[0].Text)
		assert.Equal(t, analytics.EventArrived, events[1].Kind)
		assert.Equal(t, "- 08:05 arrived, moved 2 m", events[1].String())
	})

	t.Run("sub-meter jitter is suppressed", func(t *testing.T) {
		points := []analytics.Point{
			point(0, 0, t0, true),
			point(0.4*meterLat, 0, t0.Add(time.Minute), true),
			point(0.4*meterLat, 0, t0.Add(2*time.Minute), false),
			point(0.4*meterLat, 0, t0.Add(3*time.Minute), false),
		}

		lines, err := analytics.TimelineText(points)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"- 08:00 started moving",
			"- 08:02 resting, lasted 0h 1m 0s",
		}, lines)
	})

	t.Run("stops when the consumer stops", func(t *testing.T) {
		points := []analytics.Point{
			point(0, 0, t0, false),
			point(0, 0, t0.Add(time.Minute), true),
			point(0, 0, t0.Add(2*time.Minute), false),
		}

		seq, err := analytics.Timeline(points)
		require.NoError(t, err)

		var kinds []analytics.EventKind
		for ev := range seq {
			kinds = append(kinds, ev.Kind)
			if len(kinds) == 2 {
				break
			}
		}
		assert.Equal(t, []analytics.EventKind{analytics.EventTripStart, analytics.EventResumedMotion}, kinds)
	})

	t.Run("out of order rest reports zero duration", func(t *testing.T) {
		points := []analytics.Point{
			point(0, 0, t0.Add(10*time.Minute), true),
			point(0, 0, t0, false),
		}

		lines, err := analytics.TimelineText(points)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"- 08:10 started moving",
			"- 08:00 resting, lasted 0h 0m 0s",
		}, lines)
	})

	t.Run("fails on empty input", func(t *testing.T) {
		seq, err := analytics.Timeline(nil)

		assert.Nil(t, seq)
		assert.ErrorIs(t, err, domain.ErrEmptyInput)
	})
}
