package analytics

import (
	"fmt"
	"iter"
	"math"
	"time"
)

type EventKind string

const (
	EventTripStart     EventKind = "trip-start"
	EventResumedMotion EventKind = "resumed-motion"
	EventRestStarted   EventKind = "rest-started"
	EventArrived       EventKind = "arrived"
)

type TimelineEvent struct {
	Kind EventKind
	At   time.Time
	Text string
}

func (e TimelineEvent) String() string {
	return e.Text
}

// Timeline validates points and returns the narrative events in
// chronological order. The sequence is computed lazily in a single pass.
func Timeline(points []Point) (iter.Seq[TimelineEvent], error) {
	if err := validate(points); err != nil {
		return nil, err
	}

	return func(yield func(TimelineEvent) bool) {
		var prev *Point
		for i := range points {
			curr := points[i]
			if ev, ok := nextEvent(prev, curr); ok {
				if !yield(ev) {
					return
				}
			}
			prev = &points[i]
		}
	}, nil
}

// TimelineText collects the timeline into display lines.
func TimelineText(points []Point) ([]string, error) {
	seq, err := Timeline(points)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(points))
	for ev := range seq {
		lines = append(lines, ev.Text)
	}
	return lines, nil
}

func nextEvent(prev *Point, curr Point) (TimelineEvent, bool) {
	at := curr.Timestamp.UTC()
	clock := at.Format("15:04")

	if prev == nil {
		state := "stationary"
		if curr.Motion {
			state = "moving"
		}
		return TimelineEvent{
			Kind: EventTripStart,
			At:   at,
			Text: fmt.Sprintf("- %s started %s", clock, state),
		}, true
	}

	switch {
	case curr.Motion && !prev.Motion:
		return TimelineEvent{
			Kind: EventResumedMotion,
			At:   at,
			Text: fmt.Sprintf("- %s resumed moving", clock),
		}, true
	case !curr.Motion && prev.Motion:
		elapsed := math.Round(forwardSeconds(*prev, curr))
		return TimelineEvent{
			Kind: EventRestStarted,
			At:   at,
			Text: fmt.Sprintf("- %s resting, lasted %s", clock, FormatDuration(elapsed)),
		}, true
	case curr.Motion && prev.Motion:
		meters := int64(math.Round(Distance(*prev, curr)))
		if meters < 1 {
			return TimelineEvent{}, false
		}
		return TimelineEvent{
			Kind: EventArrived,
			At:   at,
			Text: fmt.Sprintf("- %s arrived, moved %d m", clock, meters),
		}, true
	}

	return TimelineEvent{}, false
}
