package ai

import (
	"context"
	"fmt"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/summarizer"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/analytics"
)

// TemplateSummarizer builds the narrative locally. It backs the service when
// no OpenAI key is configured.
type TemplateSummarizer struct{}

func NewTemplateSummarizer() *TemplateSummarizer {
	return &TemplateSummarizer{}
}

func (TemplateSummarizer) Summarize(_ context.Context, input summarizer.Input) (*summarizer.Narrative, error) {
	s := input.Summary

	state := "stationary"
	if s.LastLocation.Motion {
		state = "moving"
	}

	summary := fmt.Sprintf(
		"Recorded %d location points covering %s over %s. The device was last seen %s at (%.5f, %.5f) with %d%% confidence.",
		s.TotalPoints,
		analytics.FormatDistanceMeters(s.TotalDistanceMeters),
		analytics.FormatDuration(s.TotalTimeSeconds),
		state,
		s.LastLocation.Latitude,
		s.LastLocation.Longitude,
		s.LastConfidence,
	)

	highlights := []string{fmt.Sprintf("Activity level: %s", s.MotionStatus)}
	if s.Anomalies {
		highlights = append(highlights, "The last fix has low confidence")
	}
	if s.PairwiseAnomalies {
		highlights = append(highlights, "Position drift detected while stationary")
	}
	if len(input.Timeline) > 0 {
		highlights = append(highlights, fmt.Sprintf("%d timeline events", len(input.Timeline)))
	}

	return &summarizer.Narrative{Summary: summary, Highlights: highlights}, nil
}
