package ai

import (
	"fmt"
	"strings"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/summarizer"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/analytics"
)

const systemPrompt = `You write short trip reports for GPS trackers.
Reply with a single JSON object and nothing else:
{"summary": string, "highlights": [string]}
"summary" is two or three sentences. "highlights" holds at most five short notes.
Only use the figures you are given.`

func buildPrompt(input summarizer.Input) string {
	s := input.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "Device: %s\n", input.IMEI)
	fmt.Fprintf(&b, "Period: %s to %s (UTC)\n",
		input.StartDate.Format("2006-01-02"), input.EndDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Points: %d\n", s.TotalPoints)
	fmt.Fprintf(&b, "Distance: %s\n", analytics.FormatDistanceMeters(s.TotalDistanceMeters))
	fmt.Fprintf(&b, "Elapsed time: %s\n", analytics.FormatDuration(s.TotalTimeSeconds))
	fmt.Fprintf(&b, "Average accuracy: %.1f m\n", s.AvgAccuracy)
	fmt.Fprintf(&b, "Activity: %s\n", s.MotionStatus)
	fmt.Fprintf(&b, "Last confidence: %d%%\n", s.LastConfidence)
	fmt.Fprintf(&b, "Last fix anomalous: %t\n", s.Anomalies)
	fmt.Fprintf(&b, "Drift detected: %t\n", s.PairwiseAnomalies)
	fmt.Fprintf(&b, "Last location: %.5f, %.5f (%s accuracy)\n",
		s.LastLocation.Latitude, s.LastLocation.Longitude, s.LastLocation.AccuracyLevel)

	if len(input.Timeline) > 0 {
		b.WriteString("Timeline:\n")
		for _, line := range input.Timeline {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return b.String()
}
