package report

import (
	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/summarizer"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/analytics"
)

// Document is the stored and archived form of a report.
type Document struct {
	Overview     Overview             `json:"overview"`
	Timeline     []string             `json:"timeline"`
	LastLocation LastLocation         `json:"last_location"`
	Confidence   int                  `json:"confidence"`
	Narrative    summarizer.Narrative `json:"narrative"`
}

type Overview struct {
	TotalPoints       int     `json:"total_points"`
	TotalDistance     string  `json:"total_distance"`
	TotalTime         string  `json:"total_time"`
	AvgAccuracy       float64 `json:"avg_accuracy"`
	MotionStatus      string  `json:"motion_status"`
	Anomalies         bool    `json:"anomalies"`
	PairwiseAnomalies bool    `json:"pairwise_anomalies"`
}

type LastLocation struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Motion        bool    `json:"motion"`
	AccuracyLevel string  `json:"accuracy_level"`
}

func newDocument(s *analytics.Summary, timeline []string, n *summarizer.Narrative) *Document {
	return &Document{
		Overview: Overview{
			TotalPoints:       s.TotalPoints,
			TotalDistance:     analytics.FormatDistanceMeters(s.TotalDistanceMeters),
			TotalTime:         analytics.FormatDuration(s.TotalTimeSeconds),
			AvgAccuracy:       s.AvgAccuracy,
			MotionStatus:      s.MotionStatus,
			Anomalies:         s.Anomalies,
			PairwiseAnomalies: s.PairwiseAnomalies,
		},
		Timeline: timeline,
		LastLocation: LastLocation{
			Latitude:      s.LastLocation.Latitude,
			Longitude:     s.LastLocation.Longitude,
			Motion:        s.LastLocation.Motion,
			AccuracyLevel: s.LastLocation.AccuracyLevel,
		},
		Confidence: s.LastConfidence,
		Narrative:  *n,
	}
}
