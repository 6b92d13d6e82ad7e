package summarizer

import (
	"context"
	"time"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain/analytics"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/summarizer_mocks.go -package=mocks

type Input struct {
	IMEI      string
	StartDate time.Time
	EndDate   time.Time
	Summary   analytics.Summary
	Timeline  []string
}

type Narrative struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

// Summarizer turns computed trip statistics into prose. Implementations
// return domain.ErrUpstreamFormat when the upstream reply cannot be used.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (*Narrative, error)
}
