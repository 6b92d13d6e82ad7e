package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Report is a stored trip report. Summary holds the serialized overview,
// narrative and timeline exactly as returned to the client.
type Report struct {
	ID         uuid.UUID
	DeviceID   uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Summary    json.RawMessage
	Confidence int
	CreatedAt  time.Time
}

func NewReport(deviceID uuid.UUID, start, end time.Time, summary json.RawMessage, confidence int) *Report {
	return &Report{
		ID:         uuid.New(),
		DeviceID:   deviceID,
		StartDate:  start,
		EndDate:    end,
		Summary:    summary,
		Confidence: confidence,
		CreatedAt:  time.Now().UTC(),
	}
}
