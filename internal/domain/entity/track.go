package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain/analytics"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/valueobject"
)

// Track is one historical fix of a device. Location is nil when the device
// reported status without coordinates.
type Track struct {
	ID         uuid.UUID
	DeviceID   uuid.UUID
	Method     *string
	Location   *valueobject.Location
	DeviceTime time.Time
	Motion     bool
	CreatedAt  time.Time
}

func NewTrack(deviceID uuid.UUID, method *string, loc *valueobject.Location, deviceTime time.Time, motion bool) *Track {
	return &Track{
		ID:         uuid.New(),
		DeviceID:   deviceID,
		Method:     method,
		Location:   loc,
		DeviceTime: deviceTime,
		Motion:     motion,
		CreatedAt:  time.Now().UTC(),
	}
}

func (t *Track) HasLocation() bool {
	return t.Location != nil
}

// Point converts the track to an analytics point. A track without a method
// yields an empty Method.
func (t *Track) Point() analytics.Point {
	var method analytics.Method
	if t.Method != nil {
		method = analytics.Method(*t.Method)
	}

	p := analytics.Point{
		Timestamp: t.DeviceTime,
		Motion:    t.Motion,
		Method:    method,
	}
	if t.Location != nil {
		p.Latitude = t.Location.Latitude
		p.Longitude = t.Location.Longitude
		p.Accuracy = t.Location.Accuracy
	}
	return p
}
