package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain/valueobject"
)

const DefaultOperator = "1"

// Device is a tracker registered by a user. Its location fields hold the most
// recent report; the full history lives in Track rows.
type Device struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	IMEI       string
	ICCID      *string
	Operator   string
	RSRP       *string
	Battery    *float64
	Charging   bool
	Motion     bool
	Method     *string
	Location   *valueobject.Location
	MACs       string
	DeviceTime time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewDevice(userID uuid.UUID, imei string) *Device {
	now := time.Now().UTC()
	return &Device{
		ID:         uuid.New(),
		UserID:     userID,
		IMEI:       imei,
		Operator:   DefaultOperator,
		DeviceTime: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// StatusReport is a single status message sent by a tracker.
type StatusReport struct {
	Battery    *float64
	Charging   bool
	Motion     bool
	Method     *string
	RSRP       *string
	MACs       *string
	Location   *valueobject.Location
	DeviceTime time.Time
}

// Apply copies the report onto the device snapshot and returns the matching
// track row.
func (d *Device) Apply(r StatusReport) *Track {
	if r.Battery != nil {
		d.Battery = r.Battery
	}
	if r.Method != nil {
		d.Method = r.Method
	}
	if r.RSRP != nil {
		d.RSRP = r.RSRP
	}
	if r.MACs != nil {
		d.MACs = *r.MACs
	}
	if r.Location != nil {
		d.Location = r.Location
	}
	d.Charging = r.Charging
	d.Motion = r.Motion
	d.DeviceTime = r.DeviceTime
	d.UpdatedAt = time.Now().UTC()

	return NewTrack(d.ID, r.Method, r.Location, r.DeviceTime, r.Motion)
}
