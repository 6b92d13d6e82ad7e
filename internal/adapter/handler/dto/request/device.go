package request

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/valueobject"
)

const deviceTimeLayout = "2006-01-02 15:04:05"

type CreateDeviceRequest struct {
	IMEI string `json:"imei" binding:"required,min=15,max=100"`
}

type ListRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

type DateRangeRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

// ReportStatusRequest is the status message trackers PUT to a device.
// Trackers are loose about types, so several fields accept more than one
// JSON shape.
type ReportStatusRequest struct {
	Battery    *json.Number `json:"battery"`
	Charging   ChargingFlag `json:"charging"`
	Motion     MotionFlag   `json:"motion"`
	Method     *LooseString `json:"method"`
	RSRP       *LooseString `json:"rsrp"`
	Latitude   *float64     `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude  *float64     `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Accuracy   *float64     `json:"accuracy" binding:"omitempty,min=0"`
	MACs       *string      `json:"macs"`
	DeviceTime string       `json:"device_time"`
}

// ToStatusReport converts the request; now is used when device_time is
// missing or unparseable.
func (r ReportStatusRequest) ToStatusReport(now time.Time) (entity.StatusReport, error) {
	report := entity.StatusReport{
		Charging:   bool(r.Charging),
		Motion:     bool(r.Motion),
		MACs:       r.MACs,
		Method:     r.Method.ptr(),
		RSRP:       r.RSRP.ptr(),
		DeviceTime: ParseDeviceTime(r.DeviceTime, now),
	}

	if r.Battery != nil {
		battery, err := r.Battery.Float64()
		if err != nil {
			return entity.StatusReport{}, fmt.Errorf("battery must be a number")
		}
		report.Battery = &battery
	}

	if r.Latitude != nil && r.Longitude != nil {
		report.Location = valueobject.NewLocation(*r.Latitude, *r.Longitude, r.Accuracy)
	}

	return report, nil
}

// ParseDeviceTime accepts RFC3339 or "YYYY-MM-DD HH:MM:SS" in UTC.
func ParseDeviceTime(raw string, fallback time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC()
	}
	if t, err := time.ParseInLocation(deviceTimeLayout, raw, time.UTC); err == nil {
		return t
	}
	return fallback
}

// ChargingFlag is true for true, "true" or "Active".
type ChargingFlag bool

func (f *ChargingFlag) UnmarshalJSON(data []byte) error {
	*f = ChargingFlag(flagValue(data, "Active"))
	return nil
}

// MotionFlag is true for true, "true" or "moving".
type MotionFlag bool

func (f *MotionFlag) UnmarshalJSON(data []byte) error {
	*f = MotionFlag(flagValue(data, "moving"))
	return nil
}

func flagValue(data []byte, word string) bool {
	switch string(data) {
	case "true", `"true"`, `"` + word + `"`:
		return true
	}
	return false
}

// LooseString takes a JSON string or any scalar and keeps its text.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = LooseString(str)
		return nil
	}
	*s = LooseString(strings.TrimSpace(string(data)))
	return nil
}

func (s *LooseString) ptr() *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
