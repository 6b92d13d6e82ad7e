package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/valueobject"
)

type DeviceResponse struct {
	ID         uuid.UUID `json:"id"`
	IMEI       string    `json:"imei"`
	ICCID      *string   `json:"iccid"`
	Operator   string    `json:"operator"`
	RSRP       *string   `json:"rsrp"`
	Battery    *float64  `json:"battery"`
	Charging   bool      `json:"charging"`
	Motion     bool      `json:"motion"`
	Method     *string   `json:"method"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	Accuracy   *float64  `json:"accuracy"`
	MACs       string    `json:"macs"`
	DeviceTime time.Time `json:"device_time"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type DevicesListResponse struct {
	Devices    []DeviceResponse   `json:"devices"`
	Pagination PaginationResponse `json:"pagination"`
}

type TrackPointResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

type BoundsResponse struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

type TrackResponse struct {
	TotalCount int                  `json:"total_count"`
	Data       []TrackPointResponse `json:"data"`
	Bounds     *BoundsResponse      `json:"bounds"`
}

func DeviceFromEntity(d *entity.Device) DeviceResponse {
	resp := DeviceResponse{
		ID:         d.ID,
		IMEI:       d.IMEI,
		ICCID:      d.ICCID,
		Operator:   d.Operator,
		RSRP:       d.RSRP,
		Battery:    d.Battery,
		Charging:   d.Charging,
		Motion:     d.Motion,
		Method:     d.Method,
		MACs:       d.MACs,
		DeviceTime: d.DeviceTime,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}

	if d.Location != nil {
		resp.Latitude = &d.Location.Latitude
		resp.Longitude = &d.Location.Longitude
		resp.Accuracy = d.Location.Accuracy
	}

	return resp
}

func DevicesFromEntities(devices []entity.Device) []DeviceResponse {
	result := make([]DeviceResponse, 0, len(devices))
	for _, d := range devices {
		result = append(result, DeviceFromEntity(&d))
	}
	return result
}

// TrackFromEntities expects tracks that all carry a location.
func TrackFromEntities(tracks []entity.Track, bounds *valueobject.BoundingBox) TrackResponse {
	resp := TrackResponse{
		TotalCount: len(tracks),
		Data:       make([]TrackPointResponse, 0, len(tracks)),
	}

	for _, t := range tracks {
		if t.Location == nil {
			continue
		}
		resp.Data = append(resp.Data, TrackPointResponse{
			Latitude:  t.Location.Latitude,
			Longitude: t.Location.Longitude,
			Timestamp: t.DeviceTime,
		})
	}

	if bounds != nil {
		resp.Bounds = &BoundsResponse{
			MinLat: bounds.MinLat,
			MaxLat: bounds.MaxLat,
			MinLng: bounds.MinLng,
			MaxLng: bounds.MaxLng,
		}
	}

	return resp
}
