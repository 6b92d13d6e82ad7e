package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain/analytics"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/valueobject"
)

func TestDevice_Apply(t *testing.T) {
	t.Run("updates snapshot and returns track", func(t *testing.T) {
		device := entity.NewDevice(uuid.New(), "356938035643809")
		battery := 87.0
		method := "wifi"
		at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
		loc := valueobject.NewLocation(25.03, 121.56, nil)

		track := device.Apply(entity.StatusReport{
			Battery:    &battery,
			Charging:   true,
			Motion:     true,
			Method:     &method,
			Location:   loc,
			DeviceTime: at,
		})

		assert.Equal(t, &battery, device.Battery)
		assert.True(t, device.Charging)
		assert.True(t, device.Motion)
		assert.Equal(t, loc, device.Location)
		assert.Equal(t, at, device.DeviceTime)

		require.NotNil(t, track)
		assert.Equal(t, device.ID, track.DeviceID)
		assert.Equal(t, at, track.DeviceTime)
		assert.True(t, track.HasLocation())
	})

	t.Run("keeps previous location when report has none", func(t *testing.T) {
		device := entity.NewDevice(uuid.New(), "356938035643809")
		device.Location = valueobject.NewLocation(1, 2, nil)

		track := device.Apply(entity.StatusReport{DeviceTime: time.Now()})

		assert.Equal(t, 1.0, device.Location.Latitude)
		assert.False(t, track.HasLocation())
	})
}

func TestTrack_Point(t *testing.T) {
	accuracy := 12.0
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("maps wifi fixes", func(t *testing.T) {
		method := "wifi"
		track := entity.NewTrack(uuid.New(), &method, valueobject.NewLocation(25, 121, &accuracy), at, true)

		p := track.Point()

		assert.Equal(t, analytics.Point{
			Latitude:  25,
			Longitude: 121,
			Timestamp: at,
			Motion:    true,
			Method:    analytics.MethodWiFi,
			Accuracy:  &accuracy,
		}, p)
	})

	t.Run("keeps reported method", func(t *testing.T) {
		method := "lbs"
		track := entity.NewTrack(uuid.New(), &method, valueobject.NewLocation(25, 121, nil), at, false)

		assert.Equal(t, analytics.Method("lbs"), track.Point().Method)
	})

	t.Run("missing method stays empty", func(t *testing.T) {
		track := entity.NewTrack(uuid.New(), nil, valueobject.NewLocation(25, 121, nil), at, false)

		assert.Empty(t, track.Point().Method)
	})
}
