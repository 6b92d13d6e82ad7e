package valueobject_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain/valueobject"
)

func TestParseDateRange(t *testing.T) {
	t.Run("covers whole days", func(t *testing.T) {
		r, err := valueobject.ParseDateRange("2024-05-01", "2024-05-02")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), r.End)
		assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), r.Until())
		assert.True(t, r.IsValid())
	})

	t.Run("same day is valid", func(t *testing.T) {
		r, err := valueobject.ParseDateRange("2024-05-01", "2024-05-01")

		require.NoError(t, err)
		assert.True(t, r.IsValid())
	})

	t.Run("start after end is invalid", func(t *testing.T) {
		r, err := valueobject.ParseDateRange("2024-05-03", "2024-05-01")

		require.NoError(t, err)
		assert.False(t, r.IsValid())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		_, err := valueobject.ParseDateRange("2024/05/01", "2024-05-01")
		assert.Error(t, err)

		_, err = valueobject.ParseDateRange("2024-05-01", "01-05-2024")
		assert.Error(t, err)
	})
}

func TestLocation_IsValid(t *testing.T) {
	negative := -1.0

	assert.True(t, valueobject.NewLocation(25.03, 121.56, nil).IsValid())
	assert.False(t, valueobject.NewLocation(91, 0, nil).IsValid())
	assert.False(t, valueobject.NewLocation(0, -181, nil).IsValid())
	assert.False(t, valueobject.NewLocation(0, 0, &negative).IsValid())
	assert.False(t, valueobject.NewLocation(math.NaN(), 0, nil).IsValid())
	assert.False(t, valueobject.NewLocation(0, math.Inf(1), nil).IsValid())
}

func TestLocation_Point(t *testing.T) {
	p := valueobject.NewLocation(25.03, 121.56, nil).Point()

	assert.Equal(t, 121.56, p.Lon())
	assert.Equal(t, 25.03, p.Lat())
}

func TestBoundingBox(t *testing.T) {
	bb := valueobject.NewBoundingBox(24, 26, 120, 122)

	assert.True(t, bb.IsValid())
	assert.True(t, bb.Contains(25, 121))
	assert.False(t, bb.Contains(27, 121))
	assert.False(t, valueobject.NewBoundingBox(26, 24, 120, 122).IsValid())
}

func TestEnclose(t *testing.T) {
	assert.Nil(t, valueobject.Enclose(nil))

	bb := valueobject.Enclose([]valueobject.Location{
		{Latitude: 25.1, Longitude: 121.5},
		{Latitude: 24.9, Longitude: 121.7},
		{Latitude: 25.0, Longitude: 121.6},
	})
	assert.Equal(t, valueobject.NewBoundingBox(24.9, 25.1, 121.5, 121.7), bb)

	lat, lng := bb.Center()
	assert.InDelta(t, 25.0, lat, 1e-9)
	assert.InDelta(t, 121.6, lng, 1e-9)
}
