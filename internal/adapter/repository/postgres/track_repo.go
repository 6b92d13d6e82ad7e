package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/valueobject"
)

type TrackRepo struct {
	pool *pgxpool.Pool
}

func NewTrackRepo(pool *pgxpool.Pool) *TrackRepo {
	return &TrackRepo{pool: pool}
}

func (r *TrackRepo) ListInRange(ctx context.Context, deviceID uuid.UUID, from, until time.Time) ([]entity.Track, error) {
	query := `
		SELECT id, device_id, method, latitude, longitude, accuracy, device_time, motion, created_at
		FROM tracks
		WHERE device_id = $1 AND device_time >= $2 AND device_time < $3
		ORDER BY device_time ASC
	`
	rows, err := r.pool.Query(ctx, query, deviceID, from, until)
	if err != nil {
		return nil, fmt.Errorf("querying tracks: %w", err)
	}
	defer rows.Close()

	var tracks []entity.Track
	for rows.Next() {
		var track entity.Track
		var lat, lng, accuracy *float64

		if err := rows.Scan(
			&track.ID, &track.DeviceID, &track.Method, &lat, &lng, &accuracy,
			&track.DeviceTime, &track.Motion, &track.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning track: %w", err)
		}

		if lat != nil && lng != nil {
			track.Location = valueobject.NewLocation(*lat, *lng, accuracy)
		}
		tracks = append(tracks, track)
	}

	return tracks, rows.Err()
}
