package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/trip-report-backend/internal/pkg/pagination"
)

const deviceColumns = `id, user_id, imei, iccid, operator, rsrp, battery, charging, motion, method,
	latitude, longitude, accuracy, macs, device_time, created_at, updated_at`

type DeviceRepo struct {
	pool *pgxpool.Pool
}

func NewDeviceRepo(pool *pgxpool.Pool) *DeviceRepo {
	return &DeviceRepo{pool: pool}
}

func (r *DeviceRepo) Create(ctx context.Context, device *entity.Device) error {
	query := `
		INSERT INTO devices (` + deviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	lat, lng, accuracy := locationArgs(device.Location)

	_, err := r.pool.Exec(ctx, query,
		device.ID, device.UserID, device.IMEI, device.ICCID, device.Operator, device.RSRP,
		device.Battery, device.Charging, device.Motion, device.Method,
		lat, lng, accuracy, device.MACs, device.DeviceTime, device.CreatedAt, device.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDeviceAlreadyExists
		}
		return fmt.Errorf("inserting device: %w", err)
	}
	return nil
}

func (r *DeviceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`

	device, err := scanDevice(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDeviceNotFound
		}
		return nil, fmt.Errorf("querying device: %w", err)
	}
	return device, nil
}

func (r *DeviceRepo) ExistsByIMEI(ctx context.Context, imei string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM devices WHERE imei = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, imei).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking imei existence: %w", err)
	}
	return exists, nil
}

func (r *DeviceRepo) List(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]entity.Device, *pagination.Info, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM devices WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting devices: %w", err)
	}

	query := `
		SELECT ` + deviceColumns + `
		FROM devices
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, userID, params.Limit(), params.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("querying devices: %w", err)
	}
	defer rows.Close()

	devices := make([]entity.Device, 0, params.Limit())
	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("scanning device: %w", err)
		}
		devices = append(devices, *device)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating devices: %w", err)
	}

	return devices, params.Info(total), nil
}

func (r *DeviceRepo) SaveReport(ctx context.Context, device *entity.Device, track *entity.Track) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	lat, lng, accuracy := locationArgs(device.Location)
	result, err := tx.Exec(ctx, `
		UPDATE devices
		SET rsrp = $2, battery = $3, charging = $4, motion = $5, method = $6,
			latitude = $7, longitude = $8, accuracy = $9, macs = $10, device_time = $11, updated_at = $12
		WHERE id = $1
	`,
		device.ID, device.RSRP, device.Battery, device.Charging, device.Motion, device.Method,
		lat, lng, accuracy, device.MACs, device.DeviceTime, device.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating device: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrDeviceNotFound
	}

	lat, lng, accuracy = locationArgs(track.Location)
	_, err = tx.Exec(ctx, `
		INSERT INTO tracks (id, device_id, method, latitude, longitude, accuracy, device_time, motion, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		track.ID, track.DeviceID, track.Method, lat, lng, accuracy, track.DeviceTime, track.Motion, track.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting track: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *DeviceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tracks WHERE device_id = $1`, id); err != nil {
		return fmt.Errorf("deleting tracks: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM reports WHERE device_id = $1`, id); err != nil {
		return fmt.Errorf("deleting reports: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting device: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrDeviceNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func scanDevice(row pgx.Row) (*entity.Device, error) {
	var device entity.Device
	var lat, lng, accuracy *float64

	err := row.Scan(
		&device.ID, &device.UserID, &device.IMEI, &device.ICCID, &device.Operator, &device.RSRP,
		&device.Battery, &device.Charging, &device.Motion, &device.Method,
		&lat, &lng, &accuracy, &device.MACs, &device.DeviceTime, &device.CreatedAt, &device.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lat != nil && lng != nil {
		device.Location = valueobject.NewLocation(*lat, *lng, accuracy)
	}
	return &device, nil
}

func locationArgs(loc *valueobject.Location) (lat, lng, accuracy *float64) {
	if loc == nil {
		return nil, nil, nil
	}
	return &loc.Latitude, &loc.Longitude, loc.Accuracy
}
