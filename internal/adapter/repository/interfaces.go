package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
	"github.com/marcos-nsantos/trip-report-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByIdentifier(ctx context.Context, identifier string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ExistsByIdentifier(ctx context.Context, identifier string) (bool, error)
}

type DeviceRepository interface {
	Create(ctx context.Context, device *entity.Device) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)
	ExistsByIMEI(ctx context.Context, imei string) (bool, error)
	List(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]entity.Device, *pagination.Info, error)
	// SaveReport updates the device snapshot and appends the track in one transaction.
	SaveReport(ctx context.Context, device *entity.Device, track *entity.Track) error
	// Delete removes the device together with its tracks and reports.
	Delete(ctx context.Context, id uuid.UUID) error
}

type TrackRepository interface {
	// ListInRange returns tracks with from <= device_time < until, ordered by
	// device time ascending.
	ListInRange(ctx context.Context, deviceID uuid.UUID, from, until time.Time) ([]entity.Track, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	List(ctx context.Context, deviceID uuid.UUID, params pagination.Params) ([]entity.Report, *pagination.Info, error)
}

type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*entity.RefreshToken, error)
	RevokeByUserID(ctx context.Context, userID uuid.UUID) error
	Revoke(ctx context.Context, id uuid.UUID) error
	// DeleteExpired removes expired and revoked tokens and reports how many.
	DeleteExpired(ctx context.Context) (int64, error)
}
