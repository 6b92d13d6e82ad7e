package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/trip-report-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/trip-report-backend/internal/usecase/auth"
	"github.com/marcos-nsantos/trip-report-backend/internal/usecase/device"
	"github.com/marcos-nsantos/trip-report-backend/internal/usecase/report"
	"github.com/marcos-nsantos/trip-report-backend/internal/usecase/user"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type AuthService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.TokenPair, *entity.User, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.TokenPair, *entity.User, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type UserService interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, input user.UpdateInput) (*entity.User, error)
}

type DeviceService interface {
	Create(ctx context.Context, userID uuid.UUID, imei string) (*entity.Device, error)
	List(ctx context.Context, userID uuid.UUID, page, perPage int) ([]entity.Device, *pagination.Info, error)
	GetByID(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error)
	Report(ctx context.Context, userID, deviceID uuid.UUID, status entity.StatusReport) (*entity.Device, error)
	Delete(ctx context.Context, userID, deviceID uuid.UUID) error
	Track(ctx context.Context, userID, deviceID uuid.UUID, dateRange *valueobject.DateRange) (*device.TrackResult, error)
}

type ReportService interface {
	Generate(ctx context.Context, userID, deviceID uuid.UUID, dateRange *valueobject.DateRange) (*report.Result, error)
	History(ctx context.Context, userID, deviceID uuid.UUID, page, perPage int) ([]entity.Report, *pagination.Info, error)
}
