package device

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/trip-report-backend/internal/pkg/pagination"
)

type Service struct {
	deviceRepo repository.DeviceRepository
	trackRepo  repository.TrackRepository
}

func NewService(deviceRepo repository.DeviceRepository, trackRepo repository.TrackRepository) *Service {
	return &Service{
		deviceRepo: deviceRepo,
		trackRepo:  trackRepo,
	}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, imei string) (*entity.Device, error) {
	exists, err := s.deviceRepo.ExistsByIMEI(ctx, imei)
	if err != nil {
		return nil, fmt.Errorf("checking imei: %w", err)
	}
	if exists {
		return nil, domain.ErrDeviceAlreadyExists
	}

	device := entity.NewDevice(userID, imei)
	if err := s.deviceRepo.Create(ctx, device); err != nil {
		return nil, fmt.Errorf("creating device: %w", err)
	}

	return device, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, page, perPage int) ([]entity.Device, *pagination.Info, error) {
	devices, pageInfo, err := s.deviceRepo.List(ctx, userID, pagination.NewParams(page, perPage))
	if err != nil {
		return nil, nil, fmt.Errorf("listing devices: %w", err)
	}
	return devices, pageInfo, nil
}

func (s *Service) GetByID(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	if device.UserID != userID {
		return nil, domain.ErrForbidden
	}

	return device, nil
}

// Report applies a status message to the device and records it as a track.
func (s *Service) Report(ctx context.Context, userID, deviceID uuid.UUID, report entity.StatusReport) (*entity.Device, error) {
	if report.Location != nil && !report.Location.IsValid() {
		return nil, domain.ErrInvalidLocation
	}

	device, err := s.GetByID(ctx, userID, deviceID)
	if err != nil {
		return nil, err
	}

	track := device.Apply(report)
	if err := s.deviceRepo.SaveReport(ctx, device, track); err != nil {
		return nil, fmt.Errorf("saving report: %w", err)
	}

	return device, nil
}

func (s *Service) Delete(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.Delete(ctx, deviceID); err != nil {
		return fmt.Errorf("deleting device: %w", err)
	}

	return nil
}

type TrackResult struct {
	Tracks []entity.Track
	// Bounds is nil when no track carries a location.
	Bounds *valueobject.BoundingBox
}

// Track returns the located fixes of a device inside the date range.
func (s *Service) Track(ctx context.Context, userID, deviceID uuid.UUID, dateRange *valueobject.DateRange) (*TrackResult, error) {
	if !dateRange.IsValid() {
		return nil, domain.ErrInvalidDateRange
	}

	if _, err := s.GetByID(ctx, userID, deviceID); err != nil {
		return nil, err
	}

	tracks, err := s.trackRepo.ListInRange(ctx, deviceID, dateRange.Start, dateRange.Until())
	if err != nil {
		return nil, fmt.Errorf("listing tracks: %w", err)
	}

	located := make([]entity.Track, 0, len(tracks))
	locs := make([]valueobject.Location, 0, len(tracks))
	for _, t := range tracks {
		if !t.HasLocation() {
			continue
		}
		located = append(located, t)
		locs = append(locs, *t.Location)
	}

	result := &TrackResult{
		Tracks: located,
		Bounds: valueobject.Enclose(locs),
	}

	return result, nil
}
