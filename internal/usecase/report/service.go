package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/summarizer"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/analytics"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/trip-report-backend/internal/pkg/pagination"
)

type Service struct {
	deviceRepo repository.DeviceRepository
	trackRepo  repository.TrackRepository
	reportRepo repository.ReportRepository
	summarizer summarizer.Summarizer
	archive    storage.ReportArchive
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewService wires the report generator. archive may be nil, in which case
// reports are only stored in the database.
func NewService(
	deviceRepo repository.DeviceRepository,
	trackRepo repository.TrackRepository,
	reportRepo repository.ReportRepository,
	summarizer summarizer.Summarizer,
	archive storage.ReportArchive,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Service {
	return &Service{
		deviceRepo: deviceRepo,
		trackRepo:  trackRepo,
		reportRepo: reportRepo,
		summarizer: summarizer,
		archive:    archive,
		metrics:    metrics,
		logger:     logger,
	}
}

type Result struct {
	Report   *entity.Report
	Document *Document
}

func (s *Service) Generate(ctx context.Context, userID, deviceID uuid.UUID, dateRange *valueobject.DateRange) (*Result, error) {
	if !dateRange.IsValid() {
		return nil, domain.ErrInvalidDateRange
	}

	device, err := s.ownedDevice(ctx, userID, deviceID)
	if err != nil {
		return nil, err
	}

	tracks, err := s.trackRepo.ListInRange(ctx, deviceID, dateRange.Start, dateRange.Until())
	if err != nil {
		return nil, s.fail(fmt.Errorf("listing tracks: %w", err))
	}

	points := make([]analytics.Point, 0, len(tracks))
	for _, t := range tracks {
		if t.HasLocation() {
			points = append(points, t.Point())
		}
	}
	if len(points) == 0 {
		s.metrics.ReportGenerated(observability.OutcomeNoTracks, 0)
		return nil, domain.ErrNoTracks
	}

	summary, err := analytics.Summarize(points)
	if err != nil {
		return nil, s.fail(fmt.Errorf("summarizing track: %w", err))
	}

	timeline, err := analytics.TimelineText(points)
	if err != nil {
		return nil, s.fail(fmt.Errorf("building timeline: %w", err))
	}

	start := time.Now()
	narrative, err := s.summarizer.Summarize(ctx, summarizer.Input{
		IMEI:      device.IMEI,
		StartDate: dateRange.Start,
		EndDate:   dateRange.End,
		Summary:   *summary,
		Timeline:  timeline,
	})
	s.metrics.ObserveSummarizer(time.Since(start), err)
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamFormat) {
			s.logger.Warn("summarizer returned unusable reply",
				zap.String("device_id", deviceID.String()),
				zap.Error(err),
			)
			s.metrics.ReportGenerated(observability.OutcomeUpstreamFormat, len(points))
			return nil, err
		}
		return nil, s.fail(fmt.Errorf("summarizing narrative: %w", err))
	}
	if narrative == nil {
		s.metrics.ReportGenerated(observability.OutcomeUpstreamFormat, len(points))
		return nil, fmt.Errorf("%w: empty narrative", domain.ErrUpstreamFormat)
	}

	doc := newDocument(summary, timeline, narrative)
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, s.fail(fmt.Errorf("encoding report: %w", err))
	}

	report := entity.NewReport(deviceID, dateRange.Start, dateRange.End, payload, summary.LastConfidence)
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, s.fail(fmt.Errorf("storing report: %w", err))
	}

	s.archiveReport(ctx, report)
	s.metrics.ReportGenerated(observability.OutcomeSuccess, len(points))

	return &Result{Report: report, Document: doc}, nil
}

func (s *Service) History(ctx context.Context, userID, deviceID uuid.UUID, page, perPage int) ([]entity.Report, *pagination.Info, error) {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return nil, nil, err
	}

	reports, pageInfo, err := s.reportRepo.List(ctx, deviceID, pagination.NewParams(page, perPage))
	if err != nil {
		return nil, nil, fmt.Errorf("listing reports: %w", err)
	}
	return reports, pageInfo, nil
}

func (s *Service) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if device.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return device, nil
}

// archiveReport logs and counts failures instead of returning them.
func (s *Service) archiveReport(ctx context.Context, report *entity.Report) {
	if s.archive == nil {
		return
	}

	key := fmt.Sprintf("%s/%s.json", report.DeviceID, report.ID)
	if err := s.archive.Put(ctx, key, report.Summary); err != nil {
		s.metrics.ArchiveFailed()
		s.logger.Warn("archiving report failed",
			zap.String("report_id", report.ID.String()),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (s *Service) fail(err error) error {
	s.metrics.ReportGenerated(observability.OutcomeError, 0)
	return err
}
