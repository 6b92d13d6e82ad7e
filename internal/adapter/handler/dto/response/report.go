package response

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/summarizer"
	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
	"github.com/marcos-nsantos/trip-report-backend/internal/usecase/report"
)

type ReportResponse struct {
	Success      bool                 `json:"success"`
	ReportID     uuid.UUID            `json:"report_id"`
	Overview     report.Overview      `json:"overview"`
	Timeline     []string             `json:"timeline"`
	LastLocation report.LastLocation  `json:"last_location"`
	Confidence   int                  `json:"confidence"`
	Narrative    summarizer.Narrative `json:"narrative"`
}

type ReportHistoryItem struct {
	ID         uuid.UUID       `json:"id"`
	DeviceID   uuid.UUID       `json:"device_id"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
	Confidence int             `json:"confidence"`
	Summary    json.RawMessage `json:"summary" swaggertype:"object"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ReportHistoryResponse struct {
	Reports    []ReportHistoryItem `json:"reports"`
	Pagination PaginationResponse  `json:"pagination"`
}

func ReportFromResult(r *report.Result) ReportResponse {
	return ReportResponse{
		Success:      true,
		ReportID:     r.Report.ID,
		Overview:     r.Document.Overview,
		Timeline:     r.Document.Timeline,
		LastLocation: r.Document.LastLocation,
		Confidence:   r.Document.Confidence,
		Narrative:    r.Document.Narrative,
	}
}

func ReportsFromEntities(reports []entity.Report) []ReportHistoryItem {
	result := make([]ReportHistoryItem, 0, len(reports))
	for _, r := range reports {
		result = append(result, ReportHistoryItem{
			ID:         r.ID,
			DeviceID:   r.DeviceID,
			StartDate:  r.StartDate,
			EndDate:    r.EndDate,
			Confidence: r.Confidence,
			Summary:    r.Summary,
			CreatedAt:  r.CreatedAt,
		})
	}
	return result
}
