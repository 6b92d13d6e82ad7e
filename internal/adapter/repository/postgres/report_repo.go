package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/trip-report-backend/internal/domain/entity"
	"github.com/marcos-nsantos/trip-report-backend/internal/pkg/pagination"
)

type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

func (r *ReportRepo) Create(ctx context.Context, report *entity.Report) error {
	query := `
		INSERT INTO reports (id, device_id, start_date, end_date, summary, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		report.ID, report.DeviceID, report.StartDate, report.EndDate,
		[]byte(report.Summary), report.Confidence, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting report: %w", err)
	}
	return nil
}

func (r *ReportRepo) List(ctx context.Context, deviceID uuid.UUID, params pagination.Params) ([]entity.Report, *pagination.Info, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reports WHERE device_id = $1`, deviceID).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting reports: %w", err)
	}

	query := `
		SELECT id, device_id, start_date, end_date, summary, confidence, created_at
		FROM reports
		WHERE device_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, deviceID, params.Limit(), params.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	reports := make([]entity.Report, 0, params.Limit())
	for rows.Next() {
		var report entity.Report
		var summary []byte
		if err := rows.Scan(
			&report.ID, &report.DeviceID, &report.StartDate, &report.EndDate,
			&summary, &report.Confidence, &report.CreatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("scanning report: %w", err)
		}
		report.Summary = summary
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating reports: %w", err)
	}

	return reports, params.Info(total), nil
}
