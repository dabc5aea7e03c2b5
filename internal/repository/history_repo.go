package repository

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ReportRun is one recorded aggregation: which batch, which field, and the
// headline figures. Documents themselves are never persisted.
type ReportRun struct {
	ID           int64     `json:"id"`
	BatchID      string    `json:"batch_id"`
	Field        string    `json:"field"`
	FileCount    int       `json:"file_count"`
	Total        float64   `json:"total"`
	MissingCount int       `json:"missing_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// HistoryRepository handles report-run database operations
type HistoryRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *sql.DB, logger *zap.Logger) *HistoryRepository {
	return &HistoryRepository{
		db:     db,
		logger: logger,
	}
}

// Record inserts a report run and fills in its assigned ID.
func (r *HistoryRepository) Record(run *ReportRun) error {
	query := `
		INSERT INTO report_runs (
			batch_id, field, file_count, total, missing_count
		) VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		run.BatchID,
		run.Field,
		run.FileCount,
		run.Total,
		run.MissingCount,
	)
	if err != nil {
		r.logger.Error("Failed to record report run", zap.Error(err))
		return fmt.Errorf("failed to record report run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	run.ID = id
	return nil
}

// ListRecent returns up to limit report runs, newest first.
func (r *HistoryRepository) ListRecent(limit int) ([]*ReportRun, error) {
	query := `
		SELECT id, batch_id, field, file_count, total, missing_count, created_at
		FROM report_runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		r.logger.Error("Failed to list report runs", zap.Error(err))
		return nil, fmt.Errorf("failed to list report runs: %w", err)
	}
	defer rows.Close()

	var runs []*ReportRun
	for rows.Next() {
		run := &ReportRun{}
		if err := rows.Scan(
			&run.ID,
			&run.BatchID,
			&run.Field,
			&run.FileCount,
			&run.Total,
			&run.MissingCount,
			&run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
