package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
)

type progressRepository struct {
	db *sqlx.DB
}

func NewProgressRepository(db *sqlx.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

// CreateBatch inserts every entry of one form submission inside a single
// transaction, so a mid-batch failure leaves no partial log.
func (r *progressRepository) CreateBatch(ctx context.Context, userID int64, patientID *int64, entries []model.ProgressEntryInput) ([]model.ProgressEntry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO clinical_progress_logs (
			patient_id, recorded_by_user_id, action, notes,
			signature_text, signature_image, qualification
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING
			log_id, patient_id, recorded_by_user_id, action, notes,
			signature_text, signature_image, qualification,
			TO_CHAR(created_at, 'YYYY-MM-DD HH24:MI') AS created_at
	`

	saved := make([]model.ProgressEntry, 0, len(entries))
	for _, e := range entries {
		var row model.ProgressEntry
		err := tx.GetContext(ctx, &row, query,
			patientID,
			userID,
			e.Action,
			e.Notes,
			nullString(e.SignatureText),
			nullString(e.SignatureImage),
			e.Qualification,
		)
		if err != nil {
			return nil, err
		}
		saved = append(saved, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit progress log: %w", err)
	}
	return saved, nil
}

func (r *progressRepository) List(ctx context.Context, userID, patientID int64) ([]model.ProgressEntry, error) {
	query := `
		SELECT
			cpl.log_id, cpl.patient_id, cpl.recorded_by_user_id, cpl.action,
			cpl.notes, cpl.signature_text, cpl.signature_image,
			cpl.qualification,
			TO_CHAR(cpl.created_at, 'YYYY-MM-DD HH24:MI') AS created_at
		FROM clinical_progress_logs cpl
		INNER JOIN patient_master_records pmr ON cpl.patient_id = pmr.patient_id
		WHERE cpl.patient_id = $1 AND pmr.user_id = $2
		ORDER BY cpl.created_at DESC, cpl.log_id DESC
	`
	entries := []model.ProgressEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, patientID, userID); err != nil {
		return nil, fmt.Errorf("failed to list progress logs: %w", err)
	}
	return entries, nil
}
