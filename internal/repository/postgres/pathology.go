package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
)

type pathologyRepository struct {
	db *sqlx.DB
}

func NewPathologyRepository(db *sqlx.DB) repository.PathologyRepository {
	return &pathologyRepository{db: db}
}

func (r *pathologyRepository) Create(ctx context.Context, patientID int64, req *model.CreatePathologyRequest) (*model.PathologyRecord, error) {
	query := `
		INSERT INTO pathology_records (
			patient_id, test_name, test_type, test_date, result_value, result_unit
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
			id, patient_id, test_name, test_type,
			TO_CHAR(test_date, 'YYYY-MM-DD') AS test_date,
			result_value, result_unit
	`
	var record model.PathologyRecord
	err := r.db.GetContext(ctx, &record, query,
		patientID,
		req.TestName,
		nullString(req.TestType),
		req.TestDate,
		req.TestResult,
		nullString(req.ResultUnit),
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *pathologyRepository) List(ctx context.Context, userID, patientID int64) ([]model.PathologyRecord, error) {
	query := `
		SELECT
			pr.id, pr.patient_id, pr.test_name, pr.test_type,
			TO_CHAR(pr.test_date, 'YYYY-MM-DD') AS test_date,
			pr.result_value, pr.result_unit
		FROM pathology_records pr
		INNER JOIN patient_master_records pmr ON pr.patient_id = pmr.patient_id
		WHERE pr.patient_id = $1 AND pmr.user_id = $2
		ORDER BY pr.test_date DESC, pr.id DESC
	`
	records := []model.PathologyRecord{}
	if err := r.db.SelectContext(ctx, &records, query, patientID, userID); err != nil {
		return nil, fmt.Errorf("failed to list pathology records: %w", err)
	}
	return records, nil
}
