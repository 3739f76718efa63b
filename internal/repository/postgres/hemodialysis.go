package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
)

type hemodialysisRepository struct {
	db *sqlx.DB
}

func NewHemodialysisRepository(db *sqlx.DB) repository.HemodialysisRepository {
	return &hemodialysisRepository{db: db}
}

func (r *hemodialysisRepository) Create(ctx context.Context, patientID int64, req *model.CreateHemodialysisRequest) (*model.HemodialysisRecord, error) {
	query := `
		INSERT INTO hemodialysis_records (
			patient_id, session_date, session_type, pre_weight, post_weight,
			duration_hours, dialyzer_type, blood_flow_rate, dialysate_flow_rate,
			diagnosis, time_on, time_off, notes, signature_data
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING
			id, patient_id,
			TO_CHAR(session_date, 'YYYY-MM-DD') AS session_date,
			session_type, pre_weight, post_weight, duration_hours,
			dialyzer_type, blood_flow_rate, dialysate_flow_rate, diagnosis,
			TO_CHAR(time_on, 'HH24:MI') AS time_on,
			TO_CHAR(time_off, 'HH24:MI') AS time_off,
			notes, signature_data
	`

	var record model.HemodialysisRecord
	err := r.db.GetContext(ctx, &record, query,
		patientID,
		req.DialysisDate,
		nullString(req.SessionType),
		req.PreWeight,
		req.PostWeight,
		req.DurationHours,
		nullString(req.DialyzerType),
		req.BloodFlowRate,
		req.DialysateFlowRate,
		nullString(req.Diagnosis),
		nullString(req.TimeOn),
		nullString(req.TimeOff),
		nullString(req.Notes),
		nullString(req.SignatureData),
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *hemodialysisRepository) List(ctx context.Context, userID, patientID int64) ([]model.HemodialysisSummary, error) {
	query := `
		SELECT
			hr.id AS record_id,
			pmr.patient_id,
			pmr.full_name,
			hr.diagnosis,
			TO_CHAR(hr.time_on, 'HH24:MI') AS time_on,
			TO_CHAR(hr.time_off, 'HH24:MI') AS time_off,
			TO_CHAR(hr.session_date, 'YYYY-MM-DD') AS session_date,
			hr.pre_weight,
			hr.post_weight
		FROM hemodialysis_records hr
		INNER JOIN patient_master_records pmr ON hr.patient_id = pmr.patient_id
		WHERE hr.patient_id = $1 AND pmr.user_id = $2
		ORDER BY hr.session_date DESC, hr.id DESC
	`
	records := []model.HemodialysisSummary{}
	if err := r.db.SelectContext(ctx, &records, query, patientID, userID); err != nil {
		return nil, fmt.Errorf("failed to list hemodialysis records: %w", err)
	}
	return records, nil
}
