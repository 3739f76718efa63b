package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
)

type medicationRepository struct {
	db *sqlx.DB
}

func NewMedicationRepository(db *sqlx.DB) repository.MedicationRepository {
	return &medicationRepository{db: db}
}

func (r *medicationRepository) Create(ctx context.Context, userID int64, req *model.CreateMedicationRequest) (int64, error) {
	query := `
		INSERT INTO medication_comorbidities (
			patient_id, medication_specify, diabetic, cardio,
			hypercholesterolemia, pulmonary, cancer, auto_immune, endocrine,
			other_comorbidity_specify, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	var id int64
	err := r.db.GetContext(ctx, &id, query,
		req.PatientID,
		nullString(req.MedicationSpecify),
		req.Diabetic,
		req.Cardio,
		req.Hypercholesterolemia,
		req.Pulmonary,
		req.Cancer,
		req.AutoImmune,
		req.Endocrine,
		nullString(req.OtherComorbidityNotes),
		userID,
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *medicationRepository) List(ctx context.Context, userID, patientID int64) ([]model.MedicationRecord, error) {
	query := `
		SELECT
			mc.id, mc.patient_id, mc.medication_specify, mc.diabetic,
			mc.cardio, mc.hypercholesterolemia, mc.pulmonary, mc.cancer,
			mc.auto_immune, mc.endocrine, mc.other_comorbidity_specify,
			mc.created_by
		FROM medication_comorbidities mc
		INNER JOIN patient_master_records pmr ON mc.patient_id = pmr.patient_id
		WHERE mc.patient_id = $1 AND pmr.user_id = $2
		ORDER BY mc.id DESC
	`
	records := []model.MedicationRecord{}
	if err := r.db.SelectContext(ctx, &records, query, patientID, userID); err != nil {
		return nil, fmt.Errorf("failed to list medication records: %w", err)
	}
	return records, nil
}
