package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
)

type managementRepository struct {
	db *sqlx.DB
}

func NewManagementRepository(db *sqlx.DB) repository.ManagementRepository {
	return &managementRepository{db: db}
}

func (r *managementRepository) Create(ctx context.Context, userID int64, req *model.CreateManagementRequest) (int64, error) {
	query := `
		INSERT INTO patients_management_records (
			patient_id, recorded_by_user_id,
			last_flu_vaccine_date, last_pneumo_vaccine_date, other_vaccination_notes,
			last_dietician_visit_date, dietician_compliance_notes,
			last_fistula_assessment_date, fistula_condition, fistula_notes,
			other_management_specify, recorded_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id
	`
	var id int64
	err := r.db.GetContext(ctx, &id, query,
		req.PatientID,
		userID,
		req.LastFluVaccineDate,
		req.LastPneumoVaccineDate,
		nullString(req.OtherVaccinationNotes),
		req.LastDieticianVisitDate,
		nullString(req.DieticianComplianceNotes),
		req.LastFistulaAssessmentDate,
		nullString(req.FistulaCondition),
		nullString(req.FistulaNotes),
		nullString(req.OtherManagementSpecify),
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *managementRepository) List(ctx context.Context, userID int64) ([]model.ManagementSummary, error) {
	query := `
		SELECT
			pm.id,
			pm.patient_id,
			pmr.full_name,
			TO_CHAR(pm.last_flu_vaccine_date, 'YYYY-MM-DD') AS last_flu_vaccine_date,
			TO_CHAR(pm.last_dietician_visit_date, 'YYYY-MM-DD') AS last_dietician_visit_date,
			TO_CHAR(pm.last_fistula_assessment_date, 'YYYY-MM-DD') AS last_fistula_assessment_date,
			TO_CHAR(pm.recorded_at, 'YYYY-MM-DD HH24:MI') AS recorded_at
		FROM patients_management_records pm
		INNER JOIN patient_master_records pmr ON pm.patient_id = pmr.patient_id
		WHERE pmr.user_id = $1
		ORDER BY pm.recorded_at DESC
	`
	records := []model.ManagementSummary{}
	if err := r.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list management records: %w", err)
	}
	return records, nil
}
