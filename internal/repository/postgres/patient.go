package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, userID int64, req *model.CreatePatientRequest) (int64, error) {
	query := `
		INSERT INTO patient_master_records (
			user_id, full_name, date_of_birth, gender, age, height, weight,
			address, contact_details, next_of_kin, access_type,
			diabetic_status, smoking_status, dialysis_modality, frequency,
			script_duration, dialyser, buffer, qd, qb, anticoagulant,
			script_validity_start, script_validity_end, script_reminder
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING patient_id
	`

	reminder := req.ScriptReminder
	if reminder == "" {
		reminder = "1 Month"
	}

	var patientID int64
	err := r.db.GetContext(ctx, &patientID, query,
		userID,
		req.FullName,
		req.DateOfBirth,
		nullString(req.Gender),
		req.Age,
		req.Height,
		req.Weight,
		nullString(req.Address),
		nullString(req.ContactDetails),
		nullString(req.NextOfKin),
		nullString(req.AccessType),
		req.DiabeticStatus == "Y",
		req.SmokingStatus == "Y",
		nullString(req.DialysisModality),
		req.Frequency,
		nullString(req.PrescribedDose),
		nullString(req.Dialyser),
		nullString(req.Buffer),
		req.Qd,
		req.Qb,
		nullString(req.Anticoagulant),
		req.ScriptStartDate,
		req.ScriptExpiryDate,
		reminder,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create patient: %w", err)
	}
	return patientID, nil
}

const patientSummaryColumns = `
	patient_id AS id,
	full_name,
	EXTRACT(YEAR FROM age(NOW(), date_of_birth)) AS age,
	gender,
	dialysis_modality,
	access_type,
	contact_details,
	TO_CHAR(date_of_birth, 'YYYY-MM-DD') AS date_of_birth
`

func (r *patientRepository) List(ctx context.Context, userID int64) ([]model.PatientSummary, error) {
	query := `SELECT ` + patientSummaryColumns + `
		FROM patient_master_records
		WHERE user_id = $1
		ORDER BY full_name ASC`

	patients := []model.PatientSummary{}
	if err := r.db.SelectContext(ctx, &patients, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) Search(ctx context.Context, userID int64, q string) ([]model.PatientSummary, error) {
	query := `SELECT ` + patientSummaryColumns + `
		FROM patient_master_records
		WHERE user_id = $1
		  AND (full_name ILIKE '%' || $2 || '%' OR CAST(patient_id AS TEXT) LIKE '%' || $2 || '%')
		ORDER BY full_name ASC`

	patients := []model.PatientSummary{}
	if err := r.db.SelectContext(ctx, &patients, query, userID, q); err != nil {
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) GetDetails(ctx context.Context, userID, patientID int64) (*model.PatientDetails, error) {
	query := `
		SELECT
			patient_id,
			full_name AS name,
			COALESCE(age, EXTRACT(YEAR FROM age(NOW(), date_of_birth))::smallint) AS age,
			address,
			contact_details,
			gender,
			height,
			dialyser AS dialyzer,
			access_type
		FROM patient_master_records
		WHERE patient_id = $1 AND user_id = $2
	`
	var details model.PatientDetails
	if err := r.db.GetContext(ctx, &details, query, patientID, userID); err != nil {
		return nil, err
	}
	return &details, nil
}

// ListScriptReminders returns patients whose dialysis script expires within
// the horizon, joined to the owning account for notification. Per-patient
// reminder windows are narrowed by the worker.
func (r *patientRepository) ListScriptReminders(ctx context.Context, horizonDays int) ([]model.ScriptReminder, error) {
	query := `
		SELECT
			p.patient_id,
			p.full_name,
			u.email AS owner_email,
			p.script_validity_end,
			p.script_reminder
		FROM patient_master_records p
		JOIN users u ON u.id = p.user_id
		WHERE p.script_validity_end IS NOT NULL
		  AND p.script_validity_end >= CURRENT_DATE
		  AND p.script_validity_end <= CURRENT_DATE + $1 * INTERVAL '1 day'
		ORDER BY p.script_validity_end ASC
	`
	reminders := []model.ScriptReminder{}
	if err := r.db.SelectContext(ctx, &reminders, query, horizonDays); err != nil {
		return nil, fmt.Errorf("failed to list script reminders: %w", err)
	}
	return reminders, nil
}

// nullString maps empty form fields to SQL NULL instead of empty strings.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
