package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/renalworks/dialysis-api/internal/repository"
)

type dashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) repository.DashboardRepository {
	return &dashboardRepository{db: db}
}

// SessionCounts tallies chronic vs acute sessions for the patient. A nil
// since means full history.
func (r *dashboardRepository) SessionCounts(ctx context.Context, userID, patientID int64, since *string) (int, int, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN hr.session_type = 'Chronic' THEN 1 ELSE 0 END), 0) AS chronic,
			COALESCE(SUM(CASE WHEN hr.session_type = 'Acute' THEN 1 ELSE 0 END), 0) AS acute
		FROM hemodialysis_records hr
		INNER JOIN patient_master_records pmr ON hr.patient_id = pmr.patient_id
		WHERE hr.patient_id = $1 AND pmr.user_id = $2
		  AND ($3::date IS NULL OR hr.session_date >= $3::date)
	`
	var counts struct {
		Chronic int `db:"chronic"`
		Acute   int `db:"acute"`
	}
	if err := r.db.GetContext(ctx, &counts, query, patientID, userID, since); err != nil {
		return 0, 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return counts.Chronic, counts.Acute, nil
}

func (r *dashboardRepository) ScriptExpiry(ctx context.Context, userID, patientID int64) (*string, error) {
	query := `
		SELECT TO_CHAR(script_validity_end, 'YYYY-MM-DD')
		FROM patient_master_records
		WHERE patient_id = $1 AND user_id = $2
	`
	var expiry *string
	if err := r.db.GetContext(ctx, &expiry, query, patientID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch script expiry: %w", err)
	}
	return expiry, nil
}

func (r *dashboardRepository) LastPathologyDate(ctx context.Context, userID, patientID int64) (*string, error) {
	query := `
		SELECT TO_CHAR(MAX(pr.test_date), 'YYYY-MM-DD')
		FROM pathology_records pr
		INNER JOIN patient_master_records pmr ON pr.patient_id = pmr.patient_id
		WHERE pr.patient_id = $1 AND pmr.user_id = $2
	`
	var last *string
	if err := r.db.GetContext(ctx, &last, query, patientID, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch last pathology date: %w", err)
	}
	return last, nil
}

func (r *dashboardRepository) LatestFollowUpTask(ctx context.Context, userID, patientID int64) (*string, error) {
	query := `
		SELECT pm.other_management_specify
		FROM patients_management_records pm
		INNER JOIN patient_master_records pmr ON pm.patient_id = pmr.patient_id
		WHERE pm.patient_id = $1 AND pmr.user_id = $2
		ORDER BY pm.recorded_at DESC
		LIMIT 1
	`
	var task *string
	err := r.db.GetContext(ctx, &task, query, patientID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest follow-up task: %w", err)
	}
	return task, nil
}
