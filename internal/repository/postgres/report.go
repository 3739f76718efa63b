package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
)

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, userID int64, req *model.CreateReportRequest) (int64, error) {
	query := `
		INSERT INTO patients_report_records (
			patient_id, recorded_by_user_id, sessions_actual, sessions_planned,
			ktv_per_patient, weight_analysis_value, weight_analysis_type,
			urr_trend, treatment_plan_vs_actual, consumables_per_patient,
			scheduling, ktv_quality, intra_dialytic_weight_gain, micturation,
			haemoglobin
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	var id int64
	err := r.db.GetContext(ctx, &id, query,
		req.PatientID,
		userID,
		req.SessionsActual,
		req.SessionsPlanned,
		req.KtvPerPatient,
		req.WeightAnalysisValue,
		nullString(req.WeightAnalysisType),
		nullString(req.URRTrend),
		nullString(req.TreatmentPlanVsActual),
		nullString(req.ConsumablesPerPatient),
		nullString(req.Scheduling),
		nullString(req.KtvQuality),
		req.IntraDialyticWeightGain,
		nullString(req.Micturation),
		req.Haemoglobin,
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *reportRepository) List(ctx context.Context, userID int64) ([]model.ReportSummary, error) {
	query := `
		SELECT
			rr.id,
			rr.patient_id,
			pmr.full_name,
			rr.sessions_actual,
			rr.sessions_planned,
			rr.ktv_per_patient,
			rr.haemoglobin,
			TO_CHAR(rr.recorded_at, 'YYYY-MM-DD HH24:MI') AS recorded_date
		FROM patients_report_records rr
		LEFT JOIN patient_master_records pmr ON rr.patient_id = pmr.patient_id
		WHERE pmr.user_id = $1
		ORDER BY rr.recorded_at DESC
	`
	reports := []model.ReportSummary{}
	if err := r.db.SelectContext(ctx, &reports, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// LatestMetrics returns the quality metrics of the most recent report for
// the dashboard, or nil when the patient has no reports yet.
func (r *reportRepository) LatestMetrics(ctx context.Context, userID, patientID int64) (*model.ReportMetrics, error) {
	query := `
		SELECT rr.ktv_per_patient, rr.urr_trend, rr.intra_dialytic_weight_gain
		FROM patients_report_records rr
		INNER JOIN patient_master_records pmr ON rr.patient_id = pmr.patient_id
		WHERE rr.patient_id = $1 AND pmr.user_id = $2
		ORDER BY rr.recorded_at DESC
		LIMIT 1
	`
	var metrics model.ReportMetrics
	err := r.db.GetContext(ctx, &metrics, query, patientID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest report metrics: %w", err)
	}
	return &metrics, nil
}
