package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
)

type chartRepository struct {
	db *sqlx.DB
}

func NewChartRepository(db *sqlx.DB) repository.ChartRepository {
	return &chartRepository{db: db}
}

func (r *chartRepository) Create(ctx context.Context, userID int64, req *model.CreateChartRequest) (int64, error) {
	query := `
		INSERT INTO dialysis_charts (
			patient_id, recorded_by_user_id,
			plan_type, plan_date,
			pre_date, pre_time, pre_hb, pre_bp, pre_pulse, pre_glucose,
			pre_weight, pre_temp, micturition, uf_set, machine_type,
			machine_readings, primed_by,
			connected_by, intra_time, consumable, additional_consumable,
			qb, qd, tmp, uf_rate, clotting, reason, heparin_dose, iron_sucrose,
			post_date, post_time, post_bp, post_pulse,
			post_weight, post_temp, fluid_removed, finished_by,
			vitals_intervals, signature_data
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
			$27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37, $38, $39
		)
		RETURNING id
	`

	vitals := []byte("[]")
	if len(req.VitalsIntervals) > 0 {
		vitals = req.VitalsIntervals
	}

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		req.PatientID, userID,
		nullString(req.PlanType), req.PlanDate,
		req.PreDate, nullString(req.PreTime), req.PreHB, nullString(req.PreBP),
		req.PrePulse, req.PreGlucose, req.PreWeight, req.PreTemp,
		nullString(req.Micturition), req.UFSet, nullString(req.MachineType),
		nullString(req.MachineReadings), nullString(req.PrimedBy),
		nullString(req.ConnectedBy), nullString(req.IntraTime),
		nullString(req.Consumable), nullString(req.AdditionalConsumable),
		req.Qb, req.Qd, req.TMP, req.UFRate,
		nullString(req.Clotting), nullString(req.Reason),
		nullString(req.HeparinDose), nullString(req.IronSucrose),
		req.PostDate, nullString(req.PostTime), nullString(req.PostBP),
		req.PostPulse, req.PostWeight, req.PostTemp, req.FluidRemoved,
		nullString(req.FinishedBy),
		string(vitals), nullString(req.SignatureImage),
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *chartRepository) List(ctx context.Context, userID, patientID int64) ([]model.ChartSummary, error) {
	query := `
		SELECT
			dc.id,
			dc.patient_id,
			pmr.full_name,
			dc.plan_type,
			dc.pre_weight,
			dc.post_weight,
			dc.fluid_removed,
			dc.created_at
		FROM dialysis_charts dc
		INNER JOIN patient_master_records pmr ON dc.patient_id = pmr.patient_id
		WHERE dc.patient_id = $1 AND pmr.user_id = $2
		ORDER BY dc.created_at DESC
	`
	charts := []model.ChartSummary{}
	if err := r.db.SelectContext(ctx, &charts, query, patientID, userID); err != nil {
		return nil, fmt.Errorf("failed to list dialysis charts: %w", err)
	}
	return charts, nil
}
