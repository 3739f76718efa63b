package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
)

type noteRepository struct {
	db *sqlx.DB
}

func NewNoteRepository(db *sqlx.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create writes the legacy medical-notes form across its six tables inside
// one transaction; a failure in any insert rolls back the whole note.
func (r *noteRepository) Create(ctx context.Context, req *model.CreateMedicalNoteRequest) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var noteID int64
	err = tx.GetContext(ctx, &noteID, `
		INSERT INTO medical_notes (note_year, note_month)
		VALUES ($1, $2)
		RETURNING id
	`, req.NoteYear, req.NoteMonth)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO general_details (
			note_id, name, surname, diagnosis, medical_aid_name,
			medical_aid_no, doctor, access, needle_size, port_length,
			height, age
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, noteID, nullString(req.Name), nullString(req.Surname),
		nullString(req.Diagnosis), nullString(req.MedicalAidName),
		nullString(req.MedicalAidNo), nullString(req.Doctor),
		nullString(req.Access), nullString(req.NeedleSize),
		nullString(req.PortLength), req.Height, req.Age)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO dialysis_prescription (
			note_id, dialyzer, dry_weight, dialysate_speed_qd,
			blood_pump_speed_qb, treatment_hours, anticoagulation_and_dose
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, noteID, nullString(req.Dialyzer), req.DryWeight, req.DialysateSpeedQd,
		req.BloodPumpSpeedQb, req.TreatmentHours,
		nullString(req.AnticoagulationDose))
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO session_details (note_id, date, time_on, primed_by, stock_utilised)
		VALUES ($1, $2, $3, $4, $5)
	`, noteID, req.Date, nullString(req.TimeOn), nullString(req.PrimedBy),
		nullString(req.StockUtilised))
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO pre_assessment (
			note_id, weight, blood_pressure, pulse, blood_glucose,
			temperature, hgt, saturation, post_connection_bp
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, noteID, req.Weight, nullString(req.BloodPressure), req.Pulse,
		req.BloodGlucose, req.Temperature, req.HGT, req.Saturation,
		nullString(req.PostConnectionBP))
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO post_dialysis (
			note_id, pre_disconnection_bp, post_disconnection_bp, w_post,
			qd_post, qb_post, uf, ktv, time_of, disconnected_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, noteID, nullString(req.PreDisconnectionBP),
		nullString(req.PostDisconnectionBP), req.WPost, req.QdPost,
		req.QbPost, req.UF, req.Ktv, nullString(req.TimeOff),
		nullString(req.DisconnectedBy))
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit medical note: %w", err)
	}
	return noteID, nil
}

func (r *noteRepository) List(ctx context.Context) ([]model.MedicalNoteSummary, error) {
	query := `
		SELECT
			mn.id,
			gd.name,
			gd.surname,
			gd.diagnosis,
			gd.doctor,
			TO_CHAR(sd.date, 'YYYY-MM-DD') AS date,
			dp.dialyzer,
			pa.weight,
			mn.note_year,
			mn.note_month
		FROM medical_notes mn
		JOIN general_details gd ON mn.id = gd.note_id
		JOIN session_details sd ON mn.id = sd.note_id
		JOIN dialysis_prescription dp ON mn.id = dp.note_id
		JOIN pre_assessment pa ON mn.id = pa.note_id
		ORDER BY sd.date DESC, sd.time_on DESC
	`
	notes := []model.MedicalNoteSummary{}
	if err := r.db.SelectContext(ctx, &notes, query); err != nil {
		return nil, fmt.Errorf("failed to list medical notes: %w", err)
	}
	return notes, nil
}
