package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
)

type equipmentRepository struct {
	db *sqlx.DB
}

func NewEquipmentRepository(db *sqlx.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) Create(ctx context.Context, userID int64, req *model.CreateEquipmentRequest) (int64, error) {
	query := `
		INSERT INTO equipment_maintenance_records (
			machine_make, serial_number, maintenance_date, next_service_date,
			maintenance_type, performed_by_company, performed_by_staff,
			disinfection_time, notes, created_by, recorded_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id
	`
	var id int64
	err := r.db.GetContext(ctx, &id, query,
		req.MachineMake,
		req.SerialNumber,
		req.MaintenanceDate,
		req.NextServiceDate,
		nullString(req.MaintenanceType),
		nullString(req.Company),
		nullString(req.Staff),
		nullString(req.DisinfectionTime),
		nullString(req.Notes),
		userID,
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *equipmentRepository) List(ctx context.Context) ([]model.EquipmentRecord, error) {
	query := `
		SELECT
			id, machine_make, serial_number,
			TO_CHAR(maintenance_date, 'YYYY-MM-DD') AS maintenance_date,
			TO_CHAR(next_service_date, 'YYYY-MM-DD') AS next_service_date,
			maintenance_type, performed_by_company, performed_by_staff,
			disinfection_time, notes,
			TO_CHAR(recorded_at, 'YYYY-MM-DD HH24:MI') AS recorded_at
		FROM equipment_maintenance_records
		ORDER BY maintenance_date DESC, id DESC
	`
	records := []model.EquipmentRecord{}
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}
	return records, nil
}
