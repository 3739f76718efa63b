package model

// Equipment maintenance is a global log, not tied to any patient.
type CreateEquipmentRequest struct {
	MachineMake      string   `json:"machineMake" binding:"required"`
	SerialNumber     string   `json:"serialNumber" binding:"required"`
	MaintenanceDate  DateOnly `json:"maintenanceDate" binding:"required"`
	NextServiceDate  DateOnly `json:"nextServiceDate"`
	MaintenanceType  string   `json:"maintenanceType"`
	Company          string   `json:"company"`
	Staff            string   `json:"staff"`
	DisinfectionTime string   `json:"disinfectionTime"`
	Notes            string   `json:"notes"`
}

type EquipmentRecord struct {
	ID               int64   `db:"id" json:"id"`
	MachineMake      string  `db:"machine_make" json:"machine_make"`
	SerialNumber     string  `db:"serial_number" json:"serial_number"`
	MaintenanceDate  string  `db:"maintenance_date" json:"maintenance_date"`
	NextServiceDate  *string `db:"next_service_date" json:"next_service_date"`
	MaintenanceType  *string `db:"maintenance_type" json:"maintenance_type"`
	Company          *string `db:"performed_by_company" json:"performed_by_company"`
	Staff            *string `db:"performed_by_staff" json:"performed_by_staff"`
	DisinfectionTime *string `db:"disinfection_time" json:"disinfection_time"`
	Notes            *string `db:"notes" json:"notes"`
	RecordedAt       string  `db:"recorded_at" json:"recorded_at"`
}
