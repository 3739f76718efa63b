package repository

import (
	"context"

	"github.com/renalworks/dialysis-api/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type PatientRepository interface {
	Create(ctx context.Context, userID int64, req *model.CreatePatientRequest) (int64, error)
	List(ctx context.Context, userID int64) ([]model.PatientSummary, error)
	Search(ctx context.Context, userID int64, query string) ([]model.PatientSummary, error)
	GetDetails(ctx context.Context, userID, patientID int64) (*model.PatientDetails, error)
	ListScriptReminders(ctx context.Context, horizonDays int) ([]model.ScriptReminder, error)
}

type HemodialysisRepository interface {
	Create(ctx context.Context, patientID int64, req *model.CreateHemodialysisRequest) (*model.HemodialysisRecord, error)
	List(ctx context.Context, userID, patientID int64) ([]model.HemodialysisSummary, error)
}

type ChartRepository interface {
	Create(ctx context.Context, userID int64, req *model.CreateChartRequest) (int64, error)
	List(ctx context.Context, userID, patientID int64) ([]model.ChartSummary, error)
}

type PathologyRepository interface {
	Create(ctx context.Context, patientID int64, req *model.CreatePathologyRequest) (*model.PathologyRecord, error)
	List(ctx context.Context, userID, patientID int64) ([]model.PathologyRecord, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, userID int64, req *model.CreateEquipmentRequest) (int64, error)
	List(ctx context.Context) ([]model.EquipmentRecord, error)
}

type MedicationRepository interface {
	Create(ctx context.Context, userID int64, req *model.CreateMedicationRequest) (int64, error)
	List(ctx context.Context, userID, patientID int64) ([]model.MedicationRecord, error)
}

type ManagementRepository interface {
	Create(ctx context.Context, userID int64, req *model.CreateManagementRequest) (int64, error)
	List(ctx context.Context, userID int64) ([]model.ManagementSummary, error)
}

type ReportRepository interface {
	Create(ctx context.Context, userID int64, req *model.CreateReportRequest) (int64, error)
	List(ctx context.Context, userID int64) ([]model.ReportSummary, error)
	LatestMetrics(ctx context.Context, userID, patientID int64) (*model.ReportMetrics, error)
}

type ProgressRepository interface {
	CreateBatch(ctx context.Context, userID int64, patientID *int64, entries []model.ProgressEntryInput) ([]model.ProgressEntry, error)
	List(ctx context.Context, userID, patientID int64) ([]model.ProgressEntry, error)
}

type NoteRepository interface {
	Create(ctx context.Context, req *model.CreateMedicalNoteRequest) (int64, error)
	List(ctx context.Context) ([]model.MedicalNoteSummary, error)
}

type DashboardRepository interface {
	SessionCounts(ctx context.Context, userID, patientID int64, since *string) (chronic, acute int, err error)
	ScriptExpiry(ctx context.Context, userID, patientID int64) (*string, error)
	LastPathologyDate(ctx context.Context, userID, patientID int64) (*string, error)
	LatestFollowUpTask(ctx context.Context, userID, patientID int64) (*string, error)
}
