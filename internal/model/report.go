package model

type CreateReportRequest struct {
	PatientID               int64   `json:"patientId" binding:"required"`
	SessionsActual          Numeric `json:"sessionsActual"`
	SessionsPlanned         Numeric `json:"sessionsPlanned"`
	KtvPerPatient           Numeric `json:"ktvPerPatient"`
	WeightAnalysisValue     Numeric `json:"weightAnalysisValue"`
	WeightAnalysisType      string  `json:"weightAnalysisType"`
	URRTrend                string  `json:"urrTrend"`
	TreatmentPlanVsActual   string  `json:"treatmentPlanVsActual"`
	ConsumablesPerPatient   string  `json:"consumablesPerPatient"`
	Scheduling              string  `json:"scheduling"`
	KtvQuality              string  `json:"ktvQuality"`
	IntraDialyticWeightGain Numeric `json:"intraDialyticWeightGain"`
	Micturation             string  `json:"micturation"`
	Haemoglobin             Numeric `json:"haemoglobin"`
}

type ReportSummary struct {
	ID              int64    `db:"id" json:"id"`
	PatientID       int64    `db:"patient_id" json:"patient_id"`
	FullName        *string  `db:"full_name" json:"full_name"`
	SessionsActual  *float64 `db:"sessions_actual" json:"sessions_actual"`
	SessionsPlanned *float64 `db:"sessions_planned" json:"sessions_planned"`
	KtvPerPatient   *float64 `db:"ktv_per_patient" json:"ktv_per_patient"`
	Haemoglobin     *float64 `db:"haemoglobin" json:"haemoglobin"`
	RecordedDate    string   `db:"recorded_date" json:"recorded_date"`
}

// ReportMetrics is the latest-report slice used by the dashboard.
type ReportMetrics struct {
	KtvPerPatient           *float64 `db:"ktv_per_patient"`
	URRTrend                *string  `db:"urr_trend"`
	IntraDialyticWeightGain *float64 `db:"intra_dialytic_weight_gain"`
}
