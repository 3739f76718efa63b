package model

type CreateHemodialysisRequest struct {
	DialysisDate      DateOnly `json:"dialysisDate" binding:"required"`
	SessionType       string   `json:"sessionType"` // Chronic or Acute
	PreWeight         Numeric  `json:"preWeight"`
	PostWeight        Numeric  `json:"postWeight"`
	DurationHours     Numeric  `json:"durationHours"`
	DialyzerType      string   `json:"dialyzerType"`
	BloodFlowRate     Numeric  `json:"bloodFlowRate"`
	DialysateFlowRate Numeric  `json:"dialysateFlowRate"`
	Diagnosis         string   `json:"diagnosis"`
	TimeOn            string   `json:"timeOn"`
	TimeOff           string   `json:"timeOff"`
	Notes             string   `json:"notes"`
	SignatureData     string   `json:"signatureData"` // opaque base64 text
}

// HemodialysisRecord is the stored session row as returned on create.
type HemodialysisRecord struct {
	ID                int64    `db:"id" json:"id"`
	PatientID         int64    `db:"patient_id" json:"patient_id"`
	SessionDate       string   `db:"session_date" json:"session_date"`
	SessionType       *string  `db:"session_type" json:"session_type"`
	PreWeight         *float64 `db:"pre_weight" json:"pre_weight"`
	PostWeight        *float64 `db:"post_weight" json:"post_weight"`
	DurationHours     *float64 `db:"duration_hours" json:"duration_hours"`
	DialyzerType      *string  `db:"dialyzer_type" json:"dialyzer_type"`
	BloodFlowRate     *float64 `db:"blood_flow_rate" json:"blood_flow_rate"`
	DialysateFlowRate *float64 `db:"dialysate_flow_rate" json:"dialysate_flow_rate"`
	Diagnosis         *string  `db:"diagnosis" json:"diagnosis"`
	TimeOn            *string  `db:"time_on" json:"time_on"`
	TimeOff           *string  `db:"time_off" json:"time_off"`
	Notes             *string  `db:"notes" json:"notes"`
	SignatureData     *string  `db:"signature_data" json:"signature_data"`
}

// HemodialysisSummary is one row of the per-patient session table, joined
// to the master record for display.
type HemodialysisSummary struct {
	RecordID    int64    `db:"record_id" json:"record_id"`
	PatientID   int64    `db:"patient_id" json:"patient_id"`
	FullName    string   `db:"full_name" json:"full_name"`
	Diagnosis   *string  `db:"diagnosis" json:"diagnosis"`
	TimeOn      *string  `db:"time_on" json:"time_on"`
	TimeOff     *string  `db:"time_off" json:"time_off"`
	SessionDate string   `db:"session_date" json:"session_date"`
	PreWeight   *float64 `db:"pre_weight" json:"pre_weight"`
	PostWeight  *float64 `db:"post_weight" json:"post_weight"`
}
