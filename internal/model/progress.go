package model

// ProgressEntryInput is one line of the clinical progress form. A batch
// submission carries several of these; each becomes its own row.
type ProgressEntryInput struct {
	Action         string `json:"action" binding:"required"`
	Notes          string `json:"notes" binding:"required"`
	SignatureText  string `json:"signatureText"`
	SignatureImage string `json:"signatureImage"`
	Qualification  string `json:"qualification" binding:"required"`
}

type CreateProgressLogRequest struct {
	PatientID  *int64               `json:"patientId"`
	LogEntries []ProgressEntryInput `json:"logEntries" binding:"required,min=1,dive"`
}

type ProgressEntry struct {
	LogID            int64   `db:"log_id" json:"log_id"`
	PatientID        *int64  `db:"patient_id" json:"patient_id"`
	RecordedByUserID int64   `db:"recorded_by_user_id" json:"recorded_by_user_id"`
	Action           string  `db:"action" json:"action"`
	Notes            string  `db:"notes" json:"notes"`
	SignatureText    *string `db:"signature_text" json:"signature_text"`
	SignatureImage   *string `db:"signature_image" json:"signature_image"`
	Qualification    string  `db:"qualification" json:"qualification"`
	CreatedAt        string  `db:"created_at" json:"created_at"`
}
