package model

// CreateMedicationRequest holds the free-text medication list plus the
// fixed comorbidity flag set.
type CreateMedicationRequest struct {
	PatientID             int64  `json:"patientId" binding:"required"`
	MedicationSpecify     string `json:"medicationSpecify"`
	Diabetic              bool   `json:"diabetic"`
	Cardio                bool   `json:"cardio"`
	Hypercholesterolemia  bool   `json:"hypercholesterolemia"`
	Pulmonary             bool   `json:"pulmonary"`
	Cancer                bool   `json:"cancer"`
	AutoImmune            bool   `json:"autoImmune"`
	Endocrine             bool   `json:"endocrine"`
	OtherComorbidityNotes string `json:"otherCoMorbiditySpecify"`
}

type MedicationRecord struct {
	ID                    int64   `db:"id" json:"id"`
	PatientID             int64   `db:"patient_id" json:"patient_id"`
	MedicationSpecify     *string `db:"medication_specify" json:"medication_specify"`
	Diabetic              bool    `db:"diabetic" json:"diabetic"`
	Cardio                bool    `db:"cardio" json:"cardio"`
	Hypercholesterolemia  bool    `db:"hypercholesterolemia" json:"hypercholesterolemia"`
	Pulmonary             bool    `db:"pulmonary" json:"pulmonary"`
	Cancer                bool    `db:"cancer" json:"cancer"`
	AutoImmune            bool    `db:"auto_immune" json:"auto_immune"`
	Endocrine             bool    `db:"endocrine" json:"endocrine"`
	OtherComorbidityNotes *string `db:"other_comorbidity_specify" json:"other_comorbidity_specify"`
	CreatedBy             int64   `db:"created_by" json:"created_by"`
}
