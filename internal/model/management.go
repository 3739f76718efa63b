package model

// CreateManagementRequest is the periodic follow-up form: vaccinations,
// dietician compliance, fistula assessment and any free-text task.
type CreateManagementRequest struct {
	PatientID                 int64    `json:"patientId" binding:"required"`
	LastFluVaccineDate        DateOnly `json:"lastFluVaccineDate"`
	LastPneumoVaccineDate     DateOnly `json:"lastPneumoVaccineDate"`
	OtherVaccinationNotes     string   `json:"otherVaccinationNotes"`
	LastDieticianVisitDate    DateOnly `json:"lastDieticianVisitDate"`
	DieticianComplianceNotes  string   `json:"dieticianComplianceNotes"`
	LastFistulaAssessmentDate DateOnly `json:"lastFistulaAssessmentDate"`
	FistulaCondition          string   `json:"fistulaCondition"`
	FistulaNotes              string   `json:"fistulaNotes"`
	OtherManagementSpecify    string   `json:"otherManagementSpecify"`
}

type ManagementSummary struct {
	ID                        int64   `db:"id" json:"id"`
	PatientID                 int64   `db:"patient_id" json:"patient_id"`
	FullName                  string  `db:"full_name" json:"full_name"`
	LastFluVaccineDate        *string `db:"last_flu_vaccine_date" json:"last_flu_vaccine_date"`
	LastDieticianVisitDate    *string `db:"last_dietician_visit_date" json:"last_dietician_visit_date"`
	LastFistulaAssessmentDate *string `db:"last_fistula_assessment_date" json:"last_fistula_assessment_date"`
	RecordedAt                string  `db:"recorded_at" json:"recorded_at"`
}
