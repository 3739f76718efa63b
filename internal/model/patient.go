package model

import "time"

// CreatePatientRequest carries the intake form. Field names mirror the
// frontend payload; column mapping happens once, in the repository.
type CreatePatientRequest struct {
	FullName         string   `json:"fullName" binding:"required"`
	DateOfBirth      DateOnly `json:"dateOfBirth"`
	Gender           string   `json:"gender"`
	Age              Numeric  `json:"age"`
	Height           Numeric  `json:"height"`
	Weight           Numeric  `json:"weight"`
	Address          string   `json:"address"`
	ContactDetails   string   `json:"contactDetails"`
	NextOfKin        string   `json:"nextOfKin"`
	AccessType       string   `json:"accessType"`
	DiabeticStatus   string   `json:"diabeticStatus"` // "Y" or "N"
	SmokingStatus    string   `json:"smokingStatus"`  // "Y" or "N"
	DialysisModality string   `json:"dialysisModality"`
	Frequency        Numeric  `json:"frequency"`
	PrescribedDose   string   `json:"prescribedDose"` // stored as script_duration
	Dialyser         string   `json:"dialyser"`
	Buffer           string   `json:"buffer"`
	Qd               Numeric  `json:"qd"`
	Qb               Numeric  `json:"qb"`
	Anticoagulant    string   `json:"anticoagulant"`
	ScriptStartDate  DateOnly `json:"scriptStartDate"`
	ScriptExpiryDate DateOnly `json:"scriptExpiryDate"` // stored as script_validity_end
	ScriptReminder   string   `json:"scriptReminder"`
}

// PatientSummary is one row of the patient list view. Age is computed from
// the stored date of birth at query time.
type PatientSummary struct {
	ID               int64    `db:"id" json:"id"`
	FullName         string   `db:"full_name" json:"full_name"`
	Age              *float64 `db:"age" json:"age"`
	Gender           *string  `db:"gender" json:"gender"`
	DialysisModality *string  `db:"dialysis_modality" json:"dialysis_modality"`
	AccessType       *string  `db:"access_type" json:"access_type"`
	ContactDetails   *string  `db:"contact_details" json:"contact_details"`
	DateOfBirth      *string  `db:"date_of_birth" json:"date_of_birth"`
}

// PatientDetails feeds the session chart autofill.
type PatientDetails struct {
	PatientID      int64    `db:"patient_id" json:"patient_id"`
	Name           string   `db:"name" json:"name"`
	Age            *int64   `db:"age" json:"age"`
	Address        *string  `db:"address" json:"address"`
	ContactDetails *string  `db:"contact_details" json:"contact_details"`
	Gender         *string  `db:"gender" json:"gender"`
	Height         *float64 `db:"height" json:"height"`
	Dialyzer       *string  `db:"dialyzer" json:"dialyzer"`
	AccessType     *string  `db:"access_type" json:"access_type"`
}

// ScriptReminder is a due dialysis-script renewal picked up by the
// reminder worker.
type ScriptReminder struct {
	PatientID         int64     `db:"patient_id"`
	FullName          string    `db:"full_name"`
	OwnerEmail        string    `db:"owner_email"`
	ScriptValidityEnd time.Time `db:"script_validity_end"`
	ReminderPeriod    string    `db:"script_reminder"`
}
