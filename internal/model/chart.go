package model

import (
	"encoding/json"
	"time"
)

// CreateChartRequest is the full dialysis chart form: treatment plan,
// pre-dialysis observations, intra-dialysis settings with a variable
// number of vitals intervals, post-dialysis observations and the staff
// signature captured as opaque base64 text.
type CreateChartRequest struct {
	PatientID int64 `json:"patientId" binding:"required"`

	PlanType string   `json:"planType"`
	PlanDate DateOnly `json:"planDate"`

	PreDate         DateOnly `json:"preDate"`
	PreTime         string   `json:"preTime"`
	PreHB           Numeric  `json:"preHB"`
	PreBP           string   `json:"preBP"`
	PrePulse        Numeric  `json:"prePulse"`
	PreGlucose      Numeric  `json:"preGlucose"`
	PreWeight       Numeric  `json:"preWeight"`
	PreTemp         Numeric  `json:"preTemp"`
	Micturition     string   `json:"micturition"`
	UFSet           Numeric  `json:"ufSet"`
	MachineType     string   `json:"machineType"`
	MachineReadings string   `json:"machineReadings"`
	PrimedBy        string   `json:"primedBy"`

	ConnectedBy          string          `json:"connectedBy"`
	IntraTime            string          `json:"intraTime"`
	Consumable           string          `json:"consumable"`
	AdditionalConsumable string          `json:"additionalConsumable"`
	Qb                   Numeric         `json:"qb"`
	Qd                   Numeric         `json:"qd"`
	TMP                  Numeric         `json:"tmp"`
	UFRate               Numeric         `json:"ufRate"`
	Clotting             string          `json:"clotting"`
	Reason               string          `json:"reason"`
	HeparinDose          string          `json:"heparinDose"`
	IronSucrose          string          `json:"ironSucrose"`
	VitalsIntervals      json.RawMessage `json:"vitalsIntervals"`

	PostDate     DateOnly `json:"postDate"`
	PostTime     string   `json:"postTime"`
	PostBP       string   `json:"postBP"`
	PostPulse    Numeric  `json:"postPulse"`
	PostWeight   Numeric  `json:"postWeight"`
	PostTemp     Numeric  `json:"postTemp"`
	FluidRemoved Numeric  `json:"fluidRemoved"`
	FinishedBy   string   `json:"finishedBy"`

	SignatureImage string `json:"signatureImage"`
}

// ChartSummary is one row of the per-patient chart history.
type ChartSummary struct {
	ID           int64     `db:"id" json:"id"`
	PatientID    int64     `db:"patient_id" json:"patient_id"`
	FullName     string    `db:"full_name" json:"full_name"`
	PlanType     *string   `db:"plan_type" json:"plan_type"`
	PreWeight    *float64  `db:"pre_weight" json:"pre_weight"`
	PostWeight   *float64  `db:"post_weight" json:"post_weight"`
	FluidRemoved *float64  `db:"fluid_removed" json:"fluid_removed"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
