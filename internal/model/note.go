package model

// CreateMedicalNoteRequest is the legacy paper-chart form. It fans out
// across six tables in one transaction. The frontend posts snake_case
// keys for this form, unlike the newer camelCase forms, and numeric
// fields arrive as free-typed strings.
type CreateMedicalNoteRequest struct {
	NoteYear  Numeric `json:"note_year"`
	NoteMonth Numeric `json:"note_month"`

	Name           string  `json:"name"`
	Surname        string  `json:"surname"`
	Diagnosis      string  `json:"diagnosis"`
	MedicalAidName string  `json:"medical_aid_name"`
	MedicalAidNo   string  `json:"medical_aid_no"`
	Doctor         string  `json:"doctor"`
	Access         string  `json:"access"`
	NeedleSize     string  `json:"needle_size"`
	PortLength     string  `json:"port_length"`
	Height         Numeric `json:"height"`
	Age            Numeric `json:"age"`

	Dialyzer            string  `json:"dialyzer"`
	DryWeight           Numeric `json:"dry_weight"`
	DialysateSpeedQd    Numeric `json:"dialysate_speed_qd"`
	BloodPumpSpeedQb    Numeric `json:"blood_pump_speed_qb"`
	TreatmentHours      Numeric `json:"treatment_hours"`
	AnticoagulationDose string  `json:"anticoagulation_and_dose"`

	Date          DateOnly `json:"date"`
	TimeOn        string   `json:"time_on"`
	PrimedBy      string   `json:"primed_by"`
	StockUtilised string   `json:"stock_utilised"`

	Weight           Numeric `json:"weight"`
	BloodPressure    string  `json:"blood_pressure"`
	Pulse            Numeric `json:"pulse"`
	BloodGlucose     Numeric `json:"blood_glucose"`
	Temperature      Numeric `json:"temperature"`
	HGT              Numeric `json:"hgt"`
	Saturation       Numeric `json:"saturation"`
	PostConnectionBP string  `json:"post_connection_bp"`

	PreDisconnectionBP  string  `json:"pre_disconnection_bp"`
	PostDisconnectionBP string  `json:"post_disconnection_bp"`
	WPost               Numeric `json:"w_post"`
	QdPost              Numeric `json:"qd_post"`
	QbPost              Numeric `json:"qb_post"`
	UF                  Numeric `json:"uf"`
	Ktv                 Numeric `json:"ktv"`
	TimeOff             string  `json:"time_of"`
	DisconnectedBy      string  `json:"disconnected_by"`
}

type MedicalNoteSummary struct {
	ID        int64    `db:"id" json:"id"`
	Name      *string  `db:"name" json:"name"`
	Surname   *string  `db:"surname" json:"surname"`
	Diagnosis *string  `db:"diagnosis" json:"diagnosis"`
	Doctor    *string  `db:"doctor" json:"doctor"`
	Date      *string  `db:"date" json:"date"`
	Dialyzer  *string  `db:"dialyzer" json:"dialyzer"`
	Weight    *float64 `db:"weight" json:"weight"`
	NoteYear  *float64 `db:"note_year" json:"note_year"`
	NoteMonth *float64 `db:"note_month" json:"note_month"`
}
