package model

type CreatePathologyRequest struct {
	TestName   string   `json:"testName" binding:"required"`
	TestType   string   `json:"testType"`
	TestDate   DateOnly `json:"testDate" binding:"required"`
	TestResult string   `json:"testResult" binding:"required"` // stored as result_value
	ResultUnit string   `json:"resultUnit"`
}

type PathologyRecord struct {
	ID          int64   `db:"id" json:"id"`
	PatientID   int64   `db:"patient_id" json:"patient_id"`
	TestName    string  `db:"test_name" json:"test_name"`
	TestType    *string `db:"test_type" json:"test_type"`
	TestDate    string  `db:"test_date" json:"test_date"`
	ResultValue string  `db:"result_value" json:"result_value"`
	ResultUnit  *string `db:"result_unit" json:"result_unit"`
}
