package patient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renalworks/dialysis-api/internal/model"
	pathologyService "github.com/renalworks/dialysis-api/internal/service/pathology"
	patientService "github.com/renalworks/dialysis-api/internal/service/patient"
)

type stubPatientRepo struct {
	patients   []model.PatientSummary
	lastQuery  string
	lastUserID int64
	created    *model.CreatePatientRequest
}

func (r *stubPatientRepo) Create(_ context.Context, userID int64, req *model.CreatePatientRequest) (int64, error) {
	r.lastUserID = userID
	r.created = req
	return 101, nil
}

func (r *stubPatientRepo) List(_ context.Context, userID int64) ([]model.PatientSummary, error) {
	r.lastUserID = userID
	return r.patients, nil
}

func (r *stubPatientRepo) Search(_ context.Context, userID int64, query string) ([]model.PatientSummary, error) {
	r.lastUserID = userID
	r.lastQuery = query
	return r.patients, nil
}

func (r *stubPatientRepo) GetDetails(_ context.Context, _, _ int64) (*model.PatientDetails, error) {
	return nil, nil
}

func (r *stubPatientRepo) ListScriptReminders(_ context.Context, _ int) ([]model.ScriptReminder, error) {
	return nil, nil
}

type stubPathologyRepo struct{}

func (r *stubPathologyRepo) Create(_ context.Context, patientID int64, req *model.CreatePathologyRequest) (*model.PathologyRecord, error) {
	return &model.PathologyRecord{
		ID:          1,
		PatientID:   patientID,
		TestName:    req.TestName,
		TestDate:    req.TestDate.String(),
		ResultValue: req.TestResult,
	}, nil
}

func (r *stubPathologyRepo) List(_ context.Context, _, _ int64) ([]model.PathologyRecord, error) {
	return []model.PathologyRecord{}, nil
}

func newTestRouter(repo *stubPatientRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", int64(9))
		c.Next()
	})
	h := NewHandler(patientService.NewService(repo), pathologyService.NewService(&stubPathologyRepo{}))
	api := r.Group("/api")
	h.RegisterRoutes(api)
	return r
}

func TestCreatePatient(t *testing.T) {
	repo := &stubPatientRepo{}
	r := newTestRouter(repo)

	body := []byte(`{
		"fullName": "Sipho Dlamini",
		"dateOfBirth": "1968-03-12",
		"gender": "M",
		"weight": "72.5",
		"diabeticStatus": "Y",
		"frequency": 3
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/patients", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp["patientId"])
	assert.Equal(t, int64(9), repo.lastUserID)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Sipho Dlamini", repo.created.FullName)
	require.NotNil(t, repo.created.Weight.Ptr())
	assert.Equal(t, 72.5, *repo.created.Weight.Ptr())
}

func TestCreatePatientRequiresFullName(t *testing.T) {
	r := newTestRouter(&stubPatientRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/patients", bytes.NewReader([]byte(`{"gender":"F"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchPatients(t *testing.T) {
	repo := &stubPatientRepo{patients: []model.PatientSummary{{ID: 3, FullName: "Ana Mokoena"}}}
	r := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/patients/search?q=ana", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ana", repo.lastQuery)
	assert.Contains(t, w.Body.String(), "Ana Mokoena")
}

func TestCreatePathology(t *testing.T) {
	r := newTestRouter(&stubPatientRepo{})

	body := []byte(`{"testName":"URR","testDate":"2026-08-01","testResult":"68"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/patients/3/pathology", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"test_name":"URR"`)
}

func TestCreatePathologyInvalidPatientID(t *testing.T) {
	r := newTestRouter(&stubPatientRepo{})

	body := []byte(`{"testName":"URR","testDate":"2026-08-01","testResult":"68"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/patients/abc/pathology", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
