package patient

import (
	"context"
	"strings"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
	"github.com/renalworks/dialysis-api/pkg/errors"
)

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID int64, req *model.CreatePatientRequest) (int64, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return 0, errors.Validation("fullName is required")
	}
	id, err := s.repo.Create(ctx, userID, req)
	if err != nil {
		return 0, errors.FromDB(err)
	}
	return id, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]model.PatientSummary, error) {
	patients, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	return patients, nil
}

// Search matches on name substring or exact numeric id. A blank query
// behaves like List.
func (s *Service) Search(ctx context.Context, userID int64, query string) ([]model.PatientSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx, userID)
	}
	patients, err := s.repo.Search(ctx, userID, query)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	return patients, nil
}

func (s *Service) GetDetails(ctx context.Context, userID, patientID int64) (*model.PatientDetails, error) {
	details, err := s.repo.GetDetails(ctx, userID, patientID)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	return details, nil
}
