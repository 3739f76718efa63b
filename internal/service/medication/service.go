package medication

import (
	"context"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
	"github.com/renalworks/dialysis-api/pkg/errors"
)

type Service struct {
	repo repository.MedicationRepository
}

func NewService(repo repository.MedicationRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID int64, req *model.CreateMedicationRequest) (int64, error) {
	id, err := s.repo.Create(ctx, userID, req)
	if err != nil {
		return 0, errors.FromDB(err)
	}
	return id, nil
}

func (s *Service) List(ctx context.Context, userID, patientID int64) ([]model.MedicationRecord, error) {
	records, err := s.repo.List(ctx, userID, patientID)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	return records, nil
}
