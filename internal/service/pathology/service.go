package pathology

import (
	"context"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
	"github.com/renalworks/dialysis-api/pkg/errors"
)

type Service struct {
	repo repository.PathologyRepository
}

func NewService(repo repository.PathologyRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, patientID int64, req *model.CreatePathologyRequest) (*model.PathologyRecord, error) {
	record, err := s.repo.Create(ctx, patientID, req)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	return record, nil
}

func (s *Service) List(ctx context.Context, userID, patientID int64) ([]model.PathologyRecord, error) {
	records, err := s.repo.List(ctx, userID, patientID)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	return records, nil
}
