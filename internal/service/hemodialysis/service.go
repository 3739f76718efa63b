package hemodialysis

import (
	"context"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
	"github.com/renalworks/dialysis-api/pkg/errors"
)

type Service struct {
	repo repository.HemodialysisRepository
}

func NewService(repo repository.HemodialysisRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, patientID int64, req *model.CreateHemodialysisRequest) (*model.HemodialysisRecord, error) {
	record, err := s.repo.Create(ctx, patientID, req)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	return record, nil
}

func (s *Service) List(ctx context.Context, userID, patientID int64) ([]model.HemodialysisSummary, error) {
	records, err := s.repo.List(ctx, userID, patientID)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	return records, nil
}
