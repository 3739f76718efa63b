package report

import (
	"context"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
	"github.com/renalworks/dialysis-api/pkg/errors"
)

type Service struct {
	repo repository.ReportRepository
}

func NewService(repo repository.ReportRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID int64, req *model.CreateReportRequest) (int64, error) {
	id, err := s.repo.Create(ctx, userID, req)
	if err != nil {
		return 0, errors.FromDB(err)
	}
	return id, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]model.ReportSummary, error) {
	reports, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	return reports, nil
}
