package dialysis

import (
	"context"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
	"github.com/renalworks/dialysis-api/pkg/errors"
)

// Service handles the full dialysis session charts, the wide form that
// combines prescription, pre-assessment and post-dialysis observations.
type Service struct {
	repo repository.ChartRepository
}

func NewService(repo repository.ChartRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID int64, req *model.CreateChartRequest) (int64, error) {
	id, err := s.repo.Create(ctx, userID, req)
	if err != nil {
		return 0, errors.FromDB(err)
	}
	return id, nil
}

func (s *Service) List(ctx context.Context, userID, patientID int64) ([]model.ChartSummary, error) {
	charts, err := s.repo.List(ctx, userID, patientID)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	return charts, nil
}
