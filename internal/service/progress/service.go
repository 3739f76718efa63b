package progress

import (
	"context"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
	"github.com/renalworks/dialysis-api/pkg/errors"
)

type Service struct {
	repo repository.ProgressRepository
}

func NewService(repo repository.ProgressRepository) *Service {
	return &Service{repo: repo}
}

// CreateBatch stores every entry of one form submission. The batch is
// all-or-nothing at the repository level.
func (s *Service) CreateBatch(ctx context.Context, userID int64, req *model.CreateProgressLogRequest) ([]model.ProgressEntry, error) {
	if len(req.LogEntries) == 0 {
		return nil, errors.Validation("logEntries must not be empty")
	}
	entries, err := s.repo.CreateBatch(ctx, userID, req.PatientID, req.LogEntries)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	return entries, nil
}

func (s *Service) List(ctx context.Context, userID, patientID int64) ([]model.ProgressEntry, error) {
	entries, err := s.repo.List(ctx, userID, patientID)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	return entries, nil
}
