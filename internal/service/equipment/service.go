package equipment

import (
	"context"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
	"github.com/renalworks/dialysis-api/pkg/errors"
)

type Service struct {
	repo repository.EquipmentRepository
}

func NewService(repo repository.EquipmentRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID int64, req *model.CreateEquipmentRequest) (int64, error) {
	id, err := s.repo.Create(ctx, userID, req)
	if err != nil {
		return 0, errors.FromDB(err)
	}
	return id, nil
}

// List returns every maintenance record. Machines are clinic assets, not
// patient records, so there is no ownership filter.
func (s *Service) List(ctx context.Context) ([]model.EquipmentRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	return records, nil
}
