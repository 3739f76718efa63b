package note

import (
	"context"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
	"github.com/renalworks/dialysis-api/pkg/errors"
)

type Service struct {
	repo repository.NoteRepository
}

func NewService(repo repository.NoteRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateMedicalNoteRequest) (int64, error) {
	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return 0, errors.FromDB(err)
	}
	return id, nil
}

func (s *Service) List(ctx context.Context) ([]model.MedicalNoteSummary, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	return notes, nil
}
