package auth

import (
	"context"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/internal/repository"
	"github.com/renalworks/dialysis-api/pkg/auth"
	"github.com/renalworks/dialysis-api/pkg/errors"
	"github.com/renalworks/dialysis-api/pkg/security"
)

type Service struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
	tokens   auth.TokenService
}

func NewService(userRepo repository.UserRepository, hasher security.PasswordHasher, tokens auth.TokenService) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Register creates a clinic account. Email uniqueness is checked up front
// and again enforced by the unique index, so a concurrent duplicate still
// maps to the same error.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisteredUser, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, errors.FromDB(err)
	}
	if exists {
		return nil, errors.DuplicateEmail()
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, errors.Persistence(err)
	}

	user := &model.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	}
	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, errors.FromDB(err)
	}

	return &model.RegisteredUser{ID: id, Email: req.Email}, nil
}

// Login verifies credentials and issues a signed token. Unknown emails and
// wrong passwords return the same error.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.InvalidCredentials()
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, errors.InvalidCredentials()
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, errors.Persistence(err)
	}

	return &model.TokenResponse{Token: token}, nil
}
