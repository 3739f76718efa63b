package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renalworks/dialysis-api/internal/model"
	"github.com/renalworks/dialysis-api/pkg/auth"
	"github.com/renalworks/dialysis-api/pkg/errors"
	"github.com/renalworks/dialysis-api/pkg/security"
)

type stubUserRepo struct {
	users  map[string]*model.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[string]*model.User{}, nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, user *model.User) (int64, error) {
	id := r.nextID
	r.nextID++
	u := *user
	u.ID = id
	r.users[user.Email] = &u
	return id, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, errors.NotFound("user")
	}
	return u, nil
}

func (r *stubUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func newTestService() (*Service, *stubUserRepo) {
	repo := newStubUserRepo()
	svc := NewService(repo, security.NewBcryptHasher(4), auth.NewJWTService("test-secret", time.Hour))
	return svc, repo
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService()

	user, err := svc.Register(context.Background(), &model.RegisterRequest{
		FirstName: "Thandi",
		LastName:  "Nkosi",
		Email:     "thandi@clinic.test",
		Password:  "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "thandi@clinic.test", user.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	req := &model.RegisterRequest{
		FirstName: "Thandi",
		LastName:  "Nkosi",
		Email:     "thandi@clinic.test",
		Password:  "secret123",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeDuplicate, appErr.Code)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		FirstName: "Thandi",
		LastName:  "Nkosi",
		Email:     "thandi@clinic.test",
		Password:  "secret123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", repo.users["thandi@clinic.test"].PasswordHash)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		FirstName: "Thandi",
		LastName:  "Nkosi",
		Email:     "thandi@clinic.test",
		Password:  "secret123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "thandi@clinic.test",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		FirstName: "Thandi",
		LastName:  "Nkosi",
		Email:     "thandi@clinic.test",
		Password:  "secret123",
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  model.LoginRequest
	}{
		{"unknown email", model.LoginRequest{Email: "nobody@clinic.test", Password: "secret123"}},
		{"wrong password", model.LoginRequest{Email: "thandi@clinic.test", Password: "wrong"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &tt.req)
			require.Error(t, err)
			assert.Equal(t, "Invalid Credentials", err.(*errors.AppError).Message)
		})
	}
}
