package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/users"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/users/mocks"
)

type ucMocks struct {
	repo    *mocks.MockUserRepo
	social  *mocks.MockSocialRepo
	devices *mocks.MockDeviceRepo
}

func newTestUC(t *testing.T) (users.UserUC, ucMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := ucMocks{
		repo:    mocks.NewMockUserRepo(ctrl),
		social:  mocks.NewMockSocialRepo(ctrl),
		devices: mocks.NewMockDeviceRepo(ctrl),
	}

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "ridealong-test",
		},
	}

	uc, err := NewUserUC(cfg, m.repo, m.social, m.devices)
	require.NoError(t, err)

	return uc, m, ctrl
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_Success(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	req := &models.RegisterRequest{
		Email:    "  New.Rider@Example.COM ",
		Password: "secret123",
		Name:     "New Rider",
	}

	m.repo.EXPECT().GetUserByEmail(gomock.Any(), "new.rider@example.com").
		Return(nil, users.ErrUserNotFound)

	var created *models.User
	m.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			created = u
			return nil
		})

	resp, err := uc.Register(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "new.rider@example.com", created.Email)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))

	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, created, resp.User)
}

func TestRegister_EmailTaken(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().GetUserByEmail(gomock.Any(), "taken@example.com").
		Return(&models.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret123",
		Name:     "Dupe",
	})
	assert.ErrorIs(t, err, users.ErrEmailTaken)
}

func TestRegister_LookupError(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().GetUserByEmail(gomock.Any(), "rider@example.com").
		Return(nil, errors.New("connection refused"))

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:    "rider@example.com",
		Password: "secret123",
		Name:     "Rider",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, users.ErrEmailTaken)
}

func TestLogin_Success(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "rider@example.com",
		PasswordHash: hashPassword(t, "secret123"),
		Name:         "Rider",
	}
	m.repo.EXPECT().GetUserByEmail(gomock.Any(), "rider@example.com").Return(user, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "Rider@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user, resp.User)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "rider@example.com",
		PasswordHash: hashPassword(t, "secret123"),
	}
	m.repo.EXPECT().GetUserByEmail(gomock.Any(), "rider@example.com").Return(user, nil)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "rider@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailMapsToInvalidCredentials(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	m.repo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").
		Return(nil, users.ErrUserNotFound)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, users.ErrUserNotFound)
}
