package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/users"
)

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &UserRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateUser(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "rider@example.com",
		PasswordHash: "hash",
		Name:         "Rider",
	}

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM users WHERE email").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetUserByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "email", "name"}).
		AddRow(userID, "rider@example.com", "Rider")

	mock.ExpectQuery("SELECT \\* FROM users WHERE id").
		WithArgs(userID).
		WillReturnRows(rows)

	user, err := repo.GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "Rider", user.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetHomeAddress(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectExec("UPDATE users SET home_address").
		WithArgs("12 Beach Road, Chennai", sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetHomeAddress(context.Background(), userID, "12 Beach Road, Chennai")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetWorkAddress_UnknownUser(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectExec("UPDATE users SET work_address").
		WithArgs("Tech Park", sqlmock.AnyArg(), userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetWorkAddress(context.Background(), userID, "Tech Park")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchUsers(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "photo_url"}).
		AddRow(uuid.New(), "Rider One", "").
		AddRow(uuid.New(), "Rider Two", "https://cdn/pic.jpg")

	mock.ExpectQuery("SELECT id, name, COALESCE").
		WithArgs("%rid%", 10, 0).
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WithArgs("%rid%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	page, err := repo.SearchUsers(context.Background(), "rid", 0, 10)
	require.NoError(t, err)
	assert.Len(t, page.Users, 2)
	assert.Equal(t, 2, page.TotalPages, "12 matches at 10 per page")
	assert.NoError(t, mock.ExpectationsWereMet())
}
