package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSocialRepoTest(t *testing.T) (*SocialRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := &SocialRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestIsFollowing(t *testing.T) {
	repo, mock, cleanup := setupSocialRepoTest(t)
	defer cleanup()

	followerID := uuid.New()
	followeeID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(followerID, followeeID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	following, err := repo.IsFollowing(context.Background(), followerID, followeeID)
	require.NoError(t, err)
	assert.True(t, following)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollow_RefollowIsNoop(t *testing.T) {
	repo, mock, cleanup := setupSocialRepoTest(t)
	defer cleanup()

	followerID := uuid.New()
	followeeID := uuid.New()

	// ON CONFLICT DO NOTHING reports zero rows on a duplicate edge
	mock.ExpectExec("INSERT INTO follows").
		WithArgs(followerID, followeeID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Follow(context.Background(), followerID, followeeID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnfollow_AbsentEdgeIsNoop(t *testing.T) {
	repo, mock, cleanup := setupSocialRepoTest(t)
	defer cleanup()

	followerID := uuid.New()
	followeeID := uuid.New()

	mock.ExpectExec("DELETE FROM follows").
		WithArgs(followerID, followeeID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Unfollow(context.Background(), followerID, followeeID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowers(t *testing.T) {
	repo, mock, cleanup := setupSocialRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "name", "photo_url"}).
		AddRow(uuid.New(), "Fan One", "").
		AddRow(uuid.New(), "Fan Two", "")

	mock.ExpectQuery("JOIN users u ON u.id = f.follower_id").
		WithArgs(userID, 10, 0).
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM follows").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	page, err := repo.Followers(context.Background(), userID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, page.Users, 2)
	assert.Equal(t, 1, page.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFollowing(t *testing.T) {
	repo, mock, cleanup := setupSocialRepoTest(t)
	defer cleanup()

	userID := uuid.New()

	mock.ExpectQuery("JOIN users u ON u.id = f.followee_id").
		WithArgs(userID, 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "photo_url"}))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM follows").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	page, err := repo.Following(context.Background(), userID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Users)
	assert.Equal(t, 0, page.TotalPages)
	assert.NoError(t, mock.ExpectationsWereMet())
}
