package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PriyanKishoreMS/RideAlong-Server/internal/pkg/models"
	"github.com/PriyanKishoreMS/RideAlong-Server/services/users"
)

func TestToggleFollow_Follow(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	followerID := uuid.New()
	followeeID := uuid.New()

	m.repo.EXPECT().GetUserByID(gomock.Any(), followeeID).
		Return(&models.User{ID: followeeID}, nil)
	m.social.EXPECT().IsFollowing(gomock.Any(), followerID, followeeID).Return(false, nil)
	m.social.EXPECT().Follow(gomock.Any(), followerID, followeeID).Return(nil)

	result, err := uc.ToggleFollow(context.Background(), followerID, followeeID)
	require.NoError(t, err)
	assert.True(t, result.Following)
}

func TestToggleFollow_Unfollow(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	followerID := uuid.New()
	followeeID := uuid.New()

	m.repo.EXPECT().GetUserByID(gomock.Any(), followeeID).
		Return(&models.User{ID: followeeID}, nil)
	m.social.EXPECT().IsFollowing(gomock.Any(), followerID, followeeID).Return(true, nil)
	m.social.EXPECT().Unfollow(gomock.Any(), followerID, followeeID).Return(nil)

	result, err := uc.ToggleFollow(context.Background(), followerID, followeeID)
	require.NoError(t, err)
	assert.False(t, result.Following)
}

func TestToggleFollow_Self(t *testing.T) {
	uc, _, ctrl := newTestUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	_, err := uc.ToggleFollow(context.Background(), userID, userID)
	assert.ErrorIs(t, err, users.ErrSelfFollow)
}

func TestToggleFollow_TargetMissing(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	followerID := uuid.New()
	followeeID := uuid.New()

	m.repo.EXPECT().GetUserByID(gomock.Any(), followeeID).
		Return(nil, users.ErrUserNotFound)

	_, err := uc.ToggleFollow(context.Background(), followerID, followeeID)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestSearchUsers_PassesThrough(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	page := &models.UserPage{
		Users:      []*models.UserSummary{{ID: uuid.New(), Name: "Rider"}},
		TotalPages: 3,
	}
	m.repo.EXPECT().SearchUsers(gomock.Any(), "rid", 2, 10).Return(page, nil)

	result, err := uc.SearchUsers(context.Background(), "rid", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, page, result)
}

func TestDeviceTokens(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m.devices.EXPECT().AddToken(gomock.Any(), userID, "fcm-token-1").Return(nil)
	assert.NoError(t, uc.RegisterDeviceToken(context.Background(), userID, "fcm-token-1"))

	m.devices.EXPECT().RemoveToken(gomock.Any(), userID, "fcm-token-1").
		Return(errors.New("redis down"))
	assert.Error(t, uc.RemoveDeviceToken(context.Background(), userID, "fcm-token-1"))
}
