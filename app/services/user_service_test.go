package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"commboard/app/auth"
	"commboard/app/models"
	"commboard/app/repositories"
	"commboard/app/repositories/mock"
)

// revoker records DestroyUser calls.
type revoker struct {
	mutex   sync.Mutex
	revoked []int64
}

func (r *revoker) DestroyUser(userID int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.revoked = append(r.revoked, userID)
	return nil
}

func seedMockUser(t *testing.T, users *mock.UserRepository, email, nickname string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Nickname: nickname, Password: "hash"}
	require.NoError(t, users.Create(user))
	return user
}

func TestUserServiceUpdateProfile(t *testing.T) {
	users := mock.NewUserRepository()
	service := NewUserService(users, &revoker{})
	user := seedMockUser(t, users, "a@x.com", "bob")
	seedMockUser(t, users, "c@x.com", "carol")

	t.Run("partial update keeps other fields", func(t *testing.T) {
		nickname := "bobby"
		updated, err := service.UpdateProfile(user.ID, nil, &nickname, nil)
		require.NoError(t, err)
		require.Equal(t, "bobby", updated.Nickname)
		require.Equal(t, "a@x.com", updated.Email)
	})

	t.Run("rejects a taken nickname", func(t *testing.T) {
		taken := "carol"
		_, err := service.UpdateProfile(user.ID, nil, &taken, nil)
		require.ErrorIs(t, err, repositories.ErrDuplicateNickname)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		taken := "c@x.com"
		_, err := service.UpdateProfile(user.ID, &taken, nil, nil)
		require.ErrorIs(t, err, repositories.ErrDuplicateEmail)
	})

	t.Run("resubmitting the current values is not a duplicate", func(t *testing.T) {
		same := "bobby"
		_, err := service.UpdateProfile(user.ID, nil, &same, nil)
		require.NoError(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		nickname := "ghost"
		_, err := service.UpdateProfile(9999, nil, &nickname, nil)
		require.ErrorIs(t, err, repositories.ErrNotFound)
	})
}

func TestUserServiceChangePassword(t *testing.T) {
	users := mock.NewUserRepository()
	sessions := &revoker{}
	service := NewUserService(users, sessions)
	user := seedMockUser(t, users, "a@x.com", "bob")

	t.Run("stores a hash and revokes sessions", func(t *testing.T) {
		require.NoError(t, service.ChangePassword(user.ID, "newpw123"))

		stored, err := users.GetByID(user.ID)
		require.NoError(t, err)
		require.NotEqual(t, "newpw123", stored.Password)
		require.True(t, auth.CheckPassword("newpw123", stored.Password))
		require.Equal(t, []int64{user.ID}, sessions.revoked)
	})

	t.Run("rejects an empty password", func(t *testing.T) {
		require.ErrorIs(t, service.ChangePassword(user.ID, ""), ErrValidation)
	})

	t.Run("missing user", func(t *testing.T) {
		require.ErrorIs(t, service.ChangePassword(9999, "newpw123"), repositories.ErrNotFound)
	})
}

func TestUserServiceWithdraw(t *testing.T) {
	users := mock.NewUserRepository()
	sessions := &revoker{}
	service := NewUserService(users, sessions)
	user := seedMockUser(t, users, "a@x.com", "bob")

	require.NoError(t, service.Withdraw(user.ID))
	require.Equal(t, []int64{user.ID}, sessions.revoked)

	_, err := service.Profile(user.ID)
	require.ErrorIs(t, err, repositories.ErrNotFound)

	t.Run("failed withdrawal keeps sessions", func(t *testing.T) {
		require.ErrorIs(t, service.Withdraw(9999), repositories.ErrNotFound)
		require.Len(t, sessions.revoked, 1)
	})
}
