package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"commboard/app/auth"
	"commboard/app/models"
	"commboard/app/repositories"
	"commboard/app/repositories/mock"
)

func TestAuthServiceSignup(t *testing.T) {
	users := mock.NewUserRepository()
	service := NewAuthService(users)

	t.Run("registers and hashes the password", func(t *testing.T) {
		user, err := service.Signup("a@x.com", "bob", "pw123", "")
		require.NoError(t, err)
		require.NotZero(t, user.ID)
		require.NotEqual(t, "pw123", user.Password)
		require.True(t, auth.CheckPassword("pw123", user.Password))
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := service.Signup("not-an-email", "carol", "pw123", "")
		require.ErrorIs(t, err, ErrValidation)

		_, err = service.Signup("c@x.com", "", "pw123", "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := service.Signup("a@x.com", "carol", "pw123", "")
		require.ErrorIs(t, err, repositories.ErrDuplicateEmail)

		_, err = service.Signup("c@x.com", "bob", "pw123", "")
		require.ErrorIs(t, err, repositories.ErrDuplicateNickname)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	users := mock.NewUserRepository()
	service := NewAuthService(users)

	registered, err := service.Signup("a@x.com", "bob", "pw123", "")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := service.Login("a@x.com", "pw123")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login("nobody@x.com", "pw123")
		require.ErrorIs(t, err, ErrUnknownEmail)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login("a@x.com", "nope")
		require.ErrorIs(t, err, ErrWrongPassword)
	})
}

func TestAuthServiceCurrentUser(t *testing.T) {
	users := mock.NewUserRepository()
	service := NewAuthService(users)

	user := &models.User{Email: "a@x.com", Nickname: "bob", Password: "hash"}
	require.NoError(t, users.Create(user))

	got, err := service.CurrentUser(user.ID)
	require.NoError(t, err)
	require.Equal(t, "bob", got.Nickname)

	_, err = service.CurrentUser(9999)
	require.ErrorIs(t, err, repositories.ErrNotFound)
}
