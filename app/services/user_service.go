package services

import (
	"fmt"

	"commboard/app/auth"
	"commboard/app/models"
	"commboard/app/repositories"
)

// SessionRevoker destroys every server-side session belonging to a user.
// Satisfied by the sessions store; narrow so tests can stub it.
type SessionRevoker interface {
	DestroyUser(userID int64) error
}

// UserService handles profile management, password changes and account
// withdrawal.
type UserService struct {
	users    repositories.UserRepository
	sessions SessionRevoker
}

// NewUserService creates a new UserService.
func NewUserService(users repositories.UserRepository, sessions SessionRevoker) *UserService {
	return &UserService{users: users, sessions: sessions}
}

// Profile retrieves a user's public profile fields.
func (s *UserService) Profile(userID int64) (*models.User, error) {
	return s.users.GetByID(userID)
}

// UpdateProfile partially updates a profile; nil fields keep their stored
// values. Returns the updated account.
func (s *UserService) UpdateProfile(userID int64, email, nickname, profileImg *string) (*models.User, error) {
	current, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if email != nil && *email != current.Email {
		if exists, err := s.users.EmailExists(*email); err != nil {
			return nil, err
		} else if exists {
			return nil, repositories.ErrDuplicateEmail
		}
	}
	if nickname != nil && *nickname != current.Nickname {
		if exists, err := s.users.NicknameExists(*nickname); err != nil {
			return nil, err
		} else if exists {
			return nil, repositories.ErrDuplicateNickname
		}
	}

	rows, err := s.users.UpdateProfile(userID, email, nickname, profileImg)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, repositories.ErrNotFound
	}
	return s.users.GetByID(userID)
}

// ChangePassword rehashes and stores a new password, then destroys every
// session of the user so the old cookie cannot ride on the old credentials.
func (s *UserService) ChangePassword(userID int64, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	rows, err := s.users.UpdatePassword(userID, hash)
	if err != nil {
		return err
	}
	if rows == 0 {
		return repositories.ErrNotFound
	}
	return s.sessions.DestroyUser(userID)
}

// Withdraw cascades the account deletion (comments, posts, likes, then the
// user row, atomically) and destroys the user's sessions. On a failed
// deletion the sessions survive along with the account.
func (s *UserService) Withdraw(userID int64) error {
	if err := s.users.Withdraw(userID); err != nil {
		return err
	}
	return s.sessions.DestroyUser(userID)
}
