package services

import (
	"fmt"

	"commboard/app/auth"
	"commboard/app/models"
	"commboard/app/repositories"
)

// AuthService handles signup and login.
type AuthService struct {
	users repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Signup validates and registers a new account. Email and nickname are
// pre-checked for duplicates to produce friendly client errors; the schema's
// UNIQUE constraints remain the authoritative signal, so a race between two
// concurrent signups still rejects the loser.
func (s *AuthService) Signup(email, nickname, password, profileImg string) (*models.User, error) {
	user := &models.User{
		Email:      email,
		Nickname:   nickname,
		Password:   password,
		ProfileImg: profileImg,
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if exists, err := s.users.EmailExists(email); err != nil {
		return nil, err
	} else if exists {
		return nil, repositories.ErrDuplicateEmail
	}
	if exists, err := s.users.NicknameExists(nickname); err != nil {
		return nil, err
	} else if exists {
		return nil, repositories.ErrDuplicateNickname
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user.Password = hash

	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the account on success.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err == repositories.ErrNotFound {
		return nil, ErrUnknownEmail
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, ErrWrongPassword
	}
	return user, nil
}

// CurrentUser re-reads the account behind a session so responses always
// reflect the stored profile, not a stale snapshot.
func (s *AuthService) CurrentUser(userID int64) (*models.User, error) {
	return s.users.GetByID(userID)
}
