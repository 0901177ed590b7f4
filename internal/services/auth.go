package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"studio-api/internal/auth"
	"studio-api/internal/logger"
	"studio-api/internal/models"
	"studio-api/internal/storage"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService authenticates studio administrators and issues access tokens.
type AuthService struct {
	store  storage.Store
	tokens *auth.Manager
	log    *logger.Logger
}

func NewAuthService(store storage.Store, tokens *auth.Manager, log *logger.Logger) *AuthService {
	return &AuthService{store: store, tokens: tokens, log: log}
}

// Login verifies credentials and returns a signed token plus the user.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.log.LogSecurity("LOGIN_FAILED", fmt.Sprintf("unknown username %q", username))
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		s.log.LogSecurity("LOGIN_FAILED", fmt.Sprintf("bad password for %q", username))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.LogSecurity("LOGIN", fmt.Sprintf("admin %q logged in", username))
	return token, user, nil
}

// CreateUser hashes the password and stores a new admin account. Used by the
// bootstrap command, not exposed over HTTP.
func (s *AuthService) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:       username,
		HashedPassword: string(hashed),
		IsAdmin:        true,
	}
	if err := s.store.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return user, nil
}
