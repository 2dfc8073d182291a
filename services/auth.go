package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"Reelist/models"
)

type userRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *models.User) error
}

var _ userRepository = (*UserStore)(nil)

type AuthService struct {
	users  userRepository
	tokens *TokenService
}

func NewAuthService(users userRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	exists, err := s.users.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	user := &models.User{Username: username}
	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("User registered", "username", username, "user_id", user.ID)
	return user, nil
}

// Login checks the credentials and returns a signed access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !user.CheckPassword(password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

// Authenticate resolves a bearer token to the id of an existing user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (int64, error) {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return 0, err
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return 0, fmt.Errorf("%w: user %d no longer exists", ErrInvalidToken, userID)
		}
		return 0, err
	}

	return userID, nil
}
