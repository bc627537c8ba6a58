package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Signup(ctx context.Context, username, password string) (*User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (int64, error)
	GetUser(ctx context.Context, userID int64) (*User, error)
	UpdateProfile(ctx context.Context, userID int64, username, password string) error
	SetLanguage(ctx context.Context, userID int64, language string) error
}

type service struct {
	repo     Repository
	tokenTTL time.Duration
}

func NewService(repo Repository, tokenTTL time.Duration) Service {
	if tokenTTL <= 0 {
		tokenTTL = 30 * time.Minute
	}
	return &service{repo: repo, tokenTTL: tokenTTL}
}

func (s *service) Signup(ctx context.Context, username, password string) (*User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	if _, err := s.repo.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.repo.CreateUser(ctx, username, string(hash))
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.repo.CreateToken(ctx, token, user.ID, time.Now().Add(s.tokenTTL)); err != nil {
		return "", fmt.Errorf("create token: %w", err)
	}
	return token, nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	return s.repo.DeleteToken(ctx, token)
}

func (s *service) Authenticate(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrUnauthorized
	}
	userID, err := s.repo.GetTokenUserID(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrUnauthorized
		}
		return 0, fmt.Errorf("lookup token: %w", err)
	}
	return userID, nil
}

func (s *service) GetUser(ctx context.Context, userID int64) (*User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID int64, username, password string) error {
	if username == "" && password == "" {
		return fmt.Errorf("no changes provided")
	}

	if username != "" {
		existing, err := s.repo.GetUserByUsername(ctx, username)
		if err == nil {
			if existing.ID != userID {
				return ErrUsernameTaken
			}
		} else if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("check username: %w", err)
		}
		if err := s.repo.SetUsername(ctx, userID, username); err != nil {
			return fmt.Errorf("update username: %w", err)
		}
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		if err := s.repo.SetPasswordHash(ctx, userID, string(hash)); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
	}
	return nil
}

func (s *service) SetLanguage(ctx context.Context, userID int64, language string) error {
	if language != "english" && language != "telugu" {
		return fmt.Errorf("unsupported language: %s", language)
	}
	return s.repo.SetUserLanguage(ctx, userID, language)
}
