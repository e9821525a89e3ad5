package user

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fitdesk/internal/api"
	"fitdesk/internal/auth"
	"fitdesk/internal/metrics"
)

var (
	ErrInvalidCredentials = api.NewUnauthorizedError("Invalid email or password")
	ErrGymInactive        = auth.ErrGymInactive
	ErrUserNotFound       = api.NewNotFoundError("User not found")
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*User, string, error)
	GetByID(ctx context.Context, userID int) (*User, error)
}

type service struct {
	repo      Repository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewService(repo Repository, jwtSecret string, tokenTTL time.Duration) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.RecordLogin("invalid_credentials")
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", api.NewInternalError("Failed to look up user", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		metrics.RecordLogin("invalid_credentials")
		return nil, "", ErrInvalidCredentials
	}

	if user.Role == auth.RoleGymOwner && user.GymActive != nil && !*user.GymActive {
		metrics.RecordLogin("gym_inactive")
		return nil, "", ErrGymInactive
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role, user.TenantID(), s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, "", api.NewInternalError("Failed to generate token", err)
	}

	metrics.RecordLogin("success")
	return user, token, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, api.NewInternalError("Failed to load user", err)
	}
	return user, nil
}
