package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"vyeya-be/internal/auth"
	"vyeya-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, email, password, name, role string) (string, *User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, p UpdateProfileParams) (*User, error)
	GetGrower(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo   Repository
	tokens *auth.TokenService
}

func NewService(repo Repository, tokens *auth.TokenService) Service {
	return &service{repo: repo, tokens: tokens}
}

func (s *service) Register(ctx context.Context, email, password, name, role string) (string, *User, error) {
	log := logger.FromCtx(ctx)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, ErrEmailExists
	} else if !errors.Is(err, sql.ErrNoRows) {
		log.Error("failed to check existing email", zap.Error(err))
		return "", nil, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	u, err := s.repo.Create(ctx, uuid.NewString(), email, hashed, name, string(NormalizeRole(role)))
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return "", nil, ErrEmailExists
		}
		return "", nil, err
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		log.Error("failed to issue token", zap.String("user_id", u.ID), zap.Error(err))
		return "", nil, err
	}

	log.Info("register completed",
		zap.String("user_id", u.ID),
		zap.String("email", email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		log.Info("login failed: email not found", zap.String("email", email))
		return "", nil, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(password, u.Password) {
		log.Info("login failed: password mismatch", zap.String("user_id", u.ID))
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, p UpdateProfileParams) (*User, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return nil, ErrNameRequired
	}

	return s.repo.UpdateProfile(ctx, userID, p)
}

func (s *service) GetGrower(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.FindGrower(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGrowerNotFound
		}
		return nil, err
	}
	return u, nil
}
