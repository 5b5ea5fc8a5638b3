package user

import (
	"context"
	"database/sql"
	"errors"

	"vyeya-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, id, email, password, name, role string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, p UpdateProfileParams) (*User, error)
	FindGrower(ctx context.Context, id string) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, id, email, password, name, role string) (*User, error) {
	log := logger.FromCtx(ctx)

	var u User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, password, name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, password, name, role, bio, phone, location
	`, id, email, password, name, role).
		Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.Bio, &u.Phone, &u.Location)

	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password, name, role, bio, phone, location
		FROM users WHERE email = $1
	`, email).
		Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.Bio, &u.Phone, &u.Location)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, password, name, role, bio, phone, location
		FROM users WHERE id = $1
	`, id).
		Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.Bio, &u.Phone, &u.Location)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) UpdateProfile(ctx context.Context, userID string, p UpdateProfileParams) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateProfile"),
		zap.String("user_id", userID),
	)

	var u User
	err := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET name = $1, bio = $2, phone = $3, location = $4
		WHERE id = $5
		RETURNING id, email, password, name, role, bio, phone, location
	`, p.Name, p.Bio, p.Phone, p.Location, userID).
		Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Role, &u.Bio, &u.Phone, &u.Location)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("user not found for profile update")
			return nil, ErrUserNotFound
		}
		log.Error("failed to update profile", zap.Error(err))
		return nil, err
	}

	log.Info("profile updated successfully")
	return &u, nil
}

func (r *repository) FindGrower(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, bio, phone, location, role
		FROM users WHERE id = $1 AND role = $2
	`, id, string(RoleGrower)).
		Scan(&u.ID, &u.Name, &u.Bio, &u.Phone, &u.Location, &u.Role)
	if err != nil {
		return nil, err
	}

	return &u, nil
}
