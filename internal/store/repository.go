package store

import (
	"context"
	"database/sql"
	"errors"

	"vyeya-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FindAll(ctx context.Context) ([]Store, error)
	FindByID(ctx context.Context, id string) (*Store, error)
	Create(ctx context.Context, s *Store) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Store, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, type, location, hours, verified, created_at
		FROM stores
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stores := []Store{}
	for rows.Next() {
		var s Store
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Type, &s.Location, &s.Hours, &s.Verified, &s.CreatedAt); err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stores, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Store, error) {
	var s Store
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, type, location, hours, verified, created_at
		FROM stores WHERE id = $1
	`, id).
		Scan(&s.ID, &s.UserID, &s.Name, &s.Type, &s.Location, &s.Hours, &s.Verified, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) Create(ctx context.Context, s *Store) error {
	log := logger.FromCtx(ctx)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO stores (id, user_id, name, type, location, hours, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`, s.ID, s.UserID, s.Name, s.Type, s.Location, s.Hours, s.Verified).
		Scan(&s.CreatedAt)

	if err != nil {
		log.Error("db: failed to insert store",
			zap.String("user_id", s.UserID),
			zap.Error(err),
		)
	}

	return err
}
