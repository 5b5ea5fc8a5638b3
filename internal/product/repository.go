package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"vyeya-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FindAll(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, id string, params UpdateParams) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, store_id, name, price, stock, location, category_id, created_at
		FROM products
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.StoreID, &p.Name, &p.Price, &p.Stock, &p.Location, &p.CategoryID, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, store_id, name, price, stock, location, category_id, created_at
		FROM products WHERE id = $1
	`, id).
		Scan(&p.ID, &p.StoreID, &p.Name, &p.Price, &p.Stock, &p.Location, &p.CategoryID, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Create(ctx context.Context, p *Product) error {
	log := logger.FromCtx(ctx)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (id, store_id, name, price, stock, location, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`, p.ID, p.StoreID, p.Name, p.Price, p.Stock, p.Location, p.CategoryID).
		Scan(&p.CreatedAt)

	if err != nil {
		log.Error("db: failed to insert product",
			zap.String("store_id", p.StoreID),
			zap.Error(err),
		)
	}

	return err
}

// Update builds the SET clause from the fields actually provided.
func (r *repository) Update(ctx context.Context, id string, params UpdateParams) (*Product, error) {
	sets := []string{}
	args := []any{}
	argIndex := 1

	addSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if params.Name != nil {
		addSet("name", *params.Name)
	}
	if params.Price != nil {
		addSet("price", *params.Price)
	}
	if params.Stock != nil {
		addSet("stock", *params.Stock)
	}
	if params.Location != nil {
		addSet("location", *params.Location)
	}
	if params.CategoryID != nil {
		addSet("category_id", *params.CategoryID)
	}

	if len(sets) == 0 {
		return nil, ErrNoUpdateFields
	}

	query := fmt.Sprintf(`
		UPDATE products SET %s
		WHERE id = $%d
		RETURNING id, store_id, name, price, stock, location, category_id, created_at
	`, strings.Join(sets, ", "), argIndex)
	args = append(args, id)

	var p Product
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&p.ID, &p.StoreID, &p.Name, &p.Price, &p.Stock, &p.Location, &p.CategoryID, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}
