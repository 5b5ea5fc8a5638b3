package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeColumns() []string {
	return []string{"id", "user_id", "name", "type", "location", "hours", "verified", "created_at"}
}

func TestRepository_FindAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(storeColumns()).
		AddRow("s1", "u1", "Local Farm Market", "Casual", nil, nil, true, time.Now())

	mock.ExpectQuery(`SELECT id, user_id, name, type, location, hours, verified, created_at\s+FROM stores`).
		WillReturnRows(rows)

	stores, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Local Farm Market", stores[0].Name)
	assert.True(t, stores[0].Verified)
}

func TestRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM stores WHERE id = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(storeColumns()))

		_, err := repo.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrStoreNotFound)
	})
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	s := &Store{ID: "s1", UserID: "u1", Name: "Local Farm Market", Type: "Casual"}

	mock.ExpectQuery(`INSERT INTO stores`).
		WithArgs("s1", "u1", "Local Farm Market", "Casual", nil, nil, false).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	err = repo.Create(ctx, s)
	assert.NoError(t, err)
	assert.False(t, s.CreatedAt.IsZero())
}
