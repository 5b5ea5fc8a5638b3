package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	newOrder := func() (*Order, []Item) {
		o := &Order{
			ID:          "o1",
			UserID:      "u1",
			TotalAmount: 10,
			Status:      StatusPending,
		}
		items := []Item{
			{ID: "i1", OrderID: "o1", ProductID: "p1", Quantity: 2, Price: 5},
			{ID: "i2", OrderID: "o1", ProductID: "p2", Quantity: 1, Price: 3.5},
		}
		return o, items
	}

	t.Run("CommitsHeaderAndAllItems", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		o, items := newOrder()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WithArgs("o1", "u1", 10.0, StatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs("i1", "o1", "p1", 2, 5.0).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs("i2", "o1", "p2", 1, 3.5).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = repo.Create(ctx, o, items)
		assert.NoError(t, err)
		assert.Equal(t, now, o.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ItemFailureRollsBackEverything", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		o, items := newOrder()
		itemErr := errors.New("fk violation")

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs("i1", "o1", "p1", 2, 5.0).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs("i2", "o1", "p2", 1, 3.5).
			WillReturnError(itemErr)
		mock.ExpectRollback()

		err = repo.Create(ctx, o, items)
		// the original failure reaches the caller, not the rollback result
		assert.ErrorIs(t, err, itemErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("HeaderFailureRollsBack", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		o, items := newOrder()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnError(errors.New("db down"))
		mock.ExpectRollback()

		err = repo.Create(ctx, o, items)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("NewestFirst", func(t *testing.T) {
		older := time.Now().Add(-time.Hour)
		newer := time.Now()

		rows := sqlmock.NewRows([]string{"id", "user_id", "total_amount", "status", "created_at", "updated_at"}).
			AddRow("o2", "u1", 20.0, "pending", newer, newer).
			AddRow("o1", "u1", 10.0, "pending", older, older)

		mock.ExpectQuery(`SELECT id, user_id, total_amount, status, created_at, updated_at\s+FROM orders\s+WHERE user_id = \$1\s+ORDER BY created_at DESC`).
			WithArgs("u1").
			WillReturnRows(rows)

		orders, err := repo.FindByUserID(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "o2", orders[0].ID)
		assert.True(t, orders[0].CreatedAt.After(orders[1].CreatedAt))
	})

	t.Run("EmptyIsNotNil", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders`).
			WithArgs("u2").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "status", "created_at", "updated_at"}))

		orders, err := repo.FindByUserID(ctx, "u2")
		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})
}

func TestRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "user_id", "total_amount", "status", "created_at", "updated_at"}).
			AddRow("o1", "u1", 10.0, "pending", now, now)

		mock.ExpectQuery(`SELECT .* FROM orders WHERE id = \$1`).
			WithArgs("o1").
			WillReturnRows(rows)

		o, err := repo.FindByID(ctx, "o1")
		require.NoError(t, err)
		assert.Equal(t, StatusPending, o.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders WHERE id = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total_amount", "status", "created_at", "updated_at"}))

		_, err := repo.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestRepository_GetItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("JoinsLiveProductName", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "order_id", "product_id", "quantity", "price", "name"}).
			AddRow("i1", "o1", "p1", 2, 5.0, "Fresh Mangoes")

		mock.ExpectQuery(`SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, p.name\s+FROM order_items oi\s+JOIN products p ON oi.product_id = p.id`).
			WithArgs("o1").
			WillReturnRows(rows)

		items, err := repo.GetItems(ctx, "o1")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Fresh Mangoes", items[0].ProductName)
		assert.Equal(t, 5.0, items[0].Price)
	})
}
