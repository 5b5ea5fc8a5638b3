package order

import (
	"context"

	"vyeya-be/internal/logger"
	"vyeya-be/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, userID string, items []ItemInput, totalAmount float64) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	Get(ctx context.Context, callerID, orderID string) (*Order, []Item, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create validates before touching the store: invalid input never reaches
// the database.
func (s *service) Create(ctx context.Context, userID string, items []ItemInput, totalAmount float64) (*Order, error) {
	log := logger.FromCtx(ctx)

	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	if totalAmount <= 0 {
		return nil, ErrInvalidTotal
	}

	o := &Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		TotalAmount: totalAmount,
		Status:      StatusPending,
	}

	rows := make([]Item, 0, len(items))
	for _, in := range items {
		rows = append(rows, Item{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Price:     in.Price,
		})
	}

	if err := s.repo.Create(ctx, o, rows); err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	log.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("user_id", userID),
		zap.Int("item_count", len(rows)),
		zap.Float64("total_amount", totalAmount),
	)

	return o, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// Get returns the order and its items, enforcing that only the owning buyer
// may read it.
func (s *service) Get(ctx context.Context, callerID, orderID string) (*Order, []Item, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	if o.UserID != callerID {
		return nil, nil, ErrAccessDenied
	}

	items, err := s.repo.GetItems(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	return o, items, nil
}
