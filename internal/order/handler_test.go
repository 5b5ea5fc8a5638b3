package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vyeya-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userID string, items []ItemInput, totalAmount float64) (*Order, error) {
	args := m.Called(ctx, userID, items, totalAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockService) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, callerID, orderID string) (*Order, []Item, error) {
	args := m.Called(ctx, callerID, orderID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*Order), args.Get(1).([]Item), args.Error(2)
}

func withIdentity(req *http.Request, id string) *http.Request {
	ctx := utils.SetUserContext(req.Context(), id, "a@x.com", "A", "buyer")
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandler_Create(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc)

		svc.On("Create", mock.Anything, "u1",
			[]ItemInput{{ProductID: "p1", Quantity: 2, Price: 5}}, 10.0).
			Return(&Order{ID: "o1", UserID: "u1", TotalAmount: 10, Status: StatusPending}, nil)

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/v1/orders",
			strings.NewReader(`{"items":[{"productId":"p1","quantity":2,"price":5}],"totalAmount":10}`)), "u1")
		w := httptest.NewRecorder()
		h.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		o := decodeBody(t, w)["order"].(map[string]any)
		assert.Equal(t, "o1", o["id"])
		assert.Equal(t, "pending", o["status"])
	})

	t.Run("EmptyItems", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc)

		svc.On("Create", mock.Anything, "u1", mock.Anything, 10.0).
			Return(nil, ErrEmptyItems)

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/v1/orders",
			strings.NewReader(`{"items":[],"totalAmount":10}`)), "u1")
		w := httptest.NewRecorder()
		h.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Order items are required", decodeBody(t, w)["error"])
	})

	t.Run("InvalidTotal", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc)

		svc.On("Create", mock.Anything, "u1", mock.Anything, 0.0).
			Return(nil, ErrInvalidTotal)

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/v1/orders",
			strings.NewReader(`{"items":[{"productId":"p1","quantity":1,"price":1}],"totalAmount":0}`)), "u1")
		w := httptest.NewRecorder()
		h.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Valid total amount is required", decodeBody(t, w)["error"])
	})
}

func TestHandler_List(t *testing.T) {
	t.Run("EmptyList", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc)

		svc.On("ListByUser", mock.Anything, "u1").Return([]Order{}, nil)

		req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil), "u1")
		w := httptest.NewRecorder()
		h.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"orders":[]}`, w.Body.String())
	})

	t.Run("WithOrders", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc)

		svc.On("ListByUser", mock.Anything, "u1").
			Return([]Order{{ID: "o1", UserID: "u1", Status: StatusPending}}, nil)

		req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil), "u1")
		w := httptest.NewRecorder()
		h.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		orders := decodeBody(t, w)["orders"].([]any)
		require.Len(t, orders, 1)
		assert.Equal(t, "o1", orders[0].(map[string]any)["id"])
	})
}

func TestHandler_Get(t *testing.T) {
	newRouter := func(h *Handler) chi.Router {
		r := chi.NewRouter()
		r.Get("/orders/{orderID}", h.Get)
		return r
	}

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		r := newRouter(NewHandler(svc))

		svc.On("Get", mock.Anything, "u1", "o1").
			Return(&Order{ID: "o1", UserID: "u1", Status: StatusPending},
				[]Item{{ID: "i1", OrderID: "o1", ProductName: "Fresh Mangoes"}}, nil)

		req := withIdentity(httptest.NewRequest(http.MethodGet, "/orders/o1", nil), "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		o := decodeBody(t, w)["order"].(map[string]any)
		assert.Equal(t, "o1", o["id"])
		items := o["items"].([]any)
		require.Len(t, items, 1)
		assert.Equal(t, "Fresh Mangoes", items[0].(map[string]any)["product_name"])
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockService)
		r := newRouter(NewHandler(svc))

		svc.On("Get", mock.Anything, "u1", "missing").Return(nil, nil, ErrOrderNotFound)

		req := withIdentity(httptest.NewRequest(http.MethodGet, "/orders/missing", nil), "u1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Order not found", decodeBody(t, w)["error"])
	})

	t.Run("AccessDenied", func(t *testing.T) {
		svc := new(MockService)
		r := newRouter(NewHandler(svc))

		svc.On("Get", mock.Anything, "u2", "o1").Return(nil, nil, ErrAccessDenied)

		req := withIdentity(httptest.NewRequest(http.MethodGet, "/orders/o1", nil), "u2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Access denied", decodeBody(t, w)["error"])
	})
}
