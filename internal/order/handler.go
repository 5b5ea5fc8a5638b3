package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"vyeya-be/internal/logger"
	"vyeya-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type createRequest struct {
	Items       []ItemInput `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
}

type orderDetail struct {
	*Order
	Items []Item `json:"items"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "Access token required", http.StatusUnauthorized)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	o, err := h.svc.Create(r.Context(), userID, req.Items, req.TotalAmount)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyItems):
			utils.WriteJSONError(w, "Order items are required", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidTotal):
			utils.WriteJSONError(w, "Valid total amount is required", http.StatusBadRequest)
		default:
			logger.FromCtx(r.Context()).Error("order creation failed", zap.Error(err))
			utils.WriteJSONError(w, "Failed to create order", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]*Order{"order": o})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "Access token required", http.StatusUnauthorized)
		return
	}

	orders, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		logger.FromCtx(r.Context()).Error("orders fetch failed", zap.Error(err))
		utils.WriteJSONError(w, "Failed to fetch orders", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string][]Order{"orders": orders})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "Access token required", http.StatusUnauthorized)
		return
	}

	o, items, err := h.svc.Get(r.Context(), userID, chi.URLParam(r, "orderID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			utils.WriteJSONError(w, "Order not found", http.StatusNotFound)
		case errors.Is(err, ErrAccessDenied):
			utils.WriteJSONError(w, "Access denied", http.StatusForbidden)
		default:
			logger.FromCtx(r.Context()).Error("order fetch failed", zap.Error(err))
			utils.WriteJSONError(w, "Failed to fetch order", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]orderDetail{
		"order": {Order: o, Items: items},
	})
}
