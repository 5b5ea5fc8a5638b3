package product

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
	StoreID    string  `json:"store_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	Location   *string `json:"location"`
	CategoryID *string `json:"category_id"`
}

type updateRequest struct {
	Name       *string  `json:"name"`
	Price      *float64 `json:"price"`
	Stock      *int     `json:"stock"`
	Location   *string  `json:"location"`
	CategoryID *string  `json:"category_id"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		logger.FromCtx(r.Context()).Error("products fetch failed", zap.Error(err))
		utils.WriteJSONError(w, "Server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"total":    len(products),
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			utils.WriteJSONError(w, "Product not found", http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "Server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.StoreID == "" {
		utils.WriteJSONError(w, "Name and store_id are required", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), &Product{
		StoreID:    req.StoreID,
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		Location:   req.Location,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		logger.FromCtx(r.Context()).Error("product creation failed", zap.Error(err))
		utils.WriteJSONError(w, "Server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), UpdateParams{
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		Location:   req.Location,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNoUpdateFields):
			utils.WriteJSONError(w, "No fields to update", http.StatusBadRequest)
		case errors.Is(err, ErrProductNotFound):
			utils.WriteJSONError(w, "Product not found", http.StatusNotFound)
		default:
			logger.FromCtx(r.Context()).Error("product update failed", zap.Error(err))
			utils.WriteJSONError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			utils.WriteJSONError(w, "Product not found", http.StatusNotFound)
			return
		}
		logger.FromCtx(r.Context()).Error("product delete failed", zap.Error(err))
		utils.WriteJSONError(w, "Server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
