package store

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
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Location *string `json:"location"`
	Hours    *string `json:"hours"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	stores, err := h.svc.List(r.Context())
	if err != nil {
		logger.FromCtx(r.Context()).Error("stores fetch failed", zap.Error(err))
		utils.WriteJSONError(w, "Server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"stores": stores,
		"total":  len(stores),
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			utils.WriteJSONError(w, "Store not found", http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "Server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, s)
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

	if req.Name == "" {
		utils.WriteJSONError(w, "Name is required", http.StatusBadRequest)
		return
	}

	s, err := h.svc.Create(r.Context(), &Store{
		UserID:   userID,
		Name:     req.Name,
		Type:     req.Type,
		Location: req.Location,
		Hours:    req.Hours,
	})
	if err != nil {
		logger.FromCtx(r.Context()).Error("store creation failed", zap.Error(err))
		utils.WriteJSONError(w, "Server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, s)
}
