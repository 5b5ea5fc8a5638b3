package user

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

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	Name     string  `json:"name"`
	Bio      *string `json:"bio"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
}

type authResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type userResponse struct {
	User *User `json:"user"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.Register(r.Context(), req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			utils.WriteJSONError(w, "User already exists", http.StatusBadRequest)
			return
		}
		logger.FromCtx(r.Context()).Error("register failed", zap.Error(err))
		utils.WriteJSONError(w, "Server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, authResponse{Token: token, User: u})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			utils.WriteJSONError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		logger.FromCtx(r.Context()).Error("login failed", zap.Error(err))
		utils.WriteJSONError(w, "Server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, authResponse{Token: token, User: u})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "Access token required", http.StatusUnauthorized)
		return
	}

	u, err := h.svc.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			utils.WriteJSONError(w, "User not found", http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "Server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, userResponse{User: u})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, "Access token required", http.StatusUnauthorized)
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), userID, UpdateProfileParams{
		Name:     req.Name,
		Bio:      req.Bio,
		Phone:    req.Phone,
		Location: req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired):
			utils.WriteJSONError(w, "Name is required", http.StatusBadRequest)
		case errors.Is(err, ErrUserNotFound):
			utils.WriteJSONError(w, "User not found", http.StatusNotFound)
		default:
			logger.FromCtx(r.Context()).Error("profile update failed", zap.Error(err))
			utils.WriteJSONError(w, "Server error", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, userResponse{User: u})
}

func (h *Handler) Grower(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetGrower(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrGrowerNotFound) {
			utils.WriteJSONError(w, "Grower not found", http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "Server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]*User{"grower": u})
}
