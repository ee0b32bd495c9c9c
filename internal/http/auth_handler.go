package http

import (
	"encoding/json"
	"net/http"

	"github.com/maricoIR/HengamGallery/internal/identity"
)

type AuthHandler struct {
	store *identity.Store
}

func NewAuthHandler(store *identity.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequestDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type UpdateProfileRequestDTO struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if !h.store.Login(r.Context(), req.Email, req.Password) {
		// Same message for every failure mode.
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "ایمیل یا رمز عبور اشتباه است")
		return
	}

	respondJSON(w, http.StatusOK, h.store.CurrentUser())
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if !h.store.Register(r.Context(), req.Name, req.Email, req.Password, req.Phone) {
		respondError(w, http.StatusServiceUnavailable, "registration_failed", "ثبت‌نام انجام نشد")
		return
	}

	respondJSON(w, http.StatusCreated, h.store.CurrentUser())
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout(r.Context())
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user := h.store.CurrentUser()
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "login required")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	ok := h.store.UpdateProfile(r.Context(), identity.ProfileUpdate{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		ProfileImage: req.ProfileImage,
	})
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "login required")
		return
	}

	respondJSON(w, http.StatusOK, h.store.CurrentUser())
}
