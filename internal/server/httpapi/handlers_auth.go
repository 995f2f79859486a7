package httpapi

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/testdash/internal/logging"
	"github.com/dmitrijs2005/testdash/internal/server/models"
	"github.com/dmitrijs2005/testdash/internal/server/services"
)

// UserService is what the auth handlers need from services.UserService.
type UserService interface {
	Authenticator
	Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, upd models.ProfileUpdate) (*models.User, error)
	DeleteProfile(ctx context.Context, userID string) error
}

type AuthHandler struct {
	users  UserService
	logger logging.Logger
}

func NewAuthHandler(users UserService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	res, err := h.users.Register(r.Context(), req.input())
	if err != nil {
		writeServiceError(w, r, h.logger, err, msgUserNotFound)
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{"token": res.Token, "user": res.User.Public()})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	res, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, h.logger, err, msgUserNotFound)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"token": res.Token, "user": res.User.Public()})
}

// Profile handles GET /api/auth/profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	gated, _ := UserFromContext(r.Context())

	user, err := h.users.Profile(r.Context(), gated.ID)
	if err != nil {
		writeServiceError(w, r, h.logger, err, msgUserNotFound)
		return
	}
	writeSuccess(w, http.StatusOK, envelope{"user": user.Public()})
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	var req profileUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	updated, err := h.users.UpdateProfile(r.Context(), user.ID, req.update())
	if err != nil {
		writeServiceError(w, r, h.logger, err, msgUserNotFound)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"message": "Profile updated successfully",
		"user":    updated.Public(),
	})
}

// DeleteProfile handles DELETE /api/auth/profile.
func (h *AuthHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	user, _ := UserFromContext(r.Context())

	if err := h.users.DeleteProfile(r.Context(), user.ID); err != nil {
		writeServiceError(w, r, h.logger, err, msgUserNotFound)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"message": "Account deleted successfully"})
}
