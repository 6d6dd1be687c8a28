package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/dto"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/adapter/http/middleware"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/domain"
	"github.com/edu-delahoz/gestionEmpleadosAyd2-sub001/internal/infrastructure/auth"
)

// UserService defines the behavior needed by AuthHandler.
type UserService interface {
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// AuthHandler handles authentication requests.
type AuthHandler struct {
	userUC     UserService
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userUC UserService, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{
		userUC:     userUC,
		jwtManager: jwtManager,
	}
}

// Login authenticates a user and issues a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	user, err := h.userUC.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, mapDomainError(err), "authentication failed", err.Error())
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing authentication", "")
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}
