package api

import (
	"net/http"

	"github.com/phrazzld/taskr-api/internal/api/middleware"
	"github.com/phrazzld/taskr-api/internal/api/shared"
	"github.com/phrazzld/taskr-api/internal/service"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	accounts service.AccountService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(accounts service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, r, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user, err := h.accounts.Register(r.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, r, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	result, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{AccessToken: result.AccessToken})
}

// Me handles GET /api/auth/me by echoing the verified token payload.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r)
	if !ok {
		HandleAPIError(w, r, service.ErrMissingOwner)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MeResponse{
		Subject:   claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		IssuedAt:  claims.IssuedAt.Unix(),
		ExpiresAt: claims.ExpiresAt.Unix(),
	})
}
