package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/api/shared"
	"github.com/phrazzld/taskr-api/internal/service/auth"
)

// Messages returned by the guard. Neither reveals why a token was rejected.
const (
	MsgMissingToken = "Missing authentication token"
	MsgInvalidToken = "Invalid authentication token"
)

// AuthMiddleware guards routes with bearer-token authentication.
type AuthMiddleware struct {
	tokens auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Guard wraps next with authentication unless public is true.
//
// A protected request must carry "Authorization: Bearer <token>". A missing
// or malformed header yields 401 "Missing authentication token"; a token
// that fails verification yields 401 "Invalid authentication token". On
// success the verified claims are stored in the request context.
func (m *AuthMiddleware) Guard(public bool, next http.Handler) http.Handler {
	if public {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgMissingToken, auth.ErrMissingToken)
			return
		}

		claims, err := m.tokens.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, MsgInvalidToken, err)
			return
		}

		ctx := context.WithValue(r.Context(), shared.ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an Authorization header value.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

// GetClaims returns the verified claims of an authenticated request.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	return claims, ok && claims != nil
}

// GetUserID extracts the authenticated user's ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	claims, ok := GetClaims(r)
	if !ok {
		return uuid.Nil, false
	}
	id, err := claims.UserID()
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
