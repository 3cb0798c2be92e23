// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/upstartlab/ideahub/internal/auth"
	"github.com/upstartlab/ideahub/internal/model"
)

type contextKey string

const (
	UserIDKey   contextKey = "ideahub_user_id"
	UserRoleKey contextKey = "ideahub_user_role"
)

// Identity returns the authenticated caller's ID and role from the request
// context. ok is false when the request never passed AuthMiddleware.
func Identity(ctx context.Context) (uuid.UUID, model.Role, bool) {
	id, okID := ctx.Value(UserIDKey).(uuid.UUID)
	role, okRole := ctx.Value(UserRoleKey).(model.Role)
	return id, role, okID && okRole
}

// AuthMiddleware validates the JWT from the Authorization header or the
// session cookie and stores the caller's identity in the request context.
// The role string inside the token is re-validated against the closed role
// set before it is trusted.
func AuthMiddleware(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				respondWithError(w, http.StatusUnauthorized, "No credentials provided")
				return
			}

			claims, err := tokenManager.Validate(tokenString)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token subject")
				return
			}

			role, err := model.ParseRole(claims.Role)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token role")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			ctx = context.WithValue(ctx, UserRoleKey, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdminCapable rejects callers whose role is not admin-capable. It
// must run after AuthMiddleware.
func RequireAdminCapable() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, role, ok := Identity(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "No credentials provided")
				return
			}
			if !role.AdminCapable() {
				respondWithError(w, http.StatusForbidden, "Administrative role required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken prefers the Authorization header; a missing or malformed
// header falls back to the session cookie.
func bearerToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
