package middleware

import (
	"context"
	"net/http"
	"strings"

	"deepdive/internal/service"
)

type contextKey string

const AdminUsernameKey contextKey = "adminUsername"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireAdmin validates the admin JWT from the Authorization header
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			// WebSocket clients pass the token as a query param.
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			http.Error(w, `{"message":"Token is missing!"}`, http.StatusBadRequest)
			return
		}

		claims, err := m.authSvc.ValidateToken(token)
		if err != nil {
			http.Error(w, `{"message":"Token is invalid!"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), AdminUsernameKey, claims.Username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminUsername extracts the authenticated admin from context
func GetAdminUsername(ctx context.Context) string {
	if v := ctx.Value(AdminUsernameKey); v != nil {
		return v.(string)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
