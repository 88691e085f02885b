package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "coursebooking/internal/delivery/http/helpers"
	"coursebooking/internal/domain"
)

type contextKey string

const managerIDKey contextKey = "managerID"

// SetManagerID returns a context with the manager ID set. Used by auth middleware.
func SetManagerID(ctx context.Context, managerID string) context.Context {
	return context.WithValue(ctx, managerIDKey, managerID)
}

// ManagerIDFromContext returns the authenticated manager ID from the context, if present.
func ManagerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(managerIDKey).(string)
	return id, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the manager ID in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			managerID, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetManagerID(r.Context(), managerID))
			next(w, r)
		}
	}
}
