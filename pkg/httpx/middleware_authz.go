package httpx

import (
	"context"
	"net/http"
	"slices"

	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

// RoleLookup resolves the role of an authenticated user.
type RoleLookup interface {
	RoleOf(ctx context.Context, userID string) (string, error)
}

// RequireRole admits the request only when the caller's role is one of
// allowed. It must run after AuthnMiddleware. A lookup failure of any kind is
// treated as a denial.
func RequireRole(lookup RoleLookup, allowed ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			userID, ok := UserIDFromContext(ctx)
			if !ok {
				WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			role, err := lookup.RoleOf(ctx, userID)
			if err != nil {
				log.Warn("role lookup failed", "err", err)
				WriteError(w, http.StatusForbidden, "Forbidden")
				return
			}
			if !slices.Contains(allowed, role) {
				log.Info("role denied", "role", role, "allowed", allowed)
				WriteError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithRole(ctx, role)))
		})
	}
}
