package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/teamhaven/haven/pkg/slogx"
)

// RoleResolver looks up the role of an authenticated user.
type RoleResolver func(ctx context.Context, userID int64) (string, error)

// RequireAnyRole the caller must hold at least one of the provided roles.
// It must run after AuthnMiddleware so the user id is in the context.
func RequireAnyRole(resolve RoleResolver, required ...string) Middleware {
	want := make(map[string]struct{}, len(required))
	for _, r := range required {
		want[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID := UserIDFromCtx(ctx)
			if userID == 0 {
				writeBearerRoleError(w, required...)
				return
			}

			role, err := resolve(ctx, userID)
			if err != nil {
				slogx.FromContext(ctx).Warn("role lookup failed", "user_id", userID, "err", err)
				writeBearerRoleError(w, required...)
				return
			}

			if _, ok := want[role]; ok {
				next.ServeHTTP(w, r)
				return
			}
			writeBearerRoleError(w, required...)
		})
	}
}

// RFC 6750-compliant error response for bearer insufficient_scope.
func writeBearerRoleError(w http.ResponseWriter, required ...string) {
	w.Header().
		Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+strings.Join(required, " ")+`"`)
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("insufficient_scope"))
}
