package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/teamhaven/haven/pkg/jwtx"
	"github.com/teamhaven/haven/pkg/slogx"
)

// AccessVerifier checks an access token and returns its claims.
type AccessVerifier interface {
	VerifyAccessToken(token string) (jwtx.Claims, error)
}

// AuthnMiddleware authenticates requests carrying an access token in the
// given header with the given prefix (typically "Authorization" and
// "Bearer "). The authenticated user id and claims are injected into the
// request context.
func AuthnMiddleware(v AccessVerifier, header, prefix string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get(header)
			if authz == "" || !strings.HasPrefix(authz, prefix) {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, prefix))

			claims, err := v.VerifyAccessToken(raw)
			if err != nil {
				if errors.Is(err, jwtx.ErrExpired) {
					writeBearerError(w, "token expired")
					return
				}
				writeBearerError(w, "token verification failed")
				log.Warn("jwt verify failed", "err", err)
				return
			}

			// Inject into context for downstream handlers.
			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.UserID)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
