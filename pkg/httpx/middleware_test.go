package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/teamhaven/haven/pkg/httpx"
	"github.com/teamhaven/haven/pkg/jwtx"
)

type fakeVerifier struct {
	claims jwtx.Claims
	err    error
}

func (f fakeVerifier) VerifyAccessToken(string) (jwtx.Claims, error) {
	return f.claims, f.err
}

func TestChain(t *testing.T) {
	var order []string
	tag := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}),
		tag("outer"), tag("inner"),
	)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order,
		"first middleware listed should run first")
}

func TestAuthnMiddleware(t *testing.T) {
	okClaims := jwtx.Claims{UserID: 42}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, int64(42), httpx.UserIDFromCtx(r.Context()))
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token passes and sets context", func(t *testing.T) {
		h := httpx.AuthnMiddleware(fakeVerifier{claims: okClaims}, "Authorization", "Bearer ")(next)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer sometoken")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		h := httpx.AuthnMiddleware(fakeVerifier{claims: okClaims}, "Authorization", "Bearer ")(next)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("wrong prefix rejected", func(t *testing.T) {
		h := httpx.AuthnMiddleware(fakeVerifier{claims: okClaims}, "Authorization", "Bearer ")(next)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		h := httpx.AuthnMiddleware(fakeVerifier{err: jwtx.ErrInvalid}, "Authorization", "Bearer ")(next)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token rejected with description", func(t *testing.T) {
		h := httpx.AuthnMiddleware(fakeVerifier{err: jwtx.ErrExpired}, "Authorization", "Bearer ")(next)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer old")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "token expired")
	})

	t.Run("custom header and prefix honoured", func(t *testing.T) {
		h := httpx.AuthnMiddleware(fakeVerifier{claims: okClaims}, "X-Access-Token", "Token ")(next)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Access-Token", "Token sometoken")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireAnyRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	authed := func(role string) http.Handler {
		resolve := func(ctx context.Context, userID int64) (string, error) {
			return role, nil
		}
		return httpx.Chain(next,
			httpx.AuthnMiddleware(fakeVerifier{claims: jwtx.Claims{UserID: 7}}, "Authorization", "Bearer "),
			httpx.RequireAnyRole(resolve, "BACK_OFFICE_ADMIN"),
		)
	}

	do := func(h http.Handler, withToken bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if withToken {
			req.Header.Set("Authorization", "Bearer x")
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("matching role passes", func(t *testing.T) {
		require.Equal(t, http.StatusOK, do(authed("BACK_OFFICE_ADMIN"), true).Code)
	})

	t.Run("other role forbidden", func(t *testing.T) {
		rec := do(authed("END_USER"), true)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "insufficient_scope")
	})

	t.Run("unauthenticated request forbidden", func(t *testing.T) {
		resolve := func(ctx context.Context, userID int64) (string, error) {
			t.Fatal("resolver should not be called without a user in context")
			return "", nil
		}
		h := httpx.RequireAnyRole(resolve, "BACK_OFFICE_ADMIN")(next)
		require.Equal(t, http.StatusForbidden, do(h, false).Code)
	})

	t.Run("resolver error forbidden", func(t *testing.T) {
		resolve := func(ctx context.Context, userID int64) (string, error) {
			return "", errors.New("lookup failed")
		}
		h := httpx.Chain(next,
			httpx.AuthnMiddleware(fakeVerifier{claims: jwtx.Claims{UserID: 7}}, "Authorization", "Bearer "),
			httpx.RequireAnyRole(resolve, "BACK_OFFICE_ADMIN"),
		)
		require.Equal(t, http.StatusForbidden, do(h, true).Code)
	})
}
