package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/teamhaven/haven/internal/domain"
	"github.com/teamhaven/haven/internal/store"
)

func seedUser(t *testing.T, s store.Store, loginID, password string, mode PasswordMode, role domain.Role) domain.User {
	t.Helper()

	hash, err := hashByMode(password, mode)
	require.NoError(t, err)

	id, err := s.Users().CreateUser(context.Background(), domain.User{
		LoginID:      loginID,
		PasswordHash: hash,
		Name:         "Test User",
		PhoneNumber:  "01012345678",
		Role:         role,
		Approved:     true,
	})
	require.NoError(t, err)

	u, err := s.Users().GetUserByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st, Tokens: newTestCodec(t)}

	u := seedUser(t, st, "kang1234", "kang123!", PasswordModePlain, domain.RoleEndUser)

	t.Run("success issues verifiable pair and stores refresh token", func(t *testing.T) {
		pair, got, err := svc.Login(ctx, "kang1234", "kang123!", PasswordModePlain)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)

		claims, err := svc.Tokens.VerifyAccessToken(pair.AccessToken)
		require.NoError(t, err)
		require.Equal(t, u.ID, claims.UserID)
		require.Equal(t, "01012345678", claims.PhoneNumber)

		rtClaims, err := svc.Tokens.VerifyRefreshToken(pair.RefreshToken)
		require.NoError(t, err)
		require.Equal(t, u.ID, rtClaims.UserID)
		require.Empty(t, rtClaims.PhoneNumber)

		rec, err := st.RefreshTokens().Get(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, pair.RefreshToken, rec.Token, "stored token must be the exact issued value")
		require.WithinDuration(t, time.Now().Add(svc.Tokens.RefreshTTL()), rec.ExpiresAt, 5*time.Second)
	})

	t.Run("second login overwrites the stored refresh token", func(t *testing.T) {
		first, _, err := svc.Login(ctx, "kang1234", "kang123!", PasswordModePlain)
		require.NoError(t, err)
		second, _, err := svc.Login(ctx, "kang1234", "kang123!", PasswordModePlain)
		require.NoError(t, err)
		require.NotEqual(t, first.RefreshToken, second.RefreshToken)

		rec, err := st.RefreshTokens().Get(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, second.RefreshToken, rec.Token)
	})

	t.Run("unknown login id", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody99", "kang123!", PasswordModePlain)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password leaves no refresh token behind", func(t *testing.T) {
		fresh := seedUser(t, st, "park1234", "park123!", PasswordModePlain, domain.RoleEndUser)

		_, _, err := svc.Login(ctx, "park1234", "wrong12!", PasswordModePlain)
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = st.RefreshTokens().Get(ctx, fresh.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("empty credentials rejected", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "", "kang123!", PasswordModePlain)
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, _, err = svc.Login(ctx, "kang1234", "", PasswordModePlain)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestLogin_PasswordModes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st, Tokens: newTestCodec(t)}

	seedUser(t, st, "plainuser1", "kang123!", PasswordModePlain, domain.RoleEndUser)
	seedUser(t, st, "hashuser1", "kang123!", PasswordModePreHashed, domain.RoleEndUser)

	t.Run("plain hash verifies only in plain mode", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "plainuser1", "kang123!", PasswordModePlain)
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, "plainuser1", "kang123!", PasswordModePreHashed)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("pre-hashed hash verifies only in pre-hashed mode", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "hashuser1", "kang123!", PasswordModePreHashed)
		require.NoError(t, err)

		_, _, err = svc.Login(ctx, "hashuser1", "kang123!", PasswordModePlain)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st, Tokens: newTestCodec(t)}

	u := seedUser(t, st, "refresh12", "kang123!", PasswordModePlain, domain.RoleEndUser)

	t.Run("rotates the stored token", func(t *testing.T) {
		pair, _, err := svc.Login(ctx, "refresh12", "kang123!", PasswordModePlain)
		require.NoError(t, err)

		next, err := svc.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
		require.NotEqual(t, pair.RefreshToken, next.RefreshToken)

		rec, err := st.RefreshTokens().Get(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, next.RefreshToken, rec.Token)

		claims, err := svc.Tokens.VerifyAccessToken(next.AccessToken)
		require.NoError(t, err)
		require.Equal(t, u.ID, claims.UserID)
	})

	t.Run("superseded token is rejected as reuse", func(t *testing.T) {
		pair, _, err := svc.Login(ctx, "refresh12", "kang123!", PasswordModePlain)
		require.NoError(t, err)

		rotated, err := svc.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)

		// The pre-rotation token still verifies cryptographically but no
		// longer matches the stored row.
		_, err = svc.Refresh(ctx, pair.RefreshToken)
		require.ErrorIs(t, err, ErrTokenMismatch)

		// The current token keeps working.
		_, err = svc.Refresh(ctx, rotated.RefreshToken)
		require.NoError(t, err)
	})

	t.Run("token from a stale login is rejected after a newer login", func(t *testing.T) {
		stale, _, err := svc.Login(ctx, "refresh12", "kang123!", PasswordModePlain)
		require.NoError(t, err)
		current, _, err := svc.Login(ctx, "refresh12", "kang123!", PasswordModePlain)
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, stale.RefreshToken)
		require.ErrorIs(t, err, ErrTokenMismatch)

		_, err = svc.Refresh(ctx, current.RefreshToken)
		require.NoError(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not-a-jwt")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("access token is not accepted for refresh", func(t *testing.T) {
		pair, _, err := svc.Login(ctx, "refresh12", "kang123!", PasswordModePlain)
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, pair.AccessToken)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("valid token with no stored row", func(t *testing.T) {
		orphan := seedUser(t, st, "orphan123", "kang123!", PasswordModePlain, domain.RoleEndUser)

		token, err := svc.Tokens.IssueRefreshToken(orphan.ID, time.Now())
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, token)
		require.ErrorIs(t, err, ErrTokenMismatch)
	})
}

func TestCheckLoginID(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st, Tokens: newTestCodec(t)}

	seedUser(t, st, "taken1234", "kang123!", PasswordModePlain, domain.RoleEndUser)

	require.ErrorIs(t, svc.CheckLoginID(ctx, "taken1234"), ErrLoginIDDuplicate)
	require.NoError(t, svc.CheckLoginID(ctx, "free12345"))
}

func TestRoleOf(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &AuthService{Store: st, Tokens: newTestCodec(t)}

	u := seedUser(t, st, "admin1234", "kang123!", PasswordModePlain, domain.RoleBackOfficeAdmin)

	role, err := svc.RoleOf(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "BACK_OFFICE_ADMIN", role)

	_, err = svc.RoleOf(ctx, 999999)
	require.ErrorIs(t, err, store.ErrNotFound)
}
