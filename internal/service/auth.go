package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/teamhaven/haven/internal/domain"
	"github.com/teamhaven/haven/internal/store"
	"github.com/teamhaven/haven/pkg/cryptox"
	"github.com/teamhaven/haven/pkg/jwtx"
	"github.com/teamhaven/haven/pkg/slogx"
)

var (
	ErrUserNotFound       = errors.New("user_not_found")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrLoginIDDuplicate   = errors.New("login_id_duplicate")
	ErrInvalidToken       = errors.New("invalid_token")
	ErrTokenMismatch      = errors.New("token_mismatch")
	ErrEntityNotFound     = errors.New("entity_not_found")
	ErrIllegalState       = errors.New("illegal_state")

	// ErrValidation wraps input validation failures. Callers can unwrap the
	// message for the specific field complaint.
	ErrValidation = errors.New("validation_failed")
)

// PasswordMode selects how presented passwords are compared against the
// stored hash. In PasswordModePlain the raw password feeds the adaptive hash
// directly. In PasswordModePreHashed clients digest the password with SHA-256
// before transmission and the digest is what the stored hash covers, so a raw
// password can never match a plain-mode hash and vice versa.
type PasswordMode string

const (
	PasswordModePlain     PasswordMode = "PLAIN"
	PasswordModePreHashed PasswordMode = "PRE_HASHED"
)

// Valid reports whether m is a known mode.
func (m PasswordMode) Valid() bool {
	return m == PasswordModePlain || m == PasswordModePreHashed
}

// AuthService handles login, token refresh, and login id availability.
type AuthService struct {
	Store  store.Store
	Tokens *jwtx.Codec
}

// Login verifies credentials and issues a fresh token pair. The new refresh
// token replaces whatever was stored for the user, so at most one refresh
// token is live per account at any time.
//
// A missing account and a wrong password surface as distinct errors so
// callers can log them separately, but the HTTP layer collapses both into one
// message to avoid confirming which login ids exist.
func (s *AuthService) Login(ctx context.Context, loginID, password string, mode PasswordMode) (domain.TokenPair, domain.User, error) {
	l := slogx.FromContext(ctx)

	loginID = strings.TrimSpace(loginID)
	if loginID == "" || password == "" {
		return domain.TokenPair{}, domain.User{}, ErrInvalidCredentials
	}

	u, err := s.Store.Users().GetUserByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, domain.User{}, ErrUserNotFound
		}
		return domain.TokenPair{}, domain.User{}, err
	}

	if err := verifyByMode(password, u.PasswordHash, mode); err != nil {
		l.Info("password verification failed", slog.String("login_id", loginID))
		return domain.TokenPair{}, domain.User{}, ErrInvalidCredentials
	}

	pair, err := s.issuePair(ctx, u, time.Now())
	if err != nil {
		return domain.TokenPair{}, domain.User{}, err
	}
	return pair, u, nil
}

// Refresh validates a presented refresh token and rotates it. The token must
// verify cryptographically AND match the single stored token for its user
// byte for byte. A verified token that does not match the stored row means a
// newer login or refresh has superseded it; presenting it again is treated as
// reuse and rejected with ErrTokenMismatch.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	claims, err := s.Tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return domain.TokenPair{}, ErrInvalidToken
	}

	rec, err := s.Store.RefreshTokens().Get(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// No stored token at all: nothing this token could legitimately
			// rotate, so treat it the same as a superseded token.
			return domain.TokenPair{}, ErrTokenMismatch
		}
		return domain.TokenPair{}, err
	}

	if subtle.ConstantTimeCompare([]byte(rec.Token), []byte(refreshToken)) != 1 {
		l.Warn("refresh token mismatch, possible reuse", slog.Int64("user_id", claims.UserID))
		return domain.TokenPair{}, ErrTokenMismatch
	}

	u, err := s.Store.Users().GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrUserNotFound
		}
		return domain.TokenPair{}, err
	}

	return s.issuePair(ctx, u, time.Now())
}

// CheckLoginID reports ErrLoginIDDuplicate when the login id is already held
// by any account of any role.
func (s *AuthService) CheckLoginID(ctx context.Context, loginID string) error {
	exists, err := s.Store.Users().LoginIDExists(ctx, strings.TrimSpace(loginID))
	if err != nil {
		return err
	}
	if exists {
		return ErrLoginIDDuplicate
	}
	return nil
}

// issuePair mints an access/refresh pair and persists the refresh token,
// overwriting the user's previous row.
func (s *AuthService) issuePair(ctx context.Context, u domain.User, now time.Time) (domain.TokenPair, error) {
	accessToken, err := s.Tokens.IssueAccessToken(u.ID, u.PhoneNumber, now)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refreshToken, err := s.Tokens.IssueRefreshToken(u.ID, now)
	if err != nil {
		return domain.TokenPair{}, err
	}

	rec := domain.RefreshTokenRecord{
		UserID:    u.ID,
		Token:     refreshToken,
		ExpiresAt: now.Add(s.Tokens.RefreshTTL()),
		UpdatedAt: now,
	}
	if err := s.Store.RefreshTokens().Upsert(ctx, rec); err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RoleOf resolves the stored role for a user id. Used by the authorization
// middleware.
func (s *AuthService) RoleOf(ctx context.Context, userID int64) (string, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return string(u.Role), nil
}

func verifyByMode(password, hash string, mode PasswordMode) error {
	if mode == PasswordModePreHashed {
		return cryptox.VerifySHA256Password(password, hash)
	}
	return cryptox.VerifyPassword(password, hash)
}

func hashByMode(password string, mode PasswordMode) (string, error) {
	if mode == PasswordModePreHashed {
		return cryptox.HashSHA256Password(password)
	}
	return cryptox.HashPassword(password)
}
