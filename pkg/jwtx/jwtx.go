// Package jwtx mints and verifies the platform's access and refresh tokens.
// Both are compact JWTs signed with a process-wide symmetric key (HS512);
// the subject claim distinguishes the two kinds.
package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teamhaven/haven/pkg/idx"
)

// Subjects carried in the "sub" claim. A token presented for refresh with the
// access subject (or vice versa) is rejected outright.
const (
	SubjectAccess  = "accessToken"
	SubjectRefresh = "refreshToken"
)

// Default token TTLs. Short-lived access tokens, longer refresh tokens; both
// can be overridden via Config.
const (
	DefaultAccessTokenTTL  = 30 * time.Minute
	DefaultRefreshTokenTTL = 14 * 24 * time.Hour
)

var (
	ErrInvalid = errors.New("jwtx: invalid token")
	ErrExpired = errors.New("jwtx: token expired")
	ErrSubject = errors.New("jwtx: unexpected subject")
)

// Claims are the private claims embedded in both token kinds. The access
// token additionally carries the user's phone number for downstream services
// that page emergency contacts without a user lookup.
type Claims struct {
	jwt.RegisteredClaims

	UserID      int64  `json:"id"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Config is the injected signing configuration. There is deliberately no
// package-level secret; the codec owns everything it needs.
type Config struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Codec signs and verifies token pairs for a single symmetric key.
type Codec struct {
	cfg Config
}

// NewCodec validates cfg and returns a Codec. Zero TTLs fall back to the
// package defaults; the refresh TTL must be longer than the access TTL.
func NewCodec(cfg Config) (*Codec, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("jwtx: signing secret must not be empty")
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTokenTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTokenTTL
	}
	if cfg.RefreshTTL <= cfg.AccessTTL {
		return nil, fmt.Errorf("jwtx: refresh TTL %v must exceed access TTL %v", cfg.RefreshTTL, cfg.AccessTTL)
	}
	return &Codec{cfg: cfg}, nil
}

// AccessTTL returns the configured access token lifetime.
func (c *Codec) AccessTTL() time.Duration { return c.cfg.AccessTTL }

// RefreshTTL returns the configured refresh token lifetime.
func (c *Codec) RefreshTTL() time.Duration { return c.cfg.RefreshTTL }

// IssueAccessToken mints a signed access token expiring at now+AccessTTL.
func (c *Codec) IssueAccessToken(userID int64, phoneNumber string, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   SubjectAccess,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.AccessTTL)),
		},
		UserID:      userID,
		PhoneNumber: phoneNumber,
	}
	return c.sign(claims)
}

// IssueRefreshToken mints a signed refresh token expiring at now+RefreshTTL.
// Refresh tokens carry only the user id plus a ULID jti. Timestamps have
// second granularity, so without the jti two tokens minted back to back
// would be byte-identical and rotation could not tell them apart.
func (c *Codec) IssueRefreshToken(userID int64, now time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        idx.New().String(),
			Subject:   SubjectRefresh,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.cfg.RefreshTTL)),
		},
		UserID: userID,
	}
	return c.sign(claims)
}

func (c *Codec) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(c.cfg.Secret)
}

// VerifyAccessToken parses and verifies an access token, failing closed on
// any signature, structure, expiry, or subject problem.
func (c *Codec) VerifyAccessToken(token string) (Claims, error) {
	return c.verify(token, SubjectAccess)
}

// VerifyRefreshToken parses and verifies a refresh token.
func (c *Codec) VerifyRefreshToken(token string) (Claims, error) {
	return c.verify(token, SubjectRefresh)
}

func (c *Codec) verify(token, wantSubject string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return c.cfg.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrExpired
	case err != nil:
		return Claims{}, ErrInvalid
	case !parsed.Valid:
		return Claims{}, ErrInvalid
	}

	if claims.Subject != wantSubject {
		return Claims{}, ErrSubject
	}
	return claims, nil
}
