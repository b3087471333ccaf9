package domain

import "time"

// TokenPair is what a successful login or refresh hands back: a short-lived
// access token and a longer-lived refresh token, both signed JWTs.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenRecord is the single stored refresh token for a user. Each
// login or refresh overwrites the row entirely; no history is retained, so
// the previous token stops working the moment a new one is persisted.
// ExpiresAt mirrors the token's own exp claim and exists so housekeeping can
// purge dead rows without parsing tokens.
type RefreshTokenRecord struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
	UpdatedAt time.Time
}
