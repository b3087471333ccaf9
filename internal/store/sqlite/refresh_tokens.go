package sqlite

import (
	"context"
	"time"

	"github.com/teamhaven/haven/internal/domain"
)

type refreshTokensRepo struct {
	db dbtx
}

func (r *refreshTokensRepo) Upsert(ctx context.Context, rec domain.RefreshTokenRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO refresh_tokens (user_id, token, expires_at, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id) DO UPDATE SET
			token = excluded.token,
			expires_at = excluded.expires_at,
			updated_at = CURRENT_TIMESTAMP`,
		rec.UserID, rec.Token, rec.ExpiresAt,
	)
	return err
}

func (r *refreshTokensRepo) Get(ctx context.Context, userID int64) (domain.RefreshTokenRecord, error) {
	var rec domain.RefreshTokenRecord
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, token, expires_at, updated_at FROM refresh_tokens WHERE user_id = ?`,
		userID,
	).Scan(&rec.UserID, &rec.Token, &rec.ExpiresAt, &rec.UpdatedAt)
	if err != nil {
		return domain.RefreshTokenRecord{}, mapNotFound(err)
	}
	return rec, nil
}

func (r *refreshTokensRepo) DeleteExpired(ctx context.Context) error {
	// Bind the cutoff instead of using CURRENT_TIMESTAMP so the comparison
	// uses the same text format the driver wrote expires_at in.
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at < ?`, time.Now().UTC())
	return err
}
