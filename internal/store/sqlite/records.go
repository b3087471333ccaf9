package sqlite

import (
	"context"

	"github.com/teamhaven/haven/internal/domain"
)

type recordsRepo struct {
	db dbtx
}

func (r *recordsRepo) CreateRecord(ctx context.Context, rec domain.Record) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO records (user_id, kind, object_key, content_type, recorded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.UserID, string(rec.Kind), rec.ObjectKey, rec.ContentType, rec.RecordedAt,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *recordsRepo) GetRecordByID(ctx context.Context, id int64) (domain.Record, error) {
	var rec domain.Record
	var kind string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, kind, object_key, content_type, recorded_at, created_at
		 FROM records WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.UserID, &kind, &rec.ObjectKey, &rec.ContentType, &rec.RecordedAt, &rec.CreatedAt)
	if err != nil {
		return domain.Record{}, mapNotFound(err)
	}
	rec.Kind = domain.RecordKind(kind)
	return rec, nil
}

func (r *recordsRepo) ListRecordsByUser(ctx context.Context, userID int64) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, kind, object_key, content_type, recorded_at, created_at
		 FROM records WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Record
	for rows.Next() {
		var rec domain.Record
		var kind string
		if err := rows.Scan(&rec.ID, &rec.UserID, &kind, &rec.ObjectKey, &rec.ContentType, &rec.RecordedAt, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Kind = domain.RecordKind(kind)
		out = append(out, rec)
	}
	return out, rows.Err()
}
