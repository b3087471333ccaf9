package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/teamhaven/haven/internal/domain"
	"github.com/teamhaven/haven/internal/store"
	"github.com/teamhaven/haven/pkg/cryptox"
	"github.com/teamhaven/haven/pkg/idx"
)

// MaxRecordSize caps a single upload at 20 MiB.
const MaxRecordSize = 20 << 20

// ErrRecordTooLarge is returned when an upload exceeds MaxRecordSize.
var ErrRecordTooLarge = errors.New("record_too_large")

// RecordService stores evidence uploads (pictures and diary entries). The
// payload is encrypted client-password-side before it touches disk; only
// metadata goes into the database. Object keys are ULIDs so files sort by
// upload time on disk.
type RecordService struct {
	Store   store.Store
	DataDir string
}

// UploadPicture encrypts and stores an image, returning the record id.
func (s *RecordService) UploadPicture(ctx context.Context, userID int64, r io.Reader, contentType, recordPassword string, recordedAt time.Time) (int64, error) {
	return s.upload(ctx, userID, domain.RecordPicture, r, contentType, recordPassword, recordedAt)
}

// UploadDiary encrypts and stores a diary entry.
func (s *RecordService) UploadDiary(ctx context.Context, userID int64, text, recordPassword string, recordedAt time.Time) (int64, error) {
	return s.upload(ctx, userID, domain.RecordDiary,
		strings.NewReader(text), "text/plain; charset=utf-8", recordPassword, recordedAt)
}

func (s *RecordService) upload(ctx context.Context, userID int64, kind domain.RecordKind, r io.Reader, contentType, recordPassword string, recordedAt time.Time) (int64, error) {
	plaintext, err := io.ReadAll(io.LimitReader(r, MaxRecordSize+1))
	if err != nil {
		return 0, fmt.Errorf("read upload: %w", err)
	}
	if len(plaintext) > MaxRecordSize {
		return 0, ErrRecordTooLarge
	}

	blob, err := cryptox.EncryptRecord(plaintext, recordPassword)
	if err != nil {
		return 0, err
	}

	objectKey := idx.New().String()
	path := filepath.Join(s.DataDir, objectKey)
	if err := os.MkdirAll(s.DataDir, 0750); err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, blob, 0600); err != nil {
		return 0, err
	}

	id, err := s.Store.Records().CreateRecord(ctx, domain.Record{
		UserID:      userID,
		Kind:        kind,
		ObjectKey:   objectKey,
		ContentType: contentType,
		RecordedAt:  recordedAt,
	})
	if err != nil {
		// Metadata insert failed; don't leave an orphan blob behind.
		_ = os.Remove(path)
		return 0, err
	}
	return id, nil
}

// OpenRecord decrypts a stored record for its owner. Requests for another
// user's record return ErrEntityNotFound rather than a permission error so
// record ids cannot be probed.
func (s *RecordService) OpenRecord(ctx context.Context, userID, recordID int64, recordPassword string) (domain.Record, []byte, error) {
	rec, err := s.Store.Records().GetRecordByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Record{}, nil, ErrEntityNotFound
		}
		return domain.Record{}, nil, err
	}
	if rec.UserID != userID {
		return domain.Record{}, nil, ErrEntityNotFound
	}

	blob, err := os.ReadFile(filepath.Join(s.DataDir, rec.ObjectKey))
	if err != nil {
		return domain.Record{}, nil, err
	}

	plaintext, err := cryptox.DecryptRecord(blob, recordPassword)
	if err != nil {
		return domain.Record{}, nil, err
	}
	return rec, plaintext, nil
}

// List returns the metadata of a user's records, newest first.
func (s *RecordService) List(ctx context.Context, userID int64) ([]domain.Record, error) {
	return s.Store.Records().ListRecordsByUser(ctx, userID)
}
