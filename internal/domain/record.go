package domain

import "time"

// RecordKind classifies an uploaded record.
type RecordKind string

const (
	RecordPicture RecordKind = "PICTURE"
	RecordDiary   RecordKind = "DIARY"
)

// Record is the metadata row for an encrypted upload. The payload itself
// lives on disk under ObjectKey, sealed with a key derived from the user's
// record password; the database never sees plaintext content.
type Record struct {
	ID          int64
	UserID      int64
	Kind        RecordKind
	ObjectKey   string
	ContentType string
	RecordedAt  time.Time
	CreatedAt   time.Time
}
