package store

import (
	"context"
	"errors"

	"github.com/teamhaven/haven/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	RefreshTokens() RefreshTokens
	Institutions() Institutions
	Records() Records

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step operations that must be atomic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByLoginID is used during login.
	GetUserByLoginID(ctx context.Context, loginID string) (domain.User, error)

	// LoginIDExists reports whether any user of any role holds the login id.
	// This is a pre-flight check only; the unique index on login_id is the
	// authoritative guard and CreateUser surfaces ErrAlreadyExists when a
	// concurrent insert wins the race.
	LoginIDExists(ctx context.Context, loginID string) (bool, error)

	// CreateUser inserts a new user and returns the generated id.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// ListPendingManagement returns management-role users awaiting approval,
	// oldest first.
	ListPendingManagement(ctx context.Context) ([]domain.User, error)

	// Approve flips the approved flag for a management user.
	Approve(ctx context.Context, userID int64) error
}

type RefreshTokens interface {
	// Upsert stores the current refresh token for a user, overwriting any
	// prior row. Idempotent; last writer wins.
	Upsert(ctx context.Context, rec domain.RefreshTokenRecord) error

	// Get returns the stored refresh token record for a user.
	Get(ctx context.Context, userID int64) (domain.RefreshTokenRecord, error)

	// DeleteExpired removes rows whose token has passed its expiry. Housekeeping.
	DeleteExpired(ctx context.Context) error
}

type Institutions interface {
	// GetInstitutionByID fetches an official institution.
	GetInstitutionByID(ctx context.Context, id int64) (domain.OfficialInstitution, error)

	// CreateInstitution inserts a new institution and returns the generated id.
	CreateInstitution(ctx context.Context, inst domain.OfficialInstitution) (int64, error)

	// ListInstitutions returns all institutions ordered by name.
	ListInstitutions(ctx context.Context) ([]domain.OfficialInstitution, error)
}

type Records interface {
	// CreateRecord inserts an upload metadata row and returns the generated id.
	CreateRecord(ctx context.Context, rec domain.Record) (int64, error)

	// GetRecordByID fetches a single record row.
	GetRecordByID(ctx context.Context, id int64) (domain.Record, error)

	// ListRecordsByUser returns a user's records, newest first.
	ListRecordsByUser(ctx context.Context, userID int64) ([]domain.Record, error)
}
