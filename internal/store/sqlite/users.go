package sqlite

import (
	"context"
	"database/sql"

	"github.com/teamhaven/haven/internal/domain"
	"github.com/teamhaven/haven/internal/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, login_id, password_hash, name, phone_number, role,
	institution_id, department, position, approved, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByLoginID(ctx context.Context, loginID string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE login_id = ?`, loginID)
	return scanUser(row)
}

func (r *usersRepo) LoginIDExists(ctx context.Context, loginID string) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM users WHERE login_id = ?`, loginID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (login_id, password_hash, name, phone_number, role,
			institution_id, department, position, approved)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.LoginID, u.PasswordHash, u.Name, u.PhoneNumber, string(u.Role),
		optionalID(u.InstitutionID), u.Department, u.Position, u.Approved,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) ListPendingManagement(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE approved = 0 AND role IN ('POLICE_OFFICER', 'COUNSELOR', 'BACK_OFFICE_ADMIN')
		 ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUserRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) Approve(ctx context.Context, userID int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET approved = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row *sql.Row) (domain.User, error) {
	u, err := scanUserRows(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func scanUserRows(s rowScanner) (domain.User, error) {
	var u domain.User
	var role string
	var institutionID sql.NullInt64
	err := s.Scan(
		&u.ID, &u.LoginID, &u.PasswordHash, &u.Name, &u.PhoneNumber, &role,
		&institutionID, &u.Department, &u.Position, &u.Approved,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	if institutionID.Valid {
		id := institutionID.Int64
		u.InstitutionID = &id
	}
	return u, nil
}

func optionalID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
