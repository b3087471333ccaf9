package sqlite

import (
	"context"

	"github.com/teamhaven/haven/internal/domain"
)

type institutionsRepo struct {
	db dbtx
}

func (r *institutionsRepo) GetInstitutionByID(ctx context.Context, id int64) (domain.OfficialInstitution, error) {
	var inst domain.OfficialInstitution
	var division string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, division, phone_number, address, created_at
		 FROM official_institutions WHERE id = ?`, id,
	).Scan(&inst.ID, &inst.Name, &division, &inst.PhoneNumber, &inst.Address, &inst.CreatedAt)
	if err != nil {
		return domain.OfficialInstitution{}, mapNotFound(err)
	}
	inst.Division = domain.InstitutionDivision(division)
	return inst, nil
}

func (r *institutionsRepo) CreateInstitution(ctx context.Context, inst domain.OfficialInstitution) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO official_institutions (name, division, phone_number, address)
		 VALUES (?, ?, ?, ?)`,
		inst.Name, string(inst.Division), inst.PhoneNumber, inst.Address,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *institutionsRepo) ListInstitutions(ctx context.Context) ([]domain.OfficialInstitution, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, division, phone_number, address, created_at
		 FROM official_institutions ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.OfficialInstitution
	for rows.Next() {
		var inst domain.OfficialInstitution
		var division string
		if err := rows.Scan(&inst.ID, &inst.Name, &division, &inst.PhoneNumber, &inst.Address, &inst.CreatedAt); err != nil {
			return nil, err
		}
		inst.Division = domain.InstitutionDivision(division)
		out = append(out, inst)
	}
	return out, rows.Err()
}
