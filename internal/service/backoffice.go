package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/teamhaven/haven/internal/domain"
	"github.com/teamhaven/haven/internal/store"
)

// BackOfficeService covers the admin console operations: reviewing pending
// management registrations and maintaining the official institution list.
type BackOfficeService struct {
	Store store.Store
}

// ListPendingRegistrations returns management accounts awaiting approval,
// oldest first.
func (s *BackOfficeService) ListPendingRegistrations(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListPendingManagement(ctx)
}

// Approve marks a management registration as approved. Approving a user that
// does not exist returns ErrEntityNotFound.
func (s *BackOfficeService) Approve(ctx context.Context, userID int64) error {
	err := s.Store.Users().Approve(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrEntityNotFound
	}
	return err
}

// GetManagePersonInfo fetches a management user together with the institution
// they claim to belong to, for the approval review screen.
func (s *BackOfficeService) GetManagePersonInfo(ctx context.Context, userID int64) (domain.User, *domain.OfficialInstitution, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, nil, ErrEntityNotFound
		}
		return domain.User{}, nil, err
	}
	if !u.Role.Management() {
		return domain.User{}, nil, ErrEntityNotFound
	}

	if u.InstitutionID == nil {
		return u, nil, nil
	}
	inst, err := s.Store.Institutions().GetInstitutionByID(ctx, *u.InstitutionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Institution removed after registration; still show the user.
			return u, nil, nil
		}
		return domain.User{}, nil, err
	}
	return u, &inst, nil
}

// CreateInstitution registers a new official institution.
func (s *BackOfficeService) CreateInstitution(ctx context.Context, inst domain.OfficialInstitution) (int64, error) {
	inst.Name = strings.TrimSpace(inst.Name)
	if inst.Name == "" {
		return 0, fmt.Errorf("%w: institution name must not be empty", ErrValidation)
	}
	switch inst.Division {
	case domain.InstitutionPoliceStation, domain.InstitutionCounselingCenter:
	default:
		return 0, fmt.Errorf("%w: unknown institution division", ErrValidation)
	}
	return s.Store.Institutions().CreateInstitution(ctx, inst)
}

// ListInstitutions returns every official institution ordered by name.
func (s *BackOfficeService) ListInstitutions(ctx context.Context) ([]domain.OfficialInstitution, error) {
	return s.Store.Institutions().ListInstitutions(ctx)
}
