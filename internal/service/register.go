package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/teamhaven/haven/internal/domain"
	"github.com/teamhaven/haven/internal/store"
)

var (
	// Login ids start with a lowercase letter and run 7 to 20 characters of
	// letters and digits in total.
	loginIDPattern = regexp.MustCompile(`^[a-z]+[a-zA-Z0-9]{6,19}$`)

	// Passwords are 8 to 20 characters drawn from letters, digits, and the
	// allowed specials. Letter and special presence are checked separately
	// below since RE2 has no lookahead.
	passwordCharsPattern = regexp.MustCompile(`^[A-Za-z\d~!@#$%^&*()+|=]{8,20}$`)

	phonePattern = regexp.MustCompile(`^01(?:0|1|[6-9])(?:\d{3}|\d{4})\d{4}$`)
)

const passwordSpecials = "~!@#$%^&*()+|="

// RegisterService creates accounts for all four roles. Login ids are unique
// across every role, which the store's unique index enforces; the pre-flight
// existence check just produces a friendlier error for the common case.
type RegisterService struct {
	Store store.Store

	// Mode must match the AuthService mode or freshly registered users will
	// never be able to log in.
	Mode PasswordMode
}

// EndUserRegistration is the sign-up payload for ordinary users.
type EndUserRegistration struct {
	LoginID     string
	Password    string
	Password2   string
	Name        string
	PhoneNumber string
}

// ManagePersonRegistration is the sign-up payload for police officers and
// counselors. Their account stays unapproved until back office confirms the
// institution affiliation.
type ManagePersonRegistration struct {
	LoginID       string
	Password      string
	Password2     string
	Name          string
	PhoneNumber   string
	Role          domain.Role
	InstitutionID int64
	Department    string
	Position      string
}

// AdminRegistration is the sign-up payload for back office administrators.
type AdminRegistration struct {
	LoginID     string
	Password    string
	Password2   string
	Name        string
	PhoneNumber string
	Department  string
	Position    string
}

// RegisterEndUser creates an END_USER account. End users need no approval and
// can log in immediately.
func (s *RegisterService) RegisterEndUser(ctx context.Context, reg EndUserRegistration) (int64, error) {
	if err := validateCommon(reg.LoginID, reg.Password, reg.Password2, reg.Name, reg.PhoneNumber); err != nil {
		return 0, err
	}
	if err := s.checkLoginID(ctx, reg.LoginID); err != nil {
		return 0, err
	}

	hash, err := hashByMode(reg.Password, s.Mode)
	if err != nil {
		return 0, err
	}

	return s.createUser(ctx, s.Store.Users(), domain.User{
		LoginID:      strings.TrimSpace(reg.LoginID),
		PasswordHash: hash,
		Name:         strings.TrimSpace(reg.Name),
		PhoneNumber:  strings.TrimSpace(reg.PhoneNumber),
		Role:         domain.RoleEndUser,
		Approved:     true,
	})
}

// RegisterManagePerson creates a POLICE_OFFICER or COUNSELOR account tied to
// an official institution. Any other role is a caller bug and is rejected
// with ErrIllegalState. The institution lookup and user insert run in one
// transaction so a concurrently deleted institution cannot leave a dangling
// reference.
func (s *RegisterService) RegisterManagePerson(ctx context.Context, reg ManagePersonRegistration) (int64, error) {
	switch reg.Role {
	case domain.RolePoliceOfficer, domain.RoleCounselor:
	default:
		return 0, fmt.Errorf("%w: unexpected management role %q", ErrIllegalState, reg.Role)
	}

	if err := validateCommon(reg.LoginID, reg.Password, reg.Password2, reg.Name, reg.PhoneNumber); err != nil {
		return 0, err
	}
	if err := s.checkLoginID(ctx, reg.LoginID); err != nil {
		return 0, err
	}

	hash, err := hashByMode(reg.Password, s.Mode)
	if err != nil {
		return 0, err
	}

	var userID int64
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Institutions().GetInstitutionByID(ctx, reg.InstitutionID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrEntityNotFound
			}
			return err
		}

		instID := reg.InstitutionID
		userID, err = s.createUser(ctx, tx.Users(), domain.User{
			LoginID:       strings.TrimSpace(reg.LoginID),
			PasswordHash:  hash,
			Name:          strings.TrimSpace(reg.Name),
			PhoneNumber:   strings.TrimSpace(reg.PhoneNumber),
			Role:          reg.Role,
			InstitutionID: &instID,
			Department:    strings.TrimSpace(reg.Department),
			Position:      strings.TrimSpace(reg.Position),
			Approved:      false,
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// RegisterAdmin creates a BACK_OFFICE_ADMIN account. Admins carry no
// institution but still go through the approval queue.
func (s *RegisterService) RegisterAdmin(ctx context.Context, reg AdminRegistration) (int64, error) {
	if err := validateCommon(reg.LoginID, reg.Password, reg.Password2, reg.Name, reg.PhoneNumber); err != nil {
		return 0, err
	}
	if err := s.checkLoginID(ctx, reg.LoginID); err != nil {
		return 0, err
	}

	hash, err := hashByMode(reg.Password, s.Mode)
	if err != nil {
		return 0, err
	}

	return s.createUser(ctx, s.Store.Users(), domain.User{
		LoginID:      strings.TrimSpace(reg.LoginID),
		PasswordHash: hash,
		Name:         strings.TrimSpace(reg.Name),
		PhoneNumber:  strings.TrimSpace(reg.PhoneNumber),
		Role:         domain.RoleBackOfficeAdmin,
		Department:   strings.TrimSpace(reg.Department),
		Position:     strings.TrimSpace(reg.Position),
		Approved:     false,
	})
}

func (s *RegisterService) checkLoginID(ctx context.Context, loginID string) error {
	exists, err := s.Store.Users().LoginIDExists(ctx, strings.TrimSpace(loginID))
	if err != nil {
		return err
	}
	if exists {
		return ErrLoginIDDuplicate
	}
	return nil
}

func (s *RegisterService) createUser(ctx context.Context, users store.Users, u domain.User) (int64, error) {
	id, err := users.CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Concurrent registration won the race past our pre-flight check.
			return 0, ErrLoginIDDuplicate
		}
		return 0, err
	}
	return id, nil
}

// validateCommon runs the field checks shared by every registration form.
// Validation happens before any hashing or persistence so a rejected request
// leaves no trace.
func validateCommon(loginID, password, password2, name, phone string) error {
	if !loginIDPattern.MatchString(strings.TrimSpace(loginID)) {
		return fmt.Errorf("%w: login id must start with a lowercase letter and be 7-20 letters or digits", ErrValidation)
	}
	if err := validatePassword(password); err != nil {
		return err
	}
	if password != password2 {
		return fmt.Errorf("%w: password confirmation does not match", ErrValidation)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be blank", ErrValidation)
	}
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		return fmt.Errorf("%w: phone number is not a valid mobile number", ErrValidation)
	}
	return nil
}

func validatePassword(password string) error {
	if !passwordCharsPattern.MatchString(password) {
		return fmt.Errorf("%w: password must be 8-20 letters, digits, or %s", ErrValidation, passwordSpecials)
	}
	if !strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return fmt.Errorf("%w: password must contain at least one letter", ErrValidation)
	}
	if !strings.ContainsAny(password, passwordSpecials) {
		return fmt.Errorf("%w: password must contain at least one special character", ErrValidation)
	}
	return nil
}
