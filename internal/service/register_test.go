package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/teamhaven/haven/internal/domain"
	"github.com/teamhaven/haven/internal/store"
)

func seedInstitution(t *testing.T, s store.Store, name string, div domain.InstitutionDivision) int64 {
	t.Helper()

	id, err := s.Institutions().CreateInstitution(context.Background(), domain.OfficialInstitution{
		Name:        name,
		Division:    div,
		PhoneNumber: "0212345678",
		Address:     "1 Main St",
	})
	require.NoError(t, err)
	return id
}

func validEndUser() EndUserRegistration {
	return EndUserRegistration{
		LoginID:     "kang123a",
		Password:    "kang123!",
		Password2:   "kang123!",
		Name:        "Kang",
		PhoneNumber: "01012345678",
	}
}

func TestRegisterEndUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &RegisterService{Store: st, Mode: PasswordModePlain}

	t.Run("success creates an approved end user", func(t *testing.T) {
		id, err := svc.RegisterEndUser(ctx, validEndUser())
		require.NoError(t, err)

		u, err := st.Users().GetUserByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, domain.RoleEndUser, u.Role)
		require.True(t, u.Approved, "end users need no approval")
		require.Nil(t, u.InstitutionID)
		require.NotEqual(t, "kang123!", u.PasswordHash, "password must be stored hashed")

		// The new account can log in straight away.
		auth := &AuthService{Store: st, Tokens: newTestCodec(t)}
		_, _, err = auth.Login(ctx, "kang123a", "kang123!", PasswordModePlain)
		require.NoError(t, err)
	})

	t.Run("duplicate login id", func(t *testing.T) {
		_, err := svc.RegisterEndUser(ctx, validEndUser())
		require.ErrorIs(t, err, ErrLoginIDDuplicate)
	})

	t.Run("password confirmation mismatch persists nothing", func(t *testing.T) {
		reg := validEndUser()
		reg.LoginID = "mismatch1"
		reg.Password2 = "other123!"

		_, err := svc.RegisterEndUser(ctx, reg)
		require.ErrorIs(t, err, ErrValidation)

		exists, err := st.Users().LoginIDExists(ctx, "mismatch1")
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("field validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*EndUserRegistration)
		}{
			{"login id too short", func(r *EndUserRegistration) { r.LoginID = "ab1" }},
			{"login id starts with uppercase", func(r *EndUserRegistration) { r.LoginID = "Kang123a" }},
			{"login id starts with digit", func(r *EndUserRegistration) { r.LoginID = "1kang23a" }},
			{"login id too long", func(r *EndUserRegistration) { r.LoginID = "abcdefghijklmnopqrstu" }},
			{"password too short", func(r *EndUserRegistration) { r.Password = "ka1!"; r.Password2 = "ka1!" }},
			{"password without special", func(r *EndUserRegistration) { r.Password = "kang1234"; r.Password2 = "kang1234" }},
			{"password without letter", func(r *EndUserRegistration) { r.Password = "1234567!"; r.Password2 = "1234567!" }},
			{"password with forbidden char", func(r *EndUserRegistration) { r.Password = "kang123! "; r.Password2 = "kang123! " }},
			{"blank name", func(r *EndUserRegistration) { r.Name = "   " }},
			{"phone not mobile", func(r *EndUserRegistration) { r.PhoneNumber = "0212345678" }},
			{"phone too short", func(r *EndUserRegistration) { r.PhoneNumber = "0101234" }},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				reg := validEndUser()
				reg.LoginID = "unique99x"
				tc.mutate(&reg)

				_, err := svc.RegisterEndUser(ctx, reg)
				require.ErrorIs(t, err, ErrValidation)
			})
		}
	})
}

func TestRegisterManagePerson(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &RegisterService{Store: st, Mode: PasswordModePlain}

	instID := seedInstitution(t, st, "Central Station", domain.InstitutionPoliceStation)

	valid := func() ManagePersonRegistration {
		return ManagePersonRegistration{
			LoginID:       "officer1a",
			Password:      "kang123!",
			Password2:     "kang123!",
			Name:          "Officer Park",
			PhoneNumber:   "01098765432",
			Role:          domain.RolePoliceOfficer,
			InstitutionID: instID,
			Department:    "Investigations",
			Position:      "Sergeant",
		}
	}

	t.Run("success creates an unapproved officer", func(t *testing.T) {
		id, err := svc.RegisterManagePerson(ctx, valid())
		require.NoError(t, err)

		u, err := st.Users().GetUserByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, domain.RolePoliceOfficer, u.Role)
		require.False(t, u.Approved, "management accounts start unapproved")
		require.NotNil(t, u.InstitutionID)
		require.Equal(t, instID, *u.InstitutionID)
		require.Equal(t, "Investigations", u.Department)
	})

	t.Run("counselor role accepted", func(t *testing.T) {
		reg := valid()
		reg.LoginID = "counsel1a"
		reg.Role = domain.RoleCounselor
		reg.InstitutionID = seedInstitution(t, st, "East Center", domain.InstitutionCounselingCenter)

		_, err := svc.RegisterManagePerson(ctx, reg)
		require.NoError(t, err)
	})

	t.Run("unknown institution persists nothing", func(t *testing.T) {
		reg := valid()
		reg.LoginID = "ghost123a"
		reg.InstitutionID = 424242

		_, err := svc.RegisterManagePerson(ctx, reg)
		require.ErrorIs(t, err, ErrEntityNotFound)

		exists, err := st.Users().LoginIDExists(ctx, "ghost123a")
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("non-management role is an illegal state", func(t *testing.T) {
		for _, role := range []domain.Role{domain.RoleEndUser, domain.RoleBackOfficeAdmin, domain.Role("SUPERVISOR")} {
			reg := valid()
			reg.LoginID = "illegal1a"
			reg.Role = role

			_, err := svc.RegisterManagePerson(ctx, reg)
			require.ErrorIs(t, err, ErrIllegalState, "role %s", role)
		}
	})

	t.Run("login id duplicate across roles", func(t *testing.T) {
		end := &RegisterService{Store: st, Mode: PasswordModePlain}
		_, err := end.RegisterEndUser(ctx, EndUserRegistration{
			LoginID:     "shared12a",
			Password:    "kang123!",
			Password2:   "kang123!",
			Name:        "End User",
			PhoneNumber: "01011112222",
		})
		require.NoError(t, err)

		reg := valid()
		reg.LoginID = "shared12a"
		_, err = svc.RegisterManagePerson(ctx, reg)
		require.ErrorIs(t, err, ErrLoginIDDuplicate, "login ids are unique across every role")
	})
}

func TestRegisterAdmin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &RegisterService{Store: st, Mode: PasswordModePlain}

	id, err := svc.RegisterAdmin(ctx, AdminRegistration{
		LoginID:     "admin123a",
		Password:    "kang123!",
		Password2:   "kang123!",
		Name:        "Admin Kim",
		PhoneNumber: "01055556666",
		Department:  "Operations",
		Position:    "Manager",
	})
	require.NoError(t, err)

	u, err := st.Users().GetUserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.RoleBackOfficeAdmin, u.Role)
	require.False(t, u.Approved)
	require.Nil(t, u.InstitutionID, "admins carry no institution")
}
