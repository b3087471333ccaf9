package domain

import "time"

// Role discriminates the user kinds the platform knows about. The set is
// closed; anything else is a programming error, not input to tolerate.
type Role string

const (
	RoleEndUser         Role = "END_USER"
	RolePoliceOfficer   Role = "POLICE_OFFICER"
	RoleCounselor       Role = "COUNSELOR"
	RoleBackOfficeAdmin Role = "BACK_OFFICE_ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEndUser, RolePoliceOfficer, RoleCounselor, RoleBackOfficeAdmin:
		return true
	}
	return false
}

// Management reports whether r is a management role. Management accounts go
// through the back-office approval workflow before they are considered active.
func (r Role) Management() bool {
	switch r {
	case RolePoliceOfficer, RoleCounselor, RoleBackOfficeAdmin:
		return true
	}
	return false
}

// User is a credential record for any of the four roles. Login ids are unique
// across the whole table, so an END_USER and a POLICE_OFFICER can never share
// one. The password hash is an argon2id PHC string.
type User struct {
	ID           int64
	LoginID      string
	PasswordHash string
	Name         string
	PhoneNumber  string
	Role         Role

	// Management-only fields. InstitutionID is required for police officers
	// and counselors, absent for back-office admins and end users.
	InstitutionID *int64
	Department    string
	Position      string
	Approved      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
