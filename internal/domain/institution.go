package domain

import "time"

// InstitutionDivision classifies an official institution.
type InstitutionDivision string

const (
	InstitutionPoliceStation    InstitutionDivision = "POLICE_STATION"
	InstitutionCounselingCenter InstitutionDivision = "COUNSELING_CENTER"
)

// OfficialInstitution is an organisational entity (police station, counseling
// center) that management-role registrations must reference. It has to exist
// before a police officer or counselor can sign up against it.
type OfficialInstitution struct {
	ID          int64
	Name        string
	Division    InstitutionDivision
	PhoneNumber string
	Address     string
	CreatedAt   time.Time
}
