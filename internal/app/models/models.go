package models

// RoleName identifies a staff role, both as a global user role and as the
// role a user carries inside a specific group.
type RoleName string

const (
	RoleTeacher        RoleName = "teacher"
	RolePrincipal      RoleName = "principal"
	RoleSupportTeacher RoleName = "support_teacher"
)

// Role defines a row of the 'roles' table
type Role struct {
	ID   int64    `json:"id" db:"id"`
	Name RoleName `json:"name" db:"name"`
}

// StudentStatus is the lifecycle state of a student enrollment.
type StudentStatus int

const (
	StudentPending StudentStatus = iota
	StudentActive
	StudentInactive
)

// Scholarship is the enumerated classification of a TypeScholarship record.
type Scholarship string

const (
	ScholarshipBidding    Scholarship = "bidding"
	ScholarshipAgreement  Scholarship = "agreement"
	ScholarshipSubsidized Scholarship = "subsidized"
	ScholarshipSpecial    Scholarship = "special"
)

// ValidScholarship reports whether s is one of the known categories.
func ValidScholarship(s Scholarship) bool {
	switch s {
	case ScholarshipBidding, ScholarshipAgreement, ScholarshipSubsidized, ScholarshipSpecial:
		return true
	}
	return false
}
