package dto

// GroupParams is the permitted attribute set for group writes. Absent fields
// stay untouched on update; unknown body keys are dropped by construction.
type GroupParams struct {
	Name *string `json:"name"`
	Year *string `json:"year"`
}

// CreateGroupRequest creates a group under a grade. The grade id rides at
// the top level, next to the group root key.
type CreateGroupRequest struct {
	GradeID int64       `json:"grade_id"`
	Group   GroupParams `json:"group"`
}

// UpdateGroupRequest mirrors CreateGroupRequest for updates
type UpdateGroupRequest struct {
	GradeID int64       `json:"grade_id"`
	Group   GroupParams `json:"group"`
}

// GradeParams is the permitted attribute set for grade writes
type GradeParams struct {
	Name *string `json:"name"`
}

// CreateGradeRequest creates an academic level
type CreateGradeRequest struct {
	Grade GradeParams `json:"grade"`
}
